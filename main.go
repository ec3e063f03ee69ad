package main

import (
	"errors"
	"log"

	"github.com/automoto/balloon/assets"
	"github.com/automoto/balloon/config"
	"github.com/automoto/balloon/fonts"
	"github.com/automoto/balloon/scenes"
	"github.com/automoto/balloon/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(loader *assets.LevelLoader, logger *zap.Logger) *Game {
	g := &Game{}
	g.scene = scenes.NewFlightScene(g, loader, logger)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.Load(config.Path()); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(config.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	systems.SetLogger(logger)

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}

	loader, err := assets.NewLevelLoader()
	if err != nil {
		logger.Fatal("load level manifest", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Balloon")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(loader, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game exited", zap.Error(err))
	}
}
