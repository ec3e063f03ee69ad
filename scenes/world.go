package scenes

import (
	"sync"

	"github.com/automoto/balloon/archetypes"
	"github.com/automoto/balloon/assets"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/tilemap"
	"github.com/automoto/balloon/systems"
	"github.com/automoto/balloon/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// FlightScene runs one balloon level after another.
type FlightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	loader       *assets.LevelLoader
	levelIndex   int
	log          *zap.Logger
	once         sync.Once
}

// NewFlightScene creates the game scene starting at the configured level.
func NewFlightScene(sc SceneChanger, loader *assets.LevelLoader, log *zap.Logger) *FlightScene {
	if log == nil {
		log = zap.NewNop()
	}
	return &FlightScene{
		sceneChanger: sc,
		loader:       loader,
		levelIndex:   cfg.Level.StartIndex,
		log:          log,
	}
}

// Update runs one tick. It returns ebiten.Termination once the player quits.
func (fs *FlightScene) Update() error {
	fs.once.Do(fs.configure)
	fs.ecs.Update()

	if systems.QuitRequested(fs.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (fs *FlightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.SkyBlue)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FlightScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with the pause check. States advance before
	// physics so the balloon moves in the state flipped to this tick.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateControls))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateStates))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBalloon))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateExit))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(archetypes.Default, systems.DrawLevel)
	ecs.AddRenderer(archetypes.Default, systems.DrawObjects)
	ecs.AddRenderer(archetypes.Default, systems.DrawBalloon)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)
	ecs.AddRenderer(archetypes.Default, systems.DrawHUD)
	ecs.AddRenderer(archetypes.Default, systems.DrawPause)

	fs.ecs = ecs

	factory.CreateCamera(fs.ecs)

	data, err := factory.LoadLevelData(fs.loader, tilemap.NewRectPool(), fs.levelIndex, fs.log)
	if err != nil {
		panic("failed to load level: " + err.Error())
	}
	systems.StartLevel(fs.ecs, data)
	fs.log.Info("level started", zap.String("name", data.Info.Name))
}
