package components

import (
	"github.com/automoto/balloon/assets"
	"github.com/automoto/balloon/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	*tilemap.Level
	Info       assets.LevelInfo
	Index      int
	Background *ebiten.Image
	Source     LevelSource       // nil for levels built in code
	Pool       *tilemap.RectPool // shared across reloads
}

var Level = donburi.NewComponentType[LevelData]()

// LevelSource produces fresh level maps by index. Resetting a level loads
// it again because opened doors and cut ropes change the map.
type LevelSource interface {
	Manifest() *assets.Manifest
	LoadLevel(index int) (assets.LevelInfo, *tilemap.Map, error)
}
