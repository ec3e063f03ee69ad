package components

import "github.com/yohamta/donburi"

type PauseData struct {
	IsPaused bool
	Quit     bool // set by the quit action, read by the scene
}

var Pause = donburi.NewComponentType[PauseData]()
