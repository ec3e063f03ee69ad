package tags

import "github.com/yohamta/donburi"

var (
	Balloon   = donburi.NewTag().SetName("Balloon")
	MapObject = donburi.NewTag().SetName("MapObject")
)

// Resolv tags for the balloon vs map object broad phase
const (
	ResolvBalloon  = "balloon"
	ResolvHazard   = "hazard"
	ResolvCuttable = "cuttable"
	ResolvGoal     = "goal"
	ResolvDoor     = "door"
	ResolvFan      = "fan"
)
