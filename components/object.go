package components

import (
	"github.com/automoto/balloon/shared/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData places an entity in the resolv space used for the balloon vs
// map object broad phase.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// MapObjectData is the level object an entity was created from.
type MapObjectData struct {
	tilemap.Object
}

var MapObject = donburi.NewComponentType[MapObjectData]()
