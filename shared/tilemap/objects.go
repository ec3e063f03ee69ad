package tilemap

import (
	"math"

	"github.com/automoto/balloon/shared/gamemath"
)

// ObjectKind is the map object variant, read from the Tiled "type" attribute.
type ObjectKind int

const (
	KindUnknown ObjectKind = iota
	KindSpawn
	KindFan
	KindSpikes
	KindRope
	KindDoor
	KindExit
)

var kindNames = map[ObjectKind]string{
	KindUnknown: "unknown",
	KindSpawn:   "spawn",
	KindFan:     "fan",
	KindSpikes:  "spikes",
	KindRope:    "rope",
	KindDoor:    "door",
	KindExit:    "exit",
}

func (k ObjectKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseKind maps a Tiled type name to a kind.
func ParseKind(name string) (ObjectKind, bool) {
	for k, n := range kindNames {
		if n == name && k != KindUnknown {
			return k, true
		}
	}
	return KindUnknown, false
}

// Capability is what level logic may do with an object. Gameplay code asks
// for capabilities instead of switching on the kind.
type Capability uint8

const (
	// Hazard kills the balloon on contact.
	Hazard Capability = 1 << iota
	// TriggerSource fires the triggers of its group when destroyed.
	TriggerSource
	// ForceField pushes the balloon through the wind field.
	ForceField
	// Trigger reacts when its group fires.
	Trigger
	// Goal ends the level.
	Goal
	// Cuttable is destroyed by the buzzsaw state.
	Cuttable
	// Blocker occupies grid cells until triggered.
	Blocker
)

var kindCapabilities = map[ObjectKind]Capability{
	KindFan:    ForceField,
	KindSpikes: Hazard,
	KindRope:   Cuttable | TriggerSource,
	KindDoor:   Trigger | Blocker,
	KindExit:   Goal,
}

// CapabilitiesOf returns the fixed capability set of a kind.
func CapabilitiesOf(kind ObjectKind) Capability {
	return kindCapabilities[kind]
}

// Object is a placed map object in world space.
type Object struct {
	ID       int
	Kind     ObjectKind
	Bounds   gamemath.Rect
	Rotation float32 // degrees, counter-clockwise
	FlipX    bool
	Group    string // rope group; doors list the group that opens them
	Caps     Capability
}

func NewObject(id int, kind ObjectKind, bounds gamemath.Rect) Object {
	return Object{ID: id, Kind: kind, Bounds: bounds, Caps: CapabilitiesOf(kind)}
}

func (o Object) Has(c Capability) bool {
	return o.Caps&c == c
}

// Facing is the unit axis an object points along, snapped to 90° steps.
func (o Object) Facing() gamemath.Vec2 {
	rad := float64(o.Rotation) * math.Pi / 180
	dir := gamemath.Vec2{
		X: float32(math.Round(math.Cos(rad))),
		Y: float32(math.Round(math.Sin(rad))),
	}
	if o.FlipX {
		dir.X = -dir.X
	}
	return dir
}

// ObjectsWith filters objects by capability.
func ObjectsWith(objects []Object, c Capability) []Object {
	var out []Object
	for _, o := range objects {
		if o.Has(c) {
			out = append(out, o)
		}
	}
	return out
}
