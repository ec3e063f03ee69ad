// Package balloon holds the balloon's kinematics, its pixel-accurate tile
// collision and the animated state machine. Like the other shared packages it
// must not depend on ebiten so the headless simulator builds without a display.
package balloon

import "strings"

// State is the balloon's aerodynamic state.
type State int

const (
	Normal State = iota
	Lift
	Heavy
	Spinner
	Magnet
	Buzzsaw

	// Terminal states, never reached through a transition.
	Pop
	Dead

	StateCount // Must be last - used for array sizing
)

// SteadyStates lists the states a transition may target, in button order.
var SteadyStates = [...]State{Normal, Lift, Heavy, Spinner, Magnet, Buzzsaw}

var stateNames = [StateCount]string{
	Normal:  "normal",
	Lift:    "lift",
	Heavy:   "heavy",
	Spinner: "spinner",
	Magnet:  "magnet",
	Buzzsaw: "buzzsaw",
	Pop:     "pop",
	Dead:    "dead",
}

func (s State) String() string {
	if s >= 0 && s < StateCount {
		return stateNames[s]
	}
	return "unknown"
}

// ParseState accepts the lower or upper case state name.
func ParseState(name string) (State, bool) {
	for s, n := range stateNames {
		if n == strings.ToLower(name) {
			return State(s), true
		}
	}
	return Normal, false
}

// Steady reports whether s can be the target of a transition.
func (s State) Steady() bool {
	return s >= Normal && s <= Buzzsaw
}

// Terminal reports whether s ends the balloon's life.
func (s State) Terminal() bool {
	return s == Pop || s == Dead
}
