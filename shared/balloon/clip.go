package balloon

// Clip is one transition animation: the balloon morphing into a state.
// Frames are drawn from the sheet named Name; Texture is the static image
// shown once the balloon has settled in the state.
type Clip struct {
	Name          string
	Frames        int
	FrameDuration float32
	Texture       string
}

// Duration is the clip's play time in seconds.
func (c Clip) Duration() float32 {
	return float32(c.Frames) * c.FrameDuration
}

// KeyFrame returns the frame shown at time t. Times outside the clip hold
// the first or last frame.
func (c Clip) KeyFrame(t float32) int {
	if c.Frames <= 1 || c.FrameDuration <= 0 || t <= 0 {
		return 0
	}
	i := int(t / c.FrameDuration)
	if i >= c.Frames {
		i = c.Frames - 1
	}
	return i
}

// ClipTable maps every state to its clip. It is an array so tables are
// copied by value and cannot be mutated through a shared reference.
type ClipTable [StateCount]Clip
