package balloon

import (
	"errors"
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

var (
	ErrTransitionInProgress = errors.New("state transition in progress")
	ErrTerminalState        = errors.New("balloon is popped or dead")
	ErrNotSteadyState       = errors.New("state cannot be requested")
)

// Phase is where the state machine is in a transition.
type Phase int

const (
	PhaseIdle       Phase = iota
	PhaseCollapsing       // current clip plays backwards to the plain balloon
	PhaseExpanding        // target clip plays forwards from the plain balloon
)

func (p Phase) String() string {
	switch p {
	case PhaseCollapsing:
		return "collapsing"
	case PhaseExpanding:
		return "expanding"
	default:
		return "idle"
	}
}

// Float32 sums of per-tick dt drift below the exact phase length.
const phaseEpsilon = 1e-4

// StateMachine owns the balloon's state and its two-phase transition
// animation. Current only changes at the midpoint of a transition, so
// physics keeps using the old state while the first half plays.
type StateMachine struct {
	clips    ClipTable
	half     float32
	current  State
	target   State
	phase    Phase
	clip     Clip
	progress float32
	elapsed  float32
	tween    *gween.Tween
	texture  string
	log      *zap.Logger
}

// NewStateMachine starts in Normal. duration is the length of a whole
// transition; each phase takes half of it.
func NewStateMachine(clips ClipTable, duration float32, log *zap.Logger) *StateMachine {
	if log == nil {
		log = zap.NewNop()
	}
	return &StateMachine{
		clips:   clips,
		half:    duration / 2,
		current: Normal,
		target:  Normal,
		clip:    clips[Normal],
		texture: clips[Normal].Texture,
		log:     log,
	}
}

// Request starts a transition to target. Requests are rejected while a
// transition is running or once the balloon is popped or dead.
func (m *StateMachine) Request(target State) error {
	switch {
	case m.current.Terminal():
		return ErrTerminalState
	case !target.Steady():
		return fmt.Errorf("%w: %s", ErrNotSteadyState, target)
	case m.phase != PhaseIdle:
		m.log.Debug("state request rejected",
			zap.Stringer("target", target),
			zap.Stringer("pending", m.target),
			zap.Stringer("phase", m.phase))
		return ErrTransitionInProgress
	}

	m.target = target
	m.phase = PhaseCollapsing
	m.elapsed = 0
	m.progress = m.clip.Duration()
	m.tween = gween.New(m.progress, 0, m.half, ease.Linear)
	m.log.Debug("state transition started",
		zap.Stringer("from", m.current),
		zap.Stringer("to", target))
	return nil
}

// Update advances the running transition by dt seconds. Time left over at
// the end of the first phase carries into the second.
func (m *StateMachine) Update(dt float32) {
	if m.phase == PhaseIdle {
		return
	}
	m.elapsed += dt
	m.progress, _ = m.tween.Update(dt)

	for m.phase != PhaseIdle && m.elapsed+phaseEpsilon >= m.half {
		leftover := m.elapsed - m.half
		if leftover < 0 {
			leftover = 0
		}
		switch m.phase {
		case PhaseCollapsing:
			m.flip()
			m.elapsed = leftover
			if leftover > 0 {
				m.progress, _ = m.tween.Update(leftover)
			}
		case PhaseExpanding:
			m.finish()
		}
	}
}

// flip ends the collapse: the target becomes current and its clip starts.
func (m *StateMachine) flip() {
	m.current = m.target
	m.clip = m.clips[m.current]
	m.phase = PhaseExpanding
	m.progress = 0
	m.tween = gween.New(0, m.clip.Duration(), m.half, ease.Linear)
	m.log.Debug("state flipped", zap.Stringer("state", m.current))
}

func (m *StateMachine) finish() {
	m.phase = PhaseIdle
	m.elapsed = 0
	m.progress = m.clip.Duration()
	m.tween = nil
	m.texture = m.clips[m.current].Texture
	m.log.Debug("state transition finished", zap.Stringer("state", m.current))
}

// Kill ends the balloon's life with the Dead state.
func (m *StateMachine) Kill() { m.terminate(Dead) }

// Pop ends the balloon's life with the Pop state.
func (m *StateMachine) Pop() { m.terminate(Pop) }

func (m *StateMachine) terminate(s State) {
	if m.current.Terminal() {
		return
	}
	m.current = s
	m.target = s
	m.phase = PhaseIdle
	m.tween = nil
	m.elapsed = 0
	m.clip = m.clips[s]
	m.progress = 0
	m.texture = m.clips[s].Texture
	m.log.Debug("balloon terminated", zap.Stringer("state", s))
}

// Current is the state physics and level logic act on.
func (m *StateMachine) Current() State { return m.current }

// Target is the state being transitioned to, or Current when idle.
func (m *StateMachine) Target() State { return m.target }

func (m *StateMachine) Phase() Phase { return m.phase }

// Animating reports whether a transition is in flight.
func (m *StateMachine) Animating() bool { return m.phase != PhaseIdle }

// Progress is the animation time within the active clip.
func (m *StateMachine) Progress() float32 { return m.progress }

// Clip is the active clip.
func (m *StateMachine) Clip() Clip { return m.clip }

// Frame selects what to draw: the clip sheet and frame while animating,
// otherwise the state's static texture with frame -1.
func (m *StateMachine) Frame() (string, int) {
	if m.Animating() {
		return m.clip.Name, m.clip.KeyFrame(m.progress)
	}
	return m.texture, -1
}

// Texture is the static texture of the settled state.
func (m *StateMachine) Texture() string { return m.texture }
