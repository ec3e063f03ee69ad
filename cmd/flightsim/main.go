// Command flightsim flies the balloon through a level without a window and
// prints its trajectory.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/balloon/assets"
	"github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/balloon"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/shared/tilemap"
	"go.uber.org/zap"
)

type options struct {
	level  string
	ticks  int
	every  int
	script string
}

// command is a scripted state change applied before the given tick.
type command struct {
	tick  int
	state balloon.State
}

func main() {
	var opts options
	var configPath string

	flag.StringVar(&opts.level, "level", "", "level name (default: configured start level)")
	flag.IntVar(&opts.ticks, "ticks", 600, "ticks to simulate")
	flag.IntVar(&opts.every, "every", 10, "print every n-th tick")
	flag.StringVar(&opts.script, "script", "", `state requests, e.g. "30:LIFT,90:HEAVY"`)
	flag.StringVar(&configPath, "config", config.Path(), "TOML config file")
	flag.Parse()

	if err := config.Load(configPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	logger, err := config.NewLogger(config.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	loader, err := assets.NewLevelLoader()
	if err != nil {
		logger.Fatal("load level manifest", zap.Error(err))
	}
	if err := run(opts, loader, os.Stdout, logger); err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}
}

// parseScript reads comma separated tick:STATE pairs, sorted by tick.
func parseScript(s string) ([]command, error) {
	var cmds []command
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tickStr, stateStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("script entry %q: want tick:STATE", part)
		}
		tick, err := strconv.Atoi(strings.TrimSpace(tickStr))
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("script entry %q: bad tick", part)
		}
		state, ok := balloon.ParseState(strings.TrimSpace(stateStr))
		if !ok {
			return nil, fmt.Errorf("script entry %q: unknown state %q", part, stateStr)
		}
		cmds = append(cmds, command{tick: tick, state: state})
	}
	sort.SliceStable(cmds, func(i, j int) bool { return cmds[i].tick < cmds[j].tick })
	return cmds, nil
}

// run simulates the level and writes one line per printed tick.
func run(opts options, loader *assets.LevelLoader, out io.Writer, log *zap.Logger) error {
	cmds, err := parseScript(opts.script)
	if err != nil {
		return err
	}

	index := config.Level.StartIndex
	if opts.level != "" {
		if index, err = loader.Manifest().Index(opts.level); err != nil {
			return err
		}
	}
	info, m, err := loader.LoadLevel(index)
	if err != nil {
		return err
	}

	wind := tilemap.WindSettings{Force: config.Wind.FanForce, Reach: config.Wind.FanReach}
	level := tilemap.NewLevel(m, tilemap.NewRectPool(), wind, log)
	defer level.Release()

	sim := newSimulation(level, info, log)
	dt := 1 / float32(config.C.TPS)
	every := opts.every
	if every < 1 {
		every = 1
	}

	fmt.Fprintf(out, "# level %q, %d ticks at %d tps\n", info.Name, opts.ticks, config.C.TPS)
	fmt.Fprintln(out, "tick\tx\ty\tvx\tvy\tstate\tphase\tevent")
	for tick := 0; tick < opts.ticks; tick++ {
		for len(cmds) > 0 && cmds[0].tick == tick {
			sim.apply(cmds[0].state)
			cmds = cmds[1:]
		}
		event := sim.step(dt)
		if tick%every == 0 || event != "" {
			sim.print(out, tick, event)
		}
		if sim.finished() {
			break
		}
	}
	return nil
}

// simulation is the headless equivalent of the game's balloon systems.
type simulation struct {
	level   *tilemap.Level
	info    assets.LevelInfo
	body    *balloon.Body
	machine *balloon.StateMachine
	objects []tilemap.Object
	exited  bool
	log     *zap.Logger
}

func newSimulation(level *tilemap.Level, info assets.LevelInfo, log *zap.Logger) *simulation {
	half := float32(balloon.FrameSize) / 2
	return &simulation{
		level:   level,
		info:    info,
		body:    balloon.NewBody(level.Spawn.Sub(gamemath.Vec2{X: half, Y: half}), config.Params()),
		machine: balloon.NewStateMachine(config.TransitionClips, config.Transition.Duration, log),
		objects: append([]tilemap.Object(nil), level.Objects...),
		log:     log,
	}
}

func (s *simulation) apply(state balloon.State) {
	switch state {
	case balloon.Dead:
		s.machine.Kill()
		return
	case balloon.Pop:
		s.machine.Pop()
		return
	}
	if !s.info.Enabled(state) {
		s.log.Warn("state disabled in this level", zap.Stringer("state", state))
		return
	}
	if err := s.machine.Request(state); err != nil {
		s.log.Warn("state request rejected", zap.Stringer("state", state), zap.Error(err))
	}
}

// step advances one tick and reports an object event, if any.
func (s *simulation) step(dt float32) string {
	if s.finished() {
		return ""
	}
	s.machine.Update(dt)
	s.body.Step(dt, s.machine.Current(), s.level)
	return s.interact()
}

func (s *simulation) interact() string {
	bounds := s.body.Bounds()
	for i := 0; i < len(s.objects); i++ {
		o := s.objects[i]
		if !bounds.Overlaps(o.Bounds) {
			continue
		}
		switch {
		case o.Has(tilemap.Hazard):
			s.machine.Kill()
			return "hit " + o.Kind.String()
		case o.Has(tilemap.Goal):
			s.exited = true
			return "exit"
		case o.Has(tilemap.Cuttable) && s.machine.Current() == balloon.Buzzsaw:
			s.cut(o)
			return "cut " + o.Group
		}
	}
	return ""
}

// cut removes the rope's group and opens the doors it holds shut.
func (s *simulation) cut(rope tilemap.Object) {
	kept := s.objects[:0]
	for _, o := range s.objects {
		inGroup := rope.Group != "" && o.Group == rope.Group
		switch {
		case o.ID == rope.ID, inGroup && o.Has(tilemap.Cuttable):
		case inGroup && o.Has(tilemap.Trigger):
			if o.Has(tilemap.Blocker) {
				s.level.Open(o)
			}
		default:
			kept = append(kept, o)
		}
	}
	s.objects = kept
}

func (s *simulation) finished() bool {
	return s.exited || s.machine.Current().Terminal()
}

func (s *simulation) print(out io.Writer, tick int, event string) {
	p, v := s.body.Position, s.body.Velocity
	fmt.Fprintf(out, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\t%s\n",
		tick, p.X, p.Y, v.X, v.Y, s.machine.Current(), s.machine.Phase(), event)
}
