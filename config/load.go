package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "BALLOON_CONFIG"

// DefaultPath is read when EnvPath is unset.
const DefaultPath = "balloon.toml"

// file is the TOML layout of the config file. Every table is optional.
type file struct {
	Window      Config            `toml:"window"`
	Balloon     BalloonConfig     `toml:"balloon"`
	Wind        WindConfig        `toml:"wind"`
	Transition  TransitionConfig  `toml:"transition"`
	Level       LevelConfig       `toml:"level"`
	Camera      CameraConfig      `toml:"camera"`
	ScreenShake ScreenShakeConfig `toml:"screen_shake"`
	UI          UIConfig          `toml:"ui"`
	Logging     LoggingConfig     `toml:"logging"`
	Debug       DebugConfig       `toml:"debug"`
}

// Path returns the config path from the environment or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load overlays the TOML file at path onto the current settings. A missing
// file leaves the defaults in place; a file that fails to parse changes
// nothing.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	f := file{
		Window:      *C,
		Balloon:     Balloon,
		Wind:        Wind,
		Transition:  Transition,
		Level:       Level,
		Camera:      Camera,
		ScreenShake: ScreenShake,
		UI:          UI,
		Logging:     Logging,
		Debug:       Debug,
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	window := f.Window
	C = &window
	Balloon = f.Balloon
	Wind = f.Wind
	Transition = f.Transition
	Level = f.Level
	Camera = f.Camera
	ScreenShake = f.ScreenShake
	UI = f.UI
	Logging = f.Logging
	Debug = f.Debug
	return nil
}

func (f *file) validate() error {
	switch {
	case f.Window.TPS <= 0:
		return errors.New("window.tps must be positive")
	case f.Level.TileSize <= 0:
		return errors.New("level.tile_size must be positive")
	case f.Transition.Duration <= 0:
		return errors.New("transition.duration must be positive")
	case f.Balloon.MaxSpeed <= 0:
		return errors.New("balloon.max_speed must be positive")
	}
	return nil
}
