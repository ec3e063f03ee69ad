package config

import (
	"image/color"

	"github.com/automoto/balloon/shared/balloon"
)

// BalloonConfig contains the balloon's flight physics
type BalloonConfig struct {
	MaxSpeed    float32 `toml:"max_speed"`    // per-axis clamp, pixels/s
	LiftAccel   float32 `toml:"lift_accel"`   // LIFT vertical acceleration
	HeavyAccel  float32 `toml:"heavy_accel"`  // HEAVY vertical deceleration
	Damping     float32 `toml:"damping"`      // velocity multiplier per tick
	Bounce      float32 `toml:"bounce"`       // speed kept after hitting a tile
	LaunchSpeed float32 `toml:"launch_speed"` // initial upward velocity at spawn
}

// WindConfig contains the ambient wind band and fan settings
type WindConfig struct {
	BandMin   float32 `toml:"band_min"`
	BandMax   float32 `toml:"band_max"`
	BandForce float32 `toml:"band_force"`
	FanForce  float32 `toml:"fan_force"` // acceleration at a fan's mouth
	FanReach  int     `toml:"fan_reach"` // cells
}

// TransitionConfig contains state change animation timing
type TransitionConfig struct {
	Duration float32 `toml:"duration"` // seconds, both phases
}

// LevelConfig contains level flow settings
type LevelConfig struct {
	TileSize          int     `toml:"tile_size"`
	StartIndex        int     `toml:"start_index"`
	ExitTweenDuration float32 `toml:"exit_tween_duration"` // seconds the balloon flies into the exit
	ResetDelay        int     `toml:"reset_delay"`         // frames shown dead before the level reloads
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `toml:"follow_smoothing"` // How fast camera follows the balloon (0.0-1.0)
}

// ScreenShakeConfig contains hazard hit shake settings
type ScreenShakeConfig struct {
	Intensity float64 `toml:"intensity"` // pixels
	Duration  int     `toml:"duration"`  // frames
}

// UIConfig contains the state button bar layout
type UIConfig struct {
	ButtonSize   int `toml:"button_size"`
	ButtonGap    int `toml:"button_gap"`
	ButtonMargin int `toml:"button_margin"` // distance from the bottom of the screen
}

// LoggingConfig selects the zap encoder and level
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DebugConfig contains debug overlays
type DebugConfig struct {
	DrawBounds bool `toml:"draw_bounds"` // balloon and object rectangles
	DrawWind   bool `toml:"draw_wind"`   // fan wind zones
}

// Config holds general game configuration
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	TPS    int `toml:"tps"`
}

// Global configuration instances
var C *Config
var Balloon BalloonConfig
var Wind WindConfig
var Transition TransitionConfig
var Level LevelConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var UI UIConfig
var Logging LoggingConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	SkyBlue      = color.RGBA{R: 120, G: 180, B: 230, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected state button
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Enabled state button
	Gray         = color.RGBA{R: 90, G: 90, B: 90, A: 255}    // Disabled state button
)

func init() {
	setDefaults()
}

func setDefaults() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Balloon = BalloonConfig{
		MaxSpeed:    100,
		LiftAccel:   100,
		HeavyAccel:  100,
		Damping:     0.99,
		Bounce:      0.5,
		LaunchSpeed: 100,
	}

	Wind = WindConfig{
		BandMin:   200,
		BandMax:   300,
		BandForce: 40,
		FanForce:  120,
		FanReach:  8,
	}

	Transition = TransitionConfig{
		Duration: 0.5,
	}

	Level = LevelConfig{
		TileSize:          32,
		StartIndex:        0,
		ExitTweenDuration: 2,
		ResetDelay:        45,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	ScreenShake = ScreenShakeConfig{
		Intensity: 4,
		Duration:  12,
	}

	UI = UIConfig{
		ButtonSize:   40,
		ButtonGap:    8,
		ButtonMargin: 8,
	}

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}

	Debug = DebugConfig{}
}

// Params converts the balloon, wind and level settings into physics params.
func Params() balloon.Params {
	return balloon.Params{
		MaxSpeed:      Balloon.MaxSpeed,
		LiftAccel:     Balloon.LiftAccel,
		HeavyAccel:    Balloon.HeavyAccel,
		Damping:       Balloon.Damping,
		Bounce:        Balloon.Bounce,
		LaunchSpeed:   Balloon.LaunchSpeed,
		WindBandMin:   Wind.BandMin,
		WindBandMax:   Wind.BandMax,
		WindBandForce: Wind.BandForce,
		TileSize:      Level.TileSize,
	}
}
