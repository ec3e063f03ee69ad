package balloon

// Params are the tunable physics constants. Speeds are pixels per second.
type Params struct {
	MaxSpeed    float32 // per-axis velocity clamp
	LiftAccel   float32
	HeavyAccel  float32
	Damping     float32 // velocity multiplier applied once per tick
	Bounce      float32 // fraction of speed kept after a collision
	LaunchSpeed float32 // initial upward velocity

	// Ambient wind band: while WindBandMin < y < WindBandMax the balloon is
	// pushed along +x by WindBandForce.
	WindBandMin   float32
	WindBandMax   float32
	WindBandForce float32

	TileSize int
}

func DefaultParams() Params {
	return Params{
		MaxSpeed:      100,
		LiftAccel:     100,
		HeavyAccel:    100,
		Damping:       0.99,
		Bounce:        0.5,
		LaunchSpeed:   100,
		WindBandMin:   200,
		WindBandMax:   300,
		WindBandForce: 40,
		TileSize:      32,
	}
}
