package flowfield

import "github.com/ngmaloney/strait-current/internal/models"

// Options tunes the particle population and motion. Speeds are in degrees
// per tick; angles in radians.
type Options struct {
	StrongCount       int
	MediumCount       int
	WeakCount         int
	TransitionalCount int

	StrongSpeed float64
	MediumSpeed float64
	WeakSpeed   float64
	SpeedJitter float64 // fractional per-particle speed variance, e.g. 0.3 = +/-30%

	MinLifespan int
	MaxLifespan int
	FadeTicks   int

	SpawnAttempts int

	StrongDampening float64
	MediumDampening float64
	WeakDampening   float64
	SlackDampening  float64

	CurveAmplitude float64
	HeadingJitter  float64 // fixed per-particle offset from the base angle
	WobbleJitter   float64 // per-tick angle noise

	Seed int64 // 0 seeds from the clock
}

// DefaultOptions returns the tuning used by the terminal view
func DefaultOptions() Options {
	return Options{
		StrongCount:       400,
		MediumCount:       280,
		WeakCount:         180,
		TransitionalCount: 120,

		StrongSpeed: 0.0012,
		MediumSpeed: 0.0008,
		WeakSpeed:   0.0005,
		SpeedJitter: 0.3,

		MinLifespan: 90,
		MaxLifespan: 240,
		FadeTicks:   20,

		SpawnAttempts: 35,

		StrongDampening: 1.0,
		MediumDampening: 0.95,
		WeakDampening:   0.7,
		SlackDampening:  0.18,

		CurveAmplitude: 0.35,
		HeadingJitter:  0.12,
		WobbleJitter:   0.08,
	}
}

// populationFor returns the particle count for a regime
func (o Options) populationFor(dir models.Direction, s models.Strength) int {
	if dir == models.Transitional {
		return o.TransitionalCount
	}
	switch s {
	case models.Strong:
		return o.StrongCount
	case models.Medium:
		return o.MediumCount
	default:
		return o.WeakCount
	}
}

func (o Options) speedFor(s models.Strength) float64 {
	switch s {
	case models.Strong:
		return o.StrongSpeed
	case models.Medium:
		return o.MediumSpeed
	default:
		return o.WeakSpeed
	}
}

func (o Options) dampeningFor(dir models.Direction, s models.Strength) float64 {
	if dir == models.Transitional {
		return o.SlackDampening
	}
	switch s {
	case models.Strong:
		return o.StrongDampening
	case models.Medium:
		return o.MediumDampening
	default:
		return o.WeakDampening
	}
}

// normalized fills zero or inverted fields from DefaultOptions
func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.StrongCount < 0 {
		o.StrongCount = 0
	}
	if o.MediumCount < 0 {
		o.MediumCount = 0
	}
	if o.WeakCount < 0 {
		o.WeakCount = 0
	}
	if o.TransitionalCount < 0 {
		o.TransitionalCount = 0
	}
	if o.StrongSpeed <= 0 {
		o.StrongSpeed = d.StrongSpeed
	}
	if o.MediumSpeed <= 0 {
		o.MediumSpeed = d.MediumSpeed
	}
	if o.WeakSpeed <= 0 {
		o.WeakSpeed = d.WeakSpeed
	}
	if o.SpeedJitter < 0 || o.SpeedJitter >= 1 {
		o.SpeedJitter = d.SpeedJitter
	}
	if o.MinLifespan <= 0 {
		o.MinLifespan = d.MinLifespan
	}
	if o.MaxLifespan < o.MinLifespan {
		o.MaxLifespan = o.MinLifespan
	}
	if o.FadeTicks <= 0 {
		o.FadeTicks = d.FadeTicks
	}
	if o.SpawnAttempts <= 0 {
		o.SpawnAttempts = d.SpawnAttempts
	}
	if o.StrongDampening <= 0 {
		o.StrongDampening = d.StrongDampening
	}
	if o.MediumDampening <= 0 {
		o.MediumDampening = d.MediumDampening
	}
	if o.WeakDampening <= 0 {
		o.WeakDampening = d.WeakDampening
	}
	if o.SlackDampening <= 0 {
		o.SlackDampening = d.SlackDampening
	}
	return o
}
