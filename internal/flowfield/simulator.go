// Package flowfield animates tracer particles along an estimated tidal
// current, confined to a water mask.
package flowfield

import (
	"math"
	"math/rand"
	"time"

	"github.com/ngmaloney/strait-current/internal/models"
	"github.com/ngmaloney/strait-current/internal/watermask"
	"gonum.org/v1/gonum/stat"
)

// Mask answers whether a coordinate is water
type Mask interface {
	Contains(lng, lat float64) bool
	Bounds() watermask.Box
}

// Projector maps a geographic position onto the drawing surface
type Projector interface {
	Project(lat, lng float64) (x, y float64)
}

// Simulator owns a fixed-size particle population. It is not safe for
// concurrent use: Configure and Tick must be called from one goroutine, and
// readers take snapshots between ticks.
type Simulator struct {
	mask      Mask
	bounds    watermask.Box
	projector Projector
	opts      Options
	rng       *rand.Rand

	particles []Particle
	direction models.Direction
	strength  models.Strength
	baseSpeed float64
	dampening float64
	ticks     int
}

// New creates a simulator with an empty population. Call Configure before
// the first Tick.
func New(mask Mask, projector Projector, opts Options) *Simulator {
	opts = opts.normalized()
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		mask:      mask,
		bounds:    mask.Bounds(),
		projector: projector,
		opts:      opts,
		rng:       rand.New(rand.NewSource(seed)),
		direction: models.Transitional,
		strength:  models.Weak,
	}
}

// SetProjector swaps the screen projection, e.g. after a resize. Recorded
// screen positions are dropped since they belong to the old surface.
func (s *Simulator) SetProjector(p Projector) {
	s.projector = p
	for i := range s.particles {
		s.particles[i].HasLast = false
	}
}

// Configure discards the population and respawns it for a new regime.
// Count and base speed follow strength; drift follows direction.
func (s *Simulator) Configure(dir models.Direction, strength models.Strength) {
	switch dir {
	case models.Southward, models.Northward, models.Transitional:
	default:
		dir = models.Transitional
	}
	switch strength {
	case models.Strong, models.Medium, models.Weak:
	default:
		strength = models.Weak
	}

	s.direction = dir
	s.strength = strength
	s.baseSpeed = s.opts.speedFor(strength)
	s.dampening = s.opts.dampeningFor(dir, strength)

	n := s.opts.populationFor(dir, strength)
	s.particles = make([]Particle, n)
	for i := range s.particles {
		s.particles[i] = s.spawn(false)
	}
}

// Tick advances every particle by one frame. Particles that age out, fade
// out, or leave the water are replaced in place, so the population size
// never changes between Configure calls.
func (s *Simulator) Tick() {
	s.ticks++
	for i := range s.particles {
		p := &s.particles[i]

		p.Age++
		p.Opacity = fadeOpacity(p.Age, p.Lifespan, s.opts.FadeTicks)
		if p.Age > p.Lifespan || p.Opacity <= 0 {
			*p = s.spawn(true)
			continue
		}

		angle := p.heading + s.curvature(p.Lng) + (s.rng.Float64()*2-1)*s.opts.WobbleJitter
		step := p.Speed * s.dampening
		lng := p.Lng + math.Cos(angle)*step
		lat := p.Lat + math.Sin(angle)*step

		// land absorbs
		if !s.mask.Contains(lng, lat) {
			*p = s.spawn(true)
			continue
		}

		if s.projector != nil {
			x, y := s.projector.Project(p.Lat, p.Lng)
			p.LastScreen = ScreenPoint{X: x, Y: y}
			p.HasLast = true
		}
		p.Lng, p.Lat = lng, lat
	}
}

// curvature bends headings so both drift directions trace the same
// channel line: rising toward the east across the western half and falling
// across the eastern half. Ebb runs it northeast then southeast; flood runs
// it back northwest then southwest.
func (s *Simulator) curvature(lng float64) float64 {
	width := s.bounds.MaxLng - s.bounds.MinLng
	if width <= 0 {
		return 0
	}
	t := (lng - s.bounds.MinLng) / width
	return s.opts.CurveAmplitude * math.Cos(math.Pi*t)
}

// baseAngle is east for ebb, west for flood, random for slack water
func (s *Simulator) baseAngle() float64 {
	switch s.direction {
	case models.Southward:
		return 0
	case models.Northward:
		return math.Pi
	default:
		return s.rng.Float64() * 2 * math.Pi
	}
}

// spawn places a particle at a random water point. After SpawnAttempts
// misses the last candidate is used anyway. Pre-aged particles start part
// way through their life so respawns do not pulse in step.
func (s *Simulator) spawn(preAged bool) Particle {
	var lng, lat float64
	for attempt := 0; attempt < s.opts.SpawnAttempts; attempt++ {
		lng = s.bounds.MinLng + s.rng.Float64()*(s.bounds.MaxLng-s.bounds.MinLng)
		lat = s.bounds.MinLat + s.rng.Float64()*(s.bounds.MaxLat-s.bounds.MinLat)
		if s.mask.Contains(lng, lat) {
			break
		}
	}

	lifespan := s.opts.MinLifespan
	if spread := s.opts.MaxLifespan - s.opts.MinLifespan; spread > 0 {
		lifespan += s.rng.Intn(spread + 1)
	}

	age := 0
	if preAged {
		age = s.rng.Intn(lifespan/3 + 1)
	}

	variance := 1 + (s.rng.Float64()*2-1)*s.opts.SpeedJitter

	return Particle{
		Lat:      lat,
		Lng:      lng,
		Speed:    s.baseSpeed * variance,
		Opacity:  fadeOpacity(age, lifespan, s.opts.FadeTicks),
		Age:      age,
		Lifespan: lifespan,
		heading:  s.baseAngle() + (s.rng.Float64()*2-1)*s.opts.HeadingJitter,
	}
}

// Particles returns a copy of the population as of the last Tick
func (s *Simulator) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Len returns the population size fixed by the last Configure
func (s *Simulator) Len() int {
	return len(s.particles)
}

// Regime returns the direction and strength of the last Configure
func (s *Simulator) Regime() (models.Direction, models.Strength) {
	return s.direction, s.strength
}

// Ticks returns the number of ticks run since New
func (s *Simulator) Ticks() int {
	return s.ticks
}

// Stats summarizes the current population
type Stats struct {
	Count       int
	MeanSpeed   float64
	MeanOpacity float64
}

// Stats returns population averages for status display
func (s *Simulator) Stats() Stats {
	if len(s.particles) == 0 {
		return Stats{}
	}
	speeds := make([]float64, len(s.particles))
	opacities := make([]float64, len(s.particles))
	for i, p := range s.particles {
		speeds[i] = p.Speed * s.dampening
		opacities[i] = p.Opacity
	}
	return Stats{
		Count:       len(s.particles),
		MeanSpeed:   stat.Mean(speeds, nil),
		MeanOpacity: stat.Mean(opacities, nil),
	}
}
