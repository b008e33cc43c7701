package flowfield

// ScreenPoint is a position on the drawing surface
type ScreenPoint struct {
	X, Y float64
}

// Particle is one tracer in the flow field
type Particle struct {
	Lat, Lng float64
	Speed    float64 // degrees per tick before dampening
	Opacity  float64 // 0..1
	Age      int
	Lifespan int

	// LastScreen is the projected position before the most recent move.
	// HasLast is false for a particle that has not moved since spawning.
	LastScreen ScreenPoint
	HasLast    bool

	heading float64
}

// fadeOpacity is a trapezoid over the particle's life: a linear ramp up
// over the first fade ticks, a plateau at 1, and a ramp down over the last
// fade ticks before lifespan.
func fadeOpacity(age, lifespan, fade int) float64 {
	if age <= 0 || age >= lifespan {
		return 0
	}
	in := float64(age) / float64(fade)
	out := float64(lifespan-age) / float64(fade)
	o := 1.0
	if in < o {
		o = in
	}
	if out < o {
		o = out
	}
	if o < 0 {
		return 0
	}
	return o
}
