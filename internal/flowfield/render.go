package flowfield

import "github.com/ngmaloney/strait-current/internal/watermask"

// Segment is one trail stroke from a particle's previous screen position
// to its current one
type Segment struct {
	From, To ScreenPoint
	Opacity  float64
}

// Head is a particle's current screen position
type Head struct {
	At      ScreenPoint
	Opacity float64
}

// Frame is everything a renderer needs to draw one tick
type Frame struct {
	Segments []Segment
	Heads    []Head
}

// BuildFrame projects a particle snapshot. Particles that have not moved
// since spawning only contribute a head.
func BuildFrame(particles []Particle, proj Projector) Frame {
	f := Frame{
		Segments: make([]Segment, 0, len(particles)),
		Heads:    make([]Head, 0, len(particles)),
	}
	if proj == nil {
		return f
	}
	for _, p := range particles {
		if p.Opacity <= 0 {
			continue
		}
		x, y := proj.Project(p.Lat, p.Lng)
		at := ScreenPoint{X: x, Y: y}
		if p.HasLast {
			f.Segments = append(f.Segments, Segment{From: p.LastScreen, To: at, Opacity: p.Opacity})
		}
		f.Heads = append(f.Heads, Head{At: at, Opacity: p.Opacity})
	}
	return f
}

// BoxProjector linearly maps a geographic box onto a Width x Height surface
// with y growing downward
type BoxProjector struct {
	Box           watermask.Box
	Width, Height float64
}

// NewBoxProjector fits box to a surface of the given size
func NewBoxProjector(box watermask.Box, width, height int) BoxProjector {
	return BoxProjector{Box: box, Width: float64(width), Height: float64(height)}
}

// Project implements Projector
func (p BoxProjector) Project(lat, lng float64) (float64, float64) {
	w := p.Box.MaxLng - p.Box.MinLng
	h := p.Box.MaxLat - p.Box.MinLat
	if w <= 0 || h <= 0 || p.Width <= 0 || p.Height <= 0 {
		return 0, 0
	}
	x := (lng - p.Box.MinLng) / w * (p.Width - 1)
	y := (p.Box.MaxLat - lat) / h * (p.Height - 1)
	return x, y
}

// Unproject is the inverse of Project
func (p BoxProjector) Unproject(x, y float64) (lat, lng float64) {
	if p.Width <= 1 || p.Height <= 1 {
		return p.Box.MaxLat, p.Box.MinLng
	}
	lng = p.Box.MinLng + x/(p.Width-1)*(p.Box.MaxLng-p.Box.MinLng)
	lat = p.Box.MaxLat - y/(p.Height-1)*(p.Box.MaxLat-p.Box.MinLat)
	return lat, lng
}
