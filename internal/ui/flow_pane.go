package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/ngmaloney/strait-current/internal/flowfield"
	"github.com/ngmaloney/strait-current/internal/models"
)

// renderFlowPane draws the water mask and the current particle snapshot
func (m Model) renderFlowPane() string {
	w, h := m.flowSize()
	c := canvas.New(w, h)

	for y := 0; y < h && y < len(m.terrain); y++ {
		for x := 0; x < w && x < len(m.terrain[y]); x++ {
			p := canvas.Point{X: x, Y: y}
			if m.terrain[y][x] {
				c.SetCell(p, canvas.NewCellWithStyle(' ', waterStyle))
			} else {
				c.SetCell(p, canvas.NewCellWithStyle('░', landStyle))
			}
		}
	}

	dir, _ := m.sim.Regime()
	frame := flowfield.BuildFrame(m.sim.Particles(), m.projector)
	for _, s := range frame.Segments {
		from, ok := cellOf(s.From, w, h)
		if !ok {
			continue
		}
		to, _ := cellOf(s.To, w, h)
		if from == to {
			continue
		}
		c.SetCell(from, canvas.NewCellWithStyle(trailRune(s), particleStyle(dir, s.Opacity/2)))
	}
	for _, hd := range frame.Heads {
		p, ok := cellOf(hd.At, w, h)
		if !ok {
			continue
		}
		c.SetCell(p, canvas.NewCellWithStyle(headRune(hd.Opacity), particleStyle(dir, hd.Opacity)))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Current"))
	b.WriteString("  ")
	b.WriteString(flowArrow(dir))
	if m.paused {
		b.WriteString(mutedStyle.Render("  paused"))
	}
	b.WriteString("\n")
	b.WriteString(c.View())
	return paneStyle.Render(b.String())
}

// cellOf rounds a screen point to a canvas cell
func cellOf(sp flowfield.ScreenPoint, w, h int) (canvas.Point, bool) {
	x := int(math.Round(sp.X))
	y := int(math.Round(sp.Y))
	if x < 0 || y < 0 || x >= w || y >= h {
		return canvas.Point{}, false
	}
	return canvas.Point{X: x, Y: y}, true
}

// trailRune picks a line glyph for the segment heading. Screen y grows
// downward.
func trailRune(s flowfield.Segment) rune {
	dx := s.To.X - s.From.X
	dy := s.To.Y - s.From.Y
	switch {
	case math.Abs(dx) >= 2*math.Abs(dy):
		return '─'
	case math.Abs(dy) >= 2*math.Abs(dx):
		return '│'
	case dx*dy > 0:
		return '╲'
	default:
		return '╱'
	}
}

func headRune(opacity float64) rune {
	switch {
	case opacity > 0.66:
		return '•'
	case opacity > 0.33:
		return '∙'
	default:
		return '·'
	}
}

func flowArrow(dir models.Direction) string {
	switch dir {
	case models.Southward:
		return particleStyle(dir, 1).Render("→ ebb")
	case models.Northward:
		return particleStyle(dir, 1).Render("← flood")
	default:
		return particleStyle(dir, 1).Render("≈ slack")
	}
}

// renderStatus summarizes the estimate and the simulator population
func (m Model) renderStatus() string {
	var b strings.Builder
	b.WriteString(strengthStyle(m.estimate.Strength).Render(m.estimate.Label()))
	b.WriteString("  ")
	b.WriteString(valueStyle.Render(m.estimate.Description))
	b.WriteString("\n")

	if m.hasCycle {
		b.WriteString(labelStyle.Render("Cycle "))
		b.WriteString(m.progress.ViewAs(m.cycle.Progress))
		b.WriteString(fmt.Sprintf(" %3.0f%%  ", m.cycle.Progress*100))
	}
	st := m.sim.Stats()
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d particles  speed %.5f°/tick  opacity %.2f",
		st.Count, st.MeanSpeed, st.MeanOpacity)))
	return b.String()
}
