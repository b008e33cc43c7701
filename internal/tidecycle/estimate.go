package tidecycle

import (
	"fmt"

	"github.com/ngmaloney/strait-current/internal/models"
)

const minutesPerDay = 24 * 60

// Strength bucket edges on cycle progress
const (
	weakEdge   = 0.15
	strongEdge = 0.35
)

// Cycle is the pair of extrema straddling a query instant
type Cycle struct {
	Prev, Next       models.TideEvent
	PrevMin, NextMin int // minutes from the query day's midnight; may fall outside 0-1440
	Progress         float64
	Wrapped          bool // one boundary was synthesized from the other end of the day
}

// Straddle finds the extrema around minuteOfDay. When the query falls
// before the first or after the last event, the missing side is taken from
// the opposite end of the day with its type flipped. It returns false only
// when no event has a usable time.
func Straddle(events []models.TideEvent, minuteOfDay int) (Cycle, bool) {
	var (
		prev, next       *models.TideEvent
		prevMin, nextMin int
		first, last      *models.TideEvent
		firstMin         int
		lastMin          int
	)

	for i := range events {
		e := &events[i]
		m := e.Minutes()
		if m < 0 {
			continue
		}
		if first == nil || m < firstMin {
			first, firstMin = e, m
		}
		if last == nil || m >= lastMin {
			last, lastMin = e, m
		}
		if m <= minuteOfDay && (prev == nil || m >= prevMin) {
			prev, prevMin = e, m
		}
		if m > minuteOfDay && (next == nil || m < nextMin) {
			next, nextMin = e, m
		}
	}

	if first == nil {
		return Cycle{}, false
	}

	c := Cycle{}
	if prev != nil {
		c.Prev, c.PrevMin = *prev, prevMin
	} else {
		c.Prev = models.TideEvent{Time: last.Time, Height: last.Height, Type: last.Type.Opposite()}
		c.PrevMin = lastMin - minutesPerDay
		c.Wrapped = true
	}
	if next != nil {
		c.Next, c.NextMin = *next, nextMin
	} else {
		c.Next = models.TideEvent{Time: first.Time, Height: first.Height, Type: first.Type.Opposite()}
		c.NextMin = firstMin + minutesPerDay
		c.Wrapped = true
	}

	c.Progress = 0.5
	if span := c.NextMin - c.PrevMin; span > 0 {
		c.Progress = clamp01(float64(minuteOfDay-c.PrevMin) / float64(span))
	}
	return c, true
}

// EstimateFlow estimates the current at the top of hourOfDay
func EstimateFlow(events []models.TideEvent, hourOfDay int) models.FlowEstimate {
	return EstimateFlowAt(events, hourOfDay*60)
}

// EstimateFlowAt estimates the current at minuteOfDay. It never fails: an
// empty day yields a weak transitional "no data" estimate.
func EstimateFlowAt(events []models.TideEvent, minuteOfDay int) models.FlowEstimate {
	if len(events) == 0 {
		return models.FlowEstimate{
			Direction:   models.Transitional,
			Strength:    models.Weak,
			Description: "no data",
		}
	}

	c, ok := Straddle(events, minuteOfDay)
	if !ok {
		return models.FlowEstimate{
			Direction:   models.Transitional,
			Strength:    models.Weak,
			Description: "cannot estimate",
		}
	}

	return models.FlowEstimate{
		Direction:   DirectionAfter(c.Prev.Type),
		Strength:    StrengthAt(c.Progress),
		Description: describe(c),
	}
}

// DirectionAfter maps the preceding extremum to a flow direction: ebb
// (southward) after a high, flood (northward) after a low.
func DirectionAfter(prev models.TideType) models.Direction {
	if prev == models.TideHigh {
		return models.Southward
	}
	return models.Northward
}

// StrengthAt buckets cycle progress. Strength is symmetric around
// mid-cycle and weakest at the turning points.
func StrengthAt(progress float64) models.Strength {
	switch {
	case progress < weakEdge || progress > 1-weakEdge:
		return models.Weak
	case progress < strongEdge || progress > 1-strongEdge:
		return models.Medium
	default:
		return models.Strong
	}
}

func describe(c Cycle) string {
	diff := c.Next.Height - c.Prev.Height
	if diff < 0 {
		diff = -diff
	}
	prevTime, nextTime := c.Prev.Time, c.Next.Time
	if c.Wrapped {
		if c.PrevMin < 0 {
			prevTime += " (prev day)"
		} else {
			nextTime += " (next day)"
		}
	}
	return fmt.Sprintf("%s tide %s -> %s tide %s, range %dcm",
		c.Prev.Type, prevTime, c.Next.Type, nextTime, diff)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
