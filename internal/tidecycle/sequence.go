// Package tidecycle turns a day's sparse tide extrema into a continuous
// estimate of current direction and strength.
package tidecycle

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ngmaloney/strait-current/internal/models"
)

// BuildEventSequence merges the raw high and low lists into one sequence
// sorted by time of day. Entries carrying the no-data sentinel, or any time
// that is not a valid "HH:MM", are dropped.
func BuildEventSequence(highs, lows []models.RawExtremum) []models.TideEvent {
	events := make([]models.TideEvent, 0, len(highs)+len(lows))
	events = appendTagged(events, highs, models.TideHigh)
	events = appendTagged(events, lows, models.TideLow)

	// HH:MM is zero padded, so string order is time order
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
	return events
}

func appendTagged(dst []models.TideEvent, raw []models.RawExtremum, kind models.TideType) []models.TideEvent {
	for _, r := range raw {
		t := strings.TrimSpace(r.Time)
		if t == models.NoDataTime || models.ParseClock(t) < 0 {
			continue
		}
		dst = append(dst, models.TideEvent{
			Time:   t,
			Height: parseHeight(r.CM),
			Type:   kind,
		})
	}
	return dst
}

// parseHeight reads a centimeter height. Decimal values are rounded and
// anything unparseable counts as 0.
func parseHeight(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(math.Round(f))
	}
	return 0
}
