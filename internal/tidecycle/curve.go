package tidecycle

import (
	"math"

	"github.com/ngmaloney/strait-current/internal/models"
)

// HeightAt interpolates the water level in centimeters at minuteOfDay with
// a half cosine between the straddling extrema. It is for display only.
// The second result is false when the day has no usable events.
func HeightAt(events []models.TideEvent, minuteOfDay int) (float64, bool) {
	c, ok := Straddle(events, minuteOfDay)
	if !ok {
		return 0, false
	}
	a, b := float64(c.Prev.Height), float64(c.Next.Height)
	w := (1 - math.Cos(math.Pi*c.Progress)) / 2
	return a + (b-a)*w, true
}
