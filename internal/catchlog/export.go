package catchlog

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/ngmaloney/strait-current/internal/models"
)

type csvRow struct {
	ID        string `csv:"id"`
	CaughtAt  string `csv:"caught_at"`
	Species   string `csv:"species"`
	Spot      string `csv:"spot"`
	LengthCM  int    `csv:"length_cm"`
	Direction string `csv:"direction"`
	Strength  string `csv:"strength"`
	Notes     string `csv:"notes"`
}

// ExportCSV writes entries as CSV with a header row
func ExportCSV(w io.Writer, entries []models.CatchEntry) error {
	rows := make([]*csvRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, &csvRow{
			ID:        e.ID,
			CaughtAt:  e.CaughtAt.Format(time.RFC3339),
			Species:   e.Species,
			Spot:      e.Spot,
			LengthCM:  e.LengthCM,
			Direction: string(e.Direction),
			Strength:  string(e.Strength),
			Notes:     e.Notes,
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
