package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/huh"
	"github.com/ngmaloney/strait-current/internal/models"
	"github.com/ngmaloney/strait-current/internal/tidecycle"
)

// catchForm collects a catch for the selected date
type catchForm struct {
	form *huh.Form
	date time.Time

	species string
	clock   string
	spot    string
	length  string
	notes   string
}

func newCatchForm(date time.Time, minuteOfDay int) *catchForm {
	f := &catchForm{date: date, clock: models.FormatClock(minuteOfDay)}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Species").
				Value(&f.species).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("species is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time (HH:MM)").
				Value(&f.clock).
				Validate(func(s string) error {
					if models.ParseClock(strings.TrimSpace(s)) < 0 {
						return errors.New("use 24h HH:MM")
					}
					return nil
				}),
			huh.NewInput().
				Title("Spot").
				Value(&f.spot),
			huh.NewInput().
				Title("Length (cm)").
				Value(&f.length).
				Validate(func(s string) error {
					if s = strings.TrimSpace(s); s == "" {
						return nil
					}
					if n, err := strconv.Atoi(s); err != nil || n < 0 {
						return errors.New("whole centimeters")
					}
					return nil
				}),
			huh.NewText().
				Title("Notes").
				Value(&f.notes),
		),
	).WithShowHelp(false)
	return f
}

// entry builds the catch stamped with the flow estimate at its catch time
func (f *catchForm) entry(events []models.TideEvent) models.CatchEntry {
	minute := models.ParseClock(strings.TrimSpace(f.clock))
	if minute < 0 {
		minute = 0
	}
	length, _ := strconv.Atoi(strings.TrimSpace(f.length))
	est := tidecycle.EstimateFlowAt(events, minute)

	return models.CatchEntry{
		CaughtAt:  atMinute(f.date, minute),
		Species:   strings.TrimSpace(f.species),
		Spot:      strings.TrimSpace(f.spot),
		LengthCM:  length,
		Notes:     strings.TrimSpace(f.notes),
		Direction: est.Direction,
		Strength:  est.Strength,
	}
}

// atMinute is the wall clock time minuteOfDay on date's calendar day
func atMinute(date time.Time, minuteOfDay int) time.Time {
	y, mo, d := date.Date()
	return time.Date(y, mo, d, minuteOfDay/60, minuteOfDay%60, 0, 0, date.Location())
}

// catchItem adapts a CatchEntry to the bubbles list
type catchItem struct {
	entry models.CatchEntry
}

func (i catchItem) Title() string {
	title := fmt.Sprintf("%s  %s", i.entry.CaughtAt.Format("15:04"), i.entry.Species)
	if i.entry.LengthCM > 0 {
		title += fmt.Sprintf(" (%d cm)", i.entry.LengthCM)
	}
	return title
}

func (i catchItem) Description() string {
	parts := []string{string(i.entry.Direction) + " " + string(i.entry.Strength)}
	if i.entry.Spot != "" {
		parts = append(parts, i.entry.Spot)
	}
	if i.entry.Notes != "" {
		parts = append(parts, i.entry.Notes)
	}
	return strings.Join(parts, " · ")
}

func (i catchItem) FilterValue() string {
	return i.entry.Species + " " + i.entry.Spot
}

func catchItems(entries []models.CatchEntry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = catchItem{entry: e}
	}
	return items
}
