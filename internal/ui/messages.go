package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/strait-current/internal/catchlog"
	"github.com/ngmaloney/strait-current/internal/models"
	"github.com/ngmaloney/strait-current/internal/tidedata"
)

// Message types for async operations

// frameMsg drives one simulator tick. gen guards against stale loops
// after the animation is stopped and restarted.
type frameMsg struct {
	gen int
}

// clockMsg triggers a re-estimate for the live date
type clockMsg time.Time

// tideDayMsg is sent when a day of tide extrema has been fetched
type tideDayMsg struct {
	date time.Time
	day  *models.RawTideDay
	err  error
}

// catchSavedMsg is sent when a catch entry has been stored
type catchSavedMsg struct {
	entry models.CatchEntry
}

// catchesLoadedMsg is sent when the catch list for a date has been read
type catchesLoadedMsg struct {
	date    time.Time
	entries []models.CatchEntry
}

func frameTick(fps, gen int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func clockTick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

// fetchTideDay fetches tide data in the background
func fetchTideDay(client tidedata.Client, date time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		day, err := client.GetDay(ctx, date)
		return tideDayMsg{date: date, day: day, err: err}
	}
}

func saveCatch(repo *catchlog.Repository, e models.CatchEntry) tea.Cmd {
	return func() tea.Msg {
		saved, err := repo.Create(e)
		if err != nil {
			return errMsg{err: fmt.Errorf("saving catch: %w", err)}
		}
		return catchSavedMsg{entry: saved}
	}
}

func loadCatches(repo *catchlog.Repository, date time.Time) tea.Cmd {
	return func() tea.Msg {
		entries, err := repo.ListByDate(date)
		if err != nil {
			return errMsg{err: fmt.Errorf("loading catches: %w", err)}
		}
		return catchesLoadedMsg{date: date, entries: entries}
	}
}
