package catchlog

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ngmaloney/strait-current/internal/database"
	"github.com/ngmaloney/strait-current/internal/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db)
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	caught := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	created, err := repo.Create(models.CatchEntry{
		CaughtAt:  caught,
		Species:   "  sea bass ",
		Spot:      "north pier",
		LengthCM:  54,
		Notes:     "on a lure",
		Direction: models.Southward,
		Strength:  models.Strong,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create() did not assign an ID")
	}
	if created.Species != "sea bass" {
		t.Errorf("Species = %q, want trimmed 'sea bass'", created.Species)
	}

	got, err := repo.Get(created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Species != "sea bass" || got.Spot != "north pier" || got.LengthCM != 54 || got.Notes != "on a lure" {
		t.Errorf("Get() = %+v, fields did not round-trip", got)
	}
	if got.Direction != models.Southward || got.Strength != models.Strong {
		t.Errorf("regime = %v/%v, want southward/strong", got.Direction, got.Strength)
	}
	if !got.CaughtAt.Equal(caught) {
		t.Errorf("CaughtAt = %v, want %v", got.CaughtAt, caught)
	}
}

func TestRepository_CreateValidation(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.Create(models.CatchEntry{Species: "   "}); err == nil {
		t.Error("expected error for missing species")
	}
}

func TestRepository_CreateDefaults(t *testing.T) {
	repo := newTestRepo(t)
	e, err := repo.Create(models.CatchEntry{Species: "mackerel"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if e.CaughtAt.IsZero() {
		t.Error("CaughtAt should default to now")
	}
	if e.Direction != models.Transitional || e.Strength != models.Weak {
		t.Errorf("regime defaults = %v/%v, want transitional/weak", e.Direction, e.Strength)
	}
}

func TestRepository_GetNotFound(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestRepository_ListOrderAndByDate(t *testing.T) {
	repo := newTestRepo(t)
	loc := time.UTC
	times := []time.Time{
		time.Date(2025, 6, 1, 6, 0, 0, 0, loc),
		time.Date(2025, 6, 1, 18, 0, 0, 0, loc),
		time.Date(2025, 6, 2, 7, 0, 0, 0, loc),
	}
	for i, ts := range times {
		if _, err := repo.Create(models.CatchEntry{Species: "fish", CaughtAt: ts}); err != nil {
			t.Fatalf("Create(%d) error = %v", i, err)
		}
	}

	all, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List() returned %d entries, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CaughtAt.After(all[i-1].CaughtAt) {
			t.Errorf("List() not newest first at %d", i)
		}
	}

	day, err := repo.ListByDate(time.Date(2025, 6, 1, 12, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("ListByDate() error = %v", err)
	}
	if len(day) != 2 {
		t.Errorf("ListByDate() returned %d entries, want 2", len(day))
	}
}

func TestExportCSV(t *testing.T) {
	entries := []models.CatchEntry{
		{
			ID:        "abc",
			CaughtAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			Species:   "sea bass",
			Spot:      "pier",
			LengthCM:  50,
			Direction: models.Northward,
			Strength:  models.Medium,
			Notes:     "dawn, falling light",
		},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, entries); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row:\n%s", len(lines), buf.String())
	}
	if lines[0] != "id,caught_at,species,spot,length_cm,direction,strength,notes" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "2025-06-01T10:00:00Z") || !strings.Contains(lines[1], `"dawn, falling light"`) {
		t.Errorf("row = %q", lines[1])
	}
}
