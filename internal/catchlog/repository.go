// Package catchlog persists user catch entries in the shared database.
package catchlog

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ngmaloney/strait-current/internal/models"
)

// ErrNotFound is returned when no entry has the requested ID
var ErrNotFound = errors.New("catch entry not found")

const timeLayout = time.RFC3339

// Repository handles persistence for catch entries
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository over an open database whose schema has
// been ensured
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new entry, assigning its ID and CreatedAt
func (r *Repository) Create(e models.CatchEntry) (models.CatchEntry, error) {
	e.Species = strings.TrimSpace(e.Species)
	if e.Species == "" {
		return models.CatchEntry{}, errors.New("species required")
	}
	if e.CaughtAt.IsZero() {
		e.CaughtAt = time.Now()
	}
	if e.Direction == "" {
		e.Direction = models.Transitional
	}
	if e.Strength == "" {
		e.Strength = models.Weak
	}
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO catch_logs (id, caught_at, species, spot, length_cm, notes, direction, strength, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		e.ID,
		e.CaughtAt.UTC().Format(timeLayout),
		e.Species,
		strings.TrimSpace(e.Spot),
		e.LengthCM,
		e.Notes,
		string(e.Direction),
		string(e.Strength),
		e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return models.CatchEntry{}, fmt.Errorf("inserting catch entry: %w", err)
	}
	return e, nil
}

// Get retrieves a single entry by ID
func (r *Repository) Get(id string) (models.CatchEntry, error) {
	row := r.db.QueryRow(selectColumns+" WHERE id = ?", id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CatchEntry{}, ErrNotFound
	}
	if err != nil {
		return models.CatchEntry{}, fmt.Errorf("querying catch entry: %w", err)
	}
	return e, nil
}

// List returns every entry, most recent catch first
func (r *Repository) List() ([]models.CatchEntry, error) {
	return r.query(selectColumns + " ORDER BY caught_at DESC")
}

// ListByDate returns the entries caught on the local calendar day of date,
// most recent first
func (r *Repository) ListByDate(date time.Time) ([]models.CatchEntry, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)
	return r.query(selectColumns+" WHERE caught_at >= ? AND caught_at < ? ORDER BY caught_at DESC",
		start.UTC().Format(timeLayout), end.UTC().Format(timeLayout))
}

const selectColumns = `SELECT id, caught_at, species, spot, length_cm, notes, direction, strength, created_at FROM catch_logs`

func (r *Repository) query(q string, args ...any) ([]models.CatchEntry, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying catch entries: %w", err)
	}
	defer rows.Close()

	var entries []models.CatchEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading catch entries: %w", err)
	}
	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (models.CatchEntry, error) {
	var (
		e                   models.CatchEntry
		caughtAt, createdAt string
		spot, notes         sql.NullString
		length              sql.NullInt64
		direction, strength string
	)
	if err := s.Scan(&e.ID, &caughtAt, &e.Species, &spot, &length, &notes, &direction, &strength, &createdAt); err != nil {
		return models.CatchEntry{}, err
	}
	e.Spot = spot.String
	e.Notes = notes.String
	e.LengthCM = int(length.Int64)
	e.Direction = models.Direction(direction)
	e.Strength = models.Strength(strength)
	if t, err := time.Parse(timeLayout, caughtAt); err == nil {
		e.CaughtAt = t.Local()
	}
	if t, err := time.Parse(timeLayout, createdAt); err == nil {
		e.CreatedAt = t.Local()
	}
	return e, nil
}
