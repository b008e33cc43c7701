package tidedata

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ngmaloney/strait-current/internal/models"
)

// CachedClient serves days from the tide_days table and falls through to
// an upstream client on a miss. Days with no extrema are not cached.
type CachedClient struct {
	db      *sql.DB
	next    Client
	station string
	logger  *slog.Logger
}

// NewCachedClient wraps next with the sqlite cache
func NewCachedClient(db *sql.DB, next Client, station string, logger *slog.Logger) *CachedClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedClient{db: db, next: next, station: station, logger: logger}
}

type cachedDay struct {
	High []models.RawExtremum `json:"high"`
	Low  []models.RawExtremum `json:"low"`
}

// GetDay implements Client
func (c *CachedClient) GetDay(ctx context.Context, date time.Time) (*models.RawTideDay, error) {
	key := date.Format("2006-01-02")

	var payload string
	err := c.db.QueryRowContext(ctx,
		"SELECT payload FROM tide_days WHERE station = ? AND day = ?",
		c.station, key,
	).Scan(&payload)
	switch {
	case err == nil:
		var d cachedDay
		if err := json.Unmarshal([]byte(payload), &d); err == nil {
			return &models.RawTideDay{Date: date, Station: c.station, High: d.High, Low: d.Low}, nil
		}
		c.logger.Warn("discarding corrupt cached tide day", "station", c.station, "day", key)
	case !errors.Is(err, sql.ErrNoRows):
		c.logger.Warn("tide cache lookup failed", "station", c.station, "day", key, "err", err)
	}

	day, err := c.next.GetDay(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(day.High)+len(day.Low) == 0 {
		return day, nil
	}

	data, err := json.Marshal(cachedDay{High: day.High, Low: day.Low})
	if err != nil {
		return nil, fmt.Errorf("encoding tide day: %w", err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO tide_days (station, day, payload, fetched_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(station, day) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at
	`, c.station, key, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		c.logger.Warn("caching tide day failed", "station", c.station, "day", key, "err", err)
	} else {
		c.logger.Info("cached tide day", "station", c.station, "day", key,
			"highs", len(day.High), "lows", len(day.Low))
	}
	return day, nil
}
