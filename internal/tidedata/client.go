// Package tidedata fetches one day of raw tide extrema from an upstream source.
package tidedata

import (
	"context"
	"fmt"
	"time"

	"github.com/ngmaloney/strait-current/internal/models"
)

// Client defines the interface for fetching a day of tide extrema
type Client interface {
	// GetDay retrieves the high and low tides for the calendar day of date
	GetDay(ctx context.Context, date time.Time) (*models.RawTideDay, error)
}

// Provider names accepted by NewClient
const (
	ProviderProxy = "proxy"
	ProviderNOAA  = "noaa"
)

// Config selects and parameterizes the upstream source
type Config struct {
	Provider string
	BaseURL  string
	Station  string
	Timeout  time.Duration
}

// NewClient builds the client named by cfg.Provider
func NewClient(cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderProxy, "":
		return NewProxyClient(cfg.BaseURL, cfg.Station, cfg.Timeout), nil
	case ProviderNOAA:
		c := NewNOAAClient(cfg.Station, cfg.Timeout)
		if cfg.BaseURL != "" {
			c.baseURL = cfg.BaseURL
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown tide provider %q", cfg.Provider)
	}
}
