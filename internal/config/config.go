// Package config maps viper settings onto the typed configuration used by
// the rest of the program.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ngmaloney/strait-current/internal/database"
	"github.com/ngmaloney/strait-current/internal/flowfield"
	"github.com/ngmaloney/strait-current/internal/tidedata"
	"github.com/ngmaloney/strait-current/internal/watermask"
	"github.com/spf13/viper"
)

// Config holds every runtime setting
type Config struct {
	Tide tidedata.Config

	WaterPolygons  string // YAML polygon file; empty uses the built-in strait
	WaterShapefile string // takes precedence over WaterPolygons

	Sim flowfield.Options
	FPS int

	ReferenceHour int           // estimate hour for dates other than today
	Refresh       time.Duration // estimate cadence for today

	DBPath  string
	LogFile string
}

// SetDefaults registers a default for every key
func SetDefaults(v *viper.Viper) {
	sim := flowfield.DefaultOptions()

	v.SetDefault("tide.provider", tidedata.ProviderProxy)
	v.SetDefault("tide.base_url", "")
	v.SetDefault("tide.station", "strait")
	v.SetDefault("tide.timeout", 30*time.Second)

	v.SetDefault("water.polygons", "")
	v.SetDefault("water.shapefile", "")

	v.SetDefault("sim.fps", 20)
	v.SetDefault("sim.population.strong", sim.StrongCount)
	v.SetDefault("sim.population.medium", sim.MediumCount)
	v.SetDefault("sim.population.weak", sim.WeakCount)
	v.SetDefault("sim.population.transitional", sim.TransitionalCount)
	v.SetDefault("sim.speed.strong", sim.StrongSpeed)
	v.SetDefault("sim.speed.medium", sim.MediumSpeed)
	v.SetDefault("sim.speed.weak", sim.WeakSpeed)
	v.SetDefault("sim.speed.jitter", sim.SpeedJitter)
	v.SetDefault("sim.lifespan.min", sim.MinLifespan)
	v.SetDefault("sim.lifespan.max", sim.MaxLifespan)
	v.SetDefault("sim.fade_ticks", sim.FadeTicks)
	v.SetDefault("sim.spawn_attempts", sim.SpawnAttempts)
	v.SetDefault("sim.dampening.slack", sim.SlackDampening)
	v.SetDefault("sim.curve", sim.CurveAmplitude)
	v.SetDefault("sim.seed", 0)

	v.SetDefault("estimate.reference_hour", 12)
	v.SetDefault("estimate.refresh", time.Minute)

	v.SetDefault("db.path", database.DBPath())
	v.SetDefault("log.file", filepath.Join("data", "strait-current.log"))
}

// FromViper reads the typed configuration
func FromViper(v *viper.Viper) (Config, error) {
	sim := flowfield.DefaultOptions()
	sim.StrongCount = v.GetInt("sim.population.strong")
	sim.MediumCount = v.GetInt("sim.population.medium")
	sim.WeakCount = v.GetInt("sim.population.weak")
	sim.TransitionalCount = v.GetInt("sim.population.transitional")
	sim.StrongSpeed = v.GetFloat64("sim.speed.strong")
	sim.MediumSpeed = v.GetFloat64("sim.speed.medium")
	sim.WeakSpeed = v.GetFloat64("sim.speed.weak")
	sim.SpeedJitter = v.GetFloat64("sim.speed.jitter")
	sim.MinLifespan = v.GetInt("sim.lifespan.min")
	sim.MaxLifespan = v.GetInt("sim.lifespan.max")
	sim.FadeTicks = v.GetInt("sim.fade_ticks")
	sim.SpawnAttempts = v.GetInt("sim.spawn_attempts")
	sim.SlackDampening = v.GetFloat64("sim.dampening.slack")
	sim.CurveAmplitude = v.GetFloat64("sim.curve")
	sim.Seed = v.GetInt64("sim.seed")

	cfg := Config{
		Tide: tidedata.Config{
			Provider: v.GetString("tide.provider"),
			BaseURL:  v.GetString("tide.base_url"),
			Station:  v.GetString("tide.station"),
			Timeout:  v.GetDuration("tide.timeout"),
		},
		WaterPolygons:  v.GetString("water.polygons"),
		WaterShapefile: v.GetString("water.shapefile"),
		Sim:            sim,
		FPS:            v.GetInt("sim.fps"),
		ReferenceHour:  v.GetInt("estimate.reference_hour"),
		Refresh:        v.GetDuration("estimate.refresh"),
		DBPath:         v.GetString("db.path"),
		LogFile:        v.GetString("log.file"),
	}

	if cfg.FPS <= 0 || cfg.FPS > 120 {
		return Config{}, fmt.Errorf("sim.fps must be between 1 and 120, got %d", cfg.FPS)
	}
	if cfg.ReferenceHour < 0 || cfg.ReferenceHour > 23 {
		return Config{}, fmt.Errorf("estimate.reference_hour must be 0-23, got %d", cfg.ReferenceHour)
	}
	if cfg.Refresh <= 0 {
		return Config{}, fmt.Errorf("estimate.refresh must be positive, got %s", cfg.Refresh)
	}
	return cfg, nil
}

// LoadMask returns the water mask named by the configuration
func (c Config) LoadMask() (*watermask.Mask, error) {
	switch {
	case c.WaterShapefile != "":
		return watermask.LoadShapefile(c.WaterShapefile)
	case c.WaterPolygons != "":
		return watermask.LoadYAML(c.WaterPolygons)
	default:
		return watermask.Default(), nil
	}
}
