package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ngmaloney/strait-current/internal/tidedata"
	"github.com/spf13/viper"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}

	if cfg.Tide.Provider != tidedata.ProviderProxy {
		t.Errorf("Tide.Provider = %q, want %q", cfg.Tide.Provider, tidedata.ProviderProxy)
	}
	if cfg.Tide.Timeout != 30*time.Second {
		t.Errorf("Tide.Timeout = %v, want 30s", cfg.Tide.Timeout)
	}
	if cfg.FPS != 20 {
		t.Errorf("FPS = %d, want 20", cfg.FPS)
	}
	if cfg.ReferenceHour != 12 {
		t.Errorf("ReferenceHour = %d, want 12", cfg.ReferenceHour)
	}
	if cfg.Refresh != time.Minute {
		t.Errorf("Refresh = %v, want 1m", cfg.Refresh)
	}
	if cfg.Sim.StrongCount != 400 || cfg.Sim.SpawnAttempts != 35 {
		t.Errorf("Sim = %+v, want defaults", cfg.Sim)
	}
}

func TestFromViper_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
tide:
  provider: noaa
  station: "9447130"
sim:
  fps: 30
  population:
    strong: 120
estimate:
  reference_hour: 9
  refresh: 30s
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}
	if cfg.Tide.Provider != "noaa" || cfg.Tide.Station != "9447130" {
		t.Errorf("Tide = %+v", cfg.Tide)
	}
	if cfg.FPS != 30 || cfg.Sim.StrongCount != 120 {
		t.Errorf("FPS = %d, StrongCount = %d", cfg.FPS, cfg.Sim.StrongCount)
	}
	if cfg.Sim.MediumCount != 280 {
		t.Errorf("MediumCount = %d, want default 280", cfg.Sim.MediumCount)
	}
	if cfg.ReferenceHour != 9 || cfg.Refresh != 30*time.Second {
		t.Errorf("ReferenceHour = %d, Refresh = %v", cfg.ReferenceHour, cfg.Refresh)
	}
}

func TestFromViper_Validation(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{"sim.fps", 0},
		{"sim.fps", 500},
		{"estimate.reference_hour", 24},
		{"estimate.refresh", "0s"},
	}

	for _, tt := range tests {
		v := viper.New()
		SetDefaults(v)
		v.Set(tt.key, tt.value)
		if _, err := FromViper(v); err == nil {
			t.Errorf("%s = %v: expected validation error", tt.key, tt.value)
		}
	}
}

func TestLoadMask(t *testing.T) {
	m, err := Config{}.LoadMask()
	if err != nil {
		t.Fatalf("LoadMask() default error = %v", err)
	}
	if len(m.Polygons()) != 3 {
		t.Errorf("default mask has %d polygons, want 3", len(m.Polygons()))
	}

	if _, err := (Config{WaterPolygons: filepath.Join(t.TempDir(), "missing.yaml")}).LoadMask(); err == nil {
		t.Error("expected error for missing polygon file")
	}
}
