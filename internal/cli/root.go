// Package cli wires configuration, storage, and the tide client into the
// cobra command tree.
package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/strait-current/internal/applog"
	"github.com/ngmaloney/strait-current/internal/catchlog"
	"github.com/ngmaloney/strait-current/internal/config"
	"github.com/ngmaloney/strait-current/internal/database"
	"github.com/ngmaloney/strait-current/internal/tidedata"
	"github.com/ngmaloney/strait-current/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by every subcommand
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	now     func() time.Time
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with a fresh viper instance
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{v: viper.New(), now: time.Now})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "strait-current",
		Short: "Estimate and watch tidal current through a strait",
		Long: `Derives the direction and strength of tidal current from a day's
high and low tides and animates it as a particle flow over the strait.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.strait-current.yaml)")

	root.AddCommand(
		newEstimateCmd(a),
		newCatchCmd(a),
		newMaskCmd(a),
	)
	return root
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig() error {
	config.SetDefaults(a.v)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".strait-current")
	}

	a.v.SetEnvPrefix("STRAIT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// openStore opens the sqlite database. Failures are logged and yield nil so
// the caller can run without catch logging and caching.
func (a *app) openStore(logger *slog.Logger) *sql.DB {
	db, err := database.Open(a.cfg.DBPath)
	if err != nil {
		logger.Warn("database unavailable", "path", a.cfg.DBPath, "err", err)
		return nil
	}
	return db
}

// tideClient builds the configured client, cached through db when present
func (a *app) tideClient(db *sql.DB, logger *slog.Logger) (tidedata.Client, error) {
	client, err := tidedata.NewClient(a.cfg.Tide)
	if err != nil {
		return nil, err
	}
	if db == nil {
		return client, nil
	}
	return tidedata.NewCachedClient(db, client, a.cfg.Tide.Station, logger), nil
}

func (a *app) runTUI() error {
	logger, closeLog, err := applog.Open(a.cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	mask, err := a.cfg.LoadMask()
	if err != nil {
		return fmt.Errorf("loading water mask: %w", err)
	}

	db := a.openStore(logger)
	var catches *catchlog.Repository
	if db != nil {
		defer db.Close()
		catches = catchlog.NewRepository(db)
	}

	client, err := a.tideClient(db, logger)
	if err != nil {
		return err
	}

	logger.Info("starting",
		"provider", a.cfg.Tide.Provider,
		"station", a.cfg.Tide.Station,
		"polygons", len(mask.Polygons()))

	model := ui.NewModel(ui.Options{
		Client:        client,
		Catches:       catches,
		Mask:          mask,
		Sim:           a.cfg.Sim,
		FPS:           a.cfg.FPS,
		Refresh:       a.cfg.Refresh,
		ReferenceHour: a.cfg.ReferenceHour,
		Now:           a.now,
		Logger:        logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}

// parseDate reads a YYYY-MM-DD flag in local time; empty means today
func (a *app) parseDate(s string) (time.Time, error) {
	if s == "" {
		now := a.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
