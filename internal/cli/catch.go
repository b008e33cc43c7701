package cli

import (
	"fmt"
	"os"

	"github.com/ngmaloney/strait-current/internal/catchlog"
	"github.com/ngmaloney/strait-current/internal/database"
	"github.com/ngmaloney/strait-current/internal/models"
	"github.com/spf13/cobra"
)

func newCatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catch",
		Short: "Inspect the catch log",
	}
	cmd.AddCommand(newCatchListCmd(a), newCatchExportCmd(a))
	return cmd
}

// withCatches opens the catch log for the duration of fn
func (a *app) withCatches(fn func(*catchlog.Repository) error) error {
	db, err := database.Open(a.cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(catchlog.NewRepository(db))
}

func newCatchListCmd(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged catches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatches(func(repo *catchlog.Repository) error {
				var (
					entries []models.CatchEntry
					err     error
				)
				if date == "" {
					entries, err = repo.List()
				} else {
					day, perr := a.parseDate(date)
					if perr != nil {
						return perr
					}
					entries, err = repo.ListByDate(day)
				}
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No catches logged")
					return nil
				}
				for _, e := range entries {
					fmt.Fprintf(out, "%s  %-16s %-12s %-12s %s\n",
						e.CaughtAt.Local().Format("2006-01-02 15:04"),
						e.Species,
						e.Direction,
						e.Strength,
						e.Spot)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "only catches on this date (YYYY-MM-DD)")
	return cmd
}

func newCatchExportCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catch log as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatches(func(repo *catchlog.Repository) error {
				entries, err := repo.List()
				if err != nil {
					return err
				}
				if out == "" {
					return catchlog.ExportCSV(cmd.OutOrStdout(), entries)
				}

				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				if err := catchlog.ExportCSV(f, entries); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("closing export file: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d catches to %s\n", len(entries), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}
