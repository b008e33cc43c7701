package cli

import (
	"context"
	"fmt"

	"github.com/ngmaloney/strait-current/internal/applog"
	"github.com/ngmaloney/strait-current/internal/models"
	"github.com/ngmaloney/strait-current/internal/tidecycle"
	"github.com/spf13/cobra"
)

func newEstimateCmd(a *app) *cobra.Command {
	var (
		date string
		hour int
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print the day's tides and the current estimate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := a.parseDate(date)
			if err != nil {
				return err
			}
			if hour < -1 || hour > 23 {
				return fmt.Errorf("hour must be 0-23, got %d", hour)
			}

			logger, closeLog, err := applog.Open(a.cfg.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			db := a.openStore(logger)
			if db != nil {
				defer db.Close()
			}
			client, err := a.tideClient(db, logger)
			if err != nil {
				return err
			}

			raw, err := client.GetDay(context.Background(), day)
			if err != nil {
				return fmt.Errorf("fetching tides: %w", err)
			}
			events := tidecycle.BuildEventSequence(raw.High, raw.Low)

			// A given hour wins; otherwise the clock for today and the
			// reference hour for other dates.
			minute := a.cfg.ReferenceHour * 60
			if hour >= 0 {
				minute = hour * 60
			} else if now := a.now(); sameDay(now, day) {
				minute = now.Hour()*60 + now.Minute()
			}
			est := tidecycle.EstimateFlowAt(events, minute)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tides for %s (station %s)\n", day.Format("2006-01-02"), a.cfg.Tide.Station)
			if len(events) == 0 {
				fmt.Fprintln(out, "  no tide data")
			}
			for _, e := range events {
				fmt.Fprintf(out, "  %s  %-4s %5d cm\n", e.Time, e.Type, e.Height)
			}
			fmt.Fprintf(out, "At %s: %s\n", models.FormatClock(minute), est.Label())
			fmt.Fprintf(out, "  %s\n", est.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&hour, "hour", -1, "hour of day 0-23 (default now for today, estimate.reference_hour otherwise)")
	return cmd
}
