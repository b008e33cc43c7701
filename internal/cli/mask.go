package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newMaskCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Inspect the water mask",
	}

	check := &cobra.Command{
		Use:   "check <lng> <lat>",
		Short: "Report whether a point is water",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lng, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid longitude %q", args[0])
			}
			lat, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid latitude %q", args[1])
			}

			mask, err := a.cfg.LoadMask()
			if err != nil {
				return fmt.Errorf("loading water mask: %w", err)
			}

			out := cmd.OutOrStdout()
			if !mask.Contains(lng, lat) {
				fmt.Fprintf(out, "%.5f,%.5f: land\n", lng, lat)
				return nil
			}
			for _, p := range mask.Polygons() {
				if p.Contains(lng, lat) {
					fmt.Fprintf(out, "%.5f,%.5f: water (%s)\n", lng, lat, p.Name)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(check)
	return cmd
}
