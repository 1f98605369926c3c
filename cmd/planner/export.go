package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/trip-planner/cmd"
	"github.com/cristianoliveira/trip-planner/internal/colors"
	"github.com/cristianoliveira/trip-planner/internal/ics"
)

// NewExportCmd creates the export command with explicit dependencies.
func NewExportCmd(client coreSource, now func() time.Time) *cobra.Command {
	if client == nil {
		panic("NewExportCmd: client dependency cannot be nil")
	}
	if now == nil {
		now = time.Now
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the itinerary",
	}

	var start, out string
	icsCmd := &cobra.Command{
		Use:   "ics",
		Short: "Export the itinerary as an iCalendar file",
		Long: `Export every scheduled activity as an iCalendar event. Day 1 falls on
--start, or on trip_start_date from the configuration, or on today.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			day1, err := ics.ResolveStartDate(start, now())
			if err != nil {
				return err
			}
			pc, err := client.Core(ctx)
			if err != nil {
				return err
			}

			var w io.Writer = c.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("export: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			if err := ics.NewExporter(day1, ics.WithClock(now)).Write(w, pc.Model().Days()); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if out != "" && out != "-" {
				colors.Success("itinerary written to " + out)
			}
			return nil
		},
	}
	icsCmd.Flags().StringVar(&start, "start", "", "date of day 1 (YYYY-MM-DD)")
	icsCmd.Flags().StringVarP(&out, "out", "o", "", "output file, stdout when empty")

	exportCmd.AddCommand(icsCmd)
	return exportCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewExportCmd(coreClient, time.Now))
}
