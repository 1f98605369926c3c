package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/trip-planner/cmd"
	"github.com/cristianoliveira/trip-planner/internal/command"
	"github.com/cristianoliveira/trip-planner/internal/errors"
	"github.com/cristianoliveira/trip-planner/internal/format"
)

// NewRunCmd creates the run command with explicit dependencies.
func NewRunCmd(client coreSource) *cobra.Command {
	if client == nil {
		panic("NewRunCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "run [FILE]",
		Short: "Run planner commands from a file",
		Long: `Run planner commands line by line from FILE, or from stdin when FILE
is missing or "-". Blank lines and lines starting with # are skipped.
A failing line is reported and the next line still runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			var in io.Reader = c.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("run: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			pc, err := client.Core(ctx)
			if err != nil {
				return err
			}
			handler := errors.NewDefaultCLIHandler()
			out := c.OutOrStdout()
			failed := 0
			report := func(line string, res *command.Result, err error) {
				errors.Report(handler, res, err)
				if err != nil {
					failed++
					if errors.Classify(err) != errors.SeverityUnsaved {
						return
					}
				}
				if fmtErr := format.Result(out, pc.Model(), res); fmtErr != nil {
					handler.Warning(fmtErr.Error())
				}
			}
			if err := pc.RunAll(ctx, in, report); err != nil {
				return err
			}
			if failed > 0 {
				return cmd.ErrReported
			}
			return nil
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewRunCmd(coreClient))
}
