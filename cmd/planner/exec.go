package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/trip-planner/cmd"
	"github.com/cristianoliveira/trip-planner/internal/core"
	"github.com/cristianoliveira/trip-planner/internal/errors"
	"github.com/cristianoliveira/trip-planner/internal/format"
)

// coreSource hands out the loaded planner core.
type coreSource interface {
	Core(ctx context.Context) (*core.Core, error)
}

// NewExecCmd creates the exec command with explicit dependencies.
func NewExecCmd(client coreSource) *cobra.Command {
	if client == nil {
		panic("NewExecCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run one planner command",
		Long: `Run one planner command and print the panels it focuses.

EXAMPLES:
    planner exec add contact n/Alice p/98765432 e/alice@example.com a/12 Orchard Rd
    planner exec add activity n/Night Safari a/80 Mandai Lake Rd du/150
    planner exec add day 2
    planner exec schedule activity 1 st/0930 d/2
    planner exec list day`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			pc, err := client.Core(ctx)
			if err != nil {
				return err
			}
			res, err := pc.Execute(ctx, strings.Join(args, " "))
			errors.Report(errors.NewDefaultCLIHandler(), res, err)
			if err != nil && errors.Classify(err) != errors.SeverityUnsaved {
				return cmd.ErrReported
			}
			if fmtErr := format.Result(c.OutOrStdout(), pc.Model(), res); fmtErr != nil {
				return fmtErr
			}
			if err != nil {
				return cmd.ErrReported
			}
			return nil
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewExecCmd(coreClient))
}
