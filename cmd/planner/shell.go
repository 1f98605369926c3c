package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/trip-planner/cmd"
	"github.com/cristianoliveira/trip-planner/internal/tui/app"
)

// NewShellCmd creates the shell command with explicit dependencies.
func NewShellCmd(client coreSource, tui app.Client) *cobra.Command {
	if client == nil {
		panic("NewShellCmd: client dependency cannot be nil")
	}
	if tui == nil {
		panic("NewShellCmd: tui dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive planner",
		Long: `Open the interactive planner: an agenda pane, a tabbed info pane and a
command input. Tab and Shift+Tab switch panes, Esc or "exit" quits.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			pc, err := client.Core(ctx)
			if err != nil {
				return err
			}
			return tui.RunProgram(tui.CreateModel(pc))
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewShellCmd(coreClient, app.NewDefaultClient(nil)))
}
