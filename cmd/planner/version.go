package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/trip-planner/cmd"
)

type versionSource interface {
	Version() string
}

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionSource) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(c.OutOrStdout(), "planner version %s\n", client.Version())
			return err
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewVersionCmd(coreClient))
}
