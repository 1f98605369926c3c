package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/trip-planner/internal/version"
)

// outputWriter is the writer used by PrintHelp. Can be changed for testing.
var outputWriter io.Writer

var commandOrder = []string{
	"exec",
	"run",
	"shell",
	"export",
	"version",
}

// PrintHelp prints the help text of cmd. Subcommands get cobra's default help.
func PrintHelp(cmd *cobra.Command) {
	w := outputWriter
	if w == nil {
		w = cmd.OutOrStdout()
	}
	if cmd.HasParent() {
		_, _ = fmt.Fprintln(w, cmd.UsageString())
		if cmd.Long != "" {
			_, _ = fmt.Fprintln(w, cmd.Long)
		}
		return
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-20s %s", found.Use, found.Short))
	}

	_, _ = fmt.Fprintf(w, `planner v%s

%s

USAGE:
    planner [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    --backend <name>    Storage backend: yaml, sqlite or memory
    --ephemeral         Keep the planner in memory only
    -q, --quiet         Only print errors and warnings
    --debug             Print debug output
    -h, --help          Show help message

Inside exec, run and shell, type "help" for the planner command language.
`, version.String(), cmd.Short, strings.Join(cmdLines, "\n"))
}
