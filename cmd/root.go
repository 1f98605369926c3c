package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/trip-planner/internal/colors"
	"github.com/cristianoliveira/trip-planner/internal/config"
	"github.com/cristianoliveira/trip-planner/internal/logging"
	"github.com/cristianoliveira/trip-planner/internal/version"
)

// Root flags. They override configuration for the current process.
var (
	backendFlag   string
	ephemeralFlag bool
	quietFlag     bool
	debugFlag     bool
)

// ErrReported marks a failure the subcommand already showed to the user.
// Execute still returns it so the process exits non-zero.
var ErrReported = errors.New("error already reported")

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           "planner",
	Short:         "Plan a trip: contacts, activities, accommodations and a day-by-day itinerary.",
	Long:          `Plan a trip: contacts, activities, accommodations and a day-by-day itinerary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		Configure()
		return nil
	},
}

// Configure loads configuration, applies the root flags and starts logging.
func Configure() {
	config.Load()
	if backendFlag != "" {
		config.Set("storage_backend", backendFlag)
	}
	if ephemeralFlag {
		config.Set("storage_backend", "memory")
	}
	if quietFlag {
		config.Set("quiet", "true")
	}
	if debugFlag {
		config.Set("debug", "true")
	}

	colors.SetQuiet(config.GetBool("quiet", false))
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning("logging disabled: " + err.Error())
	}
}

// Execute runs the root command and returns the first error.
func Execute() error {
	defer func() { _ = logging.ShutdownGlobal() }()
	if err := RootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrReported) {
			colors.Error(err.Error())
		}
		return err
	}
	return nil
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		PrintHelp(cmd)
	})

	RootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: yaml, sqlite or memory")
	RootCmd.PersistentFlags().BoolVar(&ephemeralFlag, "ephemeral", false, "keep the planner in memory only")
	RootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "only print errors and warnings")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "print debug output")
}
