package main

import (
	"os"

	"github.com/cristianoliveira/trip-planner/cmd"
	"github.com/cristianoliveira/trip-planner/internal/logging"
)

func main() {
	err := cmd.Execute()
	if closeErr := coreClient.Close(); closeErr != nil {
		logging.Warn("closing storage failed", "error", closeErr.Error())
	}
	if err != nil {
		os.Exit(1)
	}
}
