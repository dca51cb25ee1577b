package main

import (
	"fmt"
	"log"
	"os"

	"github.com/avelar/tarea/cmd"
	"github.com/avelar/tarea/internal/cli"
	"github.com/avelar/tarea/internal/logging"
)

func main() {
	// Logging is best-effort; a command should still run if the log file
	// can't be opened.
	if err := logging.Init(); err != nil {
		log.Printf("Failed to initialize logging: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		// Commands print their own formatted errors. Anything unreported
		// came from cobra's flag parsing.
		if !cli.Reported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'tarea --help' for usage.")
		}
		os.Exit(cli.ExitCode(err))
	}
}
