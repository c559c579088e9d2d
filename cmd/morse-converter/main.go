package main

import (
	"fmt"
	"os"

	"morse-converter/internal/app"
	"morse-converter/internal/config"
	"morse-converter/internal/logger"
)

// Version is overridden at build time with -ldflags.
var Version = app.AppVersion

func main() {
	cliApp := newCLIApp(os.Stdin, os.Stdout, os.Stderr, launchGUI)
	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "morse-converter: %v\n", err)
		os.Exit(1)
	}
}

func launchGUI(cfg *config.Config, log logger.Logger) error {
	application, err := app.NewApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("application initialization failed: %w", err)
	}

	if err := application.Run(); err != nil {
		return fmt.Errorf("application execution failed: %w", err)
	}

	log.Info("Main", "application terminated successfully", nil)
	return nil
}
