// Package commands implements the romrun subcommands.
package commands

import (
	"fmt"
	"os"

	"romrun/internal/command"
	"romrun/internal/config"
	"romrun/internal/launcher"
	e "romrun/pkg/errors"
	"romrun/pkg/logger"
	"romrun/pkg/terminal"
)

// Launch builds the platform's command line for the given ROM and runs it
// to completion. The call blocks for the child's full lifetime. A failed or
// crashed child is reported through lifecycle logging but never makes the
// launch itself fail: the only errors returned here are the caller's own
// (bad arguments, missing config).
func Launch(args []string) error {
	platformName := ""
	if len(args) >= 2 && args[0] == "--platform" {
		platformName = args[1]
		args = args[2:]
	}
	if len(args) == 0 {
		fmt.Println("Usage: romrun launch [--platform <name>] <rom-path>")
		return fmt.Errorf("no ROM specified")
	}
	romPath := args[0]

	if _, err := os.Stat(romPath); err != nil {
		return e.Wrap(err, e.ErrFileNotFound, "ROM file not found").
			WithContext("path", romPath)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var platform *config.Platform
	if platformName != "" {
		platform = cfg.PlatformByName(platformName)
	} else {
		platform = cfg.PlatformFor(romPath)
	}
	if platform == nil {
		return e.New(e.ErrMissingPlatform, "No platform claims this ROM").
			WithContext("path", romPath)
	}
	if err := platform.Validate(); err != nil {
		return e.Wrap(err, e.ErrInvalidConfig, "Platform definition is not launchable").
			WithContext("platform", platform.Name)
	}

	cmdline := command.Build(platform.Launch, romPath)

	var outcome launcher.Event
	l := launcher.New(func(ev launcher.Event) {
		if ev.Kind == launcher.EventFinished || ev.Kind == launcher.EventFailedToStart {
			outcome = ev
		}
	})

	logger.StartTimer("launch")
	l.Launch(cmdline)
	logger.EndTimer("launch")

	switch {
	case outcome.Kind == launcher.EventFinished && outcome.Clean && outcome.ExitCode == 0:
		fmt.Printf("%s Launch finished\n", terminal.Success(terminal.IconCheck))
	default:
		fmt.Printf("%s Launch finished\n", terminal.Warning(terminal.IconCheck))
	}
	return nil
}

// loadConfig loads the TOML config, wrapping parse failures.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, e.Wrap(err, e.ErrInvalidConfig, "Could not load configuration")
	}
	return cfg, nil
}
