package main

import (
	"os"
	"strings"

	"romrun/internal/cli"
	"romrun/pkg/logger"
)

func main() {
	// Parse global flags (lightweight) and strip them from args
	verbose := false
	debug := false
	args := make([]string, 0, len(os.Args))
	for i, a := range os.Args {
		if i == 0 {
			args = append(args, a)
			continue
		}
		switch a {
		case "--verbose":
			verbose = true
		case "--debug":
			debug = true
		default:
			// keep normal args
			args = append(args, a)
		}
	}
	// Env overrides
	if strings.EqualFold(os.Getenv("ROMRUN_VERBOSE"), "1") {
		verbose = true
	}
	if strings.EqualFold(os.Getenv("ROMRUN_DEBUG"), "1") {
		debug = true
	}

	// Initialize logging
	logger.Initialize(verbose, debug)
	defer logger.Close()

	handler := cli.NewErrorHandler(verbose, debug)
	// Install a panic recoverer to avoid raw panics
	var ph cli.PanicHandler
	defer ph.Recover()

	app := cli.New()
	if err := app.Run(args); err != nil {
		handler.Handle(err)
	}
}
