package commands

import (
	"fmt"

	"romrun/internal/config"
	"romrun/internal/doctor"
)

// Doctor checks the launch environment: config validity, emulator
// availability, and host CPU capability.
func Doctor(args []string) error {
	verbose := false
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			verbose = true
		}
	}

	cfg, cfgErr := config.Load()
	if cfg == nil {
		cfg = &config.Config{}
	}
	rpt := doctor.New(cfg, cfgErr, verbose).Run()
	if rpt.Errors > 0 {
		return fmt.Errorf("%d check(s) failed", rpt.Errors)
	}
	return nil
}
