package commands

import (
	"fmt"
	"strings"

	"romrun/pkg/terminal"
)

// Platforms lists the configured platforms with their extensions and
// launch templates.
func Platforms(_ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(cfg.Platforms) == 0 {
		fmt.Println("No platforms configured. Add [[platform]] entries to the config file.")
		return nil
	}
	for _, p := range cfg.Platforms {
		status := terminal.Success(terminal.IconCheck)
		if err := p.Validate(); err != nil {
			status = terminal.Error(terminal.IconCross)
		}
		fmt.Printf("%s %s %s\n", status, terminal.BoldText(p.Name), strings.Join(p.Extensions, " "))
		fmt.Printf("    %s\n", p.Launch)
	}
	return nil
}
