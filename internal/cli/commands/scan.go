package commands

import (
	"fmt"

	"romrun/internal/collection"
	e "romrun/pkg/errors"
	"romrun/pkg/terminal"
)

// Scan walks a collection directory and lists every ROM a configured
// platform claims. The directory comes from the argument, falling back to
// the config's collection setting.
func Scan(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := cfg.Collection
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		fmt.Println("Usage: romrun scan <dir> (or set collection in the config file)")
		return fmt.Errorf("no collection directory")
	}

	scanner, err := collection.NewScanner(cfg.Platforms, cfg.Exclude)
	if err != nil {
		return e.Wrap(err, e.ErrInvalidConfig, "Invalid exclude patterns")
	}
	entries, err := scanner.Scan(dir)
	if err != nil {
		return e.Wrap(err, e.ErrFileNotFound, "Scan failed").WithContext("dir", dir)
	}

	perPlatform := make(map[string]int)
	for _, entry := range entries {
		perPlatform[entry.Platform]++
		fmt.Printf("%s %-8s %s\n", terminal.IconDot, entry.Platform, entry.Path)
	}
	fmt.Printf("\n%s %d ROM(s)", terminal.IconSearch, len(entries))
	for platform, n := range perPlatform {
		fmt.Printf("  %s:%d", platform, n)
	}
	fmt.Println()
	return nil
}
