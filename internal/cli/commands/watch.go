package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"romrun/internal/collection"
	e "romrun/pkg/errors"
	"romrun/pkg/terminal"
)

// Watch reports changes in a collection directory until interrupted.
func Watch(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := cfg.Collection
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		fmt.Println("Usage: romrun watch <dir> (or set collection in the config file)")
		return fmt.Errorf("no collection directory")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("%s watching %s (ctrl-c to stop)\n", terminal.IconSearch, dir)
	w := collection.NewWatcher(dir, func(c collection.Change) {
		fmt.Printf("%s %-6s %s\n", terminal.IconArrow, c.Op, c.Path)
	})
	if err := w.Watch(ctx); err != nil {
		return e.Wrap(err, e.ErrFileNotFound, "Watch failed").WithContext("dir", dir)
	}
	return nil
}
