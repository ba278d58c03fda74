package commands

import (
	"fmt"

	"romrun/internal/identity"
	e "romrun/pkg/errors"
	"romrun/pkg/logger"
)

// Identify prints the content digest of each given ROM file. Unreadable
// files are warned about and skipped; the command fails only when nothing
// could be hashed.
func Identify(args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: romrun identify <rom-path>...")
		return fmt.Errorf("no files specified")
	}

	hashed := 0
	for _, path := range args {
		digest, err := identity.FileDigest(path)
		if err != nil {
			logger.Warnf("skipping %s: %v", path, err)
			continue
		}
		fmt.Printf("%s  %s\n", digest, path)
		hashed++
	}
	if hashed == 0 {
		return e.New(e.ErrFileNotFound, "No files could be hashed")
	}
	return nil
}
