// Package collection finds and tracks ROM files on disk. The scanner walks
// a directory tree matching files to configured platforms by extension; the
// watcher reports changes to a collection directory as they happen.
package collection

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"romrun/internal/config"
)

// Entry is one ROM file found during a scan, tagged with the platform that
// claims its extension.
type Entry struct {
	Path     string
	Platform string
}

// Scanner matches files against platform extensions and exclusion patterns.
type Scanner struct {
	byExt   map[string]string // ".sfc" -> platform name
	exclude []glob.Glob
}

// NewScanner builds a scanner for the given platforms. Exclusion patterns
// use glob syntax and are matched against base file names.
func NewScanner(platforms []config.Platform, exclude []string) (*Scanner, error) {
	s := &Scanner{byExt: make(map[string]string)}
	for _, p := range platforms {
		for _, ext := range p.Extensions {
			ext = strings.ToLower(ext)
			if _, taken := s.byExt[ext]; !taken {
				s.byExt[ext] = p.Name
			}
		}
	}
	for _, pattern := range exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		s.exclude = append(s.exclude, g)
	}
	return s, nil
}

// Scan walks root and returns every file a configured platform claims.
// Hidden directories are skipped; unreadable subtrees are skipped rather
// than failing the whole scan.
func (s *Scanner) Scan(root string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if s.excluded(d.Name()) {
			return nil
		}
		if platform, ok := s.byExt[strings.ToLower(filepath.Ext(d.Name()))]; ok {
			entries = append(entries, Entry{Path: path, Platform: platform})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return entries, nil
}

func (s *Scanner) excluded(name string) bool {
	for _, g := range s.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}
