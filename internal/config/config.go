// Package config provides configuration management for the romrun tool.
// Platform definitions — which emulator runs which ROM extensions, and the
// launch command template with its placeholders — live in a TOML file at
// ~/.romrun.toml, overridable with ROMRUN_CONFIG.
//
// A missing config file is not an error: the tool runs with an empty
// platform list and commands report what is missing. A config file that
// does not parse is an error, surfaced to the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Platform maps a set of ROM file extensions to a launch command template.
type Platform struct {
	Name       string   `toml:"name"`
	Extensions []string `toml:"extensions"`
	Launch     string   `toml:"launch"`
}

// Config holds platform definitions and collection settings.
type Config struct {
	Collection string     `toml:"collection,omitempty"` // default directory for scan/watch
	Exclude    []string   `toml:"exclude,omitempty"`    // glob patterns skipped while scanning
	Platforms  []Platform `toml:"platform"`
}

// Path returns the absolute path to the romrun configuration file.
func Path() string {
	if p := os.Getenv("ROMRUN_CONFIG"); p != "" {
		return p
	}
	home := os.Getenv("HOME")
	if home == "" {
		if wd, _ := os.Getwd(); wd != "" {
			return filepath.Join(wd, ".romrun.toml")
		}
	}
	return filepath.Join(home, ".romrun.toml")
}

// Load reads configuration from disk. If missing, returns an empty config
// and nil error; a file that fails to parse is reported.
func Load() (*Config, error) {
	var cfg Config
	p := Path()
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config load failed (%s): %w", p, err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config parse failed (%s): %w", p, err)
	}
	return &cfg, nil
}

// PlatformByName returns the platform with the given name, or nil.
func (c *Config) PlatformByName(name string) *Platform {
	for i := range c.Platforms {
		if c.Platforms[i].Name == name {
			return &c.Platforms[i]
		}
	}
	return nil
}

// PlatformFor returns the first platform whose extension list matches the
// ROM path's extension (case-insensitive), or nil.
func (c *Config) PlatformFor(romPath string) *Platform {
	ext := strings.ToLower(filepath.Ext(romPath))
	if ext == "" {
		return nil
	}
	for i := range c.Platforms {
		for _, e := range c.Platforms[i].Extensions {
			if strings.ToLower(e) == ext {
				return &c.Platforms[i]
			}
		}
	}
	return nil
}

// Validate reports why a platform definition cannot be launched from.
func (p *Platform) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("platform missing name")
	}
	if strings.TrimSpace(p.Launch) == "" {
		return fmt.Errorf("platform %q missing launch template", p.Name)
	}
	for _, e := range p.Extensions {
		if !strings.HasPrefix(e, ".") {
			return fmt.Errorf("platform %q extension %q must start with a dot", p.Name, e)
		}
	}
	return nil
}
