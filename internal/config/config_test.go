package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
collection = "/roms"
exclude = ["*.sav", "*.srm"]

[[platform]]
name       = "snes"
extensions = [".sfc", ".smc"]
launch     = "higan %ROM%"

[[platform]]
name       = "gb"
extensions = [".gb", ".gbc"]
launch     = "sameboy \"%ROM%\""
`

func writeConfig(t *testing.T, content string) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "romrun.toml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ROMRUN_CONFIG", p)
}

func TestLoad(t *testing.T) {
	writeConfig(t, sampleConfig)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Collection != "/roms" || len(cfg.Platforms) != 2 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Platforms[0].Launch != "higan %ROM%" {
		t.Errorf("launch template = %q", cfg.Platforms[0].Launch)
	}
}

func TestLoad_MissingFileIsEmptyConfig(t *testing.T) {
	t.Setenv("ROMRUN_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Platforms) != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoad_ParseErrorIsReported(t *testing.T) {
	writeConfig(t, "[[platform]\nname=")

	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestPlatformLookup(t *testing.T) {
	writeConfig(t, sampleConfig)
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if p := cfg.PlatformByName("gb"); p == nil || p.Name != "gb" {
		t.Errorf("PlatformByName(gb) = %+v", p)
	}
	if p := cfg.PlatformByName("n64"); p != nil {
		t.Errorf("PlatformByName(n64) = %+v, want nil", p)
	}

	if p := cfg.PlatformFor("/roms/zelda.SFC"); p == nil || p.Name != "snes" {
		t.Errorf("PlatformFor should match extensions case-insensitively, got %+v", p)
	}
	if p := cfg.PlatformFor("/roms/unknown.bin"); p != nil {
		t.Errorf("PlatformFor(.bin) = %+v, want nil", p)
	}
	if p := cfg.PlatformFor("/roms/noext"); p != nil {
		t.Errorf("PlatformFor(noext) = %+v, want nil", p)
	}
}

func TestPlatformValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Platform
		wantErr bool
	}{
		{"valid", Platform{Name: "snes", Extensions: []string{".sfc"}, Launch: "higan %ROM%"}, false},
		{"missing name", Platform{Launch: "x %ROM%"}, true},
		{"missing launch", Platform{Name: "snes"}, true},
		{"bad extension", Platform{Name: "snes", Extensions: []string{"sfc"}, Launch: "x"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
