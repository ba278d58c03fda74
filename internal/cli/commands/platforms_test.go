package commands

import "testing"

func TestPlatforms_EmptyConfig(t *testing.T) {
	writeTestConfig(t, "")
	if err := Platforms(nil); err != nil {
		t.Fatalf("Platforms: %v", err)
	}
}

func TestPlatforms_ListsConfigured(t *testing.T) {
	writeTestConfig(t, `
[[platform]]
name       = "snes"
extensions = [".sfc", ".smc"]
launch     = "higan %ROM%"

[[platform]]
name = "incomplete"
`)
	if err := Platforms(nil); err != nil {
		t.Fatalf("Platforms: %v", err)
	}
}
