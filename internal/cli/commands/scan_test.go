package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScan_NoDirConfigured(t *testing.T) {
	writeTestConfig(t, "")
	if err := Scan(nil); err == nil {
		t.Fatal("expected error without a collection directory")
	}
}

func TestScan_FindsRoms(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zelda.sfc", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	writeTestConfig(t, `
[[platform]]
name       = "snes"
extensions = [".sfc"]
launch     = "true %ROM%"
`)
	if err := Scan([]string{dir}); err != nil {
		t.Fatalf("Scan: %v", err)
	}
}

func TestScan_MissingDir(t *testing.T) {
	writeTestConfig(t, `
[[platform]]
name       = "snes"
extensions = [".sfc"]
launch     = "true %ROM%"
`)
	if err := Scan([]string{filepath.Join(t.TempDir(), "absent")}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
