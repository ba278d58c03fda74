package command

import (
	"reflect"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name    string
		cmdline string
		want    []string
	}{
		{"plain", "higan /games/zelda.sfc", []string{"higan", "/games/zelda.sfc"}},
		{"quoted path", `higan "/games/my game.rom"`, []string{"higan", "/games/my game.rom"}},
		{"tripled quote inside quoted token", `emu "C:\g\a"""b.rom" --flag`, []string{"emu", `C:\g\a"b.rom`, "--flag"}},
		{"empty", "", nil},
		{"spaces only", "   \t ", nil},
		{"multiple spaces between args", "a   b", []string{"a", "b"}},
		{"empty quoted arg", `emu ""`, []string{"emu", ""}},
		{"unterminated quote runs to end", `emu "half open`, []string{"emu", "half open"}},
		{"adjacent quoted pieces", `"a b"c`, []string{"a bc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitArgs(tt.cmdline); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitArgs(%q) = %#v, want %#v", tt.cmdline, got, tt.want)
			}
		})
	}
}

func TestSplitArgs_RoundTripsBuild(t *testing.T) {
	// Whatever Build quotes, SplitArgs must recover verbatim.
	paths := []string{
		"/games/zelda.sfc",
		"/games/my game.rom",
		`C:\g\a"b.rom`,
		`/g/weird " name.rom`,
	}
	for _, path := range paths {
		built := Build("emu %ROM% --fullscreen", path)
		args := SplitArgs(built)
		if len(args) != 3 {
			t.Fatalf("SplitArgs(%q) = %#v, want 3 args", built, args)
		}
		if args[1] != path {
			t.Errorf("round trip of %q through %q gave %q", path, built, args[1])
		}
	}
}
