package command

import (
	"strings"
	"testing"
)

func TestBuild_PlainPath(t *testing.T) {
	got := Build("higan %ROM%", "/games/zelda.sfc")
	if got != "higan /games/zelda.sfc" {
		t.Errorf("Build = %q", got)
	}
}

func TestBuild_PathWithSpaceIsQuoted(t *testing.T) {
	got := Build("%ROM%", "/games/my game.rom")
	if got != `"/games/my game.rom"` {
		t.Errorf("Build = %q", got)
	}
}

func TestBuild_PathWithoutWhitespaceIsNotQuoted(t *testing.T) {
	for _, path := range []string{"/games/zelda.sfc", "plain", "a.b.c"} {
		if got := Build("%ROM%", path); got != path {
			t.Errorf("Build(%q) = %q; want it unquoted", path, got)
		}
	}
}

func TestBuild_LiteralQuoteIsTripled(t *testing.T) {
	got := Build(`"%ROM%" --flag`, `C:\g\a"b.rom`)
	want := `"C:\g\a"""b.rom" --flag`
	if got != want {
		t.Errorf("Build = %q, want %q", got, want)
	}
}

func TestBuild_QuotedFormReplacedBeforeBare(t *testing.T) {
	// The template author's own quotes are consumed by the substitution;
	// a second pass over the bare form must not fire again.
	got := Build(`run "%ROM%"`, "/games/my game.rom")
	if got != `run "/games/my game.rom"` {
		t.Errorf("Build = %q", got)
	}
	if strings.Contains(got, `""/games`) {
		t.Errorf("double-substitution through the quoted form: %q", got)
	}
}

func TestBuild_SubstitutedValueIsNeverRescanned(t *testing.T) {
	// A path that itself looks like a token must survive substitution.
	got := Build("%ROM%", "%BASENAME%")
	if got != "%BASENAME%" {
		t.Errorf("Build = %q; substituted output was rescanned", got)
	}

	got = Build(`"%ROM%" %ROM%`, "%ROM%")
	if got != "%ROM% %ROM%" {
		t.Errorf("Build = %q", got)
	}
}

func TestBuild_Basename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/games/a.b.tar.gz", "a.b.tar"},
		{"/games/noext", "noext"},
		{"/games/zelda.sfc", "zelda"},
		{"relative.rom", "relative"},
		{"/games/.config", ".config"},
	}
	for _, tt := range tests {
		if got := Build("%BASENAME%", tt.path); got != tt.want {
			t.Errorf("Build(%%BASENAME%%, %q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestBuild_RomRawMatchesRom(t *testing.T) {
	path := "/games/my game.rom"
	raw := Build("%ROM_RAW%", path)
	rom := Build("%ROM%", path)
	if raw != rom {
		t.Errorf("%%ROM_RAW%% = %q, %%ROM%% = %q; want identical", raw, rom)
	}
}

func TestBuild_UnrecognizedTokensPassThrough(t *testing.T) {
	got := Build("emu %CORE% %ROM% --net %PORT%", "/g/x.rom")
	if got != "emu %CORE% /g/x.rom --net %PORT%" {
		t.Errorf("Build = %q", got)
	}
}

func TestBuild_MultipleTokens(t *testing.T) {
	got := Build("emu %ROM% --title %BASENAME%", "/saves dir/game name.sfc")
	want := `emu "/saves dir/game name.sfc" --title "game name"`
	if got != want {
		t.Errorf("Build = %q, want %q", got, want)
	}
}

func TestBuild_TemplateWithoutTokens(t *testing.T) {
	got := Build("retroarch --menu", "/games/ignored.rom")
	if got != "retroarch --menu" {
		t.Errorf("Build = %q", got)
	}
}
