// Package command builds launch command lines from platform templates.
// A template contains placeholder tokens (%ROM%, %ROM_RAW%, %BASENAME%)
// that are replaced with values derived from the ROM path, quoted so the
// result survives SplitArgs. Building is pure: no I/O, no state.
package command

import (
	"path/filepath"
	"strings"
	"unicode"
)

// substitution maps one template token to its replacement value. Quoted
// forms come first so a manually quoted token in the template is consumed
// whole instead of being hit again by the bare-form entry.
type substitution struct {
	token string
	value string
}

// Build substitutes the ROM path into the platform's launch template.
//
// The path and its base name are escaped for the launch quoting convention:
// a literal double quote becomes three double quotes, and any value
// containing whitespace is wrapped in double quotes. Tokens are then
// replaced in a single left-to-right scan, so substituted values are never
// rescanned even when they contain token-like substrings. Unrecognized
// tokens pass through untouched.
func Build(template, path string) string {
	rom := quoteArg(path)
	base := quoteArg(baseName(path))

	subs := []substitution{
		{`"%ROM_RAW%"`, rom},
		{`"%BASENAME%"`, base},
		{`"%ROM%"`, rom},
		{`%ROM_RAW%`, rom},
		{`%BASENAME%`, base},
		{`%ROM%`, rom},
	}

	var b strings.Builder
	b.Grow(len(template) + len(rom))
	for i := 0; i < len(template); {
		if template[i] != '%' && template[i] != '"' {
			b.WriteByte(template[i])
			i++
			continue
		}
		matched := false
		for _, s := range subs {
			if strings.HasPrefix(template[i:], s.token) {
				b.WriteString(s.value)
				i += len(s.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(template[i])
			i++
		}
	}
	return b.String()
}

// baseName returns the file name of path without directory components and
// without its final extension. A name that is all extension (".config") or
// has no extension is returned unchanged.
func baseName(path string) string {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return name
	}
	return name[:len(name)-len(ext)]
}

// quoteArg escapes a value for the launch quoting convention. Escaping
// happens before the wrapping decision.
func quoteArg(value string) string {
	// Literal quotes are represented by triple quotes
	escaped := strings.ReplaceAll(value, `"`, `"""`)
	// Arguments containing whitespace must be quoted. So must arguments
	// carrying escaped quotes: the triple-quote escape is only valid inside
	// a quoted token.
	if escaped != value || strings.ContainsFunc(escaped, unicode.IsSpace) {
		escaped = `"` + escaped + `"`
	}
	return escaped
}
