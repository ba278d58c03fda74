package command

import (
	"strings"
	"unicode"
)

// SplitArgs splits a built command line into argv following the quoting
// convention Build emits: whitespace separates arguments, a double-quoted
// substring is part of a single argument, and three consecutive double
// quotes stand for one literal double quote. An unterminated quote runs to
// the end of the line.
func SplitArgs(cmdline string) []string {
	var args []string
	var cur strings.Builder
	inQuote := false
	hasToken := false

	runes := []rune(cmdline)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if i+2 < len(runes) && runes[i+1] == '"' && runes[i+2] == '"' {
				cur.WriteRune('"')
				hasToken = true
				i += 2
			} else {
				inQuote = !inQuote
				hasToken = true
			}
		case !inQuote && unicode.IsSpace(r):
			if hasToken {
				args = append(args, cur.String())
				cur.Reset()
				hasToken = false
			}
		default:
			cur.WriteRune(r)
			hasToken = true
		}
	}
	if hasToken {
		args = append(args, cur.String())
	}
	return args
}
