package record

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Plain strips terminal escape sequences and control characters so record
// text can never drive the terminal. Newlines survive; tabs become spaces.
func Plain(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Plain returns a copy of r with every text field passed through Plain.
func (r Record) Plain() Record {
	return Record{ID: Plain(r.ID), URL: Plain(r.URL), Name: Plain(r.Name), Description: Plain(r.Description)}
}
