package extraction

import (
	"regexp"
	"strings"
)

// spaceClass is the body of a character class covering ASCII whitespace, \v, the
// Unicode space separators, line and paragraph separators and the BOM. PDF text
// often carries NBSP or thin spaces where a plain space was typed.
const spaceClass = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var spaceExpander = strings.NewReplacer(
	`[\s\S]`, `(?s:.)`,
	`[:\s]`, `[:`+spaceClass+`]`,
	`\s`, `[`+spaceClass+`]`,
)

// mustCompileSpaced compiles pattern after widening every \s to spaceClass.
// Only the forms \s, [:\s] and [\s\S] are recognised.
func mustCompileSpaced(pattern string) *regexp.Regexp {
	return regexp.MustCompile(spaceExpander.Replace(pattern))
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// trimSpace trims the same whitespace the extraction patterns recognise.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
