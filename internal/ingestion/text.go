package ingestion

import (
	"regexp"
	"strings"
)

var (
	inlineSpaceRun = regexp.MustCompile(`[ \t\f\v\x{00A0}\x{1680}\x{2000}-\x{200A}\x{202F}\x{205F}\x{3000}\x{FEFF}]+`)
	blankLineRun   = regexp.MustCompile(`\n{3,}`)
)

// bulletReplacer maps bullet glyphs and their common mis-decodings to "- ".
var bulletReplacer = strings.NewReplacer(
	"â€¢", "- ",
	"•", "- ",
	"●", "- ",
	"▪", "- ",
	"◦", "- ",
	"\uf0b7", "- ",
)

// CleanText normalizes extracted document text while keeping its line structure:
// line endings become LF, bullet glyphs become "- ", runs of spaces collapse,
// and at most one blank line separates blocks. A middle dot is a bullet only at
// the start of a line; elsewhere it separates fields and is kept.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = bulletReplacer.Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = inlineSpaceRun.ReplaceAllString(line, " ")
	line = strings.TrimSpace(line)
	if rest, ok := strings.CutPrefix(line, "·"); ok {
		line = "- " + rest
	}
	if strings.HasPrefix(line, "- ") {
		return "- " + strings.TrimSpace(strings.TrimPrefix(line, "- "))
	}
	return line
}
