package ocr

import (
	"regexp"
	"strings"
)

var (
	reCRLF        = regexp.MustCompile(`\r\n?`)
	reTabs        = regexp.MustCompile(`\t+`)
	reMultiSpace  = regexp.MustCompile(` {3,}`)
	reMultiBlank  = regexp.MustCompile(`\n{3,}`)
	reO0Artifacts = regexp.MustCompile(`(\d)[Oo](\d)`) // "O" read where a digit belongs
)

var reBoxNoise = regexp.MustCompile(`(?m)^\s*[_\-]{3,}\s*$`)

// Normalize collapses noisy whitespace and fixes common OCR artifacts.
// Conservative: keeps line breaks and receipt column spacing (runs of two
// spaces separate name from price on many layouts); collapses >2 newlines
// into a single blank line.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, "  ")
	s = reMultiSpace.ReplaceAllString(s, "  ")
	// collapse too many blank lines
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	// trim trailing spaces on lines
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = strings.Join(lines, "\n")
	s = reO0Artifacts.ReplaceAllString(s, "${1}0${2}")
	return strings.TrimSpace(s)
}
