package records

import (
	"regexp"
	"strconv"
	"strings"
)

// Text matching across record tables works on a canonical form: lowercase,
// dash variants unified, the literal "all time" phrase stripped, a trailing
// "season YYYY" suffix stripped, and whitespace collapsed. Near-duplicate
// titles and entrant names from different season exports normalize to the
// same signature.

var (
	dashReplacer   = strings.NewReplacer("‐", "-", "‑", "-", "‒", "-", "–", "-", "—", "-")
	seasonSuffixRe = regexp.MustCompile(`[\s\-]*season\s+\d{4}\s*$`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	numberRe       = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// Normalize canonicalizes a title or cell value for matching and grouping.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = dashReplacer.Replace(s)
	s = strings.ReplaceAll(s, "all-time", " ")
	s = strings.ReplaceAll(s, "all time", " ")
	s = seasonSuffixRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// firstNumber extracts the first numeric substring of s. ok is false when s
// holds no parseable number.
func firstNumber(s string) (float64, bool) {
	m := numberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// numericSignature joins every numeric substring of s, preserving order, so
// rows that differ in any numeric component stay distinct.
func numericSignature(s string) string {
	return strings.Join(numberRe.FindAllString(s, -1), "|")
}

// taggedAllTime reports whether any cell of the row carries the "all time"
// marker, case-insensitively and tolerant of dash variants.
func taggedAllTime(row map[string]string) bool {
	for _, v := range row {
		c := dashReplacer.Replace(strings.ToLower(v))
		c = strings.ReplaceAll(c, "all-time", "all time")
		if strings.Contains(c, "all time") {
			return true
		}
	}
	return false
}
