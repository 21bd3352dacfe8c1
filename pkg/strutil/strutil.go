// Package strutil provides the string helpers used to turn parsed survey
// values into grammatically correct prose fragments.
package strutil

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	ordinalPattern    = regexp.MustCompile(`^(\d+)(st|nd|rd|th)$`)
)

// JoinWithOxfordComma joins items as prose: zero items yield "", one item is
// returned verbatim, two are joined with "and", three or more use the Oxford
// comma.
func JoinWithOxfordComma(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// OrdinalSuffix returns the English ordinal suffix for a number. Numbers
// ending in 11-13 always take "th" regardless of the last digit, as does
// anything non-positive ("0th grade" placeholders stay readable).
func OrdinalSuffix(number int) string {
	if number <= 0 {
		return "th"
	}

	lastTwo := number % 100
	if lastTwo >= 11 && lastTwo <= 13 {
		return "th"
	}

	switch lastTwo % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// RemoveExcessWhitespace collapses every run of whitespace, newlines
// included, to a single space and trims the ends. Every generated sentence
// passes through here before insertion into the report.
func RemoveExcessWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// CapitalizeFirst upper-cases the first byte of a sentence when it is a
// lowercase ASCII letter.
func CapitalizeFirst(text string) string {
	if text == "" {
		return text
	}
	first := text[0]
	if first >= 'a' && first <= 'z' {
		return string(first-'a'+'A') + text[1:]
	}
	return text
}

// unit and tens tables for spelled-out numbers ("twenty five").
var numberWords = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19,
}

var tensWords = map[string]float64{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// ParseNumber leniently extracts a number from guardian-supplied text. It
// accepts plain numerals ("1", "1.5"), ordinals ("1st"), and spelled-out
// numbers ("twenty five"). Text carrying anything beyond the number itself
// ("9 months", "5 months and 4 days") returns ok=false so the caller keeps
// the original wording; stripping a unit here would let callers reattach
// the wrong one.
func ParseNumber(text string) (float64, bool) {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return 0, false
	}

	if value, err := strconv.ParseFloat(text, 64); err == nil {
		return value, true
	}

	if match := ordinalPattern.FindStringSubmatch(text); match != nil {
		value, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			return value, true
		}
	}

	return parseNumberWords(strings.Fields(text))
}

func parseNumberWords(fields []string) (float64, bool) {
	if len(fields) == 0 {
		return 0, false
	}

	var total float64
	for i, field := range fields {
		field = strings.Trim(field, "-")
		if value, ok := tensWords[field]; ok {
			total += value
			continue
		}
		if value, ok := numberWords[field]; ok {
			total += value
			continue
		}
		// Hyphenated composites such as "twenty-five".
		if i == 0 && strings.Contains(field, "-") {
			return parseNumberWords(strings.Split(field, "-"))
		}
		return 0, false
	}
	return total, true
}

// FormatNumber renders a parsed number without a trailing ".0" for whole
// values.
func FormatNumber(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
