// pkg/utils/format/format.go
package format

import (
	"regexp"
	"strings"
	"unicode"
)

// PhoneDisplay strips everything but digits, keeps at most 10 of them and
// renders them as space separated pairs: "0612345678" -> "06 12 34 56 78".
func PhoneDisplay(raw string) string {
	digits := OnlyDigitsMax(raw, 10)
	var parts []string
	for i := 0; i < len(digits); i += 2 {
		end := i + 2
		if end > len(digits) {
			end = len(digits)
		}
		parts = append(parts, digits[i:end])
	}
	return strings.Join(parts, " ")
}

// PhoneDigits is the submit/validation view of a phone value: digits only,
// capped at 10.
func PhoneDigits(raw string) string {
	return OnlyDigitsMax(raw, 10)
}

// OnlyDigitsMax strips non-digits and truncates to maxLen. maxLen <= 0 means
// no digits survive.
func OnlyDigitsMax(raw string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	var b strings.Builder
	for _, r := range raw {
		if b.Len() == maxLen {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var spaceRun = regexp.MustCompile(`\s+`)

// NameCase collapses repeated whitespace, trims leading spaces and renders
// each word with an upper first rune and lower remainder. A single trailing
// space survives so the caller can keep normalizing while the user types.
func NameCase(value string) string {
	collapsed := strings.TrimLeft(spaceRun.ReplaceAllString(value, " "), " ")
	words := strings.Split(collapsed, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// PaintCategoryDisplay joins selected paint subcategory labels in selection
// order: ["intérieure", "rénovation"] -> "Peinture : intérieure, rénovation".
// Deduplication happens server side, not here.
func PaintCategoryDisplay(selected []string) string {
	if len(selected) == 0 {
		return ""
	}
	return "Peinture : " + strings.Join(selected, ", ")
}

// PhotoNames joins up to four filenames into the stored pipe-delimited form.
func PhotoNames(names []string) string {
	if len(names) > 4 {
		names = names[:4]
	}
	return strings.Join(names, " | ")
}
