// pkg/utils/category/category.go
//
// Builds the single category string stored on a lead. When paint
// subcategories are selected they collapse into one "Peinture : a, b, c"
// entry; any other trade keeps its raw label.
package category

import (
	"regexp"
	"strings"
)

const paintLabel = "Peinture"

// Connectors are the locale-specific prefixes stripped from a paint
// subcategory label ("Peinture de rénovation" -> "rénovation"). Kept as data
// so another locale can extend the list without touching the logic.
var Connectors = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^de\s+`),
	regexp.MustCompile(`(?i)^d[’']\s*`),
}

var paintPrefix = regexp.MustCompile(`(?i)^Peinture\s+`)

// Format canonicalizes the raw category selection. Paint entries are grouped
// and deduplicated in first-seen order, other trades are deduplicated
// separately and appended. An empty result means nothing recognizable was
// selected and the caller must reject the submission.
func Format(raw []string) string {
	var cleaned []string
	for _, x := range raw {
		if v := strings.TrimSpace(x); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if len(cleaned) == 0 {
		return ""
	}

	bareSelected := false
	var paintSubs, others []string
	for _, c := range cleaned {
		switch {
		case c == paintLabel:
			bareSelected = true
		case strings.HasPrefix(c, paintLabel+" "):
			sub := paintPrefix.ReplaceAllString(c, "")
			for _, conn := range Connectors {
				sub = conn.ReplaceAllString(sub, "")
			}
			if sub = strings.TrimSpace(sub); sub != "" {
				paintSubs = append(paintSubs, sub)
			}
		default:
			others = append(others, c)
		}
	}

	var parts []string
	if subs := dedupe(paintSubs); len(subs) > 0 {
		parts = append(parts, paintLabel+" : "+strings.Join(subs, ", "))
	} else if bareSelected {
		parts = append(parts, paintLabel)
	}
	parts = append(parts, dedupe(others)...)

	return strings.Join(parts, ", ")
}

func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	var out []string
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
