package invoiceparse

import "strings"

// LocateItemBlock isolates the line-item table from the surrounding prose.
// Start markers are tried in list order and the first one found anywhere in
// the text wins. The block ends at the nearest end-marker occurrence after
// the start, or at end-of-text when none is present. An empty string means
// no table was detected; callers treat that as non-fatal.
func LocateItemBlock(text string, rs *RuleSet) string {
	start := -1
	for _, marker := range rs.StartMarkers {
		if idx := strings.Index(text, marker); idx != -1 {
			start = idx
			break
		}
	}
	if start == -1 {
		return ""
	}

	end := len(text)
	for _, marker := range rs.EndMarkers {
		if idx := strings.Index(text[start:], marker); idx != -1 && start+idx < end {
			end = start + idx
		}
	}
	return strings.TrimSpace(text[start:end])
}
