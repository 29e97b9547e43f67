package search

import (
	"strings"
)

// SearchFilters holds the extracted filters and the remaining clean query
type SearchFilters struct {
	Type        ResultType
	Category    string
	SearchQuery string // The remaining text matched against names and descriptions
}

// ParseQuery extracts slash commands from the raw query string
// Supported:
// /type:stream OR /type:exam -> Keep only that result type
// /cat:<term> OR /in:<term> -> Keep only exams whose category contains term
// <text> -> Remaining text is the SearchQuery
func ParseQuery(raw string) SearchFilters {
	filters := SearchFilters{}
	parts := strings.Fields(raw)
	var cleanParts []string

	for _, part := range parts {
		lowerPart := strings.ToLower(part)

		if strings.HasPrefix(lowerPart, "/type:") {
			switch ResultType(strings.TrimPrefix(lowerPart, "/type:")) {
			case TypeStream:
				filters.Type = TypeStream
			case TypeExam:
				filters.Type = TypeExam
			default:
				cleanParts = append(cleanParts, part)
			}
		} else if strings.HasPrefix(lowerPart, "/cat:") {
			filters.Category = strings.TrimPrefix(lowerPart, "/cat:")
		} else if strings.HasPrefix(lowerPart, "/in:") {
			// Alias for /cat:
			filters.Category = strings.TrimPrefix(lowerPart, "/in:")
		} else {
			cleanParts = append(cleanParts, part)
		}
	}

	filters.SearchQuery = strings.Join(cleanParts, " ")
	return filters
}

// HasFilters reports whether any slash command was present.
func (f SearchFilters) HasFilters() bool {
	return f.Type != "" || f.Category != ""
}

// Apply keeps the results that satisfy the filters, preserving order. A
// category filter implies exam results.
func (f SearchFilters) Apply(results []Result) []Result {
	if !f.HasFilters() {
		return results
	}
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		if f.Category != "" && (r.Type != TypeExam || !strings.Contains(strings.ToLower(r.Category), f.Category)) {
			continue
		}
		out = append(out, r)
	}
	return out
}
