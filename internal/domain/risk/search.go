package risk

import "strings"

// Record is anything the search engine can select from.
type Record interface {
	// SearchFields returns the fields matched against a search term.
	SearchFields() []string
	// RiskLevel returns the record's stored risk level.
	RiskLevel() Level
}

// Query combines a free-text search term with a risk filter.
type Query struct {
	Search string
	Risk   Filter
}

// MatchesSearch reports whether the term occurs case-insensitively in any
// searchable field. An empty term matches every record.
func (q Query) MatchesSearch(r Record) bool {
	if q.Search == "" {
		return true
	}
	term := strings.ToLower(q.Search)
	for _, field := range r.SearchFields() {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Matches is the AND of the search and risk predicates.
func (q Query) Matches(r Record) bool {
	return q.MatchesSearch(r) && q.Risk.Matches(r.RiskLevel())
}

// Apply returns the records matching q in their original order. The input
// slice is never modified.
func Apply[T Record](records []T, q Query) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if q.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// CountByLevel counts records per risk level. Every known level is present
// in the result, possibly with a zero count.
func CountByLevel[T Record](records []T) map[Level]int {
	counts := make(map[Level]int, len(Levels))
	for _, l := range Levels {
		counts[l] = 0
	}
	for _, r := range records {
		counts[r.RiskLevel()]++
	}
	return counts
}
