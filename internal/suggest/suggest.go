// Package suggest implements autocomplete matching over the fixed role and
// tech-stack candidate tables.
package suggest

import "strings"

// Match returns every candidate whose lowercase form contains the lowercase
// query as a substring, preserving candidate order. Candidates present in
// exclude are skipped. A blank (all-whitespace) query matches nothing; the
// caller decides how many results to display.
func Match(query string, candidates []string, exclude map[string]struct{}) []string {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	q := strings.ToLower(query)
	var out []string
	for _, c := range candidates {
		if _, skip := exclude[c]; skip {
			continue
		}
		if strings.Contains(strings.ToLower(c), q) {
			out = append(out, c)
		}
	}
	return out
}

// Truncate caps a result list for display. The matcher itself never limits.
func Truncate(matches []string, limit int) []string {
	if limit <= 0 || len(matches) <= limit {
		return matches
	}
	return matches[:limit]
}
