package service

import (
	"strings"

	"github.com/protein-lab/server/internal/data/protein"
)

// SearchGenes filters the autocomplete list by case-insensitive
// substring match on symbol, name or disease. Matches keep source-list
// order; an empty query returns no matches.
func SearchGenes(genes []protein.GeneSummary, query string) []protein.GeneSummary {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var matches []protein.GeneSummary
	for _, g := range genes {
		if strings.Contains(strings.ToLower(g.Symbol), needle) ||
			strings.Contains(strings.ToLower(g.Name), needle) ||
			strings.Contains(strings.ToLower(g.Disease), needle) {
			matches = append(matches, g)
		}
	}
	return matches
}
