package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/protein-lab/server/internal/data/protein"
	"github.com/protein-lab/server/pkg/colorscale"
)

// PageSize is the fixed mutation table page size.
const PageSize = 10

// Significance filter values.
const (
	SignificanceAll        = "all"
	SignificancePathogenic = "pathogenic" // pathogenicity >= 0.5
	SignificanceBenign     = "benign"     // pathogenicity < 0.5
)

// Sort columns and directions.
const (
	SortByPosition      = "position"
	SortByPathogenicity = "pathogenicity"
	SortAsc             = "asc"
	SortDesc            = "desc"
)

// MutationQuery describes one mutation table request. Zero values fall
// back to the table defaults (all variants, pathogenicity descending,
// page 1).
type MutationQuery struct {
	Significance string
	Search       string
	SortBy       string
	SortDir      string
	Page         int
}

// MutationRow is one table row with its resolved risk bin.
type MutationRow struct {
	protein.Mutation
	Risk      string `json:"risk"`
	RiskColor string `json:"riskColor"`
}

// MutationPage is one page of the filtered, sorted mutation table.
type MutationPage struct {
	Items      []MutationRow `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// QueryMutations filters, sorts and paginates the record's mutations.
// The sort is stable: ties keep their relative order from the filter
// stage. The page index clamps to [1, totalPages].
func (s *ProteinService) QueryMutations(q MutationQuery) MutationPage {
	filtered := make([]protein.Mutation, 0, len(s.record.Mutations))

	for _, m := range s.record.Mutations {
		switch q.Significance {
		case SignificancePathogenic:
			if m.Pathogenicity < 0.5 {
				continue
			}
		case SignificanceBenign:
			if m.Pathogenicity >= 0.5 {
				continue
			}
		}
		if !matchesSearch(m, q.Search) {
			continue
		}
		filtered = append(filtered, m)
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = SortByPathogenicity
	}
	dir := q.SortDir
	if dir == "" {
		dir = SortDesc
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		var less bool
		switch sortBy {
		case SortByPosition:
			if filtered[i].Position == filtered[j].Position {
				return false
			}
			less = filtered[i].Position < filtered[j].Position
		default:
			if filtered[i].Pathogenicity == filtered[j].Pathogenicity {
				return false
			}
			less = filtered[i].Pathogenicity < filtered[j].Pathogenicity
		}
		if dir == SortDesc {
			return !less
		}
		return less
	})

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]MutationRow, 0, end-start)
	for _, m := range filtered[start:end] {
		band := colorscale.Pathogenicity.At(m.Pathogenicity)
		items = append(items, MutationRow{Mutation: m, Risk: band.Label, RiskColor: band.Hex})
	}

	return MutationPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   PageSize,
		TotalPages: totalPages,
	}
}

// MutationsJSON is QueryMutations served through the query cache.
func (s *ProteinService) MutationsJSON(q MutationQuery) ([]byte, error) {
	params := map[string]string{
		"significance": q.Significance,
		"q":            q.Search,
		"sort_by":      q.SortBy,
		"sort_dir":     q.SortDir,
		"page":         strconv.Itoa(q.Page),
	}
	return s.cachedJSON("mutations", params, func() (interface{}, error) {
		return s.QueryMutations(q), nil
	})
}

// matchesSearch reports whether a mutation matches the free-text term:
// case-insensitive substring over disease, wild-type and mutant amino
// acids, and the position rendered as a string.
func matchesSearch(m protein.Mutation, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(m.Disease), needle) ||
		strings.Contains(strings.ToLower(m.WtAA), needle) ||
		strings.Contains(strings.ToLower(m.MutAA), needle) ||
		strings.Contains(strconv.Itoa(m.Position), term)
}
