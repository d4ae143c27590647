package api

import (
	"github.com/protein-lab/server/internal/data/protein"
	"github.com/protein-lab/server/internal/service"
)

// ProteinInfo describes one loaded protein for the API response.
type ProteinInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// ProteinRegistry holds protein services for all loaded genes.
type ProteinRegistry struct {
	services      map[string]*service.ProteinService
	defaultSymbol string
	order         []string
	genes         []protein.GeneSummary
	title         string
}

// NewProteinRegistry creates an empty registry. order controls listing
// order; genes is the autocomplete list, which may name genes without
// a loaded record.
func NewProteinRegistry(defaultSymbol string, order []string, genes []protein.GeneSummary, title string) *ProteinRegistry {
	return &ProteinRegistry{
		services:      make(map[string]*service.ProteinService),
		defaultSymbol: defaultSymbol,
		order:         order,
		genes:         genes,
		title:         title,
	}
}

// Register adds a protein service for a gene symbol.
func (r *ProteinRegistry) Register(symbol string, svc *service.ProteinService) {
	r.services[symbol] = svc
}

// Get returns the service for a gene symbol, or nil if not loaded.
func (r *ProteinRegistry) Get(symbol string) *service.ProteinService {
	return r.services[symbol]
}

// DefaultSymbol returns the default gene symbol.
func (r *ProteinRegistry) DefaultSymbol() string {
	return r.defaultSymbol
}

// Symbols returns all loaded gene symbols in config order.
func (r *ProteinRegistry) Symbols() []string {
	return r.order
}

// Genes returns the autocomplete gene list.
func (r *ProteinRegistry) Genes() []protein.GeneSummary {
	return r.genes
}

// Title returns the configured site title.
func (r *ProteinRegistry) Title() string {
	if r.title != "" {
		return r.title
	}
	return "Protein Lab"
}

// Proteins returns info for all loaded proteins.
func (r *ProteinRegistry) Proteins() []ProteinInfo {
	infos := make([]ProteinInfo, 0, len(r.order))
	for _, symbol := range r.order {
		svc := r.services[symbol]
		if svc == nil {
			continue
		}
		infos = append(infos, ProteinInfo{
			Symbol: symbol,
			Name:   svc.Metadata().Name,
		})
	}
	return infos
}
