package protein

// Store is a read-only lookup over protein records and the gene
// autocomplete list. A future prediction backend can substitute the
// embedded samples without touching consumers.
type Store interface {
	// Record returns the full record for a gene symbol, if one exists.
	Record(symbol string) (*Record, bool)
	// Symbols returns the symbols with full records, in load order.
	Symbols() []string
	// Genes returns the autocomplete list, in source order.
	Genes() []GeneSummary
}

type memStore struct {
	records map[string]*Record
	order   []string
	genes   []GeneSummary
}

// NewStore builds an in-memory store. Record order follows the order
// slice; symbols without an entry in records are dropped.
func NewStore(records map[string]*Record, order []string, genes []GeneSummary) Store {
	kept := make([]string, 0, len(order))
	for _, sym := range order {
		if _, ok := records[sym]; ok {
			kept = append(kept, sym)
		}
	}
	return &memStore{records: records, order: kept, genes: genes}
}

func (s *memStore) Record(symbol string) (*Record, bool) {
	rec, ok := s.records[symbol]
	return rec, ok
}

func (s *memStore) Symbols() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *memStore) Genes() []GeneSummary {
	out := make([]GeneSummary, len(s.genes))
	copy(out, s.genes)
	return out
}
