package protein

import "testing"

func TestSampleStoreLookup(t *testing.T) {
	store := SampleStore()

	for _, sym := range []string{"TP53", "BRCA1", "ALS2"} {
		rec, ok := store.Record(sym)
		if !ok {
			t.Fatalf("expected record for %s", sym)
		}
		if rec.Metadata.GeneSymbol != sym {
			t.Errorf("record %s has geneSymbol %q", sym, rec.Metadata.GeneSymbol)
		}
		if len(rec.Structure) == 0 {
			t.Errorf("record %s has empty structure", sym)
		}
	}

	// Stub genes appear in the autocomplete list but have no record.
	if _, ok := store.Record("BRCA2"); ok {
		t.Error("BRCA2 should have no full record")
	}
	if len(store.Genes()) != 8 {
		t.Errorf("expected 8 autocomplete genes, got %d", len(store.Genes()))
	}

	syms := store.Symbols()
	want := []string{"TP53", "BRCA1", "ALS2"}
	if len(syms) != len(want) {
		t.Fatalf("expected %d symbols, got %d", len(want), len(syms))
	}
	for i := range want {
		if syms[i] != want[i] {
			t.Errorf("symbol[%d] = %s, want %s", i, syms[i], want[i])
		}
	}
}

func TestSampleRecordsValid(t *testing.T) {
	for sym, rec := range SampleRecords() {
		if err := Validate(rec); err != nil {
			t.Errorf("sample record %s fails validation: %v", sym, err)
		}
	}
}

func TestNewStoreDropsUnknownOrder(t *testing.T) {
	records := map[string]*Record{"TP53": tp53()}
	store := NewStore(records, []string{"TP53", "MISSING"}, nil)
	syms := store.Symbols()
	if len(syms) != 1 || syms[0] != "TP53" {
		t.Errorf("expected [TP53], got %v", syms)
	}
}
