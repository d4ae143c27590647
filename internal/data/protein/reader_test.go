package protein

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestLoadJSON(t *testing.T) {
	path := writeDataset(t, "dataset.json", false)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}

	rec, ok := store.Record("TP53")
	if !ok {
		t.Fatal("expected TP53 record")
	}
	if len(rec.Mutations) != 7 {
		t.Errorf("expected 7 TP53 mutations, got %d", len(rec.Mutations))
	}
}

func TestLoadZstd(t *testing.T) {
	path := writeDataset(t, "dataset.json.zst", true)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load zstd dataset: %v", err)
	}
	if _, ok := store.Record("TP53"); !ok {
		t.Fatal("expected TP53 record")
	}
}

func TestLoadDerivesGeneList(t *testing.T) {
	ds := DatasetFile{
		Proteins: map[string]*Record{"TP53": tp53()},
	}
	path := writeDatasetFile(t, "nolists.json", ds, false)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	genes := store.Genes()
	if len(genes) != 1 {
		t.Fatalf("expected 1 derived gene, got %d", len(genes))
	}
	if genes[0].Symbol != "TP53" || genes[0].Name != "Tumor Protein p53" {
		t.Errorf("unexpected derived gene: %+v", genes[0])
	}
}

func TestLoadRejectsInvalidScores(t *testing.T) {
	bad := tp53()
	bad.Mutations[0].Pathogenicity = 1.5
	ds := DatasetFile{Proteins: map[string]*Record{"TP53": bad}}
	path := writeDatasetFile(t, "bad.json", ds, false)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for pathogenicity > 1")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func writeDataset(t *testing.T, name string, compress bool) string {
	t.Helper()
	ds := DatasetFile{
		Proteins: SampleRecords(),
		Order:    SampleOrder,
		Genes:    SampleGeneList(),
	}
	return writeDatasetFile(t, name, ds, compress)
}

func writeDatasetFile(t *testing.T, name string, ds DatasetFile, compress bool) string {
	t.Helper()

	data, err := json.Marshal(ds)
	if err != nil {
		t.Fatalf("failed to marshal dataset: %v", err)
	}

	if compress {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			t.Fatalf("failed to create zstd writer: %v", err)
		}
		data = enc.EncodeAll(data, nil)
		enc.Close()
	}

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}
