package protein

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// DatasetFile is the on-disk dataset format: a record mapping plus an
// optional autocomplete list. Files may be plain JSON or
// zstd-compressed JSON (".json.zst").
type DatasetFile struct {
	Proteins map[string]*Record `json:"proteins"`
	Order    []string           `json:"order"`
	Genes    []GeneSummary      `json:"genes"`
}

// Load reads a dataset file and returns a store over it. Records are
// validated against the score-range invariants before the store is
// built. When the file omits the gene list, summaries are derived from
// the record metadata.
func Load(path string) (Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open zstd dataset: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	var ds DatasetFile
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if len(ds.Proteins) == 0 {
		return nil, fmt.Errorf("dataset %s contains no protein records", path)
	}

	for sym, rec := range ds.Proteins {
		if err := Validate(rec); err != nil {
			return nil, fmt.Errorf("record %s: %w", sym, err)
		}
	}

	order := ds.Order
	if len(order) == 0 {
		order = make([]string, 0, len(ds.Proteins))
		for sym := range ds.Proteins {
			order = append(order, sym)
		}
		sort.Strings(order)
	}

	genes := ds.Genes
	if len(genes) == 0 {
		for _, sym := range order {
			md := ds.Proteins[sym].Metadata
			genes = append(genes, GeneSummary{
				Symbol:  sym,
				Name:    md.Name,
				Disease: md.Disease,
			})
		}
	}

	return NewStore(ds.Proteins, order, genes), nil
}

// Validate checks a record against the data-model invariants:
// pathogenicity scores in [0,1], confidence scores in [0,100], and
// non-empty hotspot residues whenever mutations are counted.
func Validate(rec *Record) error {
	for _, res := range rec.Structure {
		if res.PLDDT < 0 || res.PLDDT > 100 {
			return fmt.Errorf("residue %d: pLDDT %v out of range [0,100]", res.ResidueIndex, res.PLDDT)
		}
	}
	for _, m := range rec.Mutations {
		if m.Pathogenicity < 0 || m.Pathogenicity > 1 {
			return fmt.Errorf("mutation %d%s: pathogenicity %v out of range [0,1]", m.Position, m.MutAA, m.Pathogenicity)
		}
	}
	for _, h := range rec.Hotspots {
		if h.AvgPathogenicity < 0 || h.AvgPathogenicity > 1 {
			return fmt.Errorf("hotspot %q: avgPathogenicity %v out of range [0,1]", h.Name, h.AvgPathogenicity)
		}
		if h.MutationCount > 0 && len(h.Residues) == 0 {
			return fmt.Errorf("hotspot %q: mutationCount %d but no residues", h.Name, h.MutationCount)
		}
	}
	for _, a := range rec.Anomalies {
		if a.AvgConfidence < 0 || a.AvgConfidence > 100 {
			return fmt.Errorf("anomaly %q: avgConfidence %v out of range [0,100]", a.Name, a.AvgConfidence)
		}
	}
	return nil
}
