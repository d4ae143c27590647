// Package protein provides the immutable protein structure and mutation
// data store backing the dashboard API.
package protein

// Metadata describes a protein record.
type Metadata struct {
	Name       string `json:"name"`
	GeneSymbol string `json:"geneSymbol"`
	UniprotID  string `json:"uniprotId"`
	Length     int    `json:"length"`
	Function   string `json:"function"`
	Chromosome string `json:"chromosome"`
	Disease    string `json:"disease"`
}

// Residue is one structural position with a predicted confidence score.
// Residues are not necessarily stored in index order; consumers that need
// ordering sort by ResidueIndex.
type Residue struct {
	ResidueIndex int     `json:"residueIndex"`
	ResidueName  string  `json:"residueName"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Z            float64 `json:"z"`
	PLDDT        float64 `json:"pLDDT"`
}

// Mutation is a clinical variant. Identity for display purposes is
// (Position, MutAA).
type Mutation struct {
	Position             int     `json:"position"`
	WtAA                 string  `json:"wtAA"`
	MutAA                string  `json:"mutAA"`
	Pathogenicity        float64 `json:"pathogenicity"`
	Disease              string  `json:"disease"`
	ClinicalSignificance string  `json:"clinicalSignificance"`
	Population           string  `json:"population"`
	FunctionalImpact     string  `json:"functionalImpact"`
}

// Hotspot is a spatial cluster of residues with aggregate mutation stats.
type Hotspot struct {
	Name             string  `json:"name"`
	Residues         []int   `json:"residues"`
	MutationCount    int     `json:"mutationCount"`
	AvgPathogenicity float64 `json:"avgPathogenicity"`
	Description      string  `json:"description"`
	FunctionalPocket string  `json:"functionalPocket"`
}

// Anomaly is a contiguous residue range flagged for low structural
// confidence.
type Anomaly struct {
	Name          string  `json:"name"`
	StartResidue  int     `json:"startResidue"`
	EndResidue    int     `json:"endResidue"`
	AvgConfidence float64 `json:"avgConfidence"`
	AnomalyCount  int     `json:"anomalyCount"`
	Description   string  `json:"description"`
}

// Record is a full per-gene entry. Immutable once loaded.
type Record struct {
	Metadata  Metadata   `json:"metadata"`
	Structure []Residue  `json:"structure"`
	Mutations []Mutation `json:"mutations"`
	Hotspots  []Hotspot  `json:"hotspots"`
	Anomalies []Anomaly  `json:"anomalies"`
}

// GeneSummary is one autocomplete entry. The list may include genes
// without a full record (selecting those is a no-op).
type GeneSummary struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Disease string `json:"disease"`
	Type    string `json:"type"`
}

// Region is an inclusive residue index range used for highlighting.
type Region struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether idx falls inside the region.
func (r Region) Contains(idx int) bool {
	return idx >= r.Start && idx <= r.End
}
