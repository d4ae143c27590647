package service

import (
	"fmt"
	"sort"

	"github.com/protein-lab/server/internal/data/protein"
	"github.com/protein-lab/server/pkg/colorscale"
)

// HotspotView is one hotspot row with its derived highlight region and
// risk bin.
type HotspotView struct {
	protein.Hotspot
	Region    protein.Region `json:"region"`
	RiskColor string         `json:"riskColor"`
}

// HotspotReport lists hotspots (descending by mutation count) plus the
// panel summary counts.
type HotspotReport struct {
	Items  []HotspotView `json:"items"`
	Total  int           `json:"total"`
	Active int           `json:"active"` // hotspots with mutationCount > 0
}

// Hotspots builds the hotspot panel view. The sort is stable so ties
// keep source order.
func (s *ProteinService) Hotspots() HotspotReport {
	items := make([]HotspotView, 0, len(s.record.Hotspots))
	active := 0
	for _, h := range s.record.Hotspots {
		if h.MutationCount > 0 {
			active++
		}
		items = append(items, HotspotView{
			Hotspot:   h,
			Region:    residueSpan(h.Residues),
			RiskColor: colorscale.Pathogenicity.At(h.AvgPathogenicity).Hex,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MutationCount > items[j].MutationCount
	})

	return HotspotReport{Items: items, Total: len(items), Active: active}
}

// residueSpan computes the {min, max} highlight region over a residue
// set.
func residueSpan(residues []int) protein.Region {
	if len(residues) == 0 {
		return protein.Region{}
	}
	r := protein.Region{Start: residues[0], End: residues[0]}
	for _, idx := range residues[1:] {
		if idx < r.Start {
			r.Start = idx
		}
		if idx > r.End {
			r.End = idx
		}
	}
	return r
}

// AnomalyView is one anomaly row with its highlight region.
type AnomalyView struct {
	protein.Anomaly
	Region protein.Region `json:"region"`
}

// Anomalies lists the record's anomaly regions.
func (s *ProteinService) Anomalies() []AnomalyView {
	items := make([]AnomalyView, 0, len(s.record.Anomalies))
	for _, a := range s.record.Anomalies {
		items = append(items, AnomalyView{
			Anomaly: a,
			Region:  protein.Region{Start: a.StartResidue, End: a.EndResidue},
		})
	}
	return items
}

// ConfidencePoint is one sample of the per-residue confidence series.
type ConfidencePoint struct {
	Position int     `json:"position"`
	PLDDT    float64 `json:"pLDDT"`
	Residue  string  `json:"residue"`
}

// ConfidenceBand is one histogram bucket of the confidence distribution.
type ConfidenceBand struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Color string  `json:"color"`
	Count int     `json:"count"`
}

// ConfidenceReport is the anomaly/confidence panel payload: the
// position-sorted series, the reference-line ladder, and the five-band
// histogram. Band counts always sum to the residue count.
type ConfidenceReport struct {
	Series         []ConfidencePoint `json:"series"`
	ReferenceLines []float64         `json:"referenceLines"`
	Histogram      []ConfidenceBand  `json:"histogram"`
}

// Confidence builds the confidence report from the structure list.
func (s *ProteinService) Confidence() ConfidenceReport {
	series := make([]ConfidencePoint, 0, len(s.record.Structure))
	for _, res := range s.record.Structure {
		series = append(series, ConfidencePoint{
			Position: res.ResidueIndex,
			PLDDT:    res.PLDDT,
			Residue:  fmt.Sprintf("%s%d", res.ResidueName, res.ResidueIndex),
		})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Position < series[j].Position
	})

	bands := colorscale.Confidence.Bands()
	histogram := make([]ConfidenceBand, len(bands))
	for i, b := range bands {
		histogram[i] = ConfidenceBand{Label: b.Label, Min: b.Threshold, Color: b.Hex}
	}
	for _, res := range s.record.Structure {
		for i, b := range bands {
			if res.PLDDT >= b.Threshold {
				histogram[i].Count++
				break
			}
		}
	}

	return ConfidenceReport{
		Series:         series,
		ReferenceLines: []float64{90, 70, 50, 30},
		Histogram:      histogram,
	}
}

// ConfidenceJSON is Confidence served through the query cache.
func (s *ProteinService) ConfidenceJSON() ([]byte, error) {
	return s.cachedJSON("confidence", nil, func() (interface{}, error) {
		return s.Confidence(), nil
	})
}
