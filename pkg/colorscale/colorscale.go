// Package colorscale provides the threshold color ladders shared by the
// mutation table, hotspot panel, confidence histogram, and the structure
// renderer.
package colorscale

import (
	"image/color"
)

// Ladder maps a value to a discrete color band via descending thresholds.
type Ladder struct {
	bands []Band
}

// Band is one step of a ladder.
type Band struct {
	Threshold float64 // value >= Threshold selects this band
	Label     string
	Hex       string
	RGBA      color.RGBA
}

// At returns the band for v. The last band is the catch-all.
func (l Ladder) At(v float64) Band {
	for _, b := range l.bands {
		if v >= b.Threshold {
			return b
		}
	}
	return l.bands[len(l.bands)-1]
}

// Bands returns the ladder's bands in descending threshold order.
func (l Ladder) Bands() []Band {
	out := make([]Band, len(l.bands))
	copy(out, l.bands)
	return out
}

// Pathogenicity ladder: >=0.8 red, >=0.5 orange, >=0.3 yellow, else green.
var Pathogenicity = Ladder{
	bands: []Band{
		{0.8, "High Risk", "#ef4444", color.RGBA{239, 68, 68, 255}},
		{0.5, "Moderate Risk", "#f97316", color.RGBA{249, 115, 22, 255}},
		{0.3, "Low Risk", "#eab308", color.RGBA{234, 179, 8, 255}},
		{0.0, "Benign", "#22c55e", color.RGBA{34, 197, 94, 255}},
	},
}

// Confidence ladder over pLDDT: >=90 blue, >=70 cyan, >=50 yellow,
// >=30 orange, else red.
var Confidence = Ladder{
	bands: []Band{
		{90, "Very High", "#3b82f6", color.RGBA{59, 130, 246, 255}},
		{70, "High", "#06b6d4", color.RGBA{6, 182, 212, 255}},
		{50, "Medium", "#eab308", color.RGBA{234, 179, 8, 255}},
		{30, "Low", "#f97316", color.RGBA{249, 115, 22, 255}},
		{0, "Very Low", "#ef4444", color.RGBA{239, 68, 68, 255}},
	},
}

// MutationSite marks the currently selected mutation in the structure view.
var MutationSite = Band{
	Label: "Mutation Site",
	Hex:   "#ff0080",
	RGBA:  color.RGBA{255, 0, 128, 255},
}
