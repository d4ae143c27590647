package service

import (
	"fmt"
	"sort"

	"github.com/protein-lab/server/internal/cache"
	"github.com/protein-lab/server/internal/data/protein"
	"github.com/protein-lab/server/internal/render"
	"github.com/protein-lab/server/pkg/colorscale"
)

// MutationRef identifies a selected mutation by table row identity.
type MutationRef struct {
	Position int
	MutAA    string
}

// ScenePoint is one residue prepared for the structure view: base color
// from the confidence ladder, the mutation override, highlight state and
// the render scale.
type ScenePoint struct {
	protein.Residue
	Color       string  `json:"color"`
	Scale       float64 `json:"scale"`
	Highlighted bool    `json:"highlighted"`
	Mutation    bool    `json:"mutation"`
}

// Scene assembles the structure view. A residue is mutation-marked when
// its index equals the selected mutation's position, and highlighted
// when inside any region. A selected position with no matching residue
// simply marks nothing.
func (s *ProteinService) Scene(selected *MutationRef, regions []protein.Region) []ScenePoint {
	points := make([]ScenePoint, 0, len(s.record.Structure))
	for _, res := range s.record.Structure {
		isMutation := selected != nil && res.ResidueIndex == selected.Position
		highlighted := false
		for _, r := range regions {
			if r.Contains(res.ResidueIndex) {
				highlighted = true
				break
			}
		}

		color := colorscale.Confidence.At(res.PLDDT).Hex
		if isMutation {
			color = colorscale.MutationSite.Hex
		}

		scale := 1.0
		if highlighted {
			scale = 1.5
		} else if isMutation {
			scale = 1.3
		}

		points = append(points, ScenePoint{
			Residue:     res,
			Color:       color,
			Scale:       scale,
			Highlighted: highlighted,
			Mutation:    isMutation,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].ResidueIndex < points[j].ResidueIndex
	})
	return points
}

// Snapshot renders the scene to PNG, served through the snapshot cache.
func (s *ProteinService) Snapshot(selected *MutationRef, regions []protein.Region) ([]byte, error) {
	selection := ""
	if selected != nil {
		selection = fmt.Sprintf("%d:%s", selected.Position, selected.MutAA)
	}
	regionKeys := make([]string, 0, len(regions))
	for _, r := range regions {
		regionKeys = append(regionKeys, fmt.Sprintf("%d-%d", r.Start, r.End))
	}
	key := cache.SnapshotKey(s.symbol, selection, regionKeys)

	if s.cache != nil {
		if data, ok := s.cache.GetSnapshot(key); ok {
			return data, nil
		}
	}

	scene := s.Scene(selected, regions)
	points := make([]render.Point, 0, len(scene))
	for _, p := range scene {
		rgba := colorscale.Confidence.At(p.PLDDT).RGBA
		if p.Mutation {
			rgba = colorscale.MutationSite.RGBA
		}
		points = append(points, render.Point{
			X:           p.X,
			Y:           p.Y,
			Z:           p.Z,
			Color:       rgba,
			Scale:       p.Scale,
			Highlighted: p.Highlighted,
			Mutation:    p.Mutation,
		})
	}

	data, err := s.renderer.RenderStructure(points)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetSnapshot(key, data)
	}
	return data, nil
}
