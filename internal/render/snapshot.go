// Package render provides structure snapshot rendering using fogleman/gg.
package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"sync"

	"github.com/fogleman/gg"
)

// Config contains renderer configuration.
type Config struct {
	ImageSize int
}

// Point is one residue prepared for rendering: data-space coordinates,
// resolved color, and emphasis flags.
type Point struct {
	X, Y, Z     float64
	Color       color.RGBA
	Scale       float64
	Highlighted bool
	Mutation    bool
}

// SnapshotRenderer renders protein structures as PNG scatter plots.
type SnapshotRenderer struct {
	config      Config
	contextPool sync.Pool
	bufferPool  sync.Pool
}

var background = color.RGBA{15, 23, 42, 255} // slate-900, matches the dashboard canvas

// NewSnapshotRenderer creates a new snapshot renderer.
func NewSnapshotRenderer(cfg Config) *SnapshotRenderer {
	if cfg.ImageSize <= 0 {
		cfg.ImageSize = 512
	}
	return &SnapshotRenderer{
		config: cfg,
		contextPool: sync.Pool{
			New: func() interface{} {
				return gg.NewContext(cfg.ImageSize, cfg.ImageSize)
			},
		},
		bufferPool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, 64*1024))
			},
		},
	}
}

// RenderStructure renders points projected onto the X/Y plane. Emphasized
// points (highlighted or mutation-marked) are drawn last, enlarged, with
// a halo ring. Z modulates the disc radius slightly for depth.
func (r *SnapshotRenderer) RenderStructure(points []Point) ([]byte, error) {
	dc := r.contextPool.Get().(*gg.Context)
	defer r.contextPool.Put(dc)

	dc.SetColor(background)
	dc.Clear()

	if len(points) == 0 {
		return r.encodeContext(dc)
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	minZ, maxZ := points[0].Z, points[0].Z
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
		minZ = math.Min(minZ, p.Z)
		maxZ = math.Max(maxZ, p.Z)
	}

	size := float64(r.config.ImageSize)
	margin := size * 0.08
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	spanZ := maxZ - minZ
	if spanZ == 0 {
		spanZ = 1
	}
	scale := math.Min((size-2*margin)/spanX, (size-2*margin)/spanY)

	project := func(p Point) (float64, float64) {
		px := margin + (p.X-minX)*scale
		// Flip Y so positive data Y points up, Cartesian orientation.
		py := size - margin - (p.Y-minY)*scale
		return px, py
	}

	baseRadius := size * 0.018

	draw := func(p Point, emphasized bool) {
		px, py := project(p)
		depth := (p.Z - minZ) / spanZ // 0 far, 1 near
		radius := baseRadius * p.Scale * (0.8 + 0.4*depth)

		if emphasized {
			// Halo ring approximating the viewer's glow effect.
			halo := p.Color
			halo.A = 96
			dc.SetColor(halo)
			dc.DrawCircle(px, py, radius*1.6)
			dc.Fill()
		}

		dc.SetColor(p.Color)
		dc.DrawCircle(px, py, radius)
		dc.Fill()
	}

	for _, p := range points {
		if !p.Highlighted && !p.Mutation {
			draw(p, false)
		}
	}
	for _, p := range points {
		if p.Highlighted || p.Mutation {
			draw(p, true)
		}
	}

	return r.encodeContext(dc)
}

func (r *SnapshotRenderer) encodeContext(dc *gg.Context) ([]byte, error) {
	buf := r.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		r.bufferPool.Put(buf)
	}()

	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(buf, dc.Image()); err != nil {
		return nil, err
	}

	// Copy buffer contents (buffer will be reused)
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}
