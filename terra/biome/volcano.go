package biome

import (
	"math"

	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// Volcano is a radial cone rising from a noised plain, with a crater
// depression at the summit. The cone centre and radius may be positioned
// through the request config; by default the cone fills the grid centre.
type Volcano struct{}

const craterRadius = 0.18

func (Volcano) Name() string {
	return "volcano"
}

func (Volcano) BaseHeight() uint16 {
	return grid.SeaLevel
}

func (Volcano) Shape(s *Sampler, c Cell) float64 {
	cx, cy := float64(c.SizeX-1)/2, float64(c.SizeY-1)/2
	radius := math.Min(cx, cy) * 0.8
	if ctr := s.Config().Center; ctr != nil {
		cx, cy = ctr.X(), ctr.Y()
	}
	if r := s.Config().Radius; r > 0 {
		radius = r
	}

	d := math.Hypot(float64(c.X)-cx, float64(c.Y)-cy) / radius
	if d >= 1 {
		// Beyond the cone foot the terrain settles into a gently noised
		// plain around the base height.
		rough := s.Layer("slope", noise.Simplex).
			Fractal(float64(c.X), float64(c.Y), s.Params("slope", noise.Parameters{Frequency: 0.02, Amplitude: 0.25, Octaves: 4}))
		return rough * 800
	}
	if d < craterRadius {
		// Inside the crater the floor deepens monotonically toward the
		// centre, leaving the rim as the summit.
		return (1-d)*14000 - (1-d/craterRadius)*6000
	}
	rough := s.Layer("slope", noise.Simplex).
		Fractal(float64(c.X), float64(c.Y), s.Params("slope", noise.Parameters{Frequency: 0.02, Amplitude: 0.25, Octaves: 4}))
	return (1-d)*14000 + rough*(1-d)*2500
}

func (Volcano) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "ash", Weight: 0.55},
		{Name: "basalt", Weight: 0.25},
		{Name: "obsidian", Weight: 0.2},
	}
}
