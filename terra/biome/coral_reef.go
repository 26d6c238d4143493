package biome

import (
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// CoralReef is shallow submerged terrain: long reef ridges covered in dense
// polyp-like bumps, sitting below sea level.
type CoralReef struct{}

func (CoralReef) Name() string {
	return "coral_reef"
}

func (CoralReef) BaseHeight() uint16 {
	return grid.SeaLevel - 1500
}

func (CoralReef) Shape(s *Sampler, c Cell) float64 {
	x, y := float64(c.X), float64(c.Y)
	reef := s.Layer("reef", noise.Simplex).
		Ridged(x, y, s.Params("reef", noise.Parameters{Frequency: 0.008, Amplitude: 0.6, Octaves: 3}))
	polyps := s.Layer("polyps", noise.Simplex).
		Billow(x, y, s.Params("polyps", noise.Parameters{Frequency: 0.08, Amplitude: 0.35, Octaves: 4}))
	return (reef-0.6)*2200 + polyps*1400
}

func (CoralReef) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "coral", Weight: 0.6},
		{Name: "sand", Weight: 0.4},
	}
}
