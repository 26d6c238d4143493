package biome

import (
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// BioluminescentForest is soft rolling forest terrain pocked with shallow
// glowing hollows.
type BioluminescentForest struct{}

func (BioluminescentForest) Name() string {
	return "bioluminescent_forest"
}

func (BioluminescentForest) BaseHeight() uint16 {
	return grid.SeaLevel + 800
}

func (BioluminescentForest) Shape(s *Sampler, c Cell) float64 {
	x, y := float64(c.X), float64(c.Y)
	primary := s.Layer("primary", noise.Simplex).
		Fractal(x, y, s.Params("primary", noise.Parameters{Frequency: 0.012, Amplitude: 1.0, Octaves: 4}))
	hollows := s.Layer("hollows", noise.Simplex).
		Billow(x, y, s.Params("hollows", noise.Parameters{Frequency: 0.004, Amplitude: 0.6, Octaves: 3}))
	detail := s.Layer("detail", noise.Simplex).
		Fractal(x, y, s.Params("detail", noise.Parameters{Frequency: 0.05, Amplitude: 0.2, Octaves: 5}))
	return primary*2600 - hollows*1400 + detail*500
}

func (BioluminescentForest) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "glow_moss", Weight: 0.5},
		{Name: "rich_soil", Weight: 0.4},
		{Name: "rock", Weight: 0.1},
	}
}
