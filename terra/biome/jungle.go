package biome

import (
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// Jungle is dense rolling hill terrain cut by shallow valleys, staying close
// to sea level.
type Jungle struct{}

func (Jungle) Name() string {
	return "jungle"
}

func (Jungle) BaseHeight() uint16 {
	return grid.SeaLevel + 500
}

func (Jungle) Shape(s *Sampler, c Cell) float64 {
	x, y := float64(c.X), float64(c.Y)
	primary := s.Layer("primary", noise.Simplex).
		Fractal(x, y, s.Params("primary", noise.Parameters{Frequency: 0.008, Amplitude: 1.0, Octaves: 5}))
	valley := s.Layer("valley", noise.Simplex).
		Fractal(x, y, s.Params("valley", noise.Parameters{Frequency: 0.003, Amplitude: 0.7, Octaves: 3}))
	detail := s.Layer("detail", noise.Simplex).
		Fractal(x, y, s.Params("detail", noise.Parameters{Frequency: 0.03, Amplitude: 0.3, Octaves: 7}))
	return primary*3000 + valley*1800 + detail*600
}

func (Jungle) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "rich_soil", Weight: 0.7},
		{Name: "moss", Weight: 0.2},
		{Name: "rock", Weight: 0.1},
	}
}
