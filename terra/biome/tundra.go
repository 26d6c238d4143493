package biome

import (
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// Tundra is mostly flat frozen plain with long, low-amplitude undulation.
type Tundra struct{}

func (Tundra) Name() string {
	return "tundra"
}

func (Tundra) BaseHeight() uint16 {
	return grid.SeaLevel + 900
}

func (Tundra) Shape(s *Sampler, c Cell) float64 {
	x, y := float64(c.X), float64(c.Y)
	primary := s.Layer("primary", noise.Simplex).
		Fractal(x, y, s.Params("primary", noise.Parameters{Frequency: 0.002, Amplitude: 0.5, Octaves: 2}))
	detail := s.Layer("detail", noise.Simplex).
		Fractal(x, y, s.Params("detail", noise.Parameters{Frequency: 0.02, Amplitude: 0.1, Octaves: 3}))
	return primary*1400 + detail*300
}

func (Tundra) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "snow", Weight: 0.7},
		{Name: "rock", Weight: 0.3},
	}
}
