package biome

import (
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// Plateau is a raised landform with flat tops and steep cliff edges.
type Plateau struct{}

func (Plateau) Name() string {
	return "plateau"
}

func (Plateau) BaseHeight() uint16 {
	return grid.SeaLevel + 4000
}

func (Plateau) Shape(s *Sampler, c Cell) float64 {
	x, y := float64(c.X), float64(c.Y)
	primary := s.Layer("primary", noise.Simplex).
		Fractal(x, y, s.Params("primary", noise.Parameters{Frequency: 0.002, Amplitude: 1.0, Octaves: 3}))
	cliff := s.Layer("cliff", noise.Simplex).
		Ridged(x, y, s.Params("cliff", noise.Parameters{Frequency: 0.001, Amplitude: 0.9, Octaves: 2}))
	surface := s.Layer("surface", noise.Simplex).
		Fractal(x, y, s.Params("surface", noise.Parameters{Frequency: 0.01, Amplitude: 0.1, Octaves: 8}))
	// Compressing everything above the ceiling flattens the tops while the
	// untouched range below keeps the cliff faces steep.
	top := softCeiling(primary, 0.35, 0.12)
	return top*9000 + cliff*1500 + surface*800
}

func (Plateau) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "grass", Weight: 0.6},
		{Name: "rock", Weight: 0.4},
	}
}
