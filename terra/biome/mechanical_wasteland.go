package biome

import (
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// MechanicalWasteland is blocky terraced terrain gouged by sharp scars.
type MechanicalWasteland struct{}

func (MechanicalWasteland) Name() string {
	return "mechanical_wasteland"
}

func (MechanicalWasteland) BaseHeight() uint16 {
	return grid.SeaLevel + 1000
}

func (MechanicalWasteland) Shape(s *Sampler, c Cell) float64 {
	x, y := float64(c.X), float64(c.Y)
	plates := s.Layer("plates", noise.Simplex).
		Fractal(x, y, s.Params("plates", noise.Parameters{Frequency: 0.004, Amplitude: 1.0, Octaves: 3}))
	scars := s.Layer("scars", noise.Simplex).
		Ridged(x, y, s.Params("scars", noise.Parameters{Frequency: 0.025, Amplitude: 0.35, Octaves: 3}))
	// Quantising the plate field produces flat machined steps.
	return terrace(plates, 4)*6000 - scars*900
}

func (MechanicalWasteland) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "scrap", Weight: 0.5},
		{Name: "rust", Weight: 0.3},
		{Name: "rock", Weight: 0.2},
	}
}
