package biome

import (
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// FloatingIslands is raised island plateaus separated by deep sunken
// channels, giving the impression of islands suspended over a void.
type FloatingIslands struct{}

func (FloatingIslands) Name() string {
	return "floating_islands"
}

func (FloatingIslands) BaseHeight() uint16 {
	return grid.SeaLevel
}

func (FloatingIslands) Shape(s *Sampler, c Cell) float64 {
	x, y := float64(c.X), float64(c.Y)
	mass := s.Layer("mass", noise.Simplex).
		Fractal(x, y, s.Params("mass", noise.Parameters{Frequency: 0.006, Amplitude: 1.0, Octaves: 4}))
	detail := s.Layer("detail", noise.Simplex).
		Fractal(x, y, s.Params("detail", noise.Parameters{Frequency: 0.02, Amplitude: 0.3, Octaves: 4}))
	// Cells above the mass threshold become island tops, everything else
	// drops into the void floor.
	island := smoothstep(0.15, 0.45, mass)
	return island*9000 - 3000 + detail*island*1200
}

func (FloatingIslands) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "grass", Weight: 0.5},
		{Name: "stone", Weight: 0.5},
	}
}
