package biome

import (
	"math"

	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// Riverside is low bank terrain with a noise-guided water channel carved
// below sea level.
type Riverside struct{}

func (Riverside) Name() string {
	return "riverside"
}

func (Riverside) BaseHeight() uint16 {
	return grid.SeaLevel + 400
}

func (Riverside) Shape(s *Sampler, c Cell) float64 {
	x, y := float64(c.X), float64(c.Y)
	banks := s.Layer("banks", noise.Simplex).
		Fractal(x, y, s.Params("banks", noise.Parameters{Frequency: 0.006, Amplitude: 0.5, Octaves: 4}))
	channel := s.Layer("channel", noise.Simplex).
		Fractal(x, y, s.Params("channel", noise.Parameters{Frequency: 0.002, Amplitude: 1.0, Octaves: 2}))
	// The river follows the zero crossing of the channel field: the closer
	// the field is to zero, the deeper the carve.
	carve := 1 - smoothstep(0, 0.18, math.Abs(channel))
	return banks*1200 - carve*3000
}

func (Riverside) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "grass", Weight: 0.5},
		{Name: "silt", Weight: 0.3},
		{Name: "rock", Weight: 0.2},
	}
}
