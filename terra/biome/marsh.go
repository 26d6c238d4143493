package biome

import (
	"math"

	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// Marsh is waterlogged flatland barely above sea level, broken by shallow
// pools.
type Marsh struct{}

func (Marsh) Name() string {
	return "marsh"
}

func (Marsh) BaseHeight() uint16 {
	return grid.SeaLevel + 120
}

func (Marsh) Shape(s *Sampler, c Cell) float64 {
	x, y := float64(c.X), float64(c.Y)
	ground := s.Layer("ground", noise.Simplex).
		Fractal(x, y, s.Params("ground", noise.Parameters{Frequency: 0.01, Amplitude: 0.4, Octaves: 3}))
	pools := s.Layer("pools", noise.Simplex).
		Billow(x, y, s.Params("pools", noise.Parameters{Frequency: 0.004, Amplitude: 0.6, Octaves: 2}))
	// Cubing the ground field compresses the small values, flattening most
	// of the marsh while keeping occasional hummocks.
	flat := ground * ground * ground
	var pool float64
	if pools > 0.5 {
		pool = (pools - 0.5) * 1600
	}
	return flat*900 - pool - math.Abs(ground)*120
}

func (Marsh) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "mud", Weight: 0.6},
		{Name: "grass", Weight: 0.3},
		{Name: "rock", Weight: 0.1},
	}
}
