package biome

import (
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// MushroomKingdom is gently undulating ground studded with rounded
// cap-shaped mounds.
type MushroomKingdom struct{}

func (MushroomKingdom) Name() string {
	return "mushroom_kingdom"
}

func (MushroomKingdom) BaseHeight() uint16 {
	return grid.SeaLevel + 600
}

func (MushroomKingdom) Shape(s *Sampler, c Cell) float64 {
	x, y := float64(c.X), float64(c.Y)
	caps := s.Layer("caps", noise.Simplex).
		Billow(x, y, s.Params("caps", noise.Parameters{Frequency: 0.015, Amplitude: 1.0, Octaves: 3}))
	ground := s.Layer("ground", noise.Simplex).
		Fractal(x, y, s.Params("ground", noise.Parameters{Frequency: 0.004, Amplitude: 0.4, Octaves: 2}))
	// Only the strongest billow bumps grow into caps; the rest stays low.
	cap := smoothstep(0.45, 0.75, caps)
	return cap*5000 + ground*900
}

func (MushroomKingdom) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "mycelium", Weight: 0.7},
		{Name: "soil", Weight: 0.2},
		{Name: "rock", Weight: 0.1},
	}
}
