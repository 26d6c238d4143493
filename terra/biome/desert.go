package biome

import (
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// Desert is a dryland of large rolling dunes overlaid with fine wind-blown
// surface detail.
type Desert struct{}

func (Desert) Name() string {
	return "desert"
}

func (Desert) BaseHeight() uint16 {
	return grid.SeaLevel
}

func (Desert) Shape(s *Sampler, c Cell) float64 {
	x, y := float64(c.X), float64(c.Y)
	dune := s.Layer("dune", noise.Perlin).
		Fractal(x*0.001, y*0.001, s.Params("dune", noise.Parameters{Frequency: 0.5, Amplitude: 0.8, Octaves: 2}))
	detail := s.Layer("detail", noise.Perlin).
		Fractal(x*0.02, y*0.02, s.Params("detail", noise.Parameters{Frequency: 1.0, Amplitude: 0.2, Octaves: 6}))
	return dune*8192 + detail*2048
}

func (Desert) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "sand", Weight: 0.8},
		{Name: "rock", Weight: 0.2},
	}
}
