package biome

import (
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/noise"
)

// CrystalCaverns is jagged spike terrain built from high-frequency ridged
// noise.
type CrystalCaverns struct{}

func (CrystalCaverns) Name() string {
	return "crystal_caverns"
}

func (CrystalCaverns) BaseHeight() uint16 {
	return grid.SeaLevel + 1500
}

func (CrystalCaverns) Shape(s *Sampler, c Cell) float64 {
	x, y := float64(c.X), float64(c.Y)
	spikes := s.Layer("spikes", noise.Simplex).
		Ridged(x, y, s.Params("spikes", noise.Parameters{Frequency: 0.03, Amplitude: 1.0, Octaves: 5}))
	floor := s.Layer("floor", noise.Simplex).
		Fractal(x, y, s.Params("floor", noise.Parameters{Frequency: 0.005, Amplitude: 0.5, Octaves: 2}))
	// Ridged accumulation centres around 1; recentre so spikes cut both ways.
	return (spikes-1.0)*4500 + floor*1000
}

func (CrystalCaverns) MaterialLayers() []MaterialLayer {
	return []MaterialLayer{
		{Name: "crystal", Weight: 0.5},
		{Name: "stone", Weight: 0.5},
	}
}
