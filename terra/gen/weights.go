package gen

import (
	"github.com/dm-vev/terraforge/terra/biome"
	"github.com/dm-vev/terraforge/terra/grid"
)

// slopeHalf is the gradient magnitude, in sample units per cell, at which
// half of the surface blend weight has shifted to the underlying layer.
const slopeHalf = 600

// Weights derives one material weight grid per layer of the recipe from the
// height grid passed. Base weights come from the recipe table; steep cells
// shift blend weight from the surface layers toward the last layer of the
// table, which by recipe convention is the underlying rock-like material.
func Weights(recipe biome.Recipe, hg *grid.HeightGrid) []*grid.WeightGrid {
	layers := recipe.MaterialLayers()
	if len(layers) == 0 {
		return nil
	}
	grids := make([]*grid.WeightGrid, len(layers))
	for i, l := range layers {
		grids[i], _ = grid.NewWeightGrid(l.Name, hg.SizeX, hg.SizeY)
	}
	last := len(layers) - 1
	for y := 0; y < hg.SizeY; y++ {
		for x := 0; x < hg.SizeX; x++ {
			slope := hg.Slope(x, y)
			rocky := slope / (slope + slopeHalf)
			for i, l := range layers {
				w := l.Weight * (1 - rocky)
				if i == last {
					w = l.Weight + (1-l.Weight)*rocky
				}
				grids[i].Set(x, y, weightSample(w))
			}
		}
	}
	return grids
}

func weightSample(w float64) uint8 {
	v := w * 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
