// Package foliage derives deterministic foliage placement plans from
// generated height grids. Placement is a pure function of the grid, the
// biome's species table and a seed: a cell spawns a species when its
// placement hash rolls under the species density and the local slope is
// within the species limit.
package foliage

import (
	"github.com/dm-vev/terraforge/terra/biome"
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/segmentio/fasthash/fnv1a"
)

// Species describes one plantable foliage type of a biome.
type Species struct {
	// Type names the foliage archetype, e.g. "cactus" or "large_tree".
	Type string
	// Density is the per-cell spawn probability before the biome
	// multiplier is applied.
	Density float64
	// ScaleMin and ScaleMax bound the uniform scale of spawned instances.
	ScaleMin, ScaleMax float64
	// MaxSlope is the steepest gradient, in sample units per cell, the
	// species tolerates.
	MaxSlope float64
}

// Instance is one placed foliage instance on a height grid.
type Instance struct {
	Species string
	X, Y    int
	Scale   float64
}

type table struct {
	multiplier float64
	species    []Species
}

// Plan computes the foliage instances for the named biome over the height
// grid passed. Identical inputs produce identical plans.
func Plan(biomeName string, hg *grid.HeightGrid, seed int64) ([]Instance, error) {
	r, err := biome.ByName(biomeName)
	if err != nil {
		return nil, err
	}
	t, ok := tables[r.Name()]
	if !ok {
		return nil, biome.UnknownTypeError{Type: biomeName}
	}

	var out []Instance
	for y := 0; y < hg.SizeY; y++ {
		for x := 0; x < hg.SizeX; x++ {
			slope := hg.Slope(x, y)
			cell := uint64(y*hg.SizeX+x) ^ uint64(seed)*0x9e3779b97f4a7c15
			for i, sp := range t.species {
				if slope > sp.MaxSlope {
					continue
				}
				h := fnv1a.HashUint64(cell ^ uint64(i+1)*0xff51afd7ed558ccd)
				if float64(h%1_000_000)/1_000_000 >= sp.Density*t.multiplier {
					continue
				}
				scale := sp.ScaleMin + (sp.ScaleMax-sp.ScaleMin)*float64(fnv1a.HashUint64(h)%1000)/1000
				out = append(out, Instance{Species: sp.Type, X: x, Y: y, Scale: scale})
			}
		}
	}
	return out, nil
}
