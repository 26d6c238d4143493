// Package gen produces biome height grids by composing noise layers
// according to a biome recipe. Generation is pure per cell, so grids are
// filled in parallel across row batches.
package gen

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/dm-vev/terraforge/terra/biome"
	"github.com/dm-vev/terraforge/terra/grid"
)

// Config holds the tunable parameters of a Generator. The zero value is
// usable; defaults are applied by withDefaults.
type Config struct {
	// Seed is the base seed used when a request does not carry one.
	Seed int64
	// Workers is the number of goroutines filling grid rows. If zero or
	// lower, the host's available CPUs are used.
	Workers int
	// Log is the logger used for generation diagnostics. Defaults to
	// slog.Default().
	Log *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Log == nil {
		c.Log = slog.Default()
	}
	return c
}

// Generator fills height and weight grids for requested biome types. A
// Generator is stateless between calls and safe for concurrent use.
type Generator struct {
	conf Config
}

// New creates a Generator using the configuration passed.
func New(conf Config) *Generator {
	return &Generator{conf: conf.withDefaults()}
}

// Generate produces the height grid and material weight grids for the biome
// type passed. The biome type is matched case-insensitively; sizeX and sizeY
// are the grid dimensions. The config supplies per-layer noise overrides and
// recipe placement settings; a zero config is valid and uses every recipe
// default.
func (g *Generator) Generate(biomeType string, sizeX, sizeY int, cfg biome.Config) (*grid.HeightGrid, []*grid.WeightGrid, error) {
	recipe, err := biome.ByName(biomeType)
	if err != nil {
		return nil, nil, err
	}
	if err := validateConfig(cfg); err != nil {
		return nil, nil, err
	}
	hg, err := grid.NewHeightGrid(sizeX, sizeY)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = g.conf.Seed
	}

	g.fill(recipe, hg, cfg)
	weights := Weights(recipe, hg)

	g.conf.Log.Debug("generated biome grid",
		"biome", recipe.Name(), "size_x", sizeX, "size_y", sizeY,
		"seed", cfg.Seed, "weight_layers", len(weights))
	return hg, weights, nil
}

// fill computes every height sample of the grid, splitting rows across the
// configured worker count. Workers write into disjoint row ranges, so no
// synchronisation beyond the final wait is needed. Each worker keeps its own
// sampler; layer seeds are derived from the config, so the split does not
// affect the result.
func (g *Generator) fill(recipe biome.Recipe, hg *grid.HeightGrid, cfg biome.Config) {
	base := float64(recipe.BaseHeight()) - grid.SeaLevel

	workers := g.conf.Workers
	if workers > hg.SizeY {
		workers = hg.SizeY
	}
	rowsPer := (hg.SizeY + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * rowsPer
		end := start + rowsPer
		if end > hg.SizeY {
			end = hg.SizeY
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			s := biome.NewSampler(cfg)
			for y := start; y < end; y++ {
				row := hg.Row(y)
				for x := 0; x < hg.SizeX; x++ {
					off := recipe.Shape(s, biome.Cell{X: x, Y: y, SizeX: hg.SizeX, SizeY: hg.SizeY})
					row[x] = grid.HeightSample(base+off, 1)
				}
			}
		}(start, end)
	}
	wg.Wait()
}
