// Command heightmap-png generates one biome height grid and writes it out
// as a 16-bit grayscale PNG, useful for eyeballing biome recipes without a
// running service.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/dm-vev/terraforge/terra/biome"
	"github.com/dm-vev/terraforge/terra/gen"
	"github.com/dm-vev/terraforge/terra/landscape"
)

func main() {
	var (
		biomeType = flag.String("biome", "desert", "biome type to generate")
		size      = flag.Int("size", 400000, "biome size in world units")
		seed      = flag.Int64("seed", 0, "generation seed")
		workers   = flag.Int("workers", 0, "generator workers (0 = all CPUs)")
		out       = flag.String("o", "heightmap.png", "output file")
	)
	flag.Parse()

	if err := run(*biomeType, *size, *seed, *workers, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(biomeType string, size int, seed int64, workers int, out string) error {
	if err := landscape.ValidateBiomeSize(size); err != nil {
		return err
	}
	comp := landscape.ComponentCount(size)
	extent := landscape.GridExtent(comp, landscape.DefaultQuadsPerComponent)

	g := gen.New(gen.Config{Seed: seed, Workers: workers})
	hg, _, err := g.Generate(biomeType, extent, extent, biome.Config{})
	if err != nil {
		return err
	}

	img := image.NewGray16(image.Rect(0, 0, hg.SizeX, hg.SizeY))
	for y := 0; y < hg.SizeY; y++ {
		for x := 0; x < hg.SizeX; x++ {
			img.SetGray16(x, y, color.Gray16{Y: hg.At(x, y)})
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	fmt.Printf("%v: %vx%v grid (components %v)\n", out, hg.SizeX, hg.SizeY, comp)
	return nil
}
