package grid

import (
	"errors"
	"math"
)

// SeaLevel is the height sample representing zero elevation. Samples above it
// are land, samples below it are under water.
const SeaLevel = 32768

// ErrInvalidDimensions is returned when a grid is requested with a
// non-positive size on either axis.
var ErrInvalidDimensions = errors.New("grid: dimensions must be positive")

// HeightGrid is a dense row-major grid of unsigned 16-bit elevation samples.
// The buffer is owned by whoever created the grid; generators only read and
// write into it.
type HeightGrid struct {
	SizeX, SizeY int
	Samples      []uint16
}

// NewHeightGrid allocates a HeightGrid of the dimensions passed. All samples
// start at zero.
func NewHeightGrid(sizeX, sizeY int) (*HeightGrid, error) {
	if sizeX <= 0 || sizeY <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &HeightGrid{SizeX: sizeX, SizeY: sizeY, Samples: make([]uint16, sizeX*sizeY)}, nil
}

// At returns the sample at (x, y). The coordinates must be within bounds.
func (g *HeightGrid) At(x, y int) uint16 {
	return g.Samples[y*g.SizeX+x]
}

// Set writes the sample at (x, y). The coordinates must be within bounds.
func (g *HeightGrid) Set(x, y int, v uint16) {
	g.Samples[y*g.SizeX+x] = v
}

// Row returns the y-th row of the grid as a sub-slice of the sample buffer.
// Writes into the returned slice are writes into the grid.
func (g *HeightGrid) Row(y int) []uint16 {
	return g.Samples[y*g.SizeX : (y+1)*g.SizeX]
}

// FillBase sets every sample of the grid to v.
func (g *HeightGrid) FillBase(v uint16) {
	for i := range g.Samples {
		g.Samples[i] = v
	}
}

// Mean returns the arithmetic mean of all samples.
func (g *HeightGrid) Mean() float64 {
	var sum float64
	for _, s := range g.Samples {
		sum += float64(s)
	}
	return sum / float64(len(g.Samples))
}

// Variance returns the population variance of all samples.
func (g *HeightGrid) Variance() float64 {
	mean := g.Mean()
	var sum float64
	for _, s := range g.Samples {
		d := float64(s) - mean
		sum += d * d
	}
	return sum / float64(len(g.Samples))
}

// Slope approximates the local gradient magnitude at (x, y) using central
// differences, in sample units per cell. Border cells fall back to one-sided
// differences; an axis with a single sample contributes no gradient.
func (g *HeightGrid) Slope(x, y int) float64 {
	x0, x1 := max(x-1, 0), min(x+1, g.SizeX-1)
	y0, y1 := max(y-1, 0), min(y+1, g.SizeY-1)
	var dx, dy float64
	if x1 > x0 {
		dx = (float64(g.At(x1, y)) - float64(g.At(x0, y))) / float64(x1-x0)
	}
	if y1 > y0 {
		dy = (float64(g.At(x, y1)) - float64(g.At(x, y0))) / float64(y1-y0)
	}
	return math.Hypot(dx, dy)
}

// HeightSample converts a raw noise accumulation n, scaled by scale, into a
// height sample relative to sea level. The result is clamped to the uint16
// domain, so any noise magnitude produces a valid sample.
func HeightSample(n, scale float64) uint16 {
	v := math.Round(SeaLevel + n*scale)
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}

// WeightGrid is a dense row-major grid of unsigned 8-bit blend weights for a
// single named material layer.
type WeightGrid struct {
	Layer        string
	SizeX, SizeY int
	Samples      []uint8
}

// NewWeightGrid allocates a WeightGrid for the material layer passed.
func NewWeightGrid(layer string, sizeX, sizeY int) (*WeightGrid, error) {
	if sizeX <= 0 || sizeY <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &WeightGrid{Layer: layer, SizeX: sizeX, SizeY: sizeY, Samples: make([]uint8, sizeX*sizeY)}, nil
}

// At returns the weight at (x, y).
func (g *WeightGrid) At(x, y int) uint8 {
	return g.Samples[y*g.SizeX+x]
}

// Set writes the weight at (x, y).
func (g *WeightGrid) Set(x, y int, v uint8) {
	g.Samples[y*g.SizeX+x] = v
}
