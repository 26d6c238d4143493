// Package noise implements deterministic fractal noise evaluation used to
// shape biome height fields. A Source wraps one of two 2D gradient noise
// primitives and exposes fBm, ridged and billow accumulation over it.
package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/cespare/xxhash/v2"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Backend selects the gradient noise primitive backing a Source.
type Backend int

const (
	// Perlin evaluates classic Perlin gradient noise.
	Perlin Backend = iota
	// Simplex evaluates OpenSimplex gradient noise.
	Simplex
)

// Source is a deterministic 2D gradient noise field. Two Sources constructed
// with the same backend and seed produce identical values for identical
// coordinates. A Source is safe for concurrent use once constructed.
type Source struct {
	backend Backend
	perlin  *perlin.Perlin
	simplex opensimplex.Noise
}

// NewSource creates a noise Source using the backend and seed passed.
func NewSource(backend Backend, seed int64) *Source {
	s := &Source{backend: backend}
	switch backend {
	case Simplex:
		s.simplex = opensimplex.New(seed)
	default:
		// A single harmonic keeps the primitive within [-1, 1]; octave
		// stacking happens in the fractal accumulators.
		s.perlin = perlin.NewPerlin(2, 2, 1, seed)
	}
	return s
}

// Eval returns the raw primitive value at (x, y), in approximately [-1, 1].
func (s *Source) Eval(x, y float64) float64 {
	if s.backend == Simplex {
		return s.simplex.Eval2(x, y)
	}
	return s.perlin.Noise2D(x, y)
}

// LayerSeed derives a per-layer seed from a base seed and a layer name, so
// that layers of one recipe sample decorrelated fields while remaining
// reproducible for the same base seed.
func LayerSeed(base int64, layer string) int64 {
	return base ^ int64(xxhash.Sum64String(layer))
}
