// Package biome defines the terrain recipes that shape biome height fields.
// Each biome archetype is a Recipe composing one or more noise layers into a
// signed height offset per grid cell, plus the material layers painted over
// the resulting terrain.
package biome

import (
	"math"

	"github.com/dm-vev/terraforge/terra/noise"
	"github.com/go-gl/mathgl/mgl64"
)

// MaterialLayer describes one material blend layer of a biome along with its
// base blend weight. Weights of one recipe sum to 1.
type MaterialLayer struct {
	Name   string
	Weight float64
}

// Cell identifies one grid cell being shaped, along with the dimensions of
// the grid it belongs to.
type Cell struct {
	X, Y         int
	SizeX, SizeY int
}

// Config carries the per-request generation settings shared by all layers of
// a recipe. Layers maps layer names to noise parameter overrides; layers not
// present use the recipe's defaults.
type Config struct {
	Seed   int64
	Layers map[string]noise.Parameters
	// Center and Radius position the cone of radial recipes such as
	// volcano. When Center is nil the grid centre is used; when Radius is
	// zero a radius proportional to the grid is used.
	Center *mgl64.Vec2
	Radius float64
}

// Recipe is a biome terrain archetype. Implementations are stateless values;
// all request state lives in the Sampler passed to Shape.
type Recipe interface {
	// Name returns the canonical lower-case biome name.
	Name() string
	// BaseHeight returns the height sample the recipe's offsets apply to.
	BaseHeight() uint16
	// Shape returns the signed height offset, in sample units, for the
	// cell passed.
	Shape(s *Sampler, c Cell) float64
	// MaterialLayers returns the material blend layers of the biome,
	// ordered from the dominant surface layer to the underlying rock.
	MaterialLayers() []MaterialLayer
}

// Sampler hands out the decorrelated noise layers a recipe samples from.
// Layers are created lazily and cached by name, seeded from the request seed
// and the layer name, so identical configs reproduce identical terrain.
//
// A Sampler is not safe for concurrent use; generators create one per
// worker.
type Sampler struct {
	conf    Config
	sources map[string]*noise.Source
}

// NewSampler creates a Sampler for the request config passed.
func NewSampler(conf Config) *Sampler {
	return &Sampler{conf: conf, sources: map[string]*noise.Source{}}
}

// Config returns the request config the Sampler was created with.
func (s *Sampler) Config() Config {
	return s.conf
}

// Layer returns the noise source for the named layer, creating it on first
// use with a seed derived from the request seed and the layer name.
func (s *Sampler) Layer(name string, backend noise.Backend) *noise.Source {
	if src, ok := s.sources[name]; ok {
		return src
	}
	src := noise.NewSource(backend, noise.LayerSeed(s.conf.Seed, name))
	s.sources[name] = src
	return src
}

// Params returns the noise parameters for the named layer: the request
// override if one was supplied, the recipe default otherwise.
func (s *Sampler) Params(name string, def noise.Parameters) noise.Parameters {
	if p, ok := s.conf.Layers[name]; ok {
		return p
	}
	return def
}

// softCeiling compresses values above ceil by the softness factor, producing
// flat-topped shapes while leaving the slopes below the ceiling untouched.
func softCeiling(n, ceil, softness float64) float64 {
	if n <= ceil {
		return n
	}
	return ceil + (n-ceil)*softness
}

// smoothstep maps n to [0, 1] with zero derivative at both edges.
func smoothstep(edge0, edge1, n float64) float64 {
	t := (n - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// terrace quantises n into the given number of steps per unit, producing
// blocky stepped terrain.
func terrace(n float64, steps float64) float64 {
	return math.Floor(n*steps) / steps
}
