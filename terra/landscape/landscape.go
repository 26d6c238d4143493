// Package landscape models the terrain consumer side of biome generation:
// landscape descriptors, the size constraints governing grid dimensions, and
// a persistent store that generated grids are committed to.
package landscape

import (
	"fmt"
	"math"
	"time"

	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

const (
	// MinBiomeSize and MaxBiomeSize bound the requested biome size in
	// world units (3km to 5km).
	MinBiomeSize = 300000
	MaxBiomeSize = 500000

	// componentSpan is the world-unit span covered by one landscape
	// component.
	componentSpan = 50900

	// DefaultQuadsPerComponent and DefaultSubsectionQuads are the
	// component tessellation defaults used when a request does not
	// override them.
	DefaultQuadsPerComponent = 63
	DefaultSubsectionQuads   = 31
)

// SizeError is returned for biome sizes outside the supported range.
type SizeError struct {
	Size int
}

func (err SizeError) Error() string {
	return fmt.Sprintf("landscape: biome size %v out of range [%v, %v]", err.Size, MinBiomeSize, MaxBiomeSize)
}

// ValidateBiomeSize checks that the requested biome size lies within the
// supported range.
func ValidateBiomeSize(size int) error {
	if size < MinBiomeSize || size > MaxBiomeSize {
		return SizeError{Size: size}
	}
	return nil
}

// ComponentCount derives the per-axis landscape component count for a biome
// size, clamped to [4, 32].
func ComponentCount(size int) int {
	n := int(math.Ceil(float64(size) / componentSpan))
	if n < 4 {
		return 4
	}
	if n > 32 {
		return 32
	}
	return n
}

// GridExtent returns the per-axis sample count of a height grid covering the
// component count passed.
func GridExtent(componentCount, quadsPerComponent int) int {
	return componentCount*quadsPerComponent + 1
}

// Descriptor identifies one landscape and the tessellation its height grid
// was generated for.
type Descriptor struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Location          mgl64.Vec3 `json:"location"`
	Scale             mgl64.Vec3 `json:"scale"`
	ComponentsX       int        `json:"components_x"`
	ComponentsY       int        `json:"components_y"`
	QuadsPerComponent int        `json:"quads_per_component"`
	SizeX             int        `json:"size_x"`
	SizeY             int        `json:"size_y"`
	Biome             string     `json:"biome,omitempty"`
	WeightLayers      []string   `json:"weight_layers,omitempty"`
	Created           time.Time  `json:"created"`
}

// NewDescriptor creates a Descriptor for the component layout passed, with a
// fresh ID and the default 100-unit scale.
func NewDescriptor(name string, location mgl64.Vec3, componentsX, componentsY, quadsPerComponent int) Descriptor {
	return Descriptor{
		ID:                uuid.New(),
		Name:              name,
		Location:          location,
		Scale:             mgl64.Vec3{100, 100, 100},
		ComponentsX:       componentsX,
		ComponentsY:       componentsY,
		QuadsPerComponent: quadsPerComponent,
		SizeX:             GridExtent(componentsX, quadsPerComponent),
		SizeY:             GridExtent(componentsY, quadsPerComponent),
		Created:           time.Now().UTC(),
	}
}

// Consumer commits a generated height grid and its material weight layers
// into a renderable or persisted landscape representation. The Store
// implements Consumer; hosts may substitute their own adapter.
type Consumer interface {
	Commit(name string, heights *grid.HeightGrid, weights []*grid.WeightGrid) error
}
