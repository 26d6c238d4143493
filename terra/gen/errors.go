package gen

import (
	"errors"
	"fmt"
	"math"

	"github.com/dm-vev/terraforge/terra/biome"
	"github.com/dm-vev/terraforge/terra/noise"
)

// InvalidConfigError reports a biome config field that fails validation. The
// Field names the offending entry, e.g. "layers.dune.frequency".
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (err InvalidConfigError) Error() string {
	return fmt.Sprintf("gen: invalid config: %v: %v", err.Field, err.Reason)
}

// validateConfig checks every request-supplied override before any grid work
// starts, so failures report the offending field rather than surfacing
// mid-generation.
func validateConfig(cfg biome.Config) error {
	for name, p := range cfg.Layers {
		if err := p.Validate(); err != nil {
			var perr noise.InvalidParametersError
			if errors.As(err, &perr) {
				return InvalidConfigError{Field: "layers." + name + "." + perr.Field, Reason: perr.Reason}
			}
			return InvalidConfigError{Field: "layers." + name, Reason: err.Error()}
		}
	}
	if cfg.Radius < 0 {
		return InvalidConfigError{Field: "radius", Reason: "must not be negative"}
	}
	if c := cfg.Center; c != nil && (math.IsNaN(c.X()) || math.IsNaN(c.Y())) {
		return InvalidConfigError{Field: "center", Reason: "must be finite"}
	}
	return nil
}
