package biome

import (
	"errors"
	"testing"
)

func TestByNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"desert", "Desert", "DESERT"} {
		r, err := ByName(name)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", name, err)
		}
		if r.Name() != "desert" {
			t.Fatalf("%q: resolved to %q", name, r.Name())
		}
	}
}

func TestByNameAlias(t *testing.T) {
	r, err := ByName("dense_jungle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name() != "jungle" {
		t.Fatalf("alias resolved to %q", r.Name())
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("moon_base")
	var uerr UnknownTypeError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	if uerr.Type != "moon_base" {
		t.Fatalf("expected error to carry the requested type, got %q", uerr.Type)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 13 {
		t.Fatalf("expected 13 registered biomes, got %v: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	for _, name := range names {
		r, err := ByName(name)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", name, err)
		}
		layers := r.MaterialLayers()
		if len(layers) == 0 {
			t.Fatalf("%v: no material layers", name)
		}
		var sum float64
		for _, l := range layers {
			sum += l.Weight
		}
		if sum < 0.99 || sum > 1.01 {
			t.Fatalf("%v: material weights sum to %v", name, sum)
		}
	}
}
