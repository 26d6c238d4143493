package biome

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownTypeError is returned when a biome type string does not match any
// registered recipe. It carries the original string for reporting.
type UnknownTypeError struct {
	Type string
}

func (err UnknownTypeError) Error() string {
	return fmt.Sprintf("biome: unknown biome type %q", err.Type)
}

var recipes = map[string]Recipe{}

// Register registers a Recipe under its canonical name and any aliases
// passed. Names are matched case-insensitively.
func Register(r Recipe, aliases ...string) {
	recipes[strings.ToLower(r.Name())] = r
	for _, alias := range aliases {
		recipes[strings.ToLower(alias)] = r
	}
}

// ByName finds the recipe registered under the name passed, matching
// case-insensitively. An UnknownTypeError carrying the original string is
// returned if no recipe matches.
func ByName(name string) (Recipe, error) {
	r, ok := recipes[strings.ToLower(name)]
	if !ok {
		return nil, UnknownTypeError{Type: name}
	}
	return r, nil
}

// Names returns the sorted canonical names of all registered recipes.
func Names() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, r := range recipes {
		if _, ok := seen[r.Name()]; ok {
			continue
		}
		seen[r.Name()] = struct{}{}
		names = append(names, r.Name())
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Desert{})
	Register(Plateau{})
	Register(Jungle{}, "dense_jungle")
	Register(Riverside{})
	Register(Tundra{})
	Register(Volcano{})
	Register(Marsh{})
	Register(MushroomKingdom{})
	Register(CrystalCaverns{})
	Register(FloatingIslands{})
	Register(BioluminescentForest{})
	Register(MechanicalWasteland{})
	Register(CoralReef{})
}
