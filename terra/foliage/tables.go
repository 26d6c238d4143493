package foliage

// Per-biome species tables. Densities are per-cell probabilities; the
// multiplier scales a whole biome's density up or down relative to others
// (deserts sparse, jungles dense).
var tables = map[string]table{
	"desert": {multiplier: 0.1, species: []Species{
		{Type: "cactus", Density: 0.05, ScaleMin: 0.8, ScaleMax: 1.5, MaxSlope: 300},
		{Type: "dead_tree", Density: 0.02, ScaleMin: 0.6, ScaleMax: 1.2, MaxSlope: 150},
		{Type: "desert_grass", Density: 0.03, ScaleMin: 0.5, ScaleMax: 1.0, MaxSlope: 250},
	}},
	"plateau": {multiplier: 0.4, species: []Species{
		{Type: "short_grass", Density: 0.3, ScaleMin: 0.8, ScaleMax: 1.2, MaxSlope: 450},
		{Type: "rock_moss", Density: 0.1, ScaleMin: 0.5, ScaleMax: 0.8, MaxSlope: 600},
		{Type: "highland_shrub", Density: 0.05, ScaleMin: 0.7, ScaleMax: 1.3, MaxSlope: 300},
		{Type: "boulder", Density: 0.02, ScaleMin: 1.0, ScaleMax: 2.5, MaxSlope: 200},
	}},
	"jungle": {multiplier: 0.9, species: []Species{
		{Type: "large_tree", Density: 0.15, ScaleMin: 1.5, ScaleMax: 3.0, MaxSlope: 350},
		{Type: "medium_tree", Density: 0.2, ScaleMin: 1.0, ScaleMax: 2.0, MaxSlope: 400},
		{Type: "jungle_bush", Density: 0.4, ScaleMin: 0.8, ScaleMax: 1.5, MaxSlope: 500},
		{Type: "fern", Density: 0.3, ScaleMin: 0.5, ScaleMax: 1.2, MaxSlope: 450},
		{Type: "vine_clusters", Density: 0.1, ScaleMin: 1.0, ScaleMax: 2.0, MaxSlope: 300},
	}},
	"riverside": {multiplier: 0.7, species: []Species{
		{Type: "willow", Density: 0.08, ScaleMin: 1.2, ScaleMax: 2.2, MaxSlope: 250},
		{Type: "reed", Density: 0.35, ScaleMin: 0.6, ScaleMax: 1.1, MaxSlope: 200},
		{Type: "river_grass", Density: 0.3, ScaleMin: 0.5, ScaleMax: 1.0, MaxSlope: 350},
	}},
	"tundra": {multiplier: 0.2, species: []Species{
		{Type: "lichen", Density: 0.2, ScaleMin: 0.4, ScaleMax: 0.7, MaxSlope: 400},
		{Type: "dwarf_shrub", Density: 0.05, ScaleMin: 0.5, ScaleMax: 0.9, MaxSlope: 250},
	}},
	"volcano": {multiplier: 0.05, species: []Species{
		{Type: "charred_stump", Density: 0.03, ScaleMin: 0.6, ScaleMax: 1.2, MaxSlope: 300},
		{Type: "ash_shrub", Density: 0.05, ScaleMin: 0.4, ScaleMax: 0.8, MaxSlope: 400},
	}},
	"marsh": {multiplier: 0.6, species: []Species{
		{Type: "reed", Density: 0.4, ScaleMin: 0.6, ScaleMax: 1.2, MaxSlope: 150},
		{Type: "moss_clump", Density: 0.25, ScaleMin: 0.4, ScaleMax: 0.8, MaxSlope: 200},
		{Type: "bog_shrub", Density: 0.1, ScaleMin: 0.6, ScaleMax: 1.1, MaxSlope: 150},
	}},
	"mushroom_kingdom": {multiplier: 0.5, species: []Species{
		{Type: "giant_mushroom", Density: 0.04, ScaleMin: 1.5, ScaleMax: 3.5, MaxSlope: 250},
		{Type: "small_mushroom", Density: 0.3, ScaleMin: 0.3, ScaleMax: 0.8, MaxSlope: 400},
		{Type: "mycelium_patch", Density: 0.2, ScaleMin: 0.5, ScaleMax: 1.0, MaxSlope: 350},
	}},
	"crystal_caverns": {multiplier: 0.3, species: []Species{
		{Type: "crystal_shard", Density: 0.12, ScaleMin: 0.8, ScaleMax: 2.4, MaxSlope: 700},
		{Type: "cave_moss", Density: 0.15, ScaleMin: 0.4, ScaleMax: 0.8, MaxSlope: 500},
	}},
	"floating_islands": {multiplier: 0.4, species: []Species{
		{Type: "sky_grass", Density: 0.3, ScaleMin: 0.6, ScaleMax: 1.1, MaxSlope: 300},
		{Type: "wind_tree", Density: 0.06, ScaleMin: 1.0, ScaleMax: 2.0, MaxSlope: 200},
	}},
	"bioluminescent_forest": {multiplier: 0.8, species: []Species{
		{Type: "glow_tree", Density: 0.12, ScaleMin: 1.2, ScaleMax: 2.5, MaxSlope: 350},
		{Type: "glow_fern", Density: 0.3, ScaleMin: 0.5, ScaleMax: 1.2, MaxSlope: 450},
		{Type: "spore_cluster", Density: 0.15, ScaleMin: 0.3, ScaleMax: 0.9, MaxSlope: 400},
	}},
	"mechanical_wasteland": {multiplier: 0.15, species: []Species{
		{Type: "scrap_pile", Density: 0.08, ScaleMin: 0.8, ScaleMax: 1.8, MaxSlope: 300},
		{Type: "broken_pylon", Density: 0.02, ScaleMin: 1.5, ScaleMax: 3.0, MaxSlope: 150},
	}},
	"coral_reef": {multiplier: 0.8, species: []Species{
		{Type: "coral_fan", Density: 0.25, ScaleMin: 0.6, ScaleMax: 1.6, MaxSlope: 450},
		{Type: "sea_grass", Density: 0.35, ScaleMin: 0.5, ScaleMax: 1.1, MaxSlope: 350},
		{Type: "anemone", Density: 0.12, ScaleMin: 0.3, ScaleMax: 0.8, MaxSlope: 300},
	}},
}
