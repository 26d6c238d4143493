package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dm-vev/terraforge/terra/biome"
	"github.com/dm-vev/terraforge/terra/blueprint"
	"github.com/dm-vev/terraforge/terra/foliage"
	"github.com/dm-vev/terraforge/terra/gen"
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/landscape"
	"github.com/dm-vev/terraforge/terra/noise"
	"github.com/go-gl/mathgl/mgl64"
)

// maxFoliageInstances caps how many placed instances a spawn_foliage
// response carries; the full count is always reported.
const maxFoliageInstances = 100

// Handlers binds the bridge command set to the terrain components.
type Handlers struct {
	// Log is the logger used by the handlers. Defaults to slog.Default().
	Log *slog.Logger
	// Generator fills biome height grids.
	Generator *gen.Generator
	// Landscapes stores landscape descriptors and committed grids.
	Landscapes *landscape.Store
	// Consumer receives generated grids. Defaults to Landscapes.
	Consumer landscape.Consumer
	// Blueprints is the blueprint asset store backing the blueprint
	// commands.
	Blueprints blueprint.Store
	// Seed is the base seed for requests that do not carry one.
	Seed int64

	started time.Time
}

// RegisterAll registers every bridge command on the registry passed.
func (h *Handlers) RegisterAll(reg *Registry) error {
	if h.Log == nil {
		h.Log = slog.Default()
	}
	if h.Consumer == nil {
		h.Consumer = h.Landscapes
	}
	if h.Blueprints == nil {
		h.Blueprints = blueprint.NewMemoryStore()
	}
	h.started = time.Now()

	for name, fn := range map[string]func(json.RawMessage) (any, error){
		"ping":                       h.ping,
		"status":                     h.status,
		"create_landscape":           h.createLandscape,
		"generate_heightmap":         h.generateHeightmap,
		"generate_biome":             h.generateBiome,
		"get_landscape_info":         h.landscapeInfo,
		"list_landscapes":            h.listLandscapes,
		"paint_landscape_material":   h.paintLandscapeMaterial,
		"create_landscape_layer":     h.createLandscapeLayer,
		"spawn_foliage":              h.spawnFoliage,
		"create_blueprint":           h.createBlueprint,
		"add_component_to_blueprint": h.addComponent,
		"set_blueprint_property":     h.setBlueprintProperty,
		"compile_blueprint":          h.compileBlueprint,
	} {
		if err := reg.Register(name, HandlerFunc(fn)); err != nil {
			return err
		}
	}
	return nil
}

// rollback removes a freshly created landscape whose grid commit failed, so
// the name stays free for a retried request.
func (h *Handlers) rollback(name string) {
	if err := h.Landscapes.Delete(name); err != nil {
		h.Log.Error("roll back landscape", "name", name, "err", err)
	}
}

func missingParam(field string) error {
	return fmt.Errorf("missing %q parameter", field)
}

func decodeParams(params json.RawMessage, v any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return fmt.Errorf("decode params: %w", err)
	}
	return nil
}

func locationVec(loc []float64) mgl64.Vec3 {
	var v mgl64.Vec3
	for i := 0; i < len(loc) && i < 3; i++ {
		v[i] = loc[i]
	}
	return v
}

func (h *Handlers) ping(json.RawMessage) (any, error) {
	return map[string]any{"pong": true, "time": time.Now().UTC().Format(time.RFC3339)}, nil
}

func (h *Handlers) status(json.RawMessage) (any, error) {
	descs, err := h.Landscapes.List()
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"uptime_seconds": int(time.Since(h.started).Seconds()),
		"landscapes":     len(descs),
		"biomes":         biome.Names(),
	}, nil
}

func (h *Handlers) createLandscape(params json.RawMessage) (any, error) {
	var p struct {
		Name              string    `json:"name"`
		Location          []float64 `json:"location"`
		ComponentCountX   int       `json:"component_count_x"`
		ComponentCountY   int       `json:"component_count_y"`
		QuadsPerComponent int       `json:"quads_per_component"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.ComponentCountX <= 0 {
		p.ComponentCountX = 8
	}
	if p.ComponentCountY <= 0 {
		p.ComponentCountY = 8
	}
	if p.QuadsPerComponent <= 0 {
		p.QuadsPerComponent = landscape.DefaultQuadsPerComponent
	}
	if p.Name == "" {
		p.Name = "BiomeLandscape_" + time.Now().UTC().Format("2006.01.02-15.04.05")
	}

	desc := landscape.NewDescriptor(p.Name, locationVec(p.Location), p.ComponentCountX, p.ComponentCountY, p.QuadsPerComponent)
	if err := h.Landscapes.Create(desc); err != nil {
		return nil, err
	}

	// New landscapes start as a flat plane at sea level, ready for a
	// heightmap pass.
	hg, err := grid.NewHeightGrid(desc.SizeX, desc.SizeY)
	if err != nil {
		return nil, err
	}
	hg.FillBase(grid.SeaLevel)
	if err := h.Consumer.Commit(desc.Name, hg, nil); err != nil {
		h.rollback(desc.Name)
		return nil, err
	}
	return map[string]any{
		"landscape_name": desc.Name,
		"size_x":         desc.SizeX,
		"size_y":         desc.SizeY,
	}, nil
}

func (h *Handlers) generateHeightmap(params json.RawMessage) (any, error) {
	var p struct {
		LandscapeName string `json:"landscape_name"`
		NoiseSettings *struct {
			Frequency *float64 `json:"frequency"`
			Amplitude *float64 `json:"amplitude"`
			Octaves   *int     `json:"octaves"`
		} `json:"noise_settings"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.LandscapeName == "" {
		return nil, missingParam("landscape_name")
	}
	if p.NoiseSettings == nil {
		return nil, missingParam("noise_settings")
	}

	np := noise.Parameters{Frequency: 0.005, Amplitude: 1.0, Octaves: 4}
	if f := p.NoiseSettings.Frequency; f != nil {
		np.Frequency = *f
	}
	if a := p.NoiseSettings.Amplitude; a != nil {
		np.Amplitude = *a
	}
	if o := p.NoiseSettings.Octaves; o != nil {
		np.Octaves = *o
	}
	if err := np.Validate(); err != nil {
		var perr noise.InvalidParametersError
		if errors.As(err, &perr) {
			return nil, gen.InvalidConfigError{Field: "noise_settings." + perr.Field, Reason: perr.Reason}
		}
		return nil, err
	}

	desc, err := h.Landscapes.ByName(p.LandscapeName)
	if err != nil {
		return nil, err
	}
	hg, err := grid.NewHeightGrid(desc.SizeX, desc.SizeY)
	if err != nil {
		return nil, err
	}
	src := noise.NewSource(noise.Perlin, h.Seed)
	for y := 0; y < hg.SizeY; y++ {
		for x := 0; x < hg.SizeX; x++ {
			n := src.Fractal(float64(x), float64(y), np)
			hg.Set(x, y, grid.HeightSample(n, 16384))
		}
	}
	if err := h.Consumer.Commit(desc.Name, hg, nil); err != nil {
		return nil, err
	}
	return map[string]any{
		"landscape_name":   desc.Name,
		"heightmap_size_x": hg.SizeX,
		"heightmap_size_y": hg.SizeY,
	}, nil
}

func (h *Handlers) generateBiome(params json.RawMessage) (any, error) {
	var p struct {
		BiomeType string                      `json:"biome_type"`
		Name      string                      `json:"name"`
		Location  []float64                   `json:"location"`
		Size      int                         `json:"size"`
		Seed      int64                       `json:"seed"`
		Layers    map[string]noise.Parameters `json:"layers"`
		Center    []float64                   `json:"center"`
		Radius    float64                     `json:"radius"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.BiomeType == "" {
		return nil, missingParam("biome_type")
	}
	if p.Size == 0 {
		p.Size = 400000
	}
	if err := landscape.ValidateBiomeSize(p.Size); err != nil {
		return nil, err
	}

	cfg := biome.Config{Seed: p.Seed, Layers: p.Layers, Radius: p.Radius}
	if len(p.Center) >= 2 {
		cfg.Center = &mgl64.Vec2{p.Center[0], p.Center[1]}
	}

	comp := landscape.ComponentCount(p.Size)
	extent := landscape.GridExtent(comp, landscape.DefaultQuadsPerComponent)
	hg, weights, err := h.Generator.Generate(p.BiomeType, extent, extent, cfg)
	if err != nil {
		return nil, err
	}

	recipe, err := biome.ByName(p.BiomeType)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = "BiomeLandscape_" + time.Now().UTC().Format("2006.01.02-15.04.05")
	}
	desc := landscape.NewDescriptor(p.Name, locationVec(p.Location), comp, comp, landscape.DefaultQuadsPerComponent)
	desc.Biome = recipe.Name()
	if err := h.Landscapes.Create(desc); err != nil {
		return nil, err
	}
	if err := h.Consumer.Commit(desc.Name, hg, weights); err != nil {
		h.rollback(desc.Name)
		return nil, err
	}

	layers := make([]string, len(weights))
	for i, w := range weights {
		layers[i] = w.Layer
	}
	return map[string]any{
		"biome_type":     recipe.Name(),
		"landscape_name": desc.Name,
		"biome_size":     p.Size,
		"size_x":         hg.SizeX,
		"size_y":         hg.SizeY,
		"weight_layers":  layers,
	}, nil
}

func (h *Handlers) landscapeInfo(params json.RawMessage) (any, error) {
	var p struct {
		LandscapeName string `json:"landscape_name"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.LandscapeName == "" {
		return nil, missingParam("landscape_name")
	}
	desc, err := h.Landscapes.ByName(p.LandscapeName)
	if err != nil {
		return nil, err
	}
	result := map[string]any{"landscape": desc}
	if hg, err := h.Landscapes.Heights(p.LandscapeName); err == nil {
		result["height_mean"] = hg.Mean()
		result["height_variance"] = hg.Variance()
	}
	return result, nil
}

func (h *Handlers) listLandscapes(json.RawMessage) (any, error) {
	descs, err := h.Landscapes.List()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(descs))
	for i, desc := range descs {
		names[i] = desc.Name
	}
	return map[string]any{"landscapes": names, "count": len(names)}, nil
}

func (h *Handlers) paintLandscapeMaterial(params json.RawMessage) (any, error) {
	var p struct {
		LandscapeName string `json:"landscape_name"`
		BiomeType     string `json:"biome_type"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.LandscapeName == "" {
		return nil, missingParam("landscape_name")
	}
	desc, err := h.Landscapes.ByName(p.LandscapeName)
	if err != nil {
		return nil, err
	}
	if p.BiomeType == "" {
		p.BiomeType = desc.Biome
	}
	if p.BiomeType == "" {
		return nil, missingParam("biome_type")
	}
	recipe, err := biome.ByName(p.BiomeType)
	if err != nil {
		return nil, err
	}
	hg, err := h.Landscapes.Heights(p.LandscapeName)
	if err != nil {
		return nil, err
	}
	weights := gen.Weights(recipe, hg)
	if err := h.Consumer.Commit(desc.Name, nil, weights); err != nil {
		return nil, err
	}
	layers := make([]string, len(weights))
	for i, w := range weights {
		layers[i] = w.Layer
	}
	return map[string]any{"landscape_name": desc.Name, "weight_layers": layers}, nil
}

func (h *Handlers) createLandscapeLayer(params json.RawMessage) (any, error) {
	var p struct {
		LandscapeName string `json:"landscape_name"`
		LayerName     string `json:"layer_name"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.LandscapeName == "" {
		return nil, missingParam("landscape_name")
	}
	if p.LayerName == "" {
		return nil, missingParam("layer_name")
	}
	desc, err := h.Landscapes.ByName(p.LandscapeName)
	if err != nil {
		return nil, err
	}
	wg, err := grid.NewWeightGrid(p.LayerName, desc.SizeX, desc.SizeY)
	if err != nil {
		return nil, err
	}
	if err := h.Consumer.Commit(desc.Name, nil, []*grid.WeightGrid{wg}); err != nil {
		return nil, err
	}
	return map[string]any{"landscape_name": desc.Name, "layer_name": p.LayerName}, nil
}

func (h *Handlers) spawnFoliage(params json.RawMessage) (any, error) {
	var p struct {
		LandscapeName string `json:"landscape_name"`
		BiomeType     string `json:"biome_type"`
		Seed          int64  `json:"seed"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.LandscapeName == "" {
		return nil, missingParam("landscape_name")
	}
	desc, err := h.Landscapes.ByName(p.LandscapeName)
	if err != nil {
		return nil, err
	}
	if p.BiomeType == "" {
		p.BiomeType = desc.Biome
	}
	if p.BiomeType == "" {
		return nil, missingParam("biome_type")
	}
	hg, err := h.Landscapes.Heights(p.LandscapeName)
	if err != nil {
		return nil, err
	}
	if p.Seed == 0 {
		p.Seed = h.Seed
	}
	plan, err := foliage.Plan(p.BiomeType, hg, p.Seed)
	if err != nil {
		return nil, err
	}
	instances := plan
	if len(instances) > maxFoliageInstances {
		instances = instances[:maxFoliageInstances]
	}
	return map[string]any{
		"landscape_name": desc.Name,
		"count":          len(plan),
		"instances":      instances,
	}, nil
}

func (h *Handlers) createBlueprint(params json.RawMessage) (any, error) {
	var p struct {
		Name        string `json:"name"`
		ParentClass string `json:"parent_class"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, missingParam("name")
	}
	if p.ParentClass == "" {
		p.ParentClass = "Actor"
	}
	bp, err := h.Blueprints.Create(p.Name, p.ParentClass)
	if err != nil {
		return nil, err
	}
	return bp, nil
}

func (h *Handlers) addComponent(params json.RawMessage) (any, error) {
	var p struct {
		BlueprintName string         `json:"blueprint_name"`
		ComponentName string         `json:"component_name"`
		ComponentType string         `json:"component_type"`
		Properties    map[string]any `json:"properties"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.BlueprintName == "" {
		return nil, missingParam("blueprint_name")
	}
	if p.ComponentType == "" {
		return nil, missingParam("component_type")
	}
	if p.ComponentName == "" {
		p.ComponentName = p.ComponentType
	}
	comp := blueprint.Component{Name: p.ComponentName, Type: p.ComponentType, Properties: p.Properties}
	if err := h.Blueprints.AddComponent(p.BlueprintName, comp); err != nil {
		return nil, err
	}
	return map[string]any{"blueprint_name": p.BlueprintName, "component_name": p.ComponentName}, nil
}

func (h *Handlers) setBlueprintProperty(params json.RawMessage) (any, error) {
	var p struct {
		BlueprintName string `json:"blueprint_name"`
		PropertyName  string `json:"property_name"`
		PropertyValue any    `json:"property_value"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.BlueprintName == "" {
		return nil, missingParam("blueprint_name")
	}
	if p.PropertyName == "" {
		return nil, missingParam("property_name")
	}
	if err := h.Blueprints.SetProperty(p.BlueprintName, p.PropertyName, p.PropertyValue); err != nil {
		return nil, err
	}
	return map[string]any{"blueprint_name": p.BlueprintName, "property_name": p.PropertyName}, nil
}

func (h *Handlers) compileBlueprint(params json.RawMessage) (any, error) {
	var p struct {
		BlueprintName string `json:"blueprint_name"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.BlueprintName == "" {
		return nil, missingParam("blueprint_name")
	}
	return h.Blueprints.Compile(p.BlueprintName)
}
