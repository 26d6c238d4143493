package bridge

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/dm-vev/terraforge/terra/gen"
	"github.com/dm-vev/terraforge/terra/grid"
	"github.com/dm-vev/terraforge/terra/landscape"
)

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	h := HandlerFunc(func(json.RawMessage) (any, error) { return nil, nil })
	if err := reg.Register("ping", h); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("ping", h); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if _, ok := reg.Lookup("ping"); !ok {
		t.Fatalf("registered command not found")
	}
	if _, ok := reg.Lookup("pong"); ok {
		t.Fatalf("unregistered command found")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry()
	h := HandlerFunc(func(json.RawMessage) (any, error) { return nil, nil })
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		if err := reg.Register(name, h); err != nil {
			t.Fatalf("register %v: %v", name, err)
		}
	}
	names := reg.Names()
	if len(names) != 3 || names[0] != "alpha" || names[1] != "bravo" || names[2] != "charlie" {
		t.Fatalf("unexpected names: %v", names)
	}
}

type client struct {
	conn net.Conn
	enc  *json.Encoder
	dec  *json.Decoder
}

type testResponse struct {
	Status string         `json:"status"`
	Result map[string]any `json:"result"`
	Error  string         `json:"error"`
}

func (c *client) call(t *testing.T, command string, params any) testResponse {
	t.Helper()
	req := map[string]any{"type": command}
	if params != nil {
		req["params"] = params
	}
	if err := c.enc.Encode(req); err != nil {
		t.Fatalf("%v: encode request: %v", command, err)
	}
	var resp testResponse
	if err := c.dec.Decode(&resp); err != nil {
		t.Fatalf("%v: decode response: %v", command, err)
	}
	return resp
}

func (c *client) success(t *testing.T, command string, params any) map[string]any {
	t.Helper()
	resp := c.call(t, command, params)
	if resp.Status != "success" {
		t.Fatalf("%v: expected success, got error %q", command, resp.Error)
	}
	return resp.Result
}

func startTestBridge(t *testing.T) *client {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := landscape.Config{Log: log}.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	reg := NewRegistry()
	h := &Handlers{
		Log:        log,
		Generator:  gen.New(gen.Config{Seed: 1, Log: log}),
		Landscapes: store,
		Seed:       1,
	}
	if err := h.RegisterAll(reg); err != nil {
		t.Fatalf("register commands: %v", err)
	}

	b, err := Config{Addr: "127.0.0.1:0", Log: log}.Start(reg)
	if err != nil {
		t.Fatalf("start bridge: %v", err)
	}
	t.Cleanup(func() {
		_ = b.Close()
	})

	conn, err := net.Dial("tcp", b.Addr().String())
	if err != nil {
		t.Fatalf("dial bridge: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return &client{conn: conn, enc: json.NewEncoder(conn), dec: json.NewDecoder(conn)}
}

func TestBridgePing(t *testing.T) {
	c := startTestBridge(t)
	result := c.success(t, "ping", nil)
	if result["pong"] != true {
		t.Fatalf("unexpected ping result: %v", result)
	}
}

func TestBridgeUnknownCommand(t *testing.T) {
	c := startTestBridge(t)
	resp := c.call(t, "warp_drive", nil)
	if resp.Status != "error" {
		t.Fatalf("expected error status, got %v", resp.Status)
	}
	if !strings.Contains(resp.Error, "unknown command") {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
}

func TestBridgeGenerateBiome(t *testing.T) {
	c := startTestBridge(t)
	result := c.success(t, "generate_biome", map[string]any{
		"biome_type": "desert", "name": "dunes", "size": 300000,
	})
	if result["biome_type"] != "desert" || result["landscape_name"] != "dunes" {
		t.Fatalf("unexpected result: %v", result)
	}
	// 300000 units span 6 components of 63 quads: a 379-sample grid.
	if result["size_x"] != float64(379) || result["size_y"] != float64(379) {
		t.Fatalf("unexpected grid size: %v x %v", result["size_x"], result["size_y"])
	}

	info := c.success(t, "get_landscape_info", map[string]any{"landscape_name": "dunes"})
	if _, ok := info["height_mean"]; !ok {
		t.Fatalf("expected height stats for a committed landscape: %v", info)
	}

	list := c.success(t, "list_landscapes", nil)
	if list["count"] != float64(1) {
		t.Fatalf("expected one landscape, got %v", list["count"])
	}

	resp := c.call(t, "generate_biome", map[string]any{"biome_type": "desert", "name": "dunes"})
	if resp.Status != "error" {
		t.Fatalf("expected duplicate landscape name to fail")
	}
}

func TestBridgeGenerateBiomeValidation(t *testing.T) {
	c := startTestBridge(t)
	cases := []struct {
		name    string
		params  map[string]any
		errPart string
	}{
		{"missing biome type", map[string]any{}, "biome_type"},
		{"size out of range", map[string]any{"biome_type": "desert", "size": 250000}, "out of range"},
		{"unknown biome", map[string]any{"biome_type": "moon_base"}, "unknown biome type"},
		{"bad layer override", map[string]any{
			"biome_type": "desert",
			"layers":     map[string]any{"dune": map[string]any{"frequency": -1, "amplitude": 1, "octaves": 2}},
		}, "layers.dune.frequency"},
	}
	for _, tc := range cases {
		resp := c.call(t, "generate_biome", tc.params)
		if resp.Status != "error" {
			t.Fatalf("%v: expected error status", tc.name)
		}
		if !strings.Contains(resp.Error, tc.errPart) {
			t.Fatalf("%v: error %q does not mention %q", tc.name, resp.Error, tc.errPart)
		}
	}
}

func TestBridgeHeightmapFlow(t *testing.T) {
	c := startTestBridge(t)
	created := c.success(t, "create_landscape", map[string]any{
		"name": "plain", "component_count_x": 4, "component_count_y": 4,
	})
	if created["size_x"] != float64(253) {
		t.Fatalf("unexpected landscape size: %v", created["size_x"])
	}

	resp := c.call(t, "generate_heightmap", map[string]any{"landscape_name": "plain"})
	if resp.Status != "error" || !strings.Contains(resp.Error, "noise_settings") {
		t.Fatalf("expected missing noise_settings error, got %v %q", resp.Status, resp.Error)
	}

	result := c.success(t, "generate_heightmap", map[string]any{
		"landscape_name": "plain",
		"noise_settings": map[string]any{"frequency": 0.01, "amplitude": 1.0, "octaves": 4},
	})
	if result["heightmap_size_x"] != float64(253) {
		t.Fatalf("unexpected heightmap size: %v", result["heightmap_size_x"])
	}

	resp = c.call(t, "generate_heightmap", map[string]any{
		"landscape_name": "plain",
		"noise_settings": map[string]any{"frequency": -0.5},
	})
	if resp.Status != "error" || !strings.Contains(resp.Error, "noise_settings.frequency") {
		t.Fatalf("expected frequency validation error, got %v %q", resp.Status, resp.Error)
	}
}

func TestBridgePaintAndFoliage(t *testing.T) {
	c := startTestBridge(t)
	c.success(t, "generate_biome", map[string]any{
		"biome_type": "jungle", "name": "wilds", "size": 300000,
	})

	painted := c.success(t, "paint_landscape_material", map[string]any{"landscape_name": "wilds"})
	layers, ok := painted["weight_layers"].([]any)
	if !ok || len(layers) != 3 {
		t.Fatalf("expected three jungle weight layers, got %v", painted["weight_layers"])
	}

	c.success(t, "create_landscape_layer", map[string]any{
		"landscape_name": "wilds", "layer_name": "path",
	})

	spawned := c.success(t, "spawn_foliage", map[string]any{"landscape_name": "wilds"})
	count, ok := spawned["count"].(float64)
	if !ok || count <= 0 {
		t.Fatalf("expected spawned foliage, got %v", spawned["count"])
	}
	instances, ok := spawned["instances"].([]any)
	if !ok || len(instances) > maxFoliageInstances {
		t.Fatalf("instance list not capped: %v", len(instances))
	}
}

func TestBridgeBlueprintFlow(t *testing.T) {
	c := startTestBridge(t)
	created := c.success(t, "create_blueprint", map[string]any{"name": "TowerBP"})
	if created["parent_class"] != "Actor" {
		t.Fatalf("expected default parent class, got %v", created["parent_class"])
	}

	c.success(t, "add_component_to_blueprint", map[string]any{
		"blueprint_name": "TowerBP", "component_type": "StaticMeshComponent",
	})
	c.success(t, "set_blueprint_property", map[string]any{
		"blueprint_name": "TowerBP", "property_name": "Height", "property_value": 40,
	})
	compiled := c.success(t, "compile_blueprint", map[string]any{"blueprint_name": "TowerBP"})
	if compiled["compiled"] != true {
		t.Fatalf("expected compiled blueprint, got %v", compiled)
	}

	resp := c.call(t, "compile_blueprint", map[string]any{"blueprint_name": "MissingBP"})
	if resp.Status != "error" {
		t.Fatalf("expected error for unknown blueprint")
	}
}

func TestBridgeCloseReleasesIdleConnection(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := NewRegistry()
	b, err := Config{Addr: "127.0.0.1:0", Log: log}.Start(reg)
	if err != nil {
		t.Fatalf("start bridge: %v", err)
	}

	conn, err := net.Dial("tcp", b.Addr().String())
	if err != nil {
		t.Fatalf("dial bridge: %v", err)
	}
	defer conn.Close()
	// One round trip so the bridge is serving the connection before it goes
	// idle.
	c := &client{conn: conn, enc: json.NewEncoder(conn), dec: json.NewDecoder(conn)}
	if resp := c.call(t, "nothing", nil); resp.Status != "error" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	done := make(chan error, 1)
	go func() {
		done <- b.Close()
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("close: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("close blocked on an idle connection")
	}
}

// failingConsumer rejects every commit, standing in for a host adapter that
// cannot accept terrain.
type failingConsumer struct{}

func (failingConsumer) Commit(string, *grid.HeightGrid, []*grid.WeightGrid) error {
	return errors.New("consumer unavailable")
}

func TestBridgeGenerateBiomeRollback(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := landscape.Config{Log: log}.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	params := json.RawMessage(`{"biome_type": "desert", "name": "dunes", "size": 300000}`)

	failing := &Handlers{Log: log, Generator: gen.New(gen.Config{Seed: 1, Log: log}), Landscapes: store, Consumer: failingConsumer{}}
	reg := NewRegistry()
	if err := failing.RegisterAll(reg); err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if _, err := failing.generateBiome(params); err == nil {
		t.Fatalf("expected commit failure to surface")
	}
	// The failed request must not leave a descriptor behind.
	if _, err := store.ByName("dunes"); !errors.Is(err, landscape.ErrNotFound) {
		t.Fatalf("expected no landscape after failed commit, got %v", err)
	}

	working := &Handlers{Log: log, Generator: gen.New(gen.Config{Seed: 1, Log: log}), Landscapes: store}
	if err := working.RegisterAll(NewRegistry()); err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if _, err := working.generateBiome(params); err != nil {
		t.Fatalf("retry after failed commit: %v", err)
	}
}

func TestBridgePanicContained(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := NewRegistry()
	_ = reg.Register("boom", HandlerFunc(func(json.RawMessage) (any, error) {
		panic("kaboom")
	}))
	_ = reg.Register("ok", HandlerFunc(func(json.RawMessage) (any, error) {
		return map[string]any{"fine": true}, nil
	}))
	b, err := Config{Addr: "127.0.0.1:0", Log: log}.Start(reg)
	if err != nil {
		t.Fatalf("start bridge: %v", err)
	}
	defer b.Close()

	conn, err := net.Dial("tcp", b.Addr().String())
	if err != nil {
		t.Fatalf("dial bridge: %v", err)
	}
	defer conn.Close()
	c := &client{conn: conn, enc: json.NewEncoder(conn), dec: json.NewDecoder(conn)}

	resp := c.call(t, "boom", nil)
	if resp.Status != "error" {
		t.Fatalf("expected contained panic to report an error")
	}
	// The connection must survive the panic.
	if result := c.success(t, "ok", nil); result["fine"] != true {
		t.Fatalf("connection unusable after contained panic: %v", result)
	}
}
