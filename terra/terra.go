// Package terra wires the terrain generation components into a runnable
// service: a command bridge dispatching into the biome generator, the
// landscape store and the blueprint store.
package terra

import (
	"fmt"
	"log/slog"
	"net"

	"github.com/dm-vev/terraforge/terra/blueprint"
	"github.com/dm-vev/terraforge/terra/bridge"
	"github.com/dm-vev/terraforge/terra/gen"
	"github.com/dm-vev/terraforge/terra/landscape"
)

// Config contains options for starting a terraforge service.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set
	// to slog.Default().
	Log *slog.Logger
	// Name is the name of the service.
	Name string
	// Addr is the TCP address the command bridge listens on. Defaults to
	// ":55557".
	Addr string
	// Landscapes is the landscape store generated terrain is committed to.
	// It must not be nil.
	Landscapes *landscape.Store
	// Consumer receives generated grids. If nil, the landscape store is
	// used directly.
	Consumer landscape.Consumer
	// Blueprints is the blueprint store backing the blueprint commands.
	// If nil, an in-memory store is used.
	Blueprints blueprint.Store
	// Seed is the base generation seed used when a request does not carry
	// one. A value of 0 is valid and results in a fixed layout.
	Seed int64
	// GeneratorWorkers controls the number of goroutines filling grid
	// rows. If set to 0 or lower, the worker count is derived from the
	// host's available CPUs.
	GeneratorWorkers int
}

// New creates a Service using the configuration passed. It panics if no
// landscape store is supplied.
func (conf Config) New() *Service {
	if conf.Landscapes == nil {
		panic("terra: Config.New: landscape store must not be nil")
	}
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Addr == "" {
		conf.Addr = ":55557"
	}
	if conf.Blueprints == nil {
		conf.Blueprints = blueprint.NewMemoryStore()
	}

	srv := &Service{conf: conf, reg: bridge.NewRegistry()}
	srv.handlers = &bridge.Handlers{
		Log:        conf.Log,
		Generator:  gen.New(gen.Config{Seed: conf.Seed, Workers: conf.GeneratorWorkers, Log: conf.Log}),
		Landscapes: conf.Landscapes,
		Consumer:   conf.Consumer,
		Blueprints: conf.Blueprints,
		Seed:       conf.Seed,
	}
	return srv
}

// Service is a running terraforge instance: a command bridge backed by the
// biome generator and the landscape and blueprint stores.
type Service struct {
	conf     Config
	reg      *bridge.Registry
	handlers *bridge.Handlers
	bridge   *bridge.Bridge
}

// Start registers the command set and opens the bridge listener. It returns
// once the service accepts connections.
func (srv *Service) Start() error {
	if err := srv.handlers.RegisterAll(srv.reg); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	b, err := bridge.Config{Addr: srv.conf.Addr, Log: srv.conf.Log}.Start(srv.reg)
	if err != nil {
		return err
	}
	srv.bridge = b
	srv.conf.Log.Info("service started", "name", srv.conf.Name, "addr", b.Addr().String(), "commands", len(srv.reg.Names()))
	return nil
}

// Addr returns the address the bridge is listening on. It must only be
// called after Start.
func (srv *Service) Addr() net.Addr {
	return srv.bridge.Addr()
}

// Close stops the bridge and closes the landscape store.
func (srv *Service) Close() error {
	var firstErr error
	if srv.bridge != nil {
		if err := srv.bridge.Close(); err != nil {
			firstErr = err
		}
	}
	if err := srv.conf.Landscapes.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
