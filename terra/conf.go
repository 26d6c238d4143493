package terra

import (
	"fmt"
	"log/slog"

	"github.com/dm-vev/terraforge/terra/blueprint"
	"github.com/dm-vev/terraforge/terra/landscape"
)

// UserConfig is the configuration structure read from and written to the
// service configuration file. It is converted to a runtime Config with the
// Config method.
type UserConfig struct {
	Network struct {
		// Address is the TCP address the command bridge listens on.
		Address string
	}
	Server struct {
		// Name is the name of the service reported over the bridge.
		Name string
		// DebugLogging enables debug level log output.
		DebugLogging bool
	}
	World struct {
		// Folder is the directory the landscape store persists to.
		Folder string
		// Seed is the base generation seed used when a request does not
		// carry one. A value of 0 is valid and results in a fixed layout.
		Seed int64
		// GeneratorWorkers controls the number of goroutines filling
		// grid rows. If set to 0 or lower, the worker count is derived
		// from the host's available CPUs.
		GeneratorWorkers int
	}
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.Network.Address = ":55557"
	c.Server.Name = "Terraforge"
	c.World.Folder = "landscapes"
	c.World.Seed = 0
	return c
}

// Config converts a UserConfig into a runtime Config, opening the landscape
// store it references.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	conf := Config{
		Log:              log,
		Name:             uc.Server.Name,
		Addr:             uc.Network.Address,
		Seed:             uc.World.Seed,
		GeneratorWorkers: uc.World.GeneratorWorkers,
	}
	var err error
	conf.Landscapes, err = landscape.Config{Log: log}.Open(uc.World.Folder)
	if err != nil {
		return conf, fmt.Errorf("create landscape store: %w", err)
	}
	conf.Blueprints = blueprint.NewMemoryStore()
	return conf, nil
}
