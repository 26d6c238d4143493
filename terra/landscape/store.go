package landscape

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/util"
	"github.com/dm-vev/terraforge/terra/grid"
)

var (
	// ErrNotFound is returned when no landscape exists under a name.
	ErrNotFound = errors.New("landscape: not found")
	// ErrExists is returned when creating a landscape under a name that is
	// already in use.
	ErrExists = errors.New("landscape: name already in use")
)

// Config holds the options for opening a landscape Store.
type Config struct {
	// Log is the logger used for store diagnostics. Defaults to
	// slog.Default().
	Log *slog.Logger
}

// Open opens a LevelDB-backed landscape store in the directory passed,
// creating it if absent.
func (c Config) Open(dir string) (*Store, error) {
	if c.Log == nil {
		c.Log = slog.Default()
	}
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open landscape store: %w", err)
	}
	return &Store{log: c.Log.With("subsystem", "landscape.store"), db: db}, nil
}

// Store persists landscape descriptors and their committed height and weight
// grids. It satisfies the Consumer interface. A Store is safe for concurrent
// use; LevelDB serialises the underlying writes.
type Store struct {
	log *slog.Logger
	db  *leveldb.DB
}

func descKey(name string) []byte   { return []byte("desc:" + name) }
func heightKey(name string) []byte { return []byte("height:" + name) }
func weightKey(name, layer string) []byte {
	return []byte("weight:" + name + ":" + layer)
}

// Create stores a new landscape descriptor. ErrExists is returned if the
// name is already taken.
func (s *Store) Create(desc Descriptor) error {
	has, err := s.db.Has(descKey(desc.Name), nil)
	if err != nil {
		return fmt.Errorf("create landscape: %w", err)
	}
	if has {
		return ErrExists
	}
	if err := s.putDescriptor(desc); err != nil {
		return err
	}
	s.log.Debug("landscape created", "name", desc.Name, "size_x", desc.SizeX, "size_y", desc.SizeY)
	return nil
}

func (s *Store) putDescriptor(desc Descriptor) error {
	data, err := json.Marshal(desc)
	if err != nil {
		return fmt.Errorf("encode landscape descriptor: %w", err)
	}
	if err := s.db.Put(descKey(desc.Name), data, nil); err != nil {
		return fmt.Errorf("store landscape descriptor: %w", err)
	}
	return nil
}

// ByName returns the descriptor stored under the name passed.
func (s *Store) ByName(name string) (Descriptor, error) {
	data, err := s.db.Get(descKey(name), nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		return Descriptor{}, ErrNotFound
	case err != nil:
		return Descriptor{}, fmt.Errorf("load landscape descriptor: %w", err)
	}
	var desc Descriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return Descriptor{}, fmt.Errorf("decode landscape descriptor: %w", err)
	}
	return desc, nil
}

// List returns all stored landscape descriptors.
func (s *Store) List() ([]Descriptor, error) {
	it := s.db.NewIterator(util.BytesPrefix([]byte("desc:")), nil)
	defer it.Release()

	var descs []Descriptor
	for it.Next() {
		var desc Descriptor
		if err := json.Unmarshal(it.Value(), &desc); err != nil {
			return nil, fmt.Errorf("decode landscape descriptor: %w", err)
		}
		descs = append(descs, desc)
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("list landscapes: %w", err)
	}
	return descs, nil
}

// Commit stores the height grid and weight grids of the named landscape and
// records the committed weight layers on its descriptor. The landscape must
// have been created first.
func (s *Store) Commit(name string, heights *grid.HeightGrid, weights []*grid.WeightGrid) error {
	desc, err := s.ByName(name)
	if err != nil {
		return err
	}
	if heights != nil {
		if err := s.db.Put(heightKey(name), encodeHeights(heights), nil); err != nil {
			return fmt.Errorf("store height data: %w", err)
		}
		desc.SizeX, desc.SizeY = heights.SizeX, heights.SizeY
	}
	for _, w := range weights {
		if err := s.db.Put(weightKey(name, w.Layer), w.Samples, nil); err != nil {
			return fmt.Errorf("store weight layer %v: %w", w.Layer, err)
		}
		if !slices.Contains(desc.WeightLayers, w.Layer) {
			desc.WeightLayers = append(desc.WeightLayers, w.Layer)
		}
	}
	if err := s.putDescriptor(desc); err != nil {
		return err
	}
	s.log.Debug("landscape committed", "name", name, "weight_layers", len(weights))
	return nil
}

// Delete removes the named landscape along with its committed height data and
// weight layers.
func (s *Store) Delete(name string) error {
	desc, err := s.ByName(name)
	if err != nil {
		return err
	}
	batch := new(leveldb.Batch)
	batch.Delete(descKey(name))
	batch.Delete(heightKey(name))
	for _, layer := range desc.WeightLayers {
		batch.Delete(weightKey(name, layer))
	}
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("delete landscape: %w", err)
	}
	s.log.Debug("landscape deleted", "name", name)
	return nil
}

// Heights loads the committed height grid of the named landscape.
func (s *Store) Heights(name string) (*grid.HeightGrid, error) {
	desc, err := s.ByName(name)
	if err != nil {
		return nil, err
	}
	data, err := s.db.Get(heightKey(name), nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("load height data: %w", err)
	}
	return decodeHeights(desc.SizeX, desc.SizeY, data)
}

// Weights loads one committed weight layer of the named landscape.
func (s *Store) Weights(name, layer string) (*grid.WeightGrid, error) {
	desc, err := s.ByName(name)
	if err != nil {
		return nil, err
	}
	data, err := s.db.Get(weightKey(name, layer), nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("load weight layer %v: %w", layer, err)
	}
	if len(data) != desc.SizeX*desc.SizeY {
		return nil, fmt.Errorf("weight layer %v: unexpected length %v", layer, len(data))
	}
	wg, err := grid.NewWeightGrid(layer, desc.SizeX, desc.SizeY)
	if err != nil {
		return nil, err
	}
	copy(wg.Samples, data)
	return wg, nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func encodeHeights(hg *grid.HeightGrid) []byte {
	buf := make([]byte, len(hg.Samples)*2)
	for i, v := range hg.Samples {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	return buf
}

func decodeHeights(sizeX, sizeY int, data []byte) (*grid.HeightGrid, error) {
	if len(data) != sizeX*sizeY*2 {
		return nil, fmt.Errorf("height data: unexpected length %v for %vx%v grid", len(data), sizeX, sizeY)
	}
	hg, err := grid.NewHeightGrid(sizeX, sizeY)
	if err != nil {
		return nil, err
	}
	for i := range hg.Samples {
		hg.Samples[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return hg, nil
}
