package store

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"gridz/debug"
	"gridz/engine"
)

const (
	version = 1
)

var magic = [2]byte{'G', 'Z'}

// routeRecord / inputRecord / record define the on-disk layout: one
// fixed-size little-endian block holding the base parameters and both
// inputs' route arrays. The whole block is written and read as one unit;
// there is no per-field versioning.
type routeRecord struct {
	Target uint8
	Depth  int8
}

type inputRecord struct {
	Enabled uint8
	Routes  [engine.RoutesPerInput]routeRecord
}

type record struct {
	Magic    [2]byte
	Version  uint8
	MapX     uint8
	MapY     uint8
	Density  [engine.NumChannels]uint8
	Chaos    uint8
	GateMs   [engine.NumChannels]uint8
	ClockDiv uint8
	Inputs   [engine.NumInputs]inputRecord
	Reserved [8]byte
}

// Store persists the base parameter block as a single fixed-size record.
type Store struct {
	path    string
	loading bool // Save is refused while a Load is in flight
}

// New creates a store writing to the given path.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns ~/.config/gridz/params.bin
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gridz", "params.bin"), nil
}

// Save writes the block atomically: serialize to a temp file in the same
// directory, then rename over the target.
func (s *Store) Save(p engine.BaseParams) error {
	if s.loading {
		return fmt.Errorf("save refused: load in flight")
	}

	rec := record{Magic: magic, Version: version}
	rec.MapX, rec.MapY = p.MapX, p.MapY
	rec.Density = p.Density
	rec.Chaos = p.Chaos
	rec.GateMs = p.GateMs
	rec.ClockDiv = p.ClockDiv
	for i := 0; i < engine.NumInputs; i++ {
		if p.Inputs[i].Enabled {
			rec.Inputs[i].Enabled = 1
		}
		for r := 0; r < engine.RoutesPerInput; r++ {
			rec.Inputs[i].Routes[r].Target = uint8(p.Inputs[i].Routes[r].Target)
			rec.Inputs[i].Routes[r].Depth = p.Inputs[i].Routes[r].Depth
		}
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &rec); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}

	debug.Log("store", "saved %d bytes to %s", buf.Len(), s.path)
	return nil
}

// Load reads the block back. A missing file yields the default parameters;
// a block with the wrong magic or version is an error. The result is
// sanitized before it is handed out.
func (s *Store) Load() (engine.BaseParams, error) {
	s.loading = true
	defer func() { s.loading = false }()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return engine.DefaultBase(), nil
		}
		return engine.DefaultBase(), err
	}

	var rec record
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &rec); err != nil {
		return engine.DefaultBase(), fmt.Errorf("read record: %w", err)
	}
	if rec.Magic != magic {
		return engine.DefaultBase(), fmt.Errorf("bad magic %q", rec.Magic)
	}
	if rec.Version != version {
		return engine.DefaultBase(), fmt.Errorf("unsupported version %d", rec.Version)
	}

	var p engine.BaseParams
	p.MapX, p.MapY = rec.MapX, rec.MapY
	p.Density = rec.Density
	p.Chaos = rec.Chaos
	p.GateMs = rec.GateMs
	p.ClockDiv = rec.ClockDiv
	for i := 0; i < engine.NumInputs; i++ {
		p.Inputs[i].Enabled = rec.Inputs[i].Enabled != 0
		for r := 0; r < engine.RoutesPerInput; r++ {
			p.Inputs[i].Routes[r].Target = engine.ModTarget(rec.Inputs[i].Routes[r].Target)
			p.Inputs[i].Routes[r].Depth = rec.Inputs[i].Routes[r].Depth
		}
	}
	p.Sanitize()

	debug.Log("store", "loaded %s", s.path)
	return p, nil
}
