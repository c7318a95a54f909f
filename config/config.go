package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ClockSource selects what drives the step clock
type ClockSource string

const (
	ClockInternal ClockSource = "internal" // built-in BPM ticker
	ClockExternal ClockSource = "external" // MIDI realtime clock on the in port
)

// MIDIConfig defines the MIDI ports and mappings
type MIDIConfig struct {
	OutPort string `json:"outPort,omitempty"`
	InPort  string `json:"inPort,omitempty"`
	Channel uint8  `json:"channel,omitempty"` // 1-16, defaults to 10 (GM drums)

	// CC numbers sampled as the two aux CV inputs
	CV1CC uint8 `json:"cv1cc,omitempty"`
	CV2CC uint8 `json:"cv2cc,omitempty"`
}

// ClockConfig defines the clock source
type ClockConfig struct {
	Source ClockSource `json:"source,omitempty"`
	BPM    int         `json:"bpm,omitempty"` // internal clock only
}

// Config is the main configuration structure. This is app plumbing only;
// the sequencer's own parameter block lives in the binary store.
type Config struct {
	MIDI    MIDIConfig  `json:"midi,omitempty"`
	Clock   ClockConfig `json:"clock,omitempty"`
	Seed    int64       `json:"seed,omitempty"`
	Palette string      `json:"palette,omitempty"` // path to a GIMP .gpl palette
	Debug   bool        `json:"debug,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		MIDI: MIDIConfig{
			Channel: 10,
			CV1CC:   16,
			CV2CC:   17,
		},
		Clock: ClockConfig{
			Source: ClockInternal,
			BPM:    120,
		},
		Seed: 1,
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gridz"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
