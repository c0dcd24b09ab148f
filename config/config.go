package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/food-drop/engine"
)

// DefaultPath is tried when no config path is given
const DefaultPath = "fooddrop.toml"

var (
	// ErrConfigNotFound is returned when an explicitly requested file does not exist
	ErrConfigNotFound = errors.New("config file not found")

	// ErrUnknownKey is returned for keys that match no setting
	ErrUnknownKey = errors.New("unknown config key")
)

// File is the on-disk layout: session setup under [game], frontend switches under [frontend]
type File struct {
	Game     engine.Config `toml:"game"`
	Frontend Frontend      `toml:"frontend"`
}

// Frontend holds settings that never reach the simulation
type Frontend struct {
	Debug       bool   `toml:"debug"`
	Mute        bool   `toml:"mute"`
	MetricsAddr string `toml:"metrics_addr"`
	LogFile     string `toml:"log_file"`
}

// Default returns the stock configuration
func Default() *File {
	return &File{
		Game: engine.DefaultConfig(),
		Frontend: Frontend{
			LogFile: "logs/fooddrop.log",
		},
	}
}

// Load builds the configuration with priority: process env > env file > TOML file > defaults
// An empty path falls back to DefaultPath when it exists; an empty envPath reads the process env only
func Load(path, envPath string) (*File, error) {
	cfg := Default()

	switch {
	case path != "":
		if err := decodeFile(cfg, path); err != nil {
			return nil, err
		}
	case fileExists(DefaultPath):
		if err := decodeFile(cfg, DefaultPath); err != nil {
			return nil, err
		}
	}

	if envPath != "" {
		if err := applyEnvFile(cfg, envPath); err != nil {
			return nil, err
		}
	} else if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Game.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Decode overlays TOML from r onto cfg
func Decode(cfg *File, r io.Reader) error {
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return fmt.Errorf("config parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return nil
}

// Write encodes cfg as TOML, used to dump a starting config file
func Write(w io.Writer, cfg *File) error {
	return toml.NewEncoder(w).Encode(cfg)
}

func decodeFile(cfg *File, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return fmt.Errorf("config open: %w", err)
	}
	defer f.Close()

	if err := Decode(cfg, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
