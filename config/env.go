package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "FOODDROP_"

// envSetter parses one variable into cfg
type envSetter func(cfg *File, val string) error

var envSetters = map[string]envSetter{
	"SEED":         func(c *File, v string) error { return parseUint(v, &c.Game.Seed) },
	"OBSTACLES":    func(c *File, v string) error { return parseInt(v, &c.Game.Obstacles) },
	"BAD_AGENTS":   func(c *File, v string) error { return parseInt(v, &c.Game.BadAgents) },
	"GOOD_AGENTS":  func(c *File, v string) error { return parseInt(v, &c.Game.GoodAgents) },
	"DROPS":        func(c *File, v string) error { return parseInt(v, &c.Game.Drops) },
	"ARENA_WIDTH":  func(c *File, v string) error { return parseFloat(v, &c.Game.ArenaWidth) },
	"ARENA_HEIGHT": func(c *File, v string) error { return parseFloat(v, &c.Game.ArenaHeight) },
	"DEBUG":        func(c *File, v string) error { return parseBool(v, &c.Frontend.Debug) },
	"MUTE":         func(c *File, v string) error { return parseBool(v, &c.Frontend.Mute) },
	"METRICS_ADDR": func(c *File, v string) error { c.Frontend.MetricsAddr = v; return nil },
	"LOG_FILE":     func(c *File, v string) error { c.Frontend.LogFile = v; return nil },
}

// applyEnvFile reads FOODDROP_* variables from a dotenv file; process environment wins
func applyEnvFile(cfg *File, path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return ApplyEnv(cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	})
}

// ApplyEnv overlays every FOODDROP_* variable lookup resolves
func ApplyEnv(cfg *File, lookup func(key string) (string, bool)) error {
	for name, set := range envSetters {
		key := EnvPrefix + name
		val, ok := lookup(key)
		if !ok {
			continue
		}
		if err := set(cfg, val); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func parseInt(v string, dst *int) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func parseUint(v string, dst *uint64) error {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func parseFloat(v string, dst *float64) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

func parseBool(v string, dst *bool) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
