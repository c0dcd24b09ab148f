package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/food-drop/engine"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// TestLoadDefaults verifies an empty load yields the stock session
func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultConfig(), cfg.Game)
	assert.False(t, cfg.Frontend.Debug)
}

// TestLoadTOML verifies file values overlay defaults, including nested tuning
func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "game.toml", `
[game]
bad_agents = 2
drops = 3
seed = 99

[game.tuning]
food_per_drop = 500.0
bad_boost_factor = 0.5

[frontend]
mute = true
metrics_addr = ":9100"
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Game.BadAgents)
	assert.Equal(t, 3, cfg.Game.Drops)
	assert.Equal(t, uint64(99), cfg.Game.Seed)
	assert.Equal(t, 500.0, cfg.Game.Tuning.FoodPerDrop)
	assert.Equal(t, 0.5, cfg.Game.Tuning.BadBoostFactor)
	assert.Equal(t, engine.DefaultConfig().GoodAgents, cfg.Game.GoodAgents, "unset keys keep defaults")
	assert.True(t, cfg.Frontend.Mute)
	assert.Equal(t, ":9100", cfg.Frontend.MetricsAddr)
}

func TestLoadDefaultPathFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, DefaultPath, "[game]\nobstacles = 5\n")
	t.Chdir(dir)

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Game.Obstacles)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), "")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "game.toml", "[game]\nbad_guys = 3\n")

	_, err := Load(path, "")
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "game.bad_guys")
}

// TestLoadInvalidValues verifies validation runs after all overlays
func TestLoadInvalidValues(t *testing.T) {
	path := writeFile(t, t.TempDir(), "game.toml", "[game]\ndrops = -1\n")

	_, err := Load(path, "")
	assert.ErrorIs(t, err, engine.ErrInvalidConfig)
}

// TestLoadEnvFile verifies dotenv overrides win over the TOML file
func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "game.toml", "[game]\ngood_agents = 4\n")
	env := writeFile(t, dir, ".env", strings.Join([]string{
		"FOODDROP_GOOD_AGENTS=7",
		"FOODDROP_ARENA_WIDTH=800.5",
		"FOODDROP_DEBUG=true",
		"FOODDROP_METRICS_ADDR=127.0.0.1:9000",
		"UNRELATED=1",
	}, "\n"))

	cfg, err := Load(path, env)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Game.GoodAgents)
	assert.Equal(t, 800.5, cfg.Game.ArenaWidth)
	assert.True(t, cfg.Frontend.Debug)
	assert.Equal(t, "127.0.0.1:9000", cfg.Frontend.MetricsAddr)
}

func TestLoadEnvProcessWins(t *testing.T) {
	env := writeFile(t, t.TempDir(), ".env", "FOODDROP_DROPS=2\n")
	t.Setenv("FOODDROP_DROPS", "11")

	cfg, err := Load("", env)
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.Game.Drops)
}

func TestLoadProcessEnvWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FOODDROP_GOOD_AGENTS", "4")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Game.GoodAgents)
}

func TestApplyEnvBadValue(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(cfg, func(key string) (string, bool) {
		if key == "FOODDROP_SEED" {
			return "minus-one", true
		}
		return "", false
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOODDROP_SEED")
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), ".env"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

// TestWriteRoundTrip verifies a dumped config loads back to the same values
func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Game.Seed = 1234
	cfg.Game.Tuning.GoodRange = 175
	cfg.Frontend.Mute = true

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cfg))

	back := Default()
	require.NoError(t, Decode(back, &buf))
	assert.Equal(t, cfg, back)
}
