package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/food-drop/parameter"
)

var (
	// ErrInvalidConfig is wrapped with the offending field by Config.Validate
	ErrInvalidConfig = errors.New("invalid game config")

	// ErrNoSpawnPoint is returned when rejection sampling finds no traversable point
	ErrNoSpawnPoint = errors.New("no traversable spawn point")
)

// Config enumerates the session setup
type Config struct {
	Obstacles  int `toml:"obstacles"`
	BadAgents  int `toml:"bad_agents"`
	GoodAgents int `toml:"good_agents"`
	Drops      int `toml:"drops"`

	ArenaWidth  float64 `toml:"arena_width"`
	ArenaHeight float64 `toml:"arena_height"`

	// Seed drives all randomness of the session, equal seeds replay equal games
	// Zero leaves the choice to the frontend; the engine itself treats it as 1
	Seed uint64 `toml:"seed"`

	Tuning parameter.Tuning `toml:"tuning"`
}

// DefaultConfig returns the stock session
func DefaultConfig() Config {
	return Config{
		Obstacles:   parameter.DefaultObstacles,
		BadAgents:   parameter.DefaultBadAgents,
		GoodAgents:  parameter.DefaultGoodAgents,
		Drops:       parameter.DefaultDrops,
		ArenaWidth:  parameter.DefaultArenaWidth,
		ArenaHeight: parameter.DefaultArenaHeight,
		Tuning:      parameter.DefaultTuning(),
	}
}

// Validate checks counts, arena extents and tuning ranges
func (c Config) Validate() error {
	counts := []struct {
		name string
		v    int
	}{
		{"obstacles", c.Obstacles},
		{"bad_agents", c.BadAgents},
		{"good_agents", c.GoodAgents},
		{"drops", c.Drops},
	}
	for _, n := range counts {
		if n.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, n.name, n.v)
		}
	}

	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return fmt.Errorf("%w: arena must be positive, got %vx%v", ErrInvalidConfig, c.ArenaWidth, c.ArenaHeight)
	}

	t := c.Tuning
	positive := []struct {
		name string
		v    float64
	}{
		{"food_per_drop", t.FoodPerDrop},
		{"good_max_food", t.GoodMaxFood},
		{"plane_speed", t.PlaneSpeed},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"food_rot_speed", t.FoodRotSpeed},
		{"leftover_drop_score", t.LeftoverDropScore},
		{"good_full_bonus_factor", t.GoodFullBonusFactor},
		{"bad_food_rate", t.BadFoodRate},
		{"good_food_rate", t.GoodFoodRate},
		{"bad_speed", t.BadSpeed},
		{"good_speed", t.GoodSpeed},
		{"bad_range", t.BadRange},
		{"good_range", t.GoodRange},
		{"good_boost_factor", t.GoodBoostFactor},
		{"bad_boost_factor", t.BadBoostFactor},
		{"speed_boost_duration", t.SpeedBoostDuration},
	}
	for _, n := range nonNegative {
		if n.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, n.name, n.v)
		}
	}
	return nil
}
