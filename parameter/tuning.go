package parameter

// Tuning gathers the gameplay constants that can be overridden by configuration
type Tuning struct {
	FoodPerDrop       float64 `toml:"food_per_drop"`
	FoodRotSpeed      float64 `toml:"food_rot_speed"`
	LeftoverDropScore float64 `toml:"leftover_drop_score"`

	GoodMaxFood         float64 `toml:"good_max_food"`
	GoodFullBonusFactor float64 `toml:"good_full_bonus_factor"`
	BadFoodRate         float64 `toml:"bad_food_rate"`
	GoodFoodRate        float64 `toml:"good_food_rate"`
	BadSpeed            float64 `toml:"bad_speed"`
	GoodSpeed           float64 `toml:"good_speed"`
	BadRange            float64 `toml:"bad_range"`
	GoodRange           float64 `toml:"good_range"`

	GoodBoostFactor    float64 `toml:"good_boost_factor"`
	BadBoostFactor     float64 `toml:"bad_boost_factor"`
	SpeedBoostDuration float64 `toml:"speed_boost_duration"`

	PlaneSpeed float64 `toml:"plane_speed"`
}

// DefaultTuning returns the stock gameplay values
func DefaultTuning() Tuning {
	return Tuning{
		FoodPerDrop:       FoodPerDrop,
		FoodRotSpeed:      FoodRotSpeed,
		LeftoverDropScore: LeftoverDropScore,

		GoodMaxFood:         GoodMaxFood,
		GoodFullBonusFactor: GoodFullBonusFactor,
		BadFoodRate:         BadFoodRate,
		GoodFoodRate:        GoodFoodRate,
		BadSpeed:            BadSpeed,
		GoodSpeed:           GoodSpeed,
		BadRange:            BadRange,
		GoodRange:           GoodRange,

		GoodBoostFactor:    GoodBoostFactor,
		BadBoostFactor:     BadBoostFactor,
		SpeedBoostDuration: SpeedBoostDuration,

		PlaneSpeed: PlaneSpeed,
	}
}
