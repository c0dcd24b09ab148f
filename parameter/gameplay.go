package parameter

// Session defaults
const (
	// DefaultArenaWidth is the initial arena width in world units (window pixels in the GUI)
	DefaultArenaWidth = 1200

	// DefaultArenaHeight is the initial arena height in world units
	DefaultArenaHeight = 600

	DefaultBadAgents  = 6
	DefaultGoodAgents = 10
	DefaultObstacles  = 40
	DefaultDrops      = 8
)

// Food Drops
const (
	// FoodPerDrop is the amount of food in a freshly dropped deposit
	FoodPerDrop = 1000

	// FoodRotSpeed is the amount of food that rots away every second
	FoodRotSpeed = 50

	// LeftoverDropScore is the score awarded per unused drop at game over
	LeftoverDropScore = FoodPerDrop
)

// Agents
const (
	// GoodMaxFood is the amount of food a good agent needs to be full
	GoodMaxFood = 350

	// GoodFullBonusFactor multiplies GoodMaxFood into the bonus for a full agent
	GoodFullBonusFactor = 2

	// BadFoodRate is how much food bad agents take per second
	BadFoodRate = 250

	// GoodFoodRate is how much food good agents take per second
	GoodFoodRate = 150

	BadSpeed  = 40
	GoodSpeed = 30

	// BadRange is how far bad agents can see food from
	BadRange = 200

	// GoodRange is how far good agents can see food from
	GoodRange = 150
)

// Boosts
const (
	GoodBoostFactor = 4
	// BadBoostFactor below one turns the click boost into a slowdown
	BadBoostFactor = 0.25

	// SpeedBoostDuration is how long a click boost lasts in seconds
	SpeedBoostDuration = 5
)

// Delivery Plane
const (
	PlaneSpeed = 600
)

// WanderAttempts caps rejection sampling for a wander target per frame
const WanderAttempts = 1000

// SpawnAttempts caps rejection sampling for a traversable spawn point
const SpawnAttempts = 10000
