package parameter

// Entity sizes in world units
const (
	BadSize       = 30
	GoodSize      = 30
	FoodSize      = 20
	TreeMinSize   = 25
	TreeMaxSize   = 55
	PlaneSize     = 65
	AgentMaxSize  = max(BadSize, GoodSize)
	ObstacleClear = AgentMaxSize / 2
)

// SelectionScale enlarges entity shapes for click hit-testing
const SelectionScale = 1.25
