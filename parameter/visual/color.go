package visual

import "image/color"

// RGB is a frontend-neutral 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBA converts to an opaque image color for the window frontend
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Entity palette
var (
	RgbBackground = RGB{225, 191, 146} // Sand
	RgbBad        = RGB{191, 0, 0}
	RgbGood       = RGB{0, 0, 191}
	RgbFood       = RGB{255, 191, 0}
	RgbTree       = RGB{0, 191, 0}
	RgbPlane      = RGB{26, 26, 26}

	// Boosted agents are drawn brighter
	RgbBadBoosted  = RGB{255, 100, 100}
	RgbGoodBoosted = RGB{120, 170, 255}
)

// Status bar
var (
	RgbStatusFg   = RGB{255, 255, 255}
	RgbStatusBg   = RGB{40, 40, 40}
	RgbStatusWin  = RGB{50, 255, 50}
	RgbStatusLose = RGB{255, 60, 60}
)
