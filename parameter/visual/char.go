package visual

// ArrowChars maps an octant of the heading to a glyph
// Index 0 faces +X, counting counter-clockwise with Y up
var ArrowChars = [8]rune{
	'→', // 0
	'↗', // 45
	'↑', // 90
	'↖', // 135
	'←', // 180
	'↙', // 225
	'↓', // 270
	'↘', // 315
}

const (
	CharObstacle = '█'
	CharDeposit  = '▒'
	CharPlane    = '✈'
)
