package render

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/food-drop/component"
	"github.com/lixenwraith/food-drop/engine"
	"github.com/lixenwraith/food-drop/parameter/visual"
)

func newGame(t *testing.T, obstacles, good, drops int) *engine.Game {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.Obstacles = obstacles
	cfg.BadAgents = 0
	cfg.GoodAgents = good
	cfg.Drops = drops
	cfg.Seed = 7
	g, err := engine.New(cfg, engine.Options{})
	require.NoError(t, err)
	return g
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func rowText(screen tcell.SimulationScreen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestStatusLineRunning(t *testing.T) {
	g := newGame(t, 0, 1, 3)
	assert.Equal(t, "Food Drop Game | Score: 0.0, Drops left: 3", StatusLine(g))
}

func TestStatusLineWon(t *testing.T) {
	g := newGame(t, 0, 0, 2)
	g.Tick(0.016)
	assert.Equal(t, "Food Drop Game | GAME OVER! YOU WIN! Final Score: 2000.0", StatusLine(g))
}

func TestStatusLineLost(t *testing.T) {
	g := newGame(t, 0, 1, 0)
	assert.Equal(t, "Food Drop Game | GAME OVER! YOU LOSE! Final Score: 0.0", StatusLine(g))
}

// TestCellToArena verifies cell centers map onto the arena with Y up
func TestCellToArena(t *testing.T) {
	r := NewRenderer(newScreen(t, 40, 11))
	size := r2.Point{X: 1200, Y: 600}

	cols, rows := r.ArenaCells()
	assert.Equal(t, 40, cols)
	assert.Equal(t, 10, rows)

	p, ok := r.CellToArena(0, 0, size)
	require.True(t, ok)
	assert.InDelta(t, -585.0, p.X, 1e-9)
	assert.InDelta(t, 270.0, p.Y, 1e-9)

	p, ok = r.CellToArena(39, 9, size)
	require.True(t, ok)
	assert.InDelta(t, 585.0, p.X, 1e-9)
	assert.InDelta(t, -270.0, p.Y, 1e-9)

	_, ok = r.CellToArena(0, 10, size)
	assert.False(t, ok, "status row is not arena")
	_, ok = r.CellToArena(-1, 0, size)
	assert.False(t, ok)

	for _, c := range [][2]int{{0, 0}, {17, 4}, {39, 9}} {
		p, _ := r.CellToArena(c[0], c[1], size)
		x, y := r.arenaToCell(p, size)
		assert.Equal(t, c, [2]int{x, y})
	}
}

func TestArrowFor(t *testing.T) {
	cases := []struct {
		heading float64
		want    rune
	}{
		{0, '→'},
		{math.Pi / 2, '↑'},
		{math.Pi, '←'},
		{-math.Pi, '←'},
		{-math.Pi / 2, '↓'},
		{-math.Pi / 4, '↘'},
		{3 * math.Pi / 4, '↖'},
		{0.3, '→'},
	}
	for _, tc := range cases {
		assert.Equal(t, string(tc.want), string(ArrowFor(tc.heading)), "heading %f", tc.heading)
	}
}

// TestDrawEntities verifies obstacles fill their disc and agents draw an arrow at their tip
func TestDrawEntities(t *testing.T) {
	screen := newScreen(t, 120, 31)
	r := NewRenderer(screen)
	g := newGame(t, 1, 1, 3)
	size := g.Size()

	r.Draw(g)

	for o := range g.Obstacles() {
		x, y := r.arenaToCell(o.Position(), size)
		require.True(t, x >= 0 && x < 120 && y >= 0 && y < 30)
		ch, _, _, _ := screen.GetContent(x, y)
		// Agents spawn clear of obstacles, so the center cell is never overdrawn
		assert.Equal(t, string(visual.CharObstacle), string(ch))
	}

	for u := range g.GoodAgents() {
		x, y := r.arenaToCell(u.Position(), size)
		ch, _, _, _ := screen.GetContent(x, y)
		assert.True(t, slices.Contains(visual.ArrowChars[:], ch), "got %q", ch)
	}

	assert.Equal(t, StatusLine(g), rowText(screen, 30, 120))
}

func TestDrawSkipsHiddenPlane(t *testing.T) {
	screen := newScreen(t, 60, 16)
	r := NewRenderer(screen)
	g := newGame(t, 0, 1, 3)

	r.Draw(g)
	for y := 0; y < 16; y++ {
		assert.NotContains(t, rowText(screen, y, 60), string(visual.CharPlane))
	}
}

func TestResizeTracksScreen(t *testing.T) {
	screen := newScreen(t, 20, 5)
	r := NewRenderer(screen)

	screen.SetSize(50, 21)
	r.Resize()
	cols, rows := r.ArenaCells()
	assert.Equal(t, 50, cols)
	assert.Equal(t, 20, rows)
}

// TestClickAgentGlyphBoosts verifies a press on an agent's own glyph selects it instead of dropping food
func TestClickAgentGlyphBoosts(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		cfg := engine.DefaultConfig()
		cfg.Obstacles, cfg.BadAgents, cfg.GoodAgents, cfg.Drops = 0, 0, 1, 3
		cfg.Seed = seed
		g, err := engine.New(cfg, engine.Options{})
		require.NoError(t, err)

		r := NewRenderer(newScreen(t, 80, 24))
		r.Draw(g)

		var agent *component.Unit
		for u := range g.GoodAgents() {
			agent = u
		}
		require.NotNil(t, agent)
		x, y := r.arenaToCell(agent.Position(), g.Size())

		res, ok := r.Click(g, x, y)
		require.True(t, ok)
		assert.Equal(t, engine.ClickBoosted, res, "seed %d", seed)
		assert.True(t, agent.Boosted(), "seed %d", seed)
		assert.Equal(t, 3, g.DropsLeft(), "seed %d", seed)
		assert.False(t, g.PlaneVisible(), "seed %d", seed)
	}
}

// TestClickEmptyCellDrops verifies cells without an agent glyph click the arena under them
func TestClickEmptyCellDrops(t *testing.T) {
	g := newGame(t, 0, 1, 3)
	r := NewRenderer(newScreen(t, 80, 24))
	r.Draw(g)

	var agent *component.Unit
	for u := range g.GoodAgents() {
		agent = u
	}
	require.NotNil(t, agent)

	// The opposite corner from the agent is far outside its arrow
	ax, ay := r.arenaToCell(agent.Position(), g.Size())
	x, y := 0, 0
	if ax < 40 {
		x = 79
	}
	if ay < 12 {
		y = 22
	}

	res, ok := r.Click(g, x, y)
	require.True(t, ok)
	assert.Equal(t, engine.ClickDropped, res)
	assert.Equal(t, 2, g.DropsLeft())
	assert.False(t, agent.Boosted())

	_, ok = r.Click(g, 0, 23)
	assert.False(t, ok, "status row is not arena")
}

// TestClickStaleGlyphFallsBack verifies a glyph whose agent is gone no longer selects it
func TestClickStaleGlyphFallsBack(t *testing.T) {
	g := newGame(t, 0, 1, 3)
	r := NewRenderer(newScreen(t, 80, 24))
	r.Draw(g)

	var agent *component.Unit
	for u := range g.GoodAgents() {
		agent = u
	}
	require.NotNil(t, agent)
	x, y := r.arenaToCell(agent.Position(), g.Size())

	other := newGame(t, 0, 0, 3)
	res, ok := r.Click(other, x, y)
	require.True(t, ok)
	assert.Equal(t, engine.ClickIgnored, res, "a game without good agents is over")
}
