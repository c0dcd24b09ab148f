package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/food-drop/component"
	"github.com/lixenwraith/food-drop/engine"
	"github.com/lixenwraith/food-drop/parameter/visual"
	"github.com/lixenwraith/food-drop/vmath"
)

// Renderer draws a game onto a terminal screen
// The arena is stretched over every row but the last, which holds the status line
type Renderer struct {
	screen tcell.Screen
	cols   int
	rows   int // Arena rows, excluding the status row

	// Agent id drawn in each arena cell on the last frame, zero for none
	pick []component.ID
}

func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize picks up the current screen dimensions
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.cols = max(w, 0)
	r.rows = max(h-1, 0)
	r.pick = make([]component.ID, r.cols*r.rows)
}

// ArenaCells returns the cell extents of the arena area
func (r *Renderer) ArenaCells() (cols, rows int) {
	return r.cols, r.rows
}

// CellToArena maps a screen cell to the arena point under its center
// ok is false for the status row and anything off screen
func (r *Renderer) CellToArena(x, y int, size r2.Point) (r2.Point, bool) {
	if x < 0 || y < 0 || x >= r.cols || y >= r.rows {
		return r2.Point{}, false
	}
	return r.cellCenter(x, y, size), true
}

// Click applies a mouse press on cell (x, y)
// A press on an agent glyph selects that agent, anything else clicks the arena under the cell center
// The second result is false when the cell is outside the arena area
func (r *Renderer) Click(g *engine.Game, x, y int) (engine.ClickResult, bool) {
	p, ok := r.CellToArena(x, y, g.Size())
	if !ok {
		return engine.ClickIgnored, false
	}
	if id := r.pick[y*r.cols+x]; id != 0 && g.SelectAgent(id) {
		return engine.ClickBoosted, true
	}
	return g.HandleClick(p), true
}

func (r *Renderer) cellCenter(x, y int, size r2.Point) r2.Point {
	screen := r2.Point{
		X: (float64(x) + 0.5) / float64(r.cols) * size.X,
		Y: (float64(y) + 0.5) / float64(r.rows) * size.Y,
	}
	return vmath.ScreenToArena(screen, size)
}

// arenaToCell is the inverse of cellCenter, the result may be off screen
func (r *Renderer) arenaToCell(p, size r2.Point) (int, int) {
	sx := (p.X + size.X/2) / size.X * float64(r.cols)
	sy := (size.Y/2 - p.Y) / size.Y * float64(r.rows)
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// Draw renders one frame: background, entities in draw order, then the status line
func (r *Renderer) Draw(g *engine.Game) {
	r.screen.Clear()
	clear(r.pick)

	if r.cols > 0 && r.rows > 0 {
		bg := tcell.StyleDefault.Background(tcellColor(visual.RgbBackground))
		for y := 0; y < r.rows; y++ {
			for x := 0; x < r.cols; x++ {
				r.screen.SetContent(x, y, ' ', nil, bg)
			}
		}

		size := g.Size()
		for e := range g.Entities() {
			switch e.Kind() {
			case component.KindObstacle:
				r.drawDisc(e, size, visual.CharObstacle, bg.Foreground(tcellColor(visual.RgbTree)))
			case component.KindDeposit:
				r.drawDisc(e, size, visual.CharDeposit, bg.Foreground(tcellColor(visual.RgbFood)))
			case component.KindGoodAgent, component.KindBadAgent:
				r.drawAgent(e, size, bg)
			case component.KindPlane:
				if i, ok := r.set(e.Position(), size, visual.CharPlane, bg.Foreground(tcellColor(visual.RgbPlane)).Bold(true)); ok {
					r.pick[i] = 0
				}
			}
		}
	}

	r.drawStatus(g)
	r.screen.Show()
}

// drawDisc fills every cell whose center lies inside the node, at least the cell under its center
func (r *Renderer) drawDisc(e component.Entity, size r2.Point, ch rune, style tcell.Style) {
	p := e.Position()
	radius := e.Extent()
	x0, y0 := r.arenaToCell(r2.Point{X: p.X - radius, Y: p.Y + radius}, size)
	x1, y1 := r.arenaToCell(r2.Point{X: p.X + radius, Y: p.Y - radius}, size)

	drawn := false
	for y := max(y0, 0); y <= min(y1, r.rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, r.cols-1); x++ {
			if vmath.DistanceSq(r.cellCenter(x, y, size), p) <= radius*radius {
				r.screen.SetContent(x, y, ch, nil, style)
				drawn = true
			}
		}
	}
	if !drawn {
		r.set(p, size, ch, style)
	}
}

func (r *Renderer) drawAgent(e component.Entity, size r2.Point, bg tcell.Style) {
	rgb := visual.RgbGood
	if e.Kind() == component.KindBadAgent {
		rgb = visual.RgbBad
	}
	style := bg

	if u, ok := e.(*component.Unit); ok && u.Boosted() {
		rgb = visual.RgbGoodBoosted
		if e.Kind() == component.KindBadAgent {
			rgb = visual.RgbBadBoosted
		}
		style = style.Bold(true)
	}

	if i, ok := r.set(e.Position(), size, ArrowFor(e.Heading()), style.Foreground(tcellColor(rgb))); ok {
		r.pick[i] = e.ID()
	}
}

func (r *Renderer) drawStatus(g *engine.Game) {
	w, h := r.screen.Size()
	if h <= 0 {
		return
	}
	y := h - 1

	fg := visual.RgbStatusFg
	switch g.Outcome() {
	case engine.OutcomeWon:
		fg = visual.RgbStatusWin
	case engine.OutcomeLost:
		fg = visual.RgbStatusLose
	}
	style := tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(visual.RgbStatusBg))

	line := []rune(StatusLine(g))
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(line) {
			ch = line[x]
		}
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// set draws one glyph at the cell containing p and returns the cell index
// Points off the arena area are skipped
func (r *Renderer) set(p, size r2.Point, ch rune, style tcell.Style) (int, bool) {
	x, y := r.arenaToCell(p, size)
	if x < 0 || y < 0 || x >= r.cols || y >= r.rows {
		return 0, false
	}
	r.screen.SetContent(x, y, ch, nil, style)
	return y*r.cols + x, true
}

// ArrowFor returns the arrow glyph nearest to heading
func ArrowFor(heading float64) rune {
	idx := int(math.Round(heading/(math.Pi/4))) % len(visual.ArrowChars)
	if idx < 0 {
		idx += len(visual.ArrowChars)
	}
	return visual.ArrowChars[idx]
}

func tcellColor(c visual.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
