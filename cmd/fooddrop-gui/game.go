package main

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/food-drop/audio"
	"github.com/lixenwraith/food-drop/component"
	"github.com/lixenwraith/food-drop/parameter/visual"
	"github.com/lixenwraith/food-drop/render"
	"github.com/lixenwraith/food-drop/session"
	"github.com/lixenwraith/food-drop/vmath"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// window adapts a session to ebiten.Game, one simulation tick per ebiten update
type window struct {
	s     *session.Session
	sound *audio.SoundManager
	log   logrus.FieldLogger
	debug bool

	title    string
	vertices []ebiten.Vertex
	indices  []uint16
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := w.s.Restart(); err != nil {
			w.log.WithError(err).Error("restart failed")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		w.log.WithField("muted", w.sound.ToggleMute()).Debug("mute toggled")
	}

	g := w.s.Game()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p := vmath.ScreenToArena(r2.Point{X: float64(x), Y: float64(y)}, g.Size())
		res := g.HandleClick(p)
		w.log.WithFields(logrus.Fields{"x": p.X, "y": p.Y, "result": res.String()}).Debug("click")
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	w.sound.HandleEvents(w.s.Tick(dt))

	if title := render.StatusLine(g); title != w.title {
		w.title = title
		ebiten.SetWindowTitle(title)
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	g := w.s.Game()
	size := g.Size()
	screen.Fill(visual.RgbBackground.RGBA())

	for e := range g.Entities() {
		switch e.Kind() {
		case component.KindObstacle:
			w.drawDisc(screen, e, size, visual.RgbTree)
		case component.KindDeposit:
			w.drawDisc(screen, e, size, visual.RgbFood)
		case component.KindGoodAgent:
			w.drawUnit(screen, e, size, visual.RgbGood, visual.RgbGoodBoosted)
		case component.KindBadAgent:
			w.drawUnit(screen, e, size, visual.RgbBad, visual.RgbBadBoosted)
		case component.KindPlane:
			w.drawUnit(screen, e, size, visual.RgbPlane, visual.RgbPlane)
		}
	}

	if w.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f  deposits %d  good %d  bad %d  frame %d",
			ebiten.ActualTPS(), g.DepositCount(), g.GoodAgentCount(), g.BadAgentCount(), g.Frames()))
	}
}

// Layout keeps one arena unit per window pixel
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.s.Game().SetArenaSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (w *window) drawDisc(screen *ebiten.Image, e component.Entity, size r2.Point, c visual.RGB) {
	p := vmath.ArenaToScreen(e.Position(), size)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(e.Extent()), c.RGBA(), true)
}

func (w *window) drawUnit(screen *ebiten.Image, e component.Entity, size r2.Point, c, boosted visual.RGB) {
	u, ok := e.(*component.Unit)
	if !ok {
		return
	}
	if u.Boosted() {
		c = boosted
	}
	rgba := c.RGBA()
	r, g, b := float32(rgba.R)/0xff, float32(rgba.G)/0xff, float32(rgba.B)/0xff

	w.vertices = w.vertices[:0]
	w.indices = w.indices[:0]
	for _, tri := range u.Outline() {
		for _, v := range tri {
			sp := vmath.ArenaToScreen(v, size)
			w.indices = append(w.indices, uint16(len(w.vertices)))
			w.vertices = append(w.vertices, ebiten.Vertex{
				DstX: float32(sp.X), DstY: float32(sp.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: 1,
			})
		}
	}
	screen.DrawTriangles(w.vertices, w.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	// Heading tick from the tip toward the target while moving
	if !u.AtTarget() {
		tip := vmath.ArenaToScreen(u.Position(), size)
		dir := u.TargetPosition().Sub(u.Position())
		if n := dir.Norm(); n > 0 {
			ahead := vmath.ArenaToScreen(u.Position().Add(dir.Mul(u.Extent()/(2*n))), size)
			vector.StrokeLine(screen, float32(tip.X), float32(tip.Y), float32(ahead.X), float32(ahead.Y), 1, rgba, true)
		}
	}
}
