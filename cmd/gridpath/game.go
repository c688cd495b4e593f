package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/session"
)

const lineThickness = 2

var lineColor = color.Black

// game adapts a Session to ebiten's Update/Draw loop. It polls input once per
// tick and forwards each event to exactly one session action.
type game struct {
	cfg  config.Settings
	sess *session.Session
}

func newGame(cfg config.Settings, sess *session.Session) *game {
	return &game{cfg: cfg, sess: sess}
}

// Update polls the pointer first, then the action keys.
func (g *game) Update() error {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.sess.Erase(x, y)
		} else {
			g.sess.PaintPrimary(x, y)
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.sess.PaintSecondary(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		g.sess.PaintTertiary(x, y)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.sess.RunAStar()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.sess.RunDijkstra()
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.sess.RunGreedy()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.sess.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.sess.GenerateMaze()
	case repeating(ebiten.KeyArrowRight) || repeating(ebiten.KeyPeriod):
		g.sess.StepForward()
	case repeating(ebiten.KeyArrowLeft) || repeating(ebiten.KeyComma):
		g.sess.StepBackward()
	}
	return nil
}

// repeating fires on the first tick of a press and then every few ticks
// while the key is held, so frames can be scrubbed quickly.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > 15 && d%3 == 0)
}

// Draw renders cells, then the grid lines, then the HUD text in the UI band.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	cw := float32(g.cfg.CellWidth)
	off := float32(g.cfg.TopOffset)
	g.sess.Grid().Cells(func(c grid.Coord, t grid.CellType) {
		if t == grid.Blank {
			return
		}
		vector.DrawFilledRect(screen, float32(c.X)*cw, float32(c.Y)*cw+off, cw, cw, t.Color(), false)
	})
	drawGrid(screen, g.cfg)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), 5, 5)
	ebitenutil.DebugPrintAt(screen, g.sess.Status(), 5, 25)
}

// drawGrid draws vertical lines every cell width below the offset and
// horizontal lines from the offset down.
func drawGrid(screen *ebiten.Image, cfg config.Settings) {
	w, h := float32(cfg.WindowWidth), float32(cfg.WindowHeight)
	cw, off := float32(cfg.CellWidth), float32(cfg.TopOffset)

	for x := float32(0); x <= w; x += cw {
		vector.StrokeLine(screen, x, off, x, h, lineThickness, lineColor, false)
	}
	for y := off; y <= h; y += cw {
		vector.StrokeLine(screen, 0, y, w, y, lineThickness, lineColor, false)
	}
}

// Layout keeps the logical screen equal to the configured window.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
