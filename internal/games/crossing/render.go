package crossing

import (
	"fmt"

	"github.com/vovakirdan/crossing/internal/core"
)

// Visual characters for rendering
const (
	LaneChar       = '░'
	WinLineChar    = '═'
	ActorChar      = '█'
	CarChar        = '█'
	CarFrontRight  = '▶'
	CarFrontLeft   = '◀'
	bannerPadChars = 4
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.viewport = core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height())

	if g.round == nil {
		return
	}

	if g.round.State() == StateSelecting {
		g.renderSelection(dst)
		return
	}

	g.renderRoad(dst)
	g.renderActor(dst)
	g.renderCars(dst)
	g.renderHUD(dst)

	switch {
	case g.round.State() == StateLost:
		drawBanner(dst, "Game Over!", core.ColorRed, "Press Enter to try again or Escape to quit")
	case g.round.State() == StateWon:
		drawBanner(dst, "You Won!", core.ColorBrightGreen, "Press Enter to play again or Escape to quit")
	case g.paused:
		drawBanner(dst, "PAUSED", core.ColorBrightWhite, "Press P to resume")
	}
}

func (g *Game) renderRoad(dst *core.Screen) {
	for _, l := range g.round.Lanes() {
		spec := l.Spec()
		r := g.viewport.ToCells(core.NewRect(0, spec.Y, spec.WorldW, spec.Height))
		dst.DrawRect(r, LaneChar, core.ColorDarkGray)
	}

	row := g.viewport.RowOf(g.cfg.World.WinningY)
	dst.DrawHLine(0, row, dst.Width(), WinLineChar, core.ColorGreen)
}

func (g *Game) renderActor(dst *core.Screen) {
	a := g.round.Actor()
	if a == nil {
		return
	}
	r := g.viewport.ToCells(a.Rect())

	frame, ok := a.Frame()
	if !ok {
		dst.DrawRect(r, ActorChar, core.ColorBrightYellow)
		return
	}

	// Frames are clipped to the chicken's cells
	for dy, line := range frame {
		if dy >= r.H {
			break
		}
		dx := 0
		for _, ch := range line {
			if dx >= r.W {
				break
			}
			dst.Set(r.X+dx, r.Y+dy, ch, core.ColorBrightYellow)
			dx++
		}
	}
}

func (g *Game) renderCars(dst *core.Screen) {
	for _, l := range g.round.Lanes() {
		for _, c := range l.Obstacles() {
			r := g.viewport.ToCells(c.Rect())
			dst.DrawRect(r, CarChar, core.ColorRed)

			front, x := CarFrontRight, r.Right()-1
			if c.Direction() < 0 {
				front, x = CarFrontLeft, r.X
			}
			for y := r.Y; y < r.Bottom(); y++ {
				dst.Set(x, y, front, core.ColorYellow)
			}
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Crossings: %d  Difficulty: %s ", g.round.Crossings(), g.round.Profile().Label)
	dst.DrawText(1, 0, hud, core.ColorWhite)
}

func (g *Game) renderSelection(dst *core.Screen) {
	title := g.viewport.RowOf(ButtonRect(g.cfg.World.Width, 0).Y) - 2
	dst.DrawTextCentered(max(title, 0), "Select Difficulty", core.ColorBrightWhite)

	for i, label := range g.cfg.Labels() {
		r := g.viewport.ToCells(ButtonRect(g.cfg.World.Width, i))
		text := fmt.Sprintf("  %d. %s  ", i+1, label)
		color := core.ColorWhite
		if i == g.round.Cursor() {
			text = fmt.Sprintf("> %d. %s <", i+1, label)
			color = core.ColorBrightYellow
		}
		row := r.Y + r.H/2
		x := r.X + (r.W-len([]rune(text)))/2
		dst.DrawText(x, row, text, color)
	}

	dst.DrawTextCentered(dst.Height()-2, "Up/Down select  Enter confirm  1-4 pick  click a button", core.ColorGray)
}

// drawBanner draws a boxed two-line message in the middle of the screen.
func drawBanner(dst *core.Screen, title string, titleColor core.Color, hint string) {
	w := max(len([]rune(title)), len([]rune(hint))) + bannerPadChars
	h := 4
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	r := core.NewRect(x, y, w, h)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)
	dst.DrawTextCentered(y+1, title, titleColor)
	dst.DrawTextCentered(y+2, hint, core.ColorWhite)
}
