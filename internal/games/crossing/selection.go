package crossing

import (
	"github.com/vovakirdan/crossing/internal/core"
)

// Difficulty button layout in world units.
const (
	buttonW     = 300
	buttonH     = 80
	buttonTop   = 300
	buttonPitch = 100
)

// ButtonRect returns the world-space rectangle of difficulty button i.
func ButtonRect(worldW, i int) core.Rect {
	return core.NewRect(worldW/2-buttonW/2, buttonTop+i*buttonPitch, buttonW, buttonH)
}

// ButtonAt returns the index of the button containing world point (x, y).
func (r *Round) ButtonAt(x, y int) (int, bool) {
	for i := range r.cfg.Difficulties {
		if ButtonRect(r.cfg.World.Width, i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Cursor returns the highlighted button on the selection screen.
func (r *Round) Cursor() int {
	return r.cursor
}

// stepSelecting handles the selection screen: arrows move the highlight,
// Enter or a digit picks. Clicks are handled by Click.
func (r *Round) stepSelecting(in core.InputFrame) {
	n := len(r.cfg.Difficulties)

	for _, a := range []core.Action{core.ActionSelect1, core.ActionSelect2, core.ActionSelect3, core.ActionSelect4} {
		if !in.Has(a) {
			continue
		}
		if idx, ok := a.SelectIndex(); ok && idx < n {
			//nolint:errcheck // Index checked above and state is Selecting
			r.Select(idx)
			return
		}
	}

	switch {
	case in.Has(core.ActionUp):
		if r.cursor > 0 {
			r.cursor--
		}
	case in.Has(core.ActionDown):
		if r.cursor < n-1 {
			r.cursor++
		}
	case in.Has(core.ActionConfirm):
		//nolint:errcheck // Cursor is always within range
		r.Select(r.cursor)
	}
}

// Click picks the difficulty under world point (x, y), if any.
func (r *Round) Click(x, y int) bool {
	if r.state != StateSelecting {
		return false
	}
	idx, ok := r.ButtonAt(x, y)
	if !ok {
		return false
	}
	return r.Select(idx) == nil
}
