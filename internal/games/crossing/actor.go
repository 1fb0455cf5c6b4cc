package crossing

import (
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/sprite"
)

// Actor is the player-controlled chicken.
type Actor struct {
	rect   core.Rect
	worldW int
	worldH int
	dx, dy int // Last applied delta

	anim         *sprite.Animation // nil for a plain rectangle
	animSpeed    int
	frameCounter int
}

// NewActor places a chicken of the given size at the bottom centre of the world.
func NewActor(worldW, worldH, size int, anim *sprite.Animation, animSpeed int) *Actor {
	return &Actor{
		rect:      core.NewRect((worldW-size)/2, worldH-size, size, size),
		worldW:    worldW,
		worldH:    worldH,
		anim:      anim,
		animSpeed: animSpeed,
	}
}

// Move shifts the chicken and keeps it fully inside the world.
func (a *Actor) Move(dx, dy int) {
	a.dx, a.dy = dx, dy
	a.rect.X = core.Clamp(a.rect.X+dx, 0, a.worldW-a.rect.W)
	a.rect.Y = core.Clamp(a.rect.Y+dy, 0, a.worldH-a.rect.H)
}

// UpdateAnimation advances the frame counter by the animation speed.
// The counter is kept modulo the frame count, so it is always a valid index.
func (a *Actor) UpdateAnimation() {
	if a.anim == nil {
		return
	}
	a.frameCounter = (a.frameCounter + a.animSpeed) % a.anim.Len()
}

// FrameIndex returns the current animation frame, 0 for a plain chicken.
func (a *Actor) FrameIndex() int {
	return a.frameCounter
}

// Frame returns the current animation frame, if the chicken is animated.
func (a *Actor) Frame() (sprite.Frame, bool) {
	if a.anim == nil {
		return nil, false
	}
	return a.anim.Frame(a.frameCounter), true
}

// Rect returns the chicken's bounding box.
func (a *Actor) Rect() core.Rect {
	return a.rect
}

// Velocity returns the delta applied by the last Move.
func (a *Actor) Velocity() (dx, dy int) {
	return a.dx, a.dy
}
