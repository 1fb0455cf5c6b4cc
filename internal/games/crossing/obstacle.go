package crossing

import "github.com/vovakirdan/crossing/internal/core"

// Obstacle is a car driving along one lane.
type Obstacle struct {
	rect  core.Rect
	dir   int // +1 left-to-right, -1 right-to-left
	laneY int
}

// NewObstacle creates a car just off-screen on the side traffic comes from,
// vertically centred in its lane.
func NewObstacle(laneY, laneH, dir, w, h, worldW int) Obstacle {
	x := worldW
	if dir > 0 {
		x = -w
	}
	return Obstacle{
		rect:  core.NewRect(x, laneY+(laneH-h)/2, w, h),
		dir:   dir,
		laneY: laneY,
	}
}

// Move advances the car by speed in its direction.
// A car that ends up past the far edge re-enters from its starting side;
// lanes normally prune such cars before that can matter.
func (o *Obstacle) Move(speed, worldW int) {
	o.rect.X += o.dir * speed
	if o.dir > 0 && o.rect.X > worldW {
		o.rect.X = -o.rect.W
	} else if o.dir < 0 && o.rect.X < -o.rect.W {
		o.rect.X = worldW
	}
}

// Rect returns the car's bounding box.
func (o Obstacle) Rect() core.Rect {
	return o.rect
}

// Direction returns +1 or -1.
func (o Obstacle) Direction() int {
	return o.dir
}

// LaneY returns the top edge of the car's lane.
func (o Obstacle) LaneY() int {
	return o.laneY
}

// onScreen reports whether any part of the car is visible.
func (o Obstacle) onScreen(worldW int) bool {
	return o.rect.X > -o.rect.W && o.rect.X < worldW
}
