package crossing

import (
	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
)

// Rand is the random source used for spawn timers.
// *math/rand.Rand satisfies it; tests inject fixed sequences.
type Rand interface {
	Intn(n int) int
}

// LaneSpec describes where a lane is and what drives on it.
type LaneSpec struct {
	Y         int // Top edge of the lane
	Height    int
	Direction int // +1 or -1
	CarW      int
	CarH      int
	WorldW    int
}

// Lane owns the cars of one lane and spawns new ones on a random timer.
type Lane struct {
	spec       LaneSpec
	speed      int
	maxCars    int
	interval   config.SpawnInterval
	rng        Rand
	cars       []Obstacle // Spawn order
	spawnTimer int        // Ticks until the next spawn attempt
}

// NewLane creates an empty lane; the first spawn is scheduled at random.
func NewLane(spec LaneSpec, profile config.DifficultyProfile, rng Rand) *Lane {
	l := &Lane{
		spec:     spec,
		speed:    profile.ObstacleSpeed,
		maxCars:  profile.MaxPerLane,
		interval: profile.SpawnInterval,
		rng:      rng,
		cars:     make([]Obstacle, 0, profile.MaxPerLane),
	}
	l.spawnTimer = l.nextInterval()
	return l
}

// Update runs one tick: count down, maybe spawn, move, then drop cars that
// have fully left the screen. Reports whether a car was spawned.
func (l *Lane) Update() bool {
	spawned := false

	l.spawnTimer--
	if l.spawnTimer <= 0 && len(l.cars) < l.maxCars {
		l.cars = append(l.cars, NewObstacle(l.spec.Y, l.spec.Height, l.spec.Direction,
			l.spec.CarW, l.spec.CarH, l.spec.WorldW))
		l.spawnTimer = l.nextInterval()
		spawned = true
	}

	for i := range l.cars {
		l.cars[i].Move(l.speed, l.spec.WorldW)
	}

	kept := l.cars[:0]
	for _, c := range l.cars {
		if c.onScreen(l.spec.WorldW) {
			kept = append(kept, c)
		}
	}
	l.cars = kept

	return spawned
}

// nextInterval draws a spawn delay uniformly from the inclusive interval.
func (l *Lane) nextInterval() int {
	lo, hi := l.interval.Min, l.interval.Max
	if hi <= lo {
		return lo
	}
	return lo + l.rng.Intn(hi-lo+1)
}

// Collides reports whether any car overlaps r.
func (l *Lane) Collides(r core.Rect) bool {
	for _, c := range l.cars {
		if c.rect.Intersects(r) {
			return true
		}
	}
	return false
}

// Obstacles returns the live cars in spawn order.
// The slice is owned by the lane and valid until the next Update.
func (l *Lane) Obstacles() []Obstacle {
	return l.cars
}

// Spec returns the lane geometry.
func (l *Lane) Spec() LaneSpec {
	return l.spec
}

// SpawnTimer returns the ticks left until the next spawn attempt.
func (l *Lane) SpawnTimer() int {
	return l.spawnTimer
}
