// Package config provides YAML-based game configuration loading and
// difficulty selection for the crossing game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// CrossingConfig contains all configuration for the road crossing game.
// Distances are world units, not terminal cells.
type CrossingConfig struct {
	World        WorldConfig         `yaml:"world"`
	Actor        ActorConfig         `yaml:"actor"`
	Obstacles    ObstacleConfig      `yaml:"obstacles"`
	Lanes        LaneLayout          `yaml:"lanes"`
	Difficulties []DifficultyProfile `yaml:"difficulties"`
}

// WorldConfig defines the play area.
type WorldConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	WinningY int `yaml:"winning_y"` // Reaching this y (or above) wins the round
	TickRate int `yaml:"tick_rate"` // Simulation steps per second
}

// ActorConfig defines the chicken.
type ActorConfig struct {
	Size           int    `yaml:"size"`
	AnimationSpeed int    `yaml:"animation_speed"` // Frame counter advance per tick
	Sprite         string `yaml:"sprite"`          // Frames file; "builtin" for the embedded animation
}

// ObstacleConfig defines car dimensions.
type ObstacleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Lane direction assignment modes.
const (
	DirectionSplit     = "split"     // Negative lane indices flow left, the rest flow right
	DirectionAlternate = "alternate" // Direction flips with lane index parity
)

// LaneLayout places lanes around the road centre line.
// Lane i (First <= i < First+Count) sits at RoadY + i*Spacing.
type LaneLayout struct {
	RoadY     int    `yaml:"road_y"`
	Spacing   int    `yaml:"spacing"`
	Height    int    `yaml:"height"`
	First     int    `yaml:"first"`
	Count     int    `yaml:"count"`
	Direction string `yaml:"direction"`
}

// Indices returns the lane indices in top-to-bottom order.
func (l LaneLayout) Indices() []int {
	out := make([]int, 0, l.Count)
	for i := l.First; i < l.First+l.Count; i++ {
		out = append(out, i)
	}
	return out
}

// LaneY returns the top edge of lane i.
func (l LaneLayout) LaneY(i int) int {
	return l.RoadY + i*l.Spacing
}

// DirectionOf returns +1 (left-to-right) or -1 (right-to-left) for lane i.
func (l LaneLayout) DirectionOf(i int) int {
	if l.Direction == DirectionAlternate {
		if i%2 == 0 {
			return 1
		}
		return -1
	}
	if i >= 0 {
		return 1
	}
	return -1
}

// Validate checks that the configuration can drive a game.
func (c CrossingConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %dx%d", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.World.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, c.World.TickRate)
	case c.Actor.Size <= 0 || c.Actor.Size > c.World.Width || c.Actor.Size > c.World.Height:
		return fmt.Errorf("%w: actor size %d", ErrInvalidConfig, c.Actor.Size)
	case c.Actor.AnimationSpeed < 0:
		return fmt.Errorf("%w: animation speed %d", ErrInvalidConfig, c.Actor.AnimationSpeed)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return fmt.Errorf("%w: obstacle size %dx%d", ErrInvalidConfig, c.Obstacles.Width, c.Obstacles.Height)
	case c.Lanes.Height <= 0 || c.Lanes.Count < 0:
		return fmt.Errorf("%w: lane height %d count %d", ErrInvalidConfig, c.Lanes.Height, c.Lanes.Count)
	case c.Lanes.Direction != "" && c.Lanes.Direction != DirectionSplit && c.Lanes.Direction != DirectionAlternate:
		return fmt.Errorf("%w: lane direction %q", ErrInvalidConfig, c.Lanes.Direction)
	case len(c.Difficulties) == 0:
		return fmt.Errorf("%w: no difficulties defined", ErrInvalidConfig)
	}

	for i, d := range c.Difficulties {
		if err := d.validate(); err != nil {
			return fmt.Errorf("difficulty %d: %w", i, err)
		}
	}
	return nil
}
