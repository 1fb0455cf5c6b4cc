package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default game configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		World: WorldConfig{
			Width:    1920,
			Height:   1080,
			WinningY: 100,
			TickRate: 30,
		},
		Actor: ActorConfig{
			Size:           50,
			AnimationSpeed: 5,
		},
		Obstacles: ObstacleConfig{
			Width:  100,
			Height: 50,
		},
		Lanes: LaneLayout{
			RoadY:     540,
			Spacing:   150,
			Height:    50,
			First:     -3,
			Count:     6,
			Direction: DirectionSplit,
		},
		Difficulties: DefaultProfiles(),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
