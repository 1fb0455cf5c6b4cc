package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownDifficulty is returned when a selection does not name a profile.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// SpawnInterval is an inclusive range of ticks between car spawns.
type SpawnInterval struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DifficultyProfile holds the tunables picked on the selection screen.
// It is chosen once per session and never mutated during play.
type DifficultyProfile struct {
	Label         string        `yaml:"label"`
	ActorSpeed    int           `yaml:"actor_speed"`    // World units per tick
	ObstacleSpeed int           `yaml:"obstacle_speed"` // World units per tick
	MaxPerLane    int           `yaml:"max_per_lane"`
	SpawnInterval SpawnInterval `yaml:"spawn_interval"`
}

func (d DifficultyProfile) validate() error {
	switch {
	case d.Label == "":
		return fmt.Errorf("%w: empty label", ErrInvalidConfig)
	case d.ActorSpeed < 0 || d.ObstacleSpeed < 0:
		return fmt.Errorf("%w: negative speed in %q", ErrInvalidConfig, d.Label)
	case d.MaxPerLane < 0:
		return fmt.Errorf("%w: negative car cap in %q", ErrInvalidConfig, d.Label)
	case d.SpawnInterval.Min < 1 || d.SpawnInterval.Max < d.SpawnInterval.Min:
		return fmt.Errorf("%w: spawn interval (%d,%d) in %q",
			ErrInvalidConfig, d.SpawnInterval.Min, d.SpawnInterval.Max, d.Label)
	}
	return nil
}

// DefaultProfiles returns the four stock difficulties, easiest first.
func DefaultProfiles() []DifficultyProfile {
	return []DifficultyProfile{
		{Label: "Baby", ActorSpeed: 2, ObstacleSpeed: 3, MaxPerLane: 3, SpawnInterval: SpawnInterval{Min: 80, Max: 150}},
		{Label: "Easy", ActorSpeed: 3, ObstacleSpeed: 5, MaxPerLane: 5, SpawnInterval: SpawnInterval{Min: 50, Max: 120}},
		{Label: "Hard", ActorSpeed: 4, ObstacleSpeed: 7, MaxPerLane: 7, SpawnInterval: SpawnInterval{Min: 30, Max: 100}},
		{Label: "Impossible", ActorSpeed: 5, ObstacleSpeed: 10, MaxPerLane: 10, SpawnInterval: SpawnInterval{Min: 20, Max: 80}},
	}
}

// Profile returns the difficulty at the given zero-based index.
func (c CrossingConfig) Profile(index int) (DifficultyProfile, error) {
	if index < 0 || index >= len(c.Difficulties) {
		return DifficultyProfile{}, fmt.Errorf("%w: index %d", ErrUnknownDifficulty, index)
	}
	return c.Difficulties[index], nil
}

// ProfileByName resolves a case-insensitive label ("hard") or a
// one-based position ("3") to a profile and its index.
func (c CrossingConfig) ProfileByName(name string) (int, DifficultyProfile, error) {
	name = strings.TrimSpace(name)
	if n, err := strconv.Atoi(name); err == nil {
		p, err := c.Profile(n - 1)
		if err != nil {
			return 0, DifficultyProfile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
		}
		return n - 1, p, nil
	}
	for i, p := range c.Difficulties {
		if strings.EqualFold(p.Label, name) {
			return i, p, nil
		}
	}
	return 0, DifficultyProfile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// Labels returns the difficulty labels in selection order.
func (c CrossingConfig) Labels() []string {
	out := make([]string, len(c.Difficulties))
	for i, d := range c.Difficulties {
		out[i] = d.Label
	}
	return out
}
