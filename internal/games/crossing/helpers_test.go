package crossing

import (
	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
)

// seqRand returns its values in order and then repeats the last one.
// Values are reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v % n
}

func profile(actor, obstacle, maxCars, lo, hi int) config.DifficultyProfile {
	return config.DifficultyProfile{
		Label:         "Test",
		ActorSpeed:    actor,
		ObstacleSpeed: obstacle,
		MaxPerLane:    maxCars,
		SpawnInterval: config.SpawnInterval{Min: lo, Max: hi},
	}
}

// singleLaneConfig puts one left-to-right lane on the chicken's start row.
func singleLaneConfig(p config.DifficultyProfile) config.CrossingConfig {
	cfg := config.DefaultCrossingConfig()
	cfg.Lanes = config.LaneLayout{
		RoadY:     1030,
		Spacing:   150,
		Height:    50,
		First:     0,
		Count:     1,
		Direction: config.DirectionSplit,
	}
	cfg.Difficulties = []config.DifficultyProfile{p}
	return cfg
}

func emptyRoadConfig(p config.DifficultyProfile) config.CrossingConfig {
	cfg := config.DefaultCrossingConfig()
	cfg.Lanes.Count = 0
	cfg.Difficulties = []config.DifficultyProfile{p}
	return cfg
}

func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
