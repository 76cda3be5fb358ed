package game

import "time"

// LevelTable holds parallel per-level score thresholds and tick delays.
// Level i is reached once the score is at least Thresholds[i]; reaching the
// last level wins the game.
type LevelTable struct {
	Thresholds []int           `yaml:"thresholds,flow"`
	Delays     []time.Duration `yaml:"delays,flow"`
}

func DefaultLevels() LevelTable {
	return LevelTable{
		Thresholds: []int{0, 20, 30, 40, 50, 60, 70, 80},
		Delays: []time.Duration{
			190 * time.Millisecond,
			150 * time.Millisecond,
			120 * time.Millisecond,
			100 * time.Millisecond,
			80 * time.Millisecond,
			60 * time.Millisecond,
			50 * time.Millisecond,
			30 * time.Millisecond,
		},
	}
}

func (levels LevelTable) Len() int {
	return len(levels.Thresholds)
}

// Last is the index of the final, winning level
func (levels LevelTable) Last() int {
	return len(levels.Thresholds) - 1
}

// LevelFor returns the greatest level whose threshold is at most score
func (levels LevelTable) LevelFor(score int) int {
	level := 0
	for level+1 < levels.Len() && score >= levels.Thresholds[level+1] {
		level++
	}
	return level
}

func (levels LevelTable) Delay(level int) time.Duration {
	return levels.Delays[level]
}

func (levels LevelTable) validate() error {
	if len(levels.Thresholds) < 2 {
		return newConfigError("need at least 2 levels, got %d", len(levels.Thresholds))
	}
	if len(levels.Thresholds) != len(levels.Delays) {
		return newConfigError("%d level thresholds but %d delays", len(levels.Thresholds), len(levels.Delays))
	}
	if levels.Thresholds[0] != 0 {
		return newConfigError("first level threshold must be 0, got %d", levels.Thresholds[0])
	}
	for i := 1; i < len(levels.Thresholds); i++ {
		if levels.Thresholds[i] <= levels.Thresholds[i-1] {
			return newConfigError("level thresholds must increase: %d after %d", levels.Thresholds[i], levels.Thresholds[i-1])
		}
	}
	for i, delay := range levels.Delays {
		if delay < 0 {
			return newConfigError("level %d has negative delay %v", i, delay)
		}
	}
	return nil
}
