package game

import (
	"io/ioutil"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	// Grid bounds; the interior is rows 1..Height-1 and columns 1..Width-1
	Height int `yaml:"height"`
	Width  int `yaml:"width"`

	// Smallest accepted grid bounds
	MinHeight int `yaml:"min_height"`
	MinWidth  int `yaml:"min_width"`

	InitialLength  int `yaml:"initial_length"`
	FoodCount      int `yaml:"food_count"`
	ScoreIncrement int `yaml:"score_increment"`

	Levels LevelTable `yaml:"levels"`

	// Pause after the end-of-game banner before waiting for a key
	EndDelay time.Duration `yaml:"end_delay"`

	Seed int64 `yaml:"seed"`

	// Snapshot to load the starting layout from
	Snapshot *GridSnapshot `yaml:"-"`

	// Plays the game in place of direction keys when set
	Director Director `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Height:         DefaultHeight,
		Width:          DefaultWidth,
		MinHeight:      DefaultHeight,
		MinWidth:       DefaultWidth,
		InitialLength:  DefaultInitialLength,
		FoodCount:      DefaultFoodCount,
		ScoreIncrement: DefaultScoreIncrement,
		Levels:         DefaultLevels(),
		EndDelay:       DefaultEndDelay,
		Snapshot:       nil,
		Director:       nil,
	}
}

// LoadGameConfig reads a YAML config file over the defaults. Unknown keys
// are rejected.
func LoadGameConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	in, err := ioutil.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, nil
}

func (config GameConfig) Validate() error {
	if config.Height < config.MinHeight || config.Width < config.MinWidth {
		return newConfigError("grid of %dx%d is smaller than the required %dx%d",
			config.Height, config.Width, config.MinHeight, config.MinWidth)
	}
	if config.InitialLength < 1 {
		return newConfigError("initial snake length must be positive, got %d", config.InitialLength)
	}
	if config.FoodCount < 0 {
		return newConfigError("food count must not be negative, got %d", config.FoodCount)
	}
	if config.ScoreIncrement < 1 {
		return newConfigError("score increment must be positive, got %d", config.ScoreIncrement)
	}
	if config.EndDelay < 0 {
		return newConfigError("end delay must not be negative, got %v", config.EndDelay)
	}
	return config.Levels.validate()
}

// requiredSurface is the terminal size needed for the play window (border
// included) plus the score line beneath it.
func (config GameConfig) requiredSurface() (rows, cols int) {
	return config.Height + 2, config.Width + 1
}

func (config GameConfig) createGrid(rng *rand.Rand) (*GridState, error) {
	if config.Snapshot == nil {
		return NewGridState(config.Height, config.Width, config.InitialLength, config.FoodCount, rng)
	}
	return config.Snapshot.CreateGrid(rng)
}
