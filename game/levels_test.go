package game

import (
	"errors"
	"testing"
	"time"
)

func TestLevelFor(t *testing.T) {
	levels := DefaultLevels()

	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{19, 0},
		{20, 1},
		{21, 1},
		{45, 3},
		{79, 6},
		{80, 7},
		{1000, 7},
	}
	for _, test := range tests {
		if got := levels.LevelFor(test.score); got != test.want {
			t.Errorf("LevelFor(%d)=%d want=%d", test.score, got, test.want)
		}
	}

	if levels.Last() != 7 {
		t.Errorf("last=%d want=7", levels.Last())
	}
	if levels.Delay(0) != 190*time.Millisecond || levels.Delay(7) != 30*time.Millisecond {
		t.Errorf("delays=%v", levels.Delays)
	}
}

func TestLevelTableValidate(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		name   string
		levels LevelTable
		valid  bool
	}{
		{"default", DefaultLevels(), true},
		{"two levels", LevelTable{[]int{0, 5}, []time.Duration{ms, ms}}, true},
		{"one level", LevelTable{[]int{0}, []time.Duration{ms}}, false},
		{"length mismatch", LevelTable{[]int{0, 5, 9}, []time.Duration{ms, ms}}, false},
		{"nonzero start", LevelTable{[]int{1, 5}, []time.Duration{ms, ms}}, false},
		{"not increasing", LevelTable{[]int{0, 5, 5}, []time.Duration{ms, ms, ms}}, false},
		{"negative delay", LevelTable{[]int{0, 5}, []time.Duration{ms, -ms}}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.levels.validate()
			if test.valid {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var configErr *ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("err=%v want ConfigError", err)
			}
		})
	}
}
