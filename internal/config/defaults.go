package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:     20,
			Height:    20,
			CellWidth: 2,
		},
		Snake: StartConfig{
			X:         10,
			Y:         10,
			Length:    3,
			Direction: "up",
		},
		Rules: RulesConfig{
			FoodReward:     10,
			PointsPerLevel: 50,
		},
		Tempo: TempoConfig{
			BaseMS:       200,
			TurboMS:      100,
			BaseStepMS:   20,
			TurboStepMS:  10,
			BaseFloorMS:  100,
			TurboFloorMS: 50,
		},
		Input: InputConfig{
			ReleaseAfterMS: 500,
		},
	}
}
