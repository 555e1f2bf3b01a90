package main

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// autopilot picks the safe direction that gets closest to the food on the
// wrapping board. It keeps the current heading when every move is fatal.
func autopilot(s engine.Snapshot) core.Direction {
	head, ok := s.Head()
	if !ok {
		return s.Direction
	}

	best, bestDist := s.Direction, -1
	for _, d := range core.Directions {
		if d == s.Direction.Opposite() {
			continue
		}
		next := head.Move(d, 1).Wrap(s.Width, s.Height)
		if slices.Contains(s.Snake, next) {
			continue
		}
		dist := core.TorusDistance(next, s.Food, s.Width, s.Height)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}
