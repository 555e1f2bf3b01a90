package engine

import "github.com/vovakirdan/tui-snake/internal/core"

// spawnFood places food on a uniformly random free cell by rejection
// sampling. After too many misses it picks among the remaining free cells
// directly, and leaves the food where it is when the board is full.
func (e *Engine) spawnFood() {
	attempts := e.width * e.height * 4
	for range attempts {
		p := core.Position{X: e.rng.Intn(e.width), Y: e.rng.Intn(e.height)}
		if !e.occupied(p) {
			e.food = p
			return
		}
	}

	var free []core.Position
	for y := range e.height {
		for x := range e.width {
			p := core.Position{X: x, Y: y}
			if !e.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return
	}
	e.food = free[e.rng.Intn(len(free))]
}

// occupied reports whether any snake segment is on p.
func (e *Engine) occupied(p core.Position) bool {
	for _, seg := range e.snake {
		if seg == p {
			return true
		}
	}
	return false
}
