package engine

// Step advances the simulation by one tick. It does nothing unless the game
// is playing.
func (e *Engine) Step() {
	if e.closed || e.state != StatePlaying || len(e.snake) == 0 {
		return
	}

	// Apply buffered direction
	e.direction = e.pending

	head := e.snake[0].Move(e.direction, 1).Wrap(e.width, e.height)

	// The tail has not moved yet, so running into it counts.
	if e.occupied(head) {
		e.gameOver()
		return
	}

	e.snake = append(e.snake, head)
	copy(e.snake[1:], e.snake[:len(e.snake)-1])
	e.snake[0] = head

	if head == e.food {
		e.score += e.cfg.Rules.FoodReward
		e.spawnFood()
		e.updateLevel()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	e.render()
}
