package main

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

func TestAutopilot(t *testing.T) {
	p := func(x, y int) core.Position { return core.Position{X: x, Y: y} }

	tests := []struct {
		name string
		snap engine.Snapshot
		want core.Direction
	}{
		{
			name: "straight at food",
			snap: engine.Snapshot{Width: 20, Height: 20, Direction: core.DirUp,
				Snake: []core.Position{p(10, 10), p(10, 11)}, Food: p(10, 5)},
			want: core.DirUp,
		},
		{
			name: "turn towards food",
			snap: engine.Snapshot{Width: 20, Height: 20, Direction: core.DirUp,
				Snake: []core.Position{p(10, 10), p(10, 11)}, Food: p(15, 10)},
			want: core.DirRight,
		},
		{
			name: "shorter across the edge",
			snap: engine.Snapshot{Width: 20, Height: 20, Direction: core.DirUp,
				Snake: []core.Position{p(1, 10), p(1, 11)}, Food: p(18, 10)},
			want: core.DirLeft,
		},
		{
			name: "never reverses",
			snap: engine.Snapshot{Width: 20, Height: 20, Direction: core.DirUp,
				Snake: []core.Position{p(10, 10)}, Food: p(11, 12)},
			want: core.DirRight,
		},
		{
			name: "avoids own body",
			snap: engine.Snapshot{Width: 20, Height: 20, Direction: core.DirUp,
				Snake: []core.Position{p(10, 10), p(10, 11), p(11, 11), p(11, 10), p(11, 9), p(10, 9)},
				Food:  p(10, 0)},
			want: core.DirLeft,
		},
		{
			name: "trapped keeps heading",
			snap: engine.Snapshot{Width: 3, Height: 1, Direction: core.DirRight,
				Snake: []core.Position{p(0, 0), p(1, 0), p(2, 0)}, Food: p(0, 0)},
			want: core.DirRight,
		},
		{
			name: "empty snake",
			snap: engine.Snapshot{Width: 20, Height: 20, Direction: core.DirDown},
			want: core.DirDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := autopilot(tt.snap); got != tt.want {
				t.Errorf("autopilot() = %v, want %v", got, tt.want)
			}
		})
	}
}
