// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"strings"
)

// Direction represents a movement direction on the board.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit step for the direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a case-insensitive name ("up", "down", "left", "right").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirUp, fmt.Errorf("core: unknown direction %q", s)
}

// Position is a cell coordinate on the board.
type Position struct {
	X, Y int
}

// Move returns the position n cells away in direction d, without wrapping.
func (p Position) Move(d Direction, n int) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx*n, Y: p.Y + dy*n}
}

// Wrap maps a position that stepped off the board back onto it.
// A coordinate below zero lands on the far edge, one at or past the
// dimension lands on zero.
func (p Position) Wrap(width, height int) Position {
	if p.X < 0 {
		p.X = width - 1
	} else if p.X >= width {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = height - 1
	} else if p.Y >= height {
		p.Y = 0
	}
	return p
}

// In reports whether the position lies inside a width x height board.
func (p Position) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// TorusDistance returns the Manhattan distance between two cells on a
// wrapping board.
func TorusDistance(a, b Position, width, height int) int {
	dx := Abs(a.X - b.X)
	if width-dx < dx {
		dx = width - dx
	}
	dy := Abs(a.Y - b.Y)
	if height-dy < dy {
		dy = height - dy
	}
	return dx + dy
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
