package core

import "testing"

func TestPositionWrap(t *testing.T) {
	tests := []struct {
		name     string
		start    Position
		dir      Direction
		expected Position
	}{
		{"left edge", Position{0, 10}, DirLeft, Position{19, 10}},
		{"right edge", Position{19, 10}, DirRight, Position{0, 10}},
		{"top edge", Position{10, 0}, DirUp, Position{10, 19}},
		{"bottom edge", Position{10, 19}, DirDown, Position{10, 0}},
		{"interior", Position{5, 5}, DirRight, Position{6, 5}},
		{"corner", Position{0, 0}, DirUp, Position{0, 19}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.start.Move(tc.dir, 1).Wrap(20, 20)
			if got != tc.expected {
				t.Errorf("Move(%v).Wrap() = %v, expected %v", tc.dir, got, tc.expected)
			}
			if !got.In(20, 20) {
				t.Errorf("wrapped position %v is off the board", got)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if d.Opposite() != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), want)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite is not an involution for %v", d)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDirection(%q) = %v", d.String(), got)
		}
	}

	if d, err := ParseDirection(" UP "); err != nil || d != DirUp {
		t.Errorf("ParseDirection should ignore case and spaces, got %v, %v", d, err)
	}
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestTorusDistance(t *testing.T) {
	tests := []struct {
		a, b     Position
		expected int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{19, 0}, 1},
		{Position{0, 0}, Position{10, 10}, 20},
		{Position{2, 3}, Position{5, 18}, 8},
	}

	for _, tc := range tests {
		if got := TorusDistance(tc.a, tc.b, 20, 20); got != tc.expected {
			t.Errorf("TorusDistance(%v, %v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong values")
	}
}
