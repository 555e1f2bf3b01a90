package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if s.String() != "        \n        \n        " {
		t.Errorf("new screen should be blank, got %q", s.String())
	}

	empty := NewScreen(-3, -1)
	if empty.Width() != 0 || empty.Height() != 0 || empty.String() != "" {
		t.Errorf("negative sizes should clamp to an empty screen, got %dx%d", empty.Width(), empty.Height())
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, 'X', ColorGreen)

	// Writes outside the buffer are dropped.
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColored(p[0], p[1], 'A', ColorOrange)
	}

	tests := []struct {
		x, y int
		want Cell
	}{
		{1, 1, Cell{'X', ColorGreen}},
		{0, 0, blank},
		{-1, 0, blank},
		{9, 9, blank},
	}
	for _, tt := range tests {
		if got := s.GetCell(tt.x, tt.y); got != tt.want {
			t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tt.x, tt.y, got, tt.want)
		}
	}
	if s.String() != "    \n X  " {
		t.Errorf("String() = %q", s.String())
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blank {
		t.Errorf("after Clear got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawText(3, 0, "●snake", ColorBlue)

	if s.String() != "   ●sn\n      " {
		t.Errorf("DrawText should clip at the edge, got %q", s.String())
	}
	if c := s.GetCell(3, 0); c.Rune != '●' || c.Color != ColorBlue {
		t.Errorf("multibyte rune should fill one cell, got %+v", c)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(1, 0, 4, 3), ColorGray)

	expected := " ┌──┐ \n │  │ \n └──┘ \n      "
	if s.String() != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", s.String(), expected)
	}
	if s.GetCell(1, 0).Color != ColorGray {
		t.Error("box should carry its color")
	}
}
