package core

import "testing"

// runeAt is shorthand for the rune drawn at (x, y).
func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("NewScreen() = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenCellColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, Cell{Rune: '@', Color: ColorRed})

	if c := s.GetCell(1, 1); c.Rune != '@' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected '@' in red", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blank {
		t.Errorf("GetCell(1, 1) after Clear = %+v, expected blank", c)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	// Writes outside the buffer are dropped.
	s.SetCell(-1, 0, Cell{Rune: 'A'})
	s.SetCell(4, 0, Cell{Rune: 'A'})
	s.SetCell(0, -1, Cell{Rune: 'A'})
	s.SetCell(0, 4, Cell{Rune: 'A'})

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}, {-1, 9}} {
		if c := s.GetCell(p[0], p[1]); c != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
}

func TestScreenFillCell(t *testing.T) {
	s := NewScreen(3, 2)
	fill := Cell{Rune: '.', Color: ColorBlue}
	s.FillCell(fill)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if c := s.GetCell(x, y); c != fill {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", x, y, c, fill)
			}
		}
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(2, 2, 3, 3, Cell{Rune: '#', Color: ColorGreen})

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if r := runeAt(s, x, y); r != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d), got %q", x, y, r)
			}
		}
	}

	if runeAt(s, 1, 1) != ' ' || runeAt(s, 5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          [][2]int
	}{
		{"horizontal", 2, 2, 6, 2, [][2]int{{2, 2}, {3, 2}, {4, 2}, {5, 2}, {6, 2}}},
		{"vertical", 3, 2, 3, 5, [][2]int{{3, 2}, {3, 3}, {3, 4}, {3, 5}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reversed", 4, 4, 1, 1, [][2]int{{4, 4}, {3, 3}, {2, 2}, {1, 1}}},
		{"single cell", 5, 5, 5, 5, [][2]int{{5, 5}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			s.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, Cell{Rune: '#'})

			count := 0
			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					if runeAt(s, x, y) == '#' {
						count++
					}
				}
			}
			if count != len(tc.cells) {
				t.Errorf("DrawLine set %d cells, expected %d", count, len(tc.cells))
			}
			for _, c := range tc.cells {
				if runeAt(s, c[0], c[1]) != '#' {
					t.Errorf("DrawLine: expected '#' at (%d, %d)", c[0], c[1])
				}
			}
		})
	}
}

func TestScreenDrawLineClipped(t *testing.T) {
	s := NewScreen(5, 5)
	// Should not panic when the line leaves the buffer
	s.DrawLine(-3, 2, 8, 2, Cell{Rune: '-'})

	for x := 0; x < 5; x++ {
		if r := runeAt(s, x, 2); r != '-' {
			t.Errorf("expected '-' at (%d, 2), got %q", x, r)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	mark := Cell{Rune: 'H', Color: ColorYellow}
	s.SetCell(0, 0, mark)
	s.SetCell(9, 9, Cell{Rune: 'W'})

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("Resize() = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if c := s.GetCell(0, 0); c != mark {
		t.Errorf("GetCell(0, 0) = %+v, expected %+v", c, mark)
	}

	// Resize larger - cut content is gone, the rest is blank
	s.Resize(15, 12)
	if c := s.GetCell(0, 0); c != mark {
		t.Errorf("GetCell(0, 0) after enlarging = %+v, expected %+v", c, mark)
	}
	if c := s.GetCell(9, 9); c != blank {
		t.Errorf("GetCell(9, 9) = %+v, expected blank", c)
	}
}
