package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "chicken under car corner",
			a:        NewRect(0, 0, 50, 50),
			b:        NewRect(40, 40, 100, 50),
			expected: true,
		},
		{
			name:     "car touching right edge",
			a:        NewRect(0, 0, 50, 50),
			b:        NewRect(50, 0, 100, 50),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        NewRect(-100, 90, 100, 50),
			b:        NewRect(-1, 100, 50, 50),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	// Difficulty button at index 0 on a 1920-wide world
	r := NewRect(810, 300, 300, 80)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 900, 350, true},
		{"top-left corner", 810, 300, true},
		{"bottom-right edge (exclusive)", 1110, 380, false},
		{"outside left", 800, 350, false},
		{"outside below", 900, 390, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestViewportToCells(t *testing.T) {
	v := NewViewport(1920, 1080, 80, 24)

	tests := []struct {
		name     string
		in       Rect
		expected Rect
	}{
		{"chicken at origin", NewRect(0, 0, 50, 50), NewRect(0, 0, 3, 2)},
		{"car in middle lane", NewRect(960, 540, 100, 50), NewRect(40, 12, 5, 2)},
		{"car half off-screen left", NewRect(-48, 540, 100, 50), NewRect(-2, 12, 5, 2)},
		{"tiny rect still visible", NewRect(0, 0, 1, 1), NewRect(0, 0, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := v.ToCells(tc.in)
			if got != tc.expected {
				t.Errorf("ToCells(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestViewportToWorld(t *testing.T) {
	v := NewViewport(1920, 1080, 80, 24)

	x, y := v.ToWorld(0, 0)
	if x != 12 || y != 22 {
		t.Errorf("ToWorld(0, 0) = (%d, %d), expected (12, 22)", x, y)
	}

	// Round trip: the world point of a cell maps back to that cell
	for col := 0; col < 80; col += 7 {
		for row := 0; row < 24; row += 5 {
			wx, wy := v.ToWorld(col, row)
			cell := v.ToCells(NewRect(wx, wy, 1, 1))
			if cell.X != col || cell.Y != row {
				t.Errorf("round trip (%d, %d) -> (%d, %d) -> (%d, %d)", col, row, wx, wy, cell.X, cell.Y)
			}
		}
	}
}

func TestViewportZeroWorld(t *testing.T) {
	v := NewViewport(0, 0, 80, 24)
	if got := v.ToCells(NewRect(1, 1, 1, 1)); got != (Rect{}) {
		t.Errorf("ToCells on empty world = %+v, expected zero rect", got)
	}
}
