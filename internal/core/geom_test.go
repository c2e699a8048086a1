package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 5, true},
		{"last column", 5, 3, true},
		{"past right edge", 6, 3, false},
		{"last row", 2, 7, true},
		{"past bottom edge", 2, 8, false},
		{"left of rect", 1, 4, false},
		{"above rect", 3, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 22, 22)
	if r.Right() != 23 {
		t.Errorf("Right() = %d, expected 23", r.Right())
	}
	if r.Bottom() != 24 {
		t.Errorf("Bottom() = %d, expected 24", r.Bottom())
	}
}

func TestRectInner(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"board well", NewRect(0, 1, 22, 22), NewRect(1, 2, 20, 20)},
		{"border only", NewRect(5, 5, 2, 2), NewRect(6, 6, 0, 0)},
		{"too thin", NewRect(0, 0, 1, 6), NewRect(1, 1, 0, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inner(); got != tc.expected {
				t.Errorf("Inner() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorDefault, "default"},
		{ColorCyan, "cyan"},
		{ColorBrightWhite, "bright-white"},
		{ColorOrange, "orange"},
		{ColorGray, "gray"},
		{Color(200), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.c.String(); got != tc.expected {
			t.Errorf("Color(%d).String() = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}
