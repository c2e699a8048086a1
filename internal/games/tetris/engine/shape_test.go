package engine

import "testing"

func TestRotateIndex(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		kind     Kind
		rot      Rotation
		expected int
	}{
		{"0 deg origin", 0, 0, T, Rot0, 0},
		{"0 deg corner", 3, 3, T, Rot0, 15},
		{"90 deg origin", 0, 0, T, Rot90, 12},
		{"90 deg corner", 3, 3, T, Rot90, 3},
		{"180 deg origin", 0, 0, T, Rot180, 15},
		{"180 deg corner", 3, 3, T, Rot180, 0},
		{"270 deg origin", 0, 0, T, Rot270, 3},
		{"270 deg corner", 3, 3, T, Rot270, 12},
		{"O ignores 90", 1, 0, O, Rot90, 1},
		{"O ignores 270", 2, 1, O, Rot270, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RotateIndex(tc.x, tc.y, tc.kind, tc.rot)
			if got != tc.expected {
				t.Errorf("RotateIndex(%d, %d, %v, %d) = %d, expected %d",
					tc.x, tc.y, tc.kind, tc.rot, got, tc.expected)
			}
		})
	}
}

func TestOPieceSameAtEveryRotation(t *testing.T) {
	base := Cells(O, Rot0)
	for r := Rot90; r < NumRotations; r++ {
		if got := Cells(O, r); got != base {
			t.Errorf("Cells(O, %d) = %v, expected %v", r, got, base)
		}
	}
}

func TestCellsStayInsideBox(t *testing.T) {
	for _, k := range Kinds {
		for r := Rot0; r < NumRotations; r++ {
			cells := Cells(k, r)
			seen := make(map[Point]bool)
			for _, c := range cells {
				if c.X < 0 || c.X >= ShapeSize || c.Y < 0 || c.Y >= ShapeSize {
					t.Errorf("Cells(%v, %d) has %v outside the box", k, r, c)
				}
				if seen[c] {
					t.Errorf("Cells(%v, %d) repeats %v", k, r, c)
				}
				seen[c] = true
			}
		}
	}
}

func TestIPieceOrientations(t *testing.T) {
	for _, c := range Cells(I, Rot0) {
		if c.X != 2 {
			t.Errorf("I at 0 deg: cell %v, expected column 2", c)
		}
	}
	for _, c := range Cells(I, Rot90) {
		if c.Y != 1 {
			t.Errorf("I at 90 deg: cell %v, expected row 1", c)
		}
	}
}

func TestKindLetters(t *testing.T) {
	for _, k := range Kinds {
		got, ok := KindForLetter(k.Letter())
		if !ok || got != k {
			t.Errorf("KindForLetter(%q) = %v, %v, expected %v", k.Letter(), got, ok, k)
		}
	}
	if _, ok := KindForLetter('.'); ok {
		t.Error("KindForLetter('.') should not match a kind")
	}
}

func TestRotationNextWraps(t *testing.T) {
	if Rot270.Next() != Rot0 {
		t.Errorf("Rot270.Next() = %d, expected %d", Rot270.Next(), Rot0)
	}
	if Rot0.Next() != Rot90 {
		t.Errorf("Rot0.Next() = %d, expected %d", Rot0.Next(), Rot90)
	}
}
