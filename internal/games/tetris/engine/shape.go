// Package engine implements the falling-block game rules: the board, piece
// motion and rotation, line clears, scoring and the pausable game clock.
// It has no I/O and no dependency on the platform layer, so every rule can
// be exercised directly from tests.
package engine

// Board dimensions.
const (
	Width  = 10
	Height = 20
)

// ShapeSize is the side of the square box every shape is drawn in.
const ShapeSize = 4

// Kind identifies one of the seven pieces.
type Kind int

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
	NumKinds
)

// Kinds lists every piece kind in declaration order.
var Kinds = [NumKinds]Kind{I, O, T, S, Z, J, L}

// shapes holds the canonical 0° pattern of each kind, row-major.
var shapes = [NumKinds]string{
	"..I." +
		"..I." +
		"..I." +
		"..I.",
	".OO." +
		".OO." +
		"...." +
		"....",
	"..T." +
		".TTT" +
		"...." +
		"....",
	"..SS" +
		".SS." +
		"...." +
		"....",
	".ZZ." +
		"..ZZ" +
		"...." +
		"....",
	".J.." +
		".JJJ" +
		"...." +
		"....",
	".L.." +
		".LLL" +
		"...." +
		"....",
}

// Letter returns the tag written into the board for this kind.
func (k Kind) Letter() byte {
	return "IOTSZJL"[k]
}

// String returns the one-letter name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		return "?"
	}
	return string(k.Letter())
}

// KindForLetter maps a board tag back to its kind.
func KindForLetter(b byte) (Kind, bool) {
	for _, k := range Kinds {
		if k.Letter() == b {
			return k, true
		}
	}
	return 0, false
}

// Rotation is one of the four fixed orientations.
type Rotation int

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
	NumRotations
)

// Next returns the orientation one clockwise step further.
func (r Rotation) Next() Rotation {
	return (r + 1) % NumRotations
}

// Point is a cell coordinate, either inside a shape box or on the board.
type Point struct {
	X, Y int
}

// RotateIndex maps canonical cell (x, y) of a shape box to its linear index
// in the same box at the given rotation. The O piece never rotates.
func RotateIndex(x, y int, k Kind, r Rotation) int {
	if k == O {
		return y*ShapeSize + x
	}
	switch r % NumRotations {
	case Rot90:
		return 12 + y - x*ShapeSize
	case Rot180:
		return 15 - y*ShapeSize - x
	case Rot270:
		return 3 - y + x*ShapeSize
	default:
		return y*ShapeSize + x
	}
}

// Cells returns the box-relative positions of the four filled cells of k at
// rotation r, in canonical pattern order.
func Cells(k Kind, r Rotation) [4]Point {
	var cells [4]Point
	n := 0
	pattern := shapes[k]
	for i := 0; i < ShapeSize*ShapeSize; i++ {
		if pattern[i] == '.' {
			continue
		}
		idx := RotateIndex(i%ShapeSize, i/ShapeSize, k, r)
		cells[n] = Point{X: idx % ShapeSize, Y: idx / ShapeSize}
		n++
	}
	return cells
}
