package engine

import "fmt"

// Board is the settled-cell grid. Cells are stored row-major, index
// x + y*Width; a zero byte is empty, anything else is a piece letter.
// Row 0 is where cleared rows are replenished.
type Board struct {
	cells [Width * Height]byte
}

// index converts a coordinate to a flat array index.
func index(x, y int) int {
	return x + y*Width
}

// InBounds returns true if (x, y) lies on the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// IsOccupied reports whether (x, y) is on the grid and holds a settled cell.
// Positions above the grid (y < 0) are never occupied.
func (b *Board) IsOccupied(x, y int) bool {
	if !InBounds(x, y) {
		return false
	}
	return b.cells[index(x, y)] != 0
}

// At returns the tag stored at (x, y), or 0 for empty and out-of-bounds cells.
func (b *Board) At(x, y int) byte {
	if !InBounds(x, y) {
		return 0
	}
	return b.cells[index(x, y)]
}

// Set stores a tag at (x, y). Out-of-bounds coordinates are ignored.
func (b *Board) Set(x, y int, tag byte) {
	if InBounds(x, y) {
		b.cells[index(x, y)] = tag
	}
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.cells = [Width * Height]byte{}
}

// WritePiece settles every filled cell of p into the grid.
// The caller must already have verified the placement; writing a piece that
// leaves the grid is a programmer error and panics.
func (b *Board) WritePiece(p Piece) {
	tag := p.Kind.Letter()
	for _, c := range p.BoardCells() {
		if !InBounds(c.X, c.Y) {
			panic(fmt.Sprintf("engine: write of %v outside the board at (%d, %d)", p.Kind, c.X, c.Y))
		}
		b.Set(c.X, c.Y, tag)
	}
}

// RowFull reports whether every column of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if b.cells[index(x, y)] == 0 {
			return false
		}
	}
	return true
}

// CompactAndClear removes every full row, shifting the rows with smaller
// indices one step toward it and emptying row 0. Rows are handled in
// ascending order. Returns the number of rows removed.
func (b *Board) CompactAndClear() int {
	cleared := 0
	for y := 0; y < Height; y++ {
		if !b.RowFull(y) {
			continue
		}
		copy(b.cells[Width:index(0, y+1)], b.cells[:index(0, y)])
		for x := 0; x < Width; x++ {
			b.cells[x] = 0
		}
		cleared++
	}
	return cleared
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// String renders the grid one row per line, '.' for empty cells.
func (b *Board) String() string {
	buf := make([]byte, 0, (Width+1)*Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := b.cells[index(x, y)]
			if c == 0 {
				c = '.'
			}
			buf = append(buf, c)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
