package engine

// Piece is the falling piece: its kind, the top-left corner of its shape box
// on the board, and its orientation.
type Piece struct {
	Kind Kind
	X, Y int
	Rot  Rotation
}

// BoardCells returns the absolute board coordinates of the filled cells.
func (p Piece) BoardCells() [4]Point {
	cells := Cells(p.Kind, p.Rot)
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// Fit is the outcome of testing a pose against the board.
type Fit int

const (
	// Free means the pose is legal.
	Free Fit = iota
	// Blocked means the pose is illegal: a wall, the floor or a settled cell.
	// Downward, it means the piece has come to rest.
	Blocked
	// GameOverLock means the pose collides with a settled cell in the top
	// two rows: there is no room left to play.
	GameOverLock
)

// String returns a readable name for the fit.
func (f Fit) String() string {
	switch f {
	case Free:
		return "Free"
	case Blocked:
		return "Blocked"
	case GameOverLock:
		return "GameOverLock"
	default:
		return "Unknown"
	}
}

// spawnY places a new shape box fully above the visible grid.
const spawnY = -ShapeSize

// Spawn draws the next kind and places it centered above the grid.
func (s *State) Spawn() {
	s.active = Piece{
		Kind: s.rand.Next(),
		X:    Width/2 - ShapeSize/2,
		Y:    spawnY,
		Rot:  Rot0,
	}
}

// TestPosition checks the active piece at the given pose.
// Horizontal bounds are checked for every cell first, so a piece poking
// through a wall is Blocked no matter where it is vertically. Cells above
// the grid are ignored for floor and occupancy checks.
func (s *State) TestPosition(rot Rotation, x, y int) Fit {
	cells := Piece{Kind: s.active.Kind, X: x, Y: y, Rot: rot}.BoardCells()

	for _, c := range cells {
		if c.X < 0 || c.X >= Width {
			return Blocked
		}
	}

	for _, c := range cells {
		if c.Y < 0 {
			continue
		}
		if c.Y >= Height {
			return Blocked
		}
		if s.board.IsOccupied(c.X, c.Y) {
			if c.Y <= 1 {
				return GameOverLock
			}
			return Blocked
		}
	}
	return Free
}

// TryMove moves the active piece to the requested pose if it is free.
// Otherwise, when the rules allow it, it kicks one column right and then one
// column left. Returns false and leaves the piece untouched if nothing fits.
func (s *State) TryMove(rot Rotation, x, y int) bool {
	if s.TestPosition(rot, x, y) == Free {
		s.commit(rot, x, y)
		return true
	}
	if !s.rules.WallKicks {
		return false
	}
	for _, dx := range [...]int{1, -1} {
		if s.TestPosition(rot, x+dx, y) == Free {
			s.commit(rot, x+dx, y)
			return true
		}
	}
	return false
}

func (s *State) commit(rot Rotation, x, y int) {
	s.active.Rot = rot
	s.active.X = x
	s.active.Y = y
}

// aboveGrid reports whether any filled cell of p sits above row 0.
func aboveGrid(p Piece) bool {
	for _, c := range p.BoardCells() {
		if c.Y < 0 {
			return true
		}
	}
	return false
}
