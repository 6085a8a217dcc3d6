package snake

import (
	"testing"

	"github.com/vovakirdan/termsnake/internal/core"
)

var testGrid = Grid{Cols: 20, Rows: 20}

func newTestSnake(head Cell, dir Direction) *Snake {
	return NewSnake(head, dir, testGrid, core.ColorBrightGreen, core.ColorGreen)
}

func TestNewSnake(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		wantTail Cell
	}{
		{name: "facing right", dir: DirRight, wantTail: Cell{X: 9, Y: 10}},
		{name: "facing left", dir: DirLeft, wantTail: Cell{X: 11, Y: 10}},
		{name: "facing up", dir: DirUp, wantTail: Cell{X: 10, Y: 11}},
		{name: "facing down", dir: DirDown, wantTail: Cell{X: 10, Y: 9}},
	}

	head := Cell{X: 10, Y: 10}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSnake(head, tc.dir)

			if s.Len() != 2 {
				t.Fatalf("Len() = %d, expected 2", s.Len())
			}
			if s.Head().Cell != head {
				t.Errorf("head at %v, expected %v", s.Head().Cell, head)
			}
			if got := s.body[1].Cell; got != tc.wantTail {
				t.Errorf("tail at %v, expected %v", got, tc.wantTail)
			}
			if s.Head().Color == s.body[1].Color {
				t.Error("head color should differ from body color")
			}
		})
	}
}

func TestPeekNextIsPure(t *testing.T) {
	s := newTestSnake(Cell{X: 10, Y: 10}, DirRight)

	want := Cell{X: 11, Y: 10}
	for i := 0; i < 3; i++ {
		if got := s.PeekNext(); got != want {
			t.Fatalf("PeekNext() = %v, expected %v", got, want)
		}
	}
	if s.Len() != 2 {
		t.Errorf("PeekNext mutated the body: len %d", s.Len())
	}
}

func TestReversalGuard(t *testing.T) {
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		t.Run(dir.String(), func(t *testing.T) {
			s := newTestSnake(Cell{X: 10, Y: 10}, dir)

			before := s.PeekNext()
			s.SetDirection(dir.Opposite())
			if got := s.PeekNext(); got != before {
				t.Errorf("reversal accepted: PeekNext moved from %v to %v", before, got)
			}
		})
	}
}

func TestReversalGuardChecksCommittedDirection(t *testing.T) {
	// Two key presses within one tick must not fold the snake back:
	// after turning down (pending) and then left, up is still on the
	// committed axis only after a move commits down.
	s := newTestSnake(Cell{X: 10, Y: 10}, DirRight)

	s.SetDirection(DirDown)
	// Down is pending but not committed; up still shares an axis with
	// nothing committed (right), so it is accepted and replaces down.
	s.SetDirection(DirUp)
	if got := s.PeekNext(); got != (Cell{X: 10, Y: 9}) {
		t.Errorf("PeekNext() = %v, expected the up cell (10,9)", got)
	}

	// After committing a vertical move, left/right become legal and
	// up/down are rejected.
	s.Advance()
	s.SetDirection(DirDown)
	if got := s.PeekNext(); got != (Cell{X: 10, Y: 8}) {
		t.Errorf("same-axis change accepted after commit: PeekNext() = %v", got)
	}
	s.SetDirection(DirLeft)
	if got := s.PeekNext(); got != (Cell{X: 9, Y: 9}) {
		t.Errorf("cross-axis change rejected: PeekNext() = %v", got)
	}
}

func TestCanAdvanceBounds(t *testing.T) {
	tests := []struct {
		name string
		head Cell
		dir  Direction
		want bool
	}{
		{name: "right edge facing right", head: Cell{X: 19, Y: 10}, dir: DirRight, want: false},
		{name: "left edge facing left", head: Cell{X: 0, Y: 10}, dir: DirLeft, want: false},
		{name: "top edge facing up", head: Cell{X: 10, Y: 0}, dir: DirUp, want: false},
		{name: "bottom edge facing down", head: Cell{X: 10, Y: 19}, dir: DirDown, want: false},
		{name: "one short of the edge", head: Cell{X: 18, Y: 10}, dir: DirRight, want: true},
		{name: "center", head: Cell{X: 10, Y: 10}, dir: DirUp, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSnake(tc.head, tc.dir)
			if got := s.CanAdvance(); got != tc.want {
				t.Errorf("CanAdvance() = %v, expected %v", got, tc.want)
			}
		})
	}
}

// buildSnake lays out a snake over explicit cells, head first.
func buildSnake(dir Direction, cells ...Cell) *Snake {
	s := newTestSnake(cells[0], dir)
	s.body = s.body[:0]
	for i, c := range cells {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		s.body = append(s.body, Block{Cell: c, Color: color})
	}
	return s
}

func TestSelfCollisionSkipsNearHeadSegments(t *testing.T) {
	// A tight U-turn: the head at (5,5) moving up targets (5,4), which
	// is segment index 3. Segments 0-3 are exempt, so the move is legal.
	s := buildSnake(DirUp,
		Cell{X: 5, Y: 5},
		Cell{X: 4, Y: 5},
		Cell{X: 4, Y: 4},
		Cell{X: 5, Y: 4},
		Cell{X: 6, Y: 4},
	)
	if !s.CanAdvance() {
		t.Error("collision with segment index 3 should be exempt")
	}

	// Same shape one segment longer: the target is now index 4 after
	// shifting the ring, which does block.
	s = buildSnake(DirUp,
		Cell{X: 5, Y: 5},
		Cell{X: 4, Y: 5},
		Cell{X: 4, Y: 4},
		Cell{X: 4, Y: 3},
		Cell{X: 5, Y: 4},
		Cell{X: 6, Y: 4},
	)
	if s.CanAdvance() {
		t.Error("collision with segment index 4 should block movement")
	}
}

func TestGrow(t *testing.T) {
	s := newTestSnake(Cell{X: 10, Y: 10}, DirRight)

	prevHeadColor := s.Head().Color
	s.Grow()

	if s.Len() != 3 {
		t.Errorf("Len() = %d after Grow, expected 3", s.Len())
	}
	if s.Head().Cell != (Cell{X: 11, Y: 10}) {
		t.Errorf("new head at %v, expected (11,10)", s.Head().Cell)
	}
	if s.body[1].Color == prevHeadColor {
		t.Error("previous head should be recolored to body color")
	}
	if s.Head().Color != prevHeadColor {
		t.Error("new head should carry the head color")
	}
}

func TestGrowCommitsDirection(t *testing.T) {
	s := newTestSnake(Cell{X: 10, Y: 10}, DirRight)

	s.SetDirection(DirDown)
	if s.Direction() != DirRight {
		t.Fatal("direction should not commit before a move")
	}
	s.Grow()
	if s.Direction() != DirDown {
		t.Errorf("Direction() = %v after Grow, expected down", s.Direction())
	}
}

func TestAdvance(t *testing.T) {
	// Fresh two-segment snake at (10,10) facing right.
	s := newTestSnake(Cell{X: 10, Y: 10}, DirRight)

	s.Advance()

	if s.Len() != 2 {
		t.Errorf("Len() = %d after Advance, expected 2", s.Len())
	}
	if s.Head().Cell != (Cell{X: 11, Y: 10}) {
		t.Errorf("head at %v, expected (11,10)", s.Head().Cell)
	}
	if s.body[1].Cell != (Cell{X: 10, Y: 10}) {
		t.Errorf("tail at %v, expected (10,10)", s.body[1].Cell)
	}
	if s.OccupiedCells()[Cell{X: 9, Y: 10}] {
		t.Error("vacated cell (9,10) still occupied")
	}
}

func TestDirectionAxis(t *testing.T) {
	tests := []struct {
		dir      Direction
		axis     Axis
		opposite Direction
	}{
		{DirUp, AxisVertical, DirDown},
		{DirDown, AxisVertical, DirUp},
		{DirLeft, AxisHorizontal, DirRight},
		{DirRight, AxisHorizontal, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if tc.dir.Axis() != tc.axis {
				t.Errorf("Axis() = %v, expected %v", tc.dir.Axis(), tc.axis)
			}
			if tc.dir.Opposite() != tc.opposite {
				t.Errorf("Opposite() = %v, expected %v", tc.dir.Opposite(), tc.opposite)
			}
			if tc.dir.Axis() != tc.opposite.Axis() {
				t.Error("opposite directions should share an axis")
			}
		})
	}
}

func TestWillEat(t *testing.T) {
	s := newTestSnake(Cell{X: 10, Y: 10}, DirRight)

	if !s.WillEat(Cell{X: 11, Y: 10}) {
		t.Error("WillEat should be true for the cell directly ahead")
	}
	if s.WillEat(Cell{X: 12, Y: 10}) {
		t.Error("WillEat should be false for a cell two steps ahead")
	}
}
