package snake

import "math/rand"

// PlaceFood picks a free cell for the next piece of food. Cells covered
// by the snake body and the cell of the food being replaced are
// rejected. Sampling is uniform with the number of attempts capped at
// the board area; past the cap the free cells are enumerated directly,
// so placement terminates even when the board is nearly full.
//
// Returns (Cell{-1,-1}, false) only when no cell is free at all.
func PlaceFood(rng *rand.Rand, grid Grid, body []Block, avoid Cell) (Cell, bool) {
	occupied := make(map[Cell]bool, len(body))
	for _, b := range body {
		occupied[b.Cell] = true
	}

	for i := 0; i < grid.Area(); i++ {
		c := Cell{X: rng.Intn(grid.Cols), Y: rng.Intn(grid.Rows)}
		if c == avoid || occupied[c] {
			continue
		}
		return c, true
	}

	// Board nearly full: enumerate the remaining free cells.
	var free []Cell
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			c := Cell{X: x, Y: y}
			if c == avoid || occupied[c] {
				continue
			}
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		// The old food cell may be the last gap left.
		if !occupied[avoid] && grid.Contains(avoid) {
			return avoid, true
		}
		return Cell{X: -1, Y: -1}, false
	}
	return free[rng.Intn(len(free))], true
}
