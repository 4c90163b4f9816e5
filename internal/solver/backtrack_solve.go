package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/puzzlefeed/internal/domain"
	"svw.info/puzzlefeed/internal/ports"
)

// Solve fills every empty cell of g and returns the completed grid. The input
// is not modified; the search runs on a stack copy.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	grid := *g
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if ValidPlacement(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errors.New("unsolvable or canceled")
	}
	out := grid
	return &out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
