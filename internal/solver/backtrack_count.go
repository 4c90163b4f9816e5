package solver

import (
	"context"
	"time"

	"svw.info/puzzlefeed/internal/domain"
	"svw.info/puzzlefeed/internal/ports"
)

// CountSolutions counts the completions of g, up to limit. The counter keeps
// searching past the first completion and stops as soon as it reaches limit,
// so uniqueness checks never pay for an exact count. The input grid is left
// untouched; the search runs on a stack copy.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	grid := *g
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= limit
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
	_ = dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	// A canceled search may have stopped before the second completion; the
	// partial count must not pass for an exact one.
	if err := ctx.Err(); err != nil {
		return count, st, err
	}
	return count, st, nil
}

// Unique reports whether g has exactly one completion.
func (s *BacktrackingSolver) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	n, st, err := s.CountSolutions(ctx, g, 2)
	if err != nil {
		return false, st, err
	}
	return n == 1, st, nil
}
