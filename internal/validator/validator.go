package validator

import (
	"context"

	"svw.info/puzzlefeed/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Conflicts scans rows, columns and boxes for duplicate values. Empty cells
// never conflict.
func (v *FastValidator) Conflicts(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := g[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

// Complete reports whether g is fully filled and conflict-free, i.e. every
// row, column and box is a permutation of 1..9.
func Complete(g *domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 || g[r][c] > 9 {
				return false
			}
		}
	}
	v := FastValidator{}
	ok, _, _ := v.Conflicts(context.Background(), g)
	return ok
}

// ValidateSolution reports whether candidate is a complete grid that agrees
// with every given (non-zero) cell of puzzle. It never re-derives the stored
// solution.
func (v *FastValidator) ValidateSolution(ctx context.Context, puzzle, candidate *domain.Grid) (bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if puzzle[r][c] != 0 && puzzle[r][c] != candidate[r][c] {
				return false, nil
			}
		}
	}
	return Complete(candidate), nil
}
