package generator

import (
	"math/rand"

	"svw.info/puzzlefeed/internal/domain"
)

// maxFillNodes bounds the complete-grid search. A correct search never gets
// anywhere near it; blowing past it means a broken constraint check, and that
// should fail loudly instead of spinning.
const maxFillNodes = 5_000_000

// CompleteGrid produces a full valid grid by randomized backtracking. The rng
// drives candidate ordering, so a fixed source reproduces the same grid.
func CompleteGrid(rng *rand.Rand) (domain.Grid, error) {
	return completeGrid(rng, maxFillNodes)
}

func completeGrid(rng *rand.Rand, maxNodes int) (domain.Grid, error) {
	var g domain.Grid
	nodes := 0
	if !fillRandom(rng, &g, &nodes, maxNodes) {
		return domain.Grid{}, &domain.UnreachableGridError{Nodes: nodes}
	}
	return g, nil
}

// fillRandom solves an empty (or partial) grid into a full valid grid by
// visiting cells row-major and trying 1..9 in random order, undoing each
// placement whose subtree fails.
func fillRandom(rng *rand.Rand, g *domain.Grid, nodes *int, maxNodes int) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		if g[r][c] != 0 {
			return dfs(nr, nc)
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			*nodes++
			if *nodes > maxNodes {
				return false
			}
			if allowed(g, r, c, v) {
				g[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// allowed mirrors row/col/box checks locally for the generator.
func allowed(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
