package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/puzzlefeed/internal/domain"
	"svw.info/puzzlefeed/internal/ports"
)

// Generate creates a puzzle/solution pair at the given difficulty. The seed
// is call-local: the same seed reproduces the same pair, and concurrent calls
// never share random state.
//
// Cells are carved out one at a time, each removal kept only if the puzzle
// still has exactly one solution. The shuffled coordinate list is walked
// once; a tier target near the top of "hard" can therefore come up short,
// which is accepted — the pair is still valid and unique, just with fewer
// blanks than requested.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	rr := diff.RemovalRange()
	target := rr.Min + rng.Intn(rr.Max-rr.Min+1)

	// 1) full random solution
	solution, err := CompleteGrid(rng)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	// 2) carve out cells while preserving uniqueness
	puz := solution // working puzzle grid
	positions := make([]int, 81)
	for i := 0; i < 81; i++ {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	nodes := 0
	removed := 0
	for _, pos := range positions {
		if removed >= target {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		unique, st, uerr := g.Solver.Unique(ctx, &puz)
		nodes += st.Nodes
		if uerr != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, uerr
		}
		if unique {
			removed++
		} else {
			puz[r][c] = old
		}
	}

	p := &domain.Puzzle{
		Puzzle:     puz,
		Solution:   solution,
		Difficulty: diff,
		Seed:       seed,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
