package ports

import (
	"context"
	"time"

	"svw.info/puzzlefeed/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a grid and can count its completions.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
	CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, Stats, error)
	Unique(ctx context.Context, g *domain.Grid) (bool, Stats, error)
}

// Generator creates new puzzle/solution pairs at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs constraint checks and solution validation.
type Validator interface {
	Conflicts(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
	ValidateSolution(ctx context.Context, puzzle, candidate *domain.Grid) (bool, error)
}

// Hinter returns the next logical step, if one is found.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}

// Storage persists leaderboard rows, user stats and the daily puzzle.
type Storage interface {
	SaveDaily(ctx context.Context, date string, p *domain.Puzzle) error
	LoadDaily(ctx context.Context, date string) (*domain.Puzzle, error)
	AppendScore(ctx context.Context, e domain.ScoreEntry) error
	TopScores(ctx context.Context, limit int) ([]domain.ScoreEntry, error)
	Stats(ctx context.Context, name string) (domain.UserStats, error)
}

// Poster publishes a rendered puzzle to a social endpoint.
type Poster interface {
	Post(ctx context.Context, text string) error
	TestConnection(ctx context.Context) error
}
