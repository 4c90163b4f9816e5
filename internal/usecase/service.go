package usecase

import (
	"context"
	"errors"
	"time"

	"svw.info/puzzlefeed/internal/domain"
	"svw.info/puzzlefeed/internal/ports"
	"svw.info/puzzlefeed/internal/variations"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage

	// DailyDifficulty is the tier used for the puzzle of the day.
	DailyDifficulty domain.Difficulty
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st, DailyDifficulty: domain.Medium}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewPuzzle parses the difficulty label and generates a fresh pair. An
// unknown label fails here, before any grid work. Seed 0 means "no seed" and
// is replaced with the clock.
func (u *Service) NewPuzzle(ctx context.Context, difficulty string, seed int64) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	diff, err := domain.ParseDifficulty(difficulty)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return u.Generator.Generate(ctx, seed, diff)
}

func (u *Service) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Conflicts(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Conflicts(ctx, g)
}

// ValidateSolution checks a submitted answer against a puzzle's givens.
func (u *Service) ValidateSolution(ctx context.Context, puzzle, candidate *domain.Grid) (bool, error) {
	if u.Validator == nil {
		return false, errNotConfigured
	}
	return u.Validator.ValidateSolution(ctx, puzzle, candidate)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}

// DailyPuzzle returns the stored puzzle of the day for now's date, generating
// and storing it on first request. The seed is derived from the date, so
// every instance agrees on the same puzzle without coordination.
func (u *Service) DailyPuzzle(ctx context.Context, now time.Time) (*domain.Puzzle, error) {
	if u.Generator == nil || u.Storage == nil {
		return nil, errNotConfigured
	}
	date := now.Format("2006-01-02")
	if p, err := u.Storage.LoadDaily(ctx, date); err == nil {
		return p, nil
	}
	p, _, err := u.Generator.Generate(ctx, variations.DailySeed(now), u.DailyDifficulty)
	if err != nil {
		return nil, err
	}
	if err := u.Storage.SaveDaily(ctx, date, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CheckDaily validates a submitted answer against the stored daily puzzle.
func (u *Service) CheckDaily(ctx context.Context, now time.Time, candidate *domain.Grid) (bool, error) {
	p, err := u.DailyPuzzle(ctx, now)
	if err != nil {
		return false, err
	}
	return u.ValidateSolution(ctx, &p.Puzzle, candidate)
}

// SubmitScore scores a finished game and appends it to the leaderboard.
func (u *Service) SubmitScore(ctx context.Context, name, difficulty string, timeSeconds, hintsUsed int) (domain.ScoreEntry, error) {
	if u.Storage == nil {
		return domain.ScoreEntry{}, errNotConfigured
	}
	diff, err := domain.ParseDifficulty(difficulty)
	if err != nil {
		return domain.ScoreEntry{}, err
	}
	e := domain.ScoreEntry{
		Name:        name,
		Score:       Score(diff, timeSeconds, hintsUsed),
		Difficulty:  diff.String(),
		TimeSeconds: timeSeconds,
		HintsUsed:   hintsUsed,
		PlayedAt:    time.Now().Unix(),
	}
	if err := u.Storage.AppendScore(ctx, e); err != nil {
		return domain.ScoreEntry{}, err
	}
	return e, nil
}

func (u *Service) Leaderboard(ctx context.Context, limit int) ([]domain.ScoreEntry, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.TopScores(ctx, limit)
}

func (u *Service) UserStats(ctx context.Context, name string) (domain.UserStats, error) {
	if u.Storage == nil {
		return domain.UserStats{}, errNotConfigured
	}
	return u.Storage.Stats(ctx, name)
}
