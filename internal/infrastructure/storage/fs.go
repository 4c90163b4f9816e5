package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"svw.info/puzzlefeed/internal/domain"
)

// FS stores the daily puzzle and the leaderboard as JSON files under dir:
//
//	dir/daily/<YYYY-MM-DD>.json
//	dir/leaderboard.json
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) dailyPath(date string) string {
	return filepath.Join(s.dir, "daily", strings.TrimSpace(date)+".json")
}

func (s *FS) leaderboardPath() string {
	return filepath.Join(s.dir, "leaderboard.json")
}

func (s *FS) SaveDaily(ctx context.Context, date string, p *domain.Puzzle) error {
	if p == nil || date == "" {
		return errors.New("invalid daily puzzle: missing date")
	}
	target := s.dailyPath(date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) LoadDaily(ctx context.Context, date string) (*domain.Puzzle, error) {
	data, err := os.ReadFile(s.dailyPath(date))
	if err != nil {
		return nil, err
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) readScores() ([]domain.ScoreEntry, error) {
	data, err := os.ReadFile(s.leaderboardPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.ScoreEntry
	if err := json.Unmarshal(data, &out); err != nil {
		// A corrupt leaderboard should not brick score submission; start over.
		return nil, nil
	}
	return out, nil
}

func (s *FS) AppendScore(ctx context.Context, e domain.ScoreEntry) error {
	scores, err := s.readScores()
	if err != nil {
		return err
	}
	scores = append(scores, e)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.leaderboardPath())
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(scores)
}

func (s *FS) TopScores(ctx context.Context, limit int) ([]domain.ScoreEntry, error) {
	scores, err := s.readScores()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

func (s *FS) Stats(ctx context.Context, name string) (domain.UserStats, error) {
	scores, err := s.readScores()
	if err != nil {
		return domain.UserStats{}, err
	}
	st := domain.UserStats{Name: name}
	for _, e := range scores {
		if e.Name != name {
			continue
		}
		st.Games++
		st.TotalScore += e.Score
		if e.Score > st.BestScore {
			st.BestScore = e.Score
		}
	}
	return st, nil
}
