// Package scheduler runs the daily generate-and-post loop.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"svw.info/puzzlefeed/internal/adapters/social"
	"svw.info/puzzlefeed/internal/ctxlog"
	"svw.info/puzzlefeed/internal/ports"
	"svw.info/puzzlefeed/internal/usecase"
)

// Scheduler posts the puzzle of the day at each configured wall-clock time.
type Scheduler struct {
	Service   *usecase.Service
	Posters   []ports.Poster
	PostTimes []string // "HH:MM", local time
	Language  string

	now func() time.Time
}

func New(svc *usecase.Service, posters []ports.Poster, postTimes []string, language string) *Scheduler {
	if language == "" {
		language = "en"
	}
	return &Scheduler{
		Service:   svc,
		Posters:   posters,
		PostTimes: postTimes,
		Language:  language,
		now:       time.Now,
	}
}

// NextRun returns the earliest configured post time after t. Malformed
// entries are skipped.
func (s *Scheduler) NextRun(t time.Time) (time.Time, error) {
	var best time.Time
	for _, pt := range s.PostTimes {
		parsed, err := time.ParseInLocation("15:04", pt, t.Location())
		if err != nil {
			continue
		}
		next := time.Date(t.Year(), t.Month(), t.Day(), parsed.Hour(), parsed.Minute(), 0, 0, t.Location())
		if !next.After(t) {
			next = next.AddDate(0, 0, 1)
		}
		if best.IsZero() || next.Before(best) {
			best = next
		}
	}
	if best.IsZero() {
		return time.Time{}, fmt.Errorf("no valid post times in %v", s.PostTimes)
	}
	return best, nil
}

// Run blocks until ctx is done, posting at each scheduled time. A failed post
// is logged and the loop keeps going; the next slot gets a fresh attempt.
func (s *Scheduler) Run(ctx context.Context) error {
	log := ctxlog.FromContext(ctx)
	for {
		next, err := s.NextRun(s.now())
		if err != nil {
			return err
		}
		log.Info("scheduler sleeping", "until", next)
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		if err := s.PostNow(ctx); err != nil {
			log.Error("scheduled post failed", "err", err)
		}
	}
}

// PostNow generates (or loads) today's puzzle and pushes it to every poster.
// The first poster error is returned after all posters were tried.
func (s *Scheduler) PostNow(ctx context.Context) error {
	p, err := s.Service.DailyPuzzle(ctx, s.now())
	if err != nil {
		return err
	}
	text := social.Caption(s.Language, p)
	var firstErr error
	for _, poster := range s.Posters {
		if err := poster.Post(ctx, text); err != nil {
			ctxlog.FromContext(ctx).Error("post failed", "err", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
