package usecase

import "svw.info/puzzlefeed/internal/domain"

// Score rates a finished game: a base per tier, a time bonus that decays to
// zero at 1000 seconds, and a flat penalty per hint. Never below 10.
func Score(diff domain.Difficulty, timeSeconds, hintsUsed int) int {
	base := 100
	switch diff {
	case domain.Medium:
		base = 200
	case domain.Hard:
		base = 300
	}
	timeBonus := 100 - timeSeconds/10
	if timeBonus < 0 {
		timeBonus = 0
	}
	total := base + timeBonus - hintsUsed*20
	if total < 10 {
		total = 10
	}
	return total
}
