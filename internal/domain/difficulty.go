package domain

import "strings"

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// RemovalRange is an inclusive range of cells to clear from a complete grid.
type RemovalRange struct {
	Min int
	Max int
}

// Removal ranges per tier. These are calibration constants shared with the
// published puzzles; changing them changes the meaning of every tier.
var removalRanges = map[Difficulty]RemovalRange{
	Easy:   {35, 40},
	Medium: {45, 50},
	Hard:   {55, 60},
}

// RemovalRange returns the cells-to-remove range for the tier.
func (d Difficulty) RemovalRange() RemovalRange {
	if r, ok := removalRanges[d]; ok {
		return r
	}
	return removalRanges[Medium]
}

// ParseDifficulty maps a request label to a tier. "complex" remains accepted
// as an alias for hard. Anything else is an InvalidDifficultyError.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard", "complex":
		return Hard, nil
	default:
		return 0, &InvalidDifficultyError{Label: s}
	}
}
