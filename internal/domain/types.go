package domain

// Grid is a 9x9 Sudoku grid. 0 means empty.
type Grid [9][9]uint8

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a generated puzzle/solution pair with metadata. The solution is
// the puzzle's unique completion.
type Puzzle struct {
	Puzzle     Grid       `json:"puzzle"`
	Solution   Grid       `json:"solution"`
	Difficulty Difficulty `json:"difficulty"`
	Seed       int64      `json:"seed,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Value   uint8     `json:"value,omitempty"`
	Cell    CellCoord `json:"cell"`
}

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Difficulty  string `json:"difficulty"`
	TimeSeconds int    `json:"timeSeconds"`
	HintsUsed   int    `json:"hintsUsed"`
	PlayedAt    int64  `json:"playedAt"`
}

// UserStats aggregates a player's history.
type UserStats struct {
	Name       string `json:"name"`
	Games      int    `json:"games"`
	TotalScore int    `json:"totalScore"`
	BestScore  int    `json:"bestScore"`
}
