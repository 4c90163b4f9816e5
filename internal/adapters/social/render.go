package social

import (
	"fmt"
	"strings"

	"svw.info/puzzlefeed/internal/domain"
	"svw.info/puzzlefeed/internal/localization"
)

// RenderText lays a grid out as monospace text, with box separators and dots
// for blanks.
func RenderText(g *domain.Grid) string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r%3 == 0 && r != 0 {
			b.WriteString(strings.Repeat("-", 21))
			b.WriteByte('\n')
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 && c != 0 {
				b.WriteString("| ")
			}
			if g[r][c] == 0 {
				b.WriteString(". ")
			} else {
				fmt.Fprintf(&b, "%d ", g[r][c])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Caption builds the localized post text for a daily puzzle.
func Caption(lang string, p *domain.Puzzle) string {
	title := localization.Text(lang, "ui.daily_sudoku")
	label := localization.Text(lang, "difficulty."+p.Difficulty.String())
	cta := localization.Text(lang, "captions.call_to_action")
	return fmt.Sprintf("%s (%s)\n\n%s\n%s", title, label, RenderText(&p.Puzzle), cta)
}
