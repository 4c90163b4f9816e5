package social

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/puzzlefeed/internal/domain"
)

func TestRenderText(t *testing.T) {
	var g domain.Grid
	g[0][0] = 5
	g[8][8] = 9

	out := RenderText(&g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 11, "9 rows plus 2 separators")
	assert.True(t, strings.HasPrefix(lines[0], "5 . ."))
	assert.Contains(t, lines[0], "|")
	assert.Contains(t, out, "---------------------")
	assert.True(t, strings.HasSuffix(lines[10], "9 "))
}

func TestCaption(t *testing.T) {
	p := &domain.Puzzle{Difficulty: domain.Hard}
	text := Caption("en", p)
	assert.Contains(t, text, "Daily Sudoku")
	assert.Contains(t, text, "Hard")
	assert.Contains(t, text, "Follow us")

	hi := Caption("hi", p)
	assert.Contains(t, hi, "दैनिक सुडोकु")
}
