package variations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/puzzlefeed/internal/domain"
)

func TestAvailable(t *testing.T) {
	av := Available()
	require.Contains(t, av, Classic)
	require.Contains(t, av, Emoji)
	assert.Empty(t, av[Classic].Themes)
	assert.Contains(t, av[Emoji].Themes, "animals")
	assert.Contains(t, av[Emoji].Themes, "space")
	assert.InDelta(t, 0.9, av[Emoji].DifficultyModifier, 1e-9)
}

func TestSymbols(t *testing.T) {
	t.Run("classic digits", func(t *testing.T) {
		s := Symbols(Classic, "", nil)
		assert.Equal(t, "1", s[0])
		assert.Equal(t, "9", s[8])
	})

	t.Run("named theme", func(t *testing.T) {
		s := Symbols(Emoji, "fruits", nil)
		assert.Equal(t, "🍎", s[0])
	})

	t.Run("unknown theme falls back to first", func(t *testing.T) {
		s := Symbols(Emoji, "no-such-theme", nil)
		assert.Equal(t, Symbols(Emoji, "animals", nil), s)
	})

	t.Run("custom override", func(t *testing.T) {
		custom := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
		s := Symbols(Emoji, "animals", custom)
		assert.Equal(t, "a", s[0])
		assert.Equal(t, "i", s[8])
	})

	t.Run("short custom list ignored", func(t *testing.T) {
		s := Symbols(Classic, "", []string{"x", "y"})
		assert.Equal(t, "1", s[0])
	})
}

func TestConvert(t *testing.T) {
	var g domain.Grid
	g[0][0] = 1
	g[8][8] = 9

	out, syms := Convert(&g, Symbol, "greek", nil)
	assert.Equal(t, "α", out[0][0])
	assert.Equal(t, "ι", out[8][8])
	assert.Equal(t, "", out[4][4], "blanks stay blank")
	assert.Equal(t, "α", syms[0])
}

func TestDailySeed(t *testing.T) {
	d := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, int64(20250615), DailySeed(d))
	// stable within the day
	assert.Equal(t, DailySeed(d), DailySeed(d.Add(-23*time.Hour)))
}
