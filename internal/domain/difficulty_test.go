package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want Difficulty
	}{
		{"easy", Easy},
		{"medium", Medium},
		{"hard", Hard},
		{"complex", Hard}, // published alias
		{" EASY ", Easy},
	}
	for _, tc := range cases {
		d, err := ParseDifficulty(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, d, tc.in)
	}
}

func TestParseDifficultyRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "expert", "invalid_tier", "42"} {
		_, err := ParseDifficulty(in)
		require.Error(t, err, in)
		var invalid *InvalidDifficultyError
		require.True(t, errors.As(err, &invalid), "want InvalidDifficultyError for %q", in)
		assert.Equal(t, in, invalid.Label)
	}
}

func TestRemovalRanges(t *testing.T) {
	assert.Equal(t, RemovalRange{35, 40}, Easy.RemovalRange())
	assert.Equal(t, RemovalRange{45, 50}, Medium.RemovalRange())
	assert.Equal(t, RemovalRange{55, 60}, Hard.RemovalRange())
}

func TestGridEmptyCount(t *testing.T) {
	var g Grid
	assert.Equal(t, 81, g.EmptyCount())
	g[0][0] = 5
	g[8][8] = 9
	assert.Equal(t, 79, g.EmptyCount())
}
