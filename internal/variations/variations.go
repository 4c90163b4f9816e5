// Package variations maps numeric grids onto themed symbol sets (emoji,
// colors, symbols) for rendering-oriented callers. The engine itself only
// ever sees numbers.
package variations

import (
	"sort"
	"strconv"
	"time"

	"svw.info/puzzlefeed/internal/domain"
)

// Kind selects a symbol family.
type Kind string

const (
	Classic Kind = "classic"
	Emoji   Kind = "emoji"
	Color   Kind = "color"
	Symbol  Kind = "symbol"
)

// Info describes one variation for listing endpoints.
type Info struct {
	Description        string   `json:"description"`
	Themes             []string `json:"themes"`
	TargetAudience     string   `json:"target_audience"`
	DifficultyModifier float64  `json:"difficulty_modifier"`
}

var themes = map[Kind]map[string][9]string{
	Emoji: {
		"animals": {"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🐨"},
		"fruits":  {"🍎", "🍐", "🍊", "🍋", "🍌", "🍉", "🍇", "🍓", "🫐"},
		"faces":   {"😀", "😂", "🥰", "😎", "🤔", "😴", "🤯", "🥳", "😇"},
		"space":   {"🚀", "🪐", "🌟", "☄️", "🛰️", "🛸", "👨‍🚀", "🌌", "🌑"},
		"weather": {"☀️", "☁️", "⛈️", "❄️", "🌪️", "🌈", "🌊", "🔥", "🌫️"},
		"sports":  {"⚽", "🏀", "🎾", "🏐", "🏈", "🎱", "🏓", "🏹", "🥊"},
	},
	Color: {
		"rainbow": {"Red", "Orange", "Yellow", "Green", "Blue", "Indigo", "Violet", "Pink", "Cyan"},
		"pastel":  {"#FFB3BA", "#FFDFBA", "#FFFFBA", "#BAFFC9", "#BAE1FF", "#D1BAFF", "#FFBAF1", "#A8E6CF", "#DCEDC1"},
	},
	Symbol: {
		"greek":  {"α", "β", "γ", "δ", "ε", "ζ", "η", "θ", "ι"},
		"shapes": {"■", "▲", "●", "★", "◆", "♠", "♣", "♥", "♦"},
	},
}

// Available lists every variation with its themes, sorted for stable output.
func Available() map[Kind]Info {
	out := map[Kind]Info{
		Classic: {Description: "Traditional numbers 1-9", Themes: []string{}, TargetAudience: "All", DifficultyModifier: 1.0},
		Emoji:   {Description: "Fun emoji sets", TargetAudience: "Kids & Casual", DifficultyModifier: 0.9},
		Color:   {Description: "Color-based logic", TargetAudience: "Visual Learners", DifficultyModifier: 1.1},
		Symbol:  {Description: "Mathematical & Shape symbols", TargetAudience: "Advanced", DifficultyModifier: 1.2},
	}
	for kind, ts := range themes {
		info := out[kind]
		for name := range ts {
			info.Themes = append(info.Themes, name)
		}
		sort.Strings(info.Themes)
		out[kind] = info
	}
	return out
}

// Symbols resolves the 9-symbol set for a kind/theme. Custom overrides win
// when exactly 9 symbols are given. Unknown kinds and themes fall back to
// classic digits and the kind's first theme respectively, matching the
// published behavior.
func Symbols(kind Kind, theme string, custom []string) [9]string {
	if len(custom) == 9 {
		var s [9]string
		copy(s[:], custom)
		return s
	}
	ts, ok := themes[kind]
	if !ok {
		var s [9]string
		for i := 0; i < 9; i++ {
			s[i] = strconv.Itoa(i + 1)
		}
		return s
	}
	if set, ok := ts[theme]; ok {
		return set
	}
	names := make([]string, 0, len(ts))
	for name := range ts {
		names = append(names, name)
	}
	sort.Strings(names)
	return ts[names[0]]
}

// Convert maps value v to symbols[v-1]; empty cells become "".
func Convert(g *domain.Grid, kind Kind, theme string, custom []string) ([9][9]string, [9]string) {
	syms := Symbols(kind, theme, custom)
	var out [9][9]string
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				out[r][c] = syms[g[r][c]-1]
			}
		}
	}
	return out, syms
}

// DailySeed returns the stable seed for t's date, YYYYMMDD as an integer.
func DailySeed(t time.Time) int64 {
	n, _ := strconv.ParseInt(t.Format("20060102"), 10, 64)
	return n
}
