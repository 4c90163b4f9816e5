// Package localization holds the UI string tables. Keys are dotted paths
// ("ui.daily_sudoku", "difficulty.easy"); unknown languages and keys fall
// back to English.
package localization

type table map[string]string

var tables = map[string]table{
	"en": {
		"difficulty.easy":         "Easy",
		"difficulty.medium":       "Medium",
		"difficulty.hard":         "Hard",
		"difficulty.complex":      "Complex",
		"ui.daily_sudoku":         "Daily Sudoku",
		"ui.puzzle_number":        "Puzzle #%d",
		"ui.solution":             "Solution",
		"ui.challenge_yourself":   "Challenge Yourself!",
		"ui.enjoy":                "Enjoy!",
		"captions.call_to_action": "Follow us for more daily puzzles and brain teasers! 🤓",
	},
	"hi": {
		"difficulty.easy":       "आसान",
		"difficulty.medium":     "मध्यम",
		"difficulty.hard":       "कठिन",
		"difficulty.complex":    "जटिल",
		"ui.daily_sudoku":       "दैनिक सुडोकु",
		"ui.puzzle_number":      "पहेली #%d",
		"ui.solution":           "समाधान",
		"ui.challenge_yourself": "खुद को चुनौती दें!",
		"ui.enjoy":              "आनंद लें!",
	},
	"ta": {
		"difficulty.easy":   "எளிது",
		"difficulty.medium": "நடுத்தரம்",
		"difficulty.hard":   "கடினம்",
		"ui.daily_sudoku":   "தினசரி சுடோகு",
		"ui.solution":       "தீர்வு",
	},
	"bn": {
		"difficulty.easy":   "সহজ",
		"difficulty.medium": "মাঝারি",
		"difficulty.hard":   "কঠিন",
		"ui.daily_sudoku":   "দৈনিক সুডোকু",
		"ui.solution":       "সমাধান",
	},
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "hi", "ta", "bn"}
}

// Text resolves key in lang, falling back to English, then to the key itself
// so a missing entry stays visible instead of rendering blank.
func Text(lang, key string) string {
	if t, ok := tables[lang]; ok {
		if s, ok := t[key]; ok {
			return s
		}
	}
	if s, ok := tables["en"][key]; ok {
		return s
	}
	return key
}
