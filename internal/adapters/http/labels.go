package httpadapter

import (
	"svw.info/puzzlefeed/internal/domain"
	"svw.info/puzzlefeed/internal/localization"
)

func localizedLabel(lang string, d domain.Difficulty) string {
	return localization.Text(lang, "difficulty."+d.String())
}
