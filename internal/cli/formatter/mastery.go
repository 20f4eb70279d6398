package formatter

import (
	"strings"

	"github.com/juliakramer/wortschatz/internal/domain"
)

// MasteryStars renders a word's mastery as filled and empty stars,
// e.g. ★★★☆☆ for level 3.
func MasteryStars(level int) string {
	if level < domain.MasteryMin {
		level = domain.MasteryMin
	}
	if level > domain.MasteryMax {
		level = domain.MasteryMax
	}
	filled := strings.Repeat("★", level)
	empty := strings.Repeat("☆", domain.MasteryMax-level)
	return StyleYellow.Render(filled) + StyleDim.Render(empty)
}
