package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/juliakramer/wortschatz/internal/domain"
)

const statsProgressBarWidth = 20

// CategoryStat is one dashboard row: a category and its completion.
type CategoryStat struct {
	Name       string
	Words      int
	Learned    int
	Completion float64 // 0..1
}

// FormatStats formats the learner's overall progress for the stats
// command.
func FormatStats(state *domain.ProgressState, categories []CategoryStat, recent []*domain.RoundResult) string {
	var b strings.Builder

	b.WriteString(Header("Fortschritt"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Bold("XP:"), StylePurple.Render(fmt.Sprintf("%d", state.XP))))
	b.WriteString(fmt.Sprintf("  %s %s\n", Bold("Streak:"), StyleYellow.Render(fmt.Sprintf("%d Tage", state.Streak))))
	if state.BestSpeed > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n", Bold("Bester Speed-Run:"), StyleGreen.Render(fmt.Sprintf("%d", state.BestSpeed))))
	}
	b.WriteString(fmt.Sprintf("  %s %d\n", Bold("Wörter gelernt:"), state.WordsLearned()))
	b.WriteString(fmt.Sprintf("  %s %s\n", Bold("Zuletzt gespielt:"), RelativeDay(state.LastPlayed, time.Now())))

	if len(categories) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Kategorien"))
		b.WriteString("\n")
		nameWidth := 0
		for _, c := range categories {
			if len(c.Name) > nameWidth {
				nameWidth = len(c.Name)
			}
		}
		for _, c := range categories {
			bar := RenderProgress(c.Completion, statsProgressBarWidth)
			b.WriteString(fmt.Sprintf("  %-*s %s %s\n",
				nameWidth, c.Name, bar, Dim(fmt.Sprintf("%d/%d", c.Learned, c.Words))))
		}
	}

	if len(recent) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Letzte Runden"))
		b.WriteString("\n")
		for _, r := range recent {
			line := fmt.Sprintf("  %s  %-10s %-12s %d/%d  %s",
				Dim(r.PlayedAt.Local().Format("02.01. 15:04")),
				r.Mode, r.Category, r.Score, r.Total,
				StylePurple.Render(fmt.Sprintf("+%d XP", r.XPEarned)))
			if r.NewBest {
				line += " " + StyleGreen.Render("★ neuer Rekord")
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

// RelativeDay renders a YYYY-MM-DD date as heute/gestern or the date
// itself.
func RelativeDay(day string, now time.Time) string {
	switch day {
	case now.Format("2006-01-02"):
		return "heute"
	case now.AddDate(0, 0, -1).Format("2006-01-02"):
		return "gestern"
	case "":
		return "nie"
	}
	return day
}
