package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/juliakramer/wortschatz/internal/cli/formatter"
	"github.com/juliakramer/wortschatz/internal/domain"
	"github.com/juliakramer/wortschatz/internal/session"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(formatter.ColorBlue).
	Padding(1, 4)

// flashcardsView browses a category as cards. Space reveals, arrows
// browse, y/n self-grades.
type flashcardsView struct {
	state *SharedState
	round *session.FlashcardRound
}

func newFlashcardsView(state *SharedState, category string, pool []domain.WordEntry) *flashcardsView {
	round := session.NewFlashcardRound(state.App.Rand, state.App.Progress, category, pool)
	return &flashcardsView{state: state, round: round}
}

func (v *flashcardsView) ID() ViewID    { return ViewFlashcards }
func (v *flashcardsView) Title() string { return "Karteikarten" }

func (v *flashcardsView) ShortHelp() []key.Binding {
	if v.round.Revealed() {
		return []key.Binding{
			helpKey("y", "wusste ich"),
			helpKey("n", "noch nicht"),
			helpKey("←/→", "blättern"),
		}
	}
	return []key.Binding{
		helpKey("space", "aufdecken"),
		helpKey("←/→", "blättern"),
	}
}

func (v *flashcardsView) Init() tea.Cmd { return nil }

func (v *flashcardsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || v.round.Empty() {
		return v, nil
	}

	switch keyMsg.String() {
	case " ":
		v.round.Reveal()
	case "right", "l":
		v.round.Next()
	case "left", "h":
		v.round.Prev()
	case "y":
		if v.round.Revealed() {
			v.round.Grade(true)
		}
	case "n":
		if v.round.Revealed() {
			v.round.Grade(false)
		}
	}
	return v, nil
}

func (v *flashcardsView) View() string {
	w, ok := v.round.Card()
	if !ok {
		return "\n  " + formatter.Dim("Keine Karten in dieser Kategorie.")
	}

	var card strings.Builder
	card.WriteString(formatter.Bold(w.De))
	if v.round.Revealed() {
		card.WriteString("\n\n" + formatter.StyleBlue.Render(w.En))
		if w.Hint != "" {
			card.WriteString("\n" + formatter.Dim("Hinweis: "+w.Hint))
		}
		if w.Example != "" {
			card.WriteString("\n" + formatter.Dim(w.Example))
		}
		if w.Conjugation != "" {
			card.WriteString("\n" + formatter.Dim(w.Conjugation))
		}
		if w.Opposite != "" {
			card.WriteString("\n" + formatter.Dim("Gegenteil: "+w.Opposite))
		}
	} else {
		card.WriteString("\n\n" + formatter.Dim("Leertaste zum Aufdecken"))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		formatter.Dim(fmt.Sprintf("Karte %d/%d", v.round.Index()+1, v.round.Len())),
		formatter.MasteryStars(v.round.Mastery())))
	b.WriteString(cardStyle.Render(card.String()))
	b.WriteString("\n")
	return b.String()
}
