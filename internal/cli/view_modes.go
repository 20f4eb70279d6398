package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/juliakramer/wortschatz/internal/cli/formatter"
	"github.com/juliakramer/wortschatz/internal/domain"
	"github.com/juliakramer/wortschatz/internal/session"
)

type modeChoice struct {
	mode  domain.Mode
	label string
	desc  string
}

var modeChoices = []modeChoice{
	{domain.ModeFlashcards, "Karteikarten", "Blättern und selbst bewerten"},
	{domain.ModeQuiz, "Quiz", "Multiple Choice, 10 XP pro Treffer"},
	{domain.ModeTyped, "Tippen", "Deutsche Antwort eintippen, 15 XP"},
	{domain.ModeSpeed, "Speed-Runde", "So viele wie möglich in 60 Sekunden"},
	{domain.ModeSentences, "Sätze", "Satzverständnis, 10 XP"},
}

// modesView picks a learning mode for the chosen category. Modes that
// need a bigger pool than the category offers are disabled.
type modesView struct {
	state    *SharedState
	category string
	pool     []domain.WordEntry
	cursor   int
}

func newModesView(state *SharedState, category string) *modesView {
	pool, _ := state.App.Library.Resolve(category)
	return &modesView{state: state, category: category, pool: pool}
}

func (v *modesView) ID() ViewID    { return ViewModes }
func (v *modesView) Title() string { return v.category }

func (v *modesView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpKey("↑/↓", "wählen"),
		helpKey("enter", "starten"),
	}
}

func (v *modesView) Init() tea.Cmd { return nil }

func (v *modesView) available(m domain.Mode) bool {
	return session.ModeAvailable(m, len(v.pool))
}

func (v *modesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(modeChoices)-1 {
				v.cursor++
			}
		case "enter":
			choice := modeChoices[v.cursor]
			if !v.available(choice.mode) {
				return v, nil
			}
			return v, v.startRound(choice.mode)
		}
	}
	return v, nil
}

// startRound builds the round view for a mode. Sentences go through
// the tier picker first.
func (v *modesView) startRound(mode domain.Mode) tea.Cmd {
	app := v.state.App
	switch mode {
	case domain.ModeFlashcards:
		return pushView(newFlashcardsView(v.state, v.category, v.pool))
	case domain.ModeQuiz:
		round := session.NewQuizRound(app.Rand, app.Progress, v.category, v.pool)
		return pushView(newChoiceView(v.state, round))
	case domain.ModeTyped:
		return pushView(newTypedView(v.state, v.category, v.pool))
	case domain.ModeSpeed:
		round := session.NewSpeedRound(app.Rand, app.Progress, v.category, v.pool, app.Config.SpeedSeconds)
		return pushView(newSpeedView(v.state, round))
	case domain.ModeSentences:
		return pushView(newTierPickerView(v.state, v.category, v.pool))
	}
	return nil
}

func (v *modesView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	for i, c := range modeChoices {
		cursor := "  "
		label := c.label
		desc := c.desc
		if !v.available(c.mode) {
			desc = fmt.Sprintf("braucht mindestens %d Wörter", session.MinChoicePool)
		}

		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
			label = formatter.Bold(label)
		}
		if !v.available(c.mode) {
			label = formatter.Dim(c.label)
		}

		b.WriteString(fmt.Sprintf("%s%-14s %s\n", cursor, label, formatter.Dim(desc)))
	}

	return b.String()
}

// tierPickerView selects the sentence difficulty before the round.
type tierPickerView struct {
	state    *SharedState
	category string
	pool     []domain.WordEntry
	cursor   int
}

var tierChoices = []struct {
	tier  int
	label string
}{
	{0, "Alle Stufen"},
	{1, "Stufe 1 · leicht"},
	{2, "Stufe 2 · mittel"},
	{3, "Stufe 3 · schwer"},
}

func newTierPickerView(state *SharedState, category string, pool []domain.WordEntry) *tierPickerView {
	return &tierPickerView{state: state, category: category, pool: pool}
}

func (v *tierPickerView) ID() ViewID    { return ViewTierPicker }
func (v *tierPickerView) Title() string { return "Sätze" }

func (v *tierPickerView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpKey("↑/↓", "wählen"),
		helpKey("enter", "starten"),
	}
}

func (v *tierPickerView) Init() tea.Cmd { return nil }

func (v *tierPickerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(tierChoices)-1 {
				v.cursor++
			}
		case "enter":
			tier := tierChoices[v.cursor].tier
			filtered := session.FilterDifficulty(v.pool, tier)
			if !session.ModeAvailable(domain.ModeSentences, len(filtered)) {
				return v, nil
			}
			app := v.state.App
			round := session.NewSentenceRound(app.Rand, app.Progress, v.category, v.pool, tier)
			return v, replaceView(newChoiceView(v.state, round))
		}
	}
	return v, nil
}

func (v *tierPickerView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	for i, c := range tierChoices {
		cursor := "  "
		label := c.label
		n := len(session.FilterDifficulty(v.pool, c.tier))
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
			label = formatter.Bold(label)
		}
		b.WriteString(fmt.Sprintf("%s%-18s %s\n", cursor, label, formatter.Dim(fmt.Sprintf("%d Sätze", n))))
	}
	return b.String()
}
