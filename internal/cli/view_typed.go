package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/juliakramer/wortschatz/internal/cli/formatter"
	"github.com/juliakramer/wortschatz/internal/domain"
	"github.com/juliakramer/wortschatz/internal/session"
)

// typedView runs a typing round with a focused text input. It captures
// all keys, so Esc handling lives here instead of the app model.
type typedView struct {
	state    *SharedState
	round    *session.TypedRound
	input    textinput.Model
	judgment session.Judgment
	recorded bool
}

func newTypedView(state *SharedState, category string, pool []domain.WordEntry) *typedView {
	ti := textinput.New()
	ti.Placeholder = "deutsche Antwort"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()

	round := session.NewTypedRound(state.App.Rand, state.App.Progress, category, pool)
	return &typedView{state: state, round: round, input: ti}
}

func (v *typedView) ID() ViewID    { return ViewTyped }
func (v *typedView) Title() string { return "Tippen" }

func (v *typedView) ShortHelp() []key.Binding {
	switch v.round.Phase() {
	case session.PhaseQuestion:
		return []key.Binding{helpKey("enter", "prüfen")}
	case session.PhaseJudged:
		return []key.Binding{helpKey("enter", "weiter")}
	default:
		return []key.Binding{helpKey("enter", "fertig")}
	}
}

func (v *typedView) Init() tea.Cmd {
	v.maybeRecord()
	return textinput.Blink
}

func (v *typedView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case keyMsg.Type == tea.KeyEsc:
			return v, popView()
		case keyMsg.Type == tea.KeyEnter:
			switch v.round.Phase() {
			case session.PhaseQuestion:
				v.judgment = v.round.Answer(v.input.Value())
			case session.PhaseJudged:
				v.round.Continue()
				v.maybeRecord()
				v.input.Reset()
			case session.PhaseResults:
				return v, popView()
			}
			return v, nil
		}
	}

	if v.round.Phase() == session.PhaseQuestion {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *typedView) maybeRecord() {
	if v.recorded || v.round.Phase() != session.PhaseResults || v.round.Total() == 0 {
		return
	}
	v.recorded = true
	v.state.RecordRound(domain.ModeTyped, v.round.Category(),
		v.round.Score(), v.round.Total(), v.round.XPEarned(), false)
}

func (v *typedView) View() string {
	if v.round.Phase() == session.PhaseResults {
		return renderResults(v.round.Score(), v.round.Total(), v.round.XPEarned(), "")
	}

	w, ok := v.round.Word()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("Wort %d/%d", v.round.Number(), v.round.Total())) + "\n\n")
	b.WriteString("  " + formatter.Bold(w.En) + "\n")
	if w.Hint != "" {
		b.WriteString("  " + formatter.Dim("Hinweis: "+w.Hint) + "\n")
	}
	b.WriteString("\n  " + v.input.View() + "\n")

	if v.round.Phase() == session.PhaseJudged {
		b.WriteString("\n")
		if v.judgment.Correct {
			b.WriteString("  " + formatter.Correct(v.judgment.Feedback))
			b.WriteString(" " + formatter.StylePurple.Render(fmt.Sprintf("+%d XP", v.judgment.XPAwarded)))
		} else {
			b.WriteString("  " + formatter.Wrong(v.judgment.Feedback))
			b.WriteString("\n  " + formatter.Dim("Richtig wäre: ") + formatter.Bold(v.judgment.CorrectText))
		}
		b.WriteString("\n")
	}
	return b.String()
}
