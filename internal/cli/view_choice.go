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

// choiceSession is the slice of round behavior the multiple-choice
// view needs. Quiz and sentence rounds both satisfy it.
type choiceSession interface {
	Mode() domain.Mode
	Category() string
	Phase() session.Phase
	Score() int
	XPEarned() int
	Total() int
	Number() int
	Question() (session.Question, bool)
	Answer(option int) session.Judgment
	Continue()
}

// choiceView renders a fixed-length multiple-choice round (quiz or
// sentences) and translates keys into round transitions.
type choiceView struct {
	state    *SharedState
	round    choiceSession
	judgment session.Judgment
	recorded bool
}

func newChoiceView(state *SharedState, round choiceSession) *choiceView {
	return &choiceView{state: state, round: round}
}

func (v *choiceView) ID() ViewID { return ViewChoice }

func (v *choiceView) Title() string {
	if v.round.Mode() == domain.ModeSentences {
		return "Sätze"
	}
	return "Quiz"
}

func (v *choiceView) ShortHelp() []key.Binding {
	switch v.round.Phase() {
	case session.PhaseQuestion:
		return []key.Binding{helpKey("1-4", "antworten")}
	case session.PhaseJudged:
		return []key.Binding{helpKey("enter", "weiter")}
	default:
		return []key.Binding{helpKey("enter", "fertig")}
	}
}

func (v *choiceView) Init() tea.Cmd {
	// The sampler may have produced an already-finished round (empty
	// pool); record it right away so Results is consistent.
	v.maybeRecord()
	return nil
}

func (v *choiceView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch v.round.Phase() {
	case session.PhaseQuestion:
		if idx, ok := optionIndex(keyMsg); ok {
			if q, has := v.round.Question(); has && idx < len(q.Options) {
				v.judgment = v.round.Answer(idx)
			}
		}
	case session.PhaseJudged:
		if keyMsg.String() == "enter" || keyMsg.String() == " " {
			v.round.Continue()
			v.maybeRecord()
		}
	case session.PhaseResults:
		if keyMsg.String() == "enter" {
			return v, popView()
		}
	}
	return v, nil
}

// maybeRecord writes the round to history exactly once, when it
// reaches Results.
func (v *choiceView) maybeRecord() {
	if v.recorded || v.round.Phase() != session.PhaseResults || v.round.Total() == 0 {
		return
	}
	v.recorded = true
	v.state.RecordRound(v.round.Mode(), v.round.Category(),
		v.round.Score(), v.round.Total(), v.round.XPEarned(), false)
}

func (v *choiceView) View() string {
	switch v.round.Phase() {
	case session.PhaseResults:
		return renderResults(v.round.Score(), v.round.Total(), v.round.XPEarned(), "")
	default:
		q, ok := v.round.Question()
		if !ok {
			return ""
		}
		return renderQuestion(q, v.round.Number(), v.round.Total(),
			v.round.Phase() == session.PhaseJudged, v.judgment)
	}
}

// optionIndex maps the 1-4 number keys to an option index.
func optionIndex(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '4' {
		return int(s[0] - '1'), true
	}
	return 0, false
}

// renderQuestion draws a prompt with numbered options, and the
// judgment line once answered.
func renderQuestion(q session.Question, number, total int, judged bool, j session.Judgment) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("Frage %d/%d · %s", number, total, q.Direction)) + "\n\n")
	b.WriteString("  " + formatter.Bold(q.Prompt) + "\n\n")

	for i, opt := range q.Options {
		line := fmt.Sprintf("  %d) %s", i+1, opt)
		if judged {
			switch {
			case i == j.CorrectIndex:
				line = formatter.Correct(line + "  ✓")
			case !j.Correct && opt != j.CorrectText:
				line = formatter.Dim(line)
			}
		}
		b.WriteString(line + "\n")
	}

	if judged {
		b.WriteString("\n")
		if j.Correct {
			b.WriteString("  " + formatter.Correct(j.Feedback))
			b.WriteString(" " + formatter.StylePurple.Render(fmt.Sprintf("+%d XP", j.XPAwarded)))
		} else {
			b.WriteString("  " + formatter.Wrong(j.Feedback))
			b.WriteString("\n  " + formatter.Dim("Richtig wäre: ") + formatter.Bold(j.CorrectText))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderResults draws the end-of-round summary.
func renderResults(score, total, xp int, extra string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Runde beendet") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %d/%d\n", formatter.Bold("Ergebnis:"), score, total))
	b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Bold("XP:"), formatter.StylePurple.Render(fmt.Sprintf("+%d", xp))))
	if extra != "" {
		b.WriteString("  " + extra + "\n")
	}
	b.WriteString("\n  " + session.GradeBanner(score, total) + "\n")
	return b.String()
}
