package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/juliakramer/wortschatz/internal/cli/formatter"
	"github.com/juliakramer/wortschatz/internal/session"
)

// speedTickMsg advances the speed round clock by one second.
type speedTickMsg struct{}

func speedTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return speedTickMsg{}
	})
}

// speedView runs the timed round. The timer and a user exit may race
// to end it; SpeedRound.Finish settles that idempotently.
type speedView struct {
	state    *SharedState
	round    *session.SpeedRound
	judgment session.Judgment
	recorded bool
}

func newSpeedView(state *SharedState, round *session.SpeedRound) *speedView {
	return &speedView{state: state, round: round}
}

func (v *speedView) ID() ViewID    { return ViewSpeed }
func (v *speedView) Title() string { return "Speed-Runde" }

func (v *speedView) ShortHelp() []key.Binding {
	switch v.round.Phase() {
	case session.PhaseQuestion:
		return []key.Binding{helpKey("1-4", "antworten")}
	case session.PhaseJudged:
		return []key.Binding{helpKey("enter", "weiter")}
	default:
		return []key.Binding{helpKey("enter", "fertig")}
	}
}

func (v *speedView) Init() tea.Cmd {
	if v.round.Phase() == session.PhaseResults {
		v.maybeRecord()
		return nil
	}
	return speedTick()
}

func (v *speedView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case speedTickMsg:
		v.round.Tick()
		if v.round.Phase() == session.PhaseResults {
			v.maybeRecord()
			return v, nil
		}
		return v, speedTick()

	case tea.KeyMsg:
		switch v.round.Phase() {
		case session.PhaseQuestion:
			if msg.Type == tea.KeyEsc {
				v.round.Finish()
				v.maybeRecord()
				return v, nil
			}
			if idx, ok := optionIndex(msg); ok {
				if q, has := v.round.Question(); has && idx < len(q.Options) {
					v.judgment = v.round.Answer(idx)
				}
			}
		case session.PhaseJudged:
			if msg.Type == tea.KeyEsc {
				v.round.Finish()
				v.maybeRecord()
				return v, nil
			}
			if msg.String() == "enter" || msg.String() == " " {
				v.round.Continue()
			}
		case session.PhaseResults:
			if msg.String() == "enter" || msg.Type == tea.KeyEsc {
				return v, popView()
			}
		}
	}
	return v, nil
}

func (v *speedView) maybeRecord() {
	if v.recorded || v.round.Attempted() == 0 {
		return
	}
	v.recorded = true
	v.state.RecordRound(v.round.Mode(), v.round.Category(),
		v.round.Score(), v.round.Attempted(), v.round.XPEarned(), v.round.NewBest())
}

func (v *speedView) View() string {
	if v.round.Phase() == session.PhaseResults {
		extra := ""
		if v.round.NewBest() {
			extra = formatter.StyleGreen.Render(fmt.Sprintf("★ Neuer Rekord: %d!", v.round.Score()))
		}
		return renderResults(v.round.Score(), v.round.Attempted(), v.round.XPEarned(), extra)
	}

	q, ok := v.round.Question()
	if !ok {
		return ""
	}

	remaining := v.round.Remaining()
	clock := formatter.StyleGreen.Render(fmt.Sprintf("⏱ %ds", remaining))
	if remaining <= 10 {
		clock = formatter.StyleRed.Render(fmt.Sprintf("⏱ %ds", remaining))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n\n", clock,
		formatter.Dim(fmt.Sprintf("Treffer: %d · %s", v.round.Score(), q.Direction))))
	b.WriteString("  " + formatter.Bold(q.Prompt) + "\n\n")

	judged := v.round.Phase() == session.PhaseJudged
	for i, opt := range q.Options {
		line := fmt.Sprintf("  %d) %s", i+1, opt)
		if judged {
			switch {
			case i == v.judgment.CorrectIndex:
				line = formatter.Correct(line + "  ✓")
			case !v.judgment.Correct:
				line = formatter.Dim(line)
			}
		}
		b.WriteString(line + "\n")
	}

	if judged {
		b.WriteString("\n")
		if v.judgment.Correct {
			b.WriteString("  " + formatter.Correct(v.judgment.Feedback))
		} else {
			b.WriteString("  " + formatter.Wrong(v.judgment.Feedback))
		}
		b.WriteString("\n")
	}
	return b.String()
}
