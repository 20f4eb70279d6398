package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliakramer/wortschatz/internal/domain"
	"github.com/juliakramer/wortschatz/internal/session"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

// drive applies a message to the model and feeds resulting commands
// back until none remain, like the bubbletea runtime would.
func drive(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	model, cmd := m.Update(msg)
	m = model.(appModel)
	for cmd != nil {
		out := cmd()
		if out == nil {
			break
		}
		if batch, ok := out.(tea.BatchMsg); ok {
			for _, c := range batch {
				if c != nil {
					m = drive(t, m, c())
				}
			}
			return m
		}
		model, cmd = m.Update(out)
		m = model.(appModel)
	}
	return m
}

func TestDashboard_EnterOpensModes(t *testing.T) {
	m := newAppModel(testApp(t))

	m = drive(t, m, keyEnter())

	require.Len(t, m.viewStack, 2)
	assert.Equal(t, ViewModes, m.activeView().ID())
	// first category alphabetically
	assert.Equal(t, "greetings", m.activeView().Title())
}

func TestDashboard_AllCategories(t *testing.T) {
	m := newAppModel(testApp(t))

	m = drive(t, m, keyRune('a'))

	require.Len(t, m.viewStack, 2)
	assert.Equal(t, domain.AllCategories, m.activeView().Title())
}

func TestModes_StartQuiz(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = append(m.viewStack, newModesView(m.state, "numbers"))

	// move to quiz (second entry) and start
	m = drive(t, m, keyRune('j'))
	m = drive(t, m, keyEnter())

	require.Equal(t, ViewChoice, m.activeView().ID())
}

func TestModes_SmallPoolBlocksChoiceModes(t *testing.T) {
	m := newAppModel(testApp(t))
	// greetings has 2 words: quiz unavailable
	m.viewStack = append(m.viewStack, newModesView(m.state, "greetings"))

	m = drive(t, m, keyRune('j')) // quiz
	m = drive(t, m, keyEnter())

	assert.Equal(t, ViewModes, m.activeView().ID())
}

func TestChoiceView_FullRoundRecordsHistory(t *testing.T) {
	app := testApp(t)
	m := newAppModel(app)
	round := session.NewQuizRound(app.Rand, app.Progress, "numbers", mustPool(t, app, "numbers"))
	m.viewStack = append(m.viewStack, newChoiceView(m.state, round))

	for round.Phase() != session.PhaseResults {
		q, ok := round.Question()
		require.True(t, ok)
		m = drive(t, m, keyRune(rune('1'+q.CorrectIndex())))
		m = drive(t, m, keyEnter())
	}

	assert.Equal(t, round.Total(), round.Score())
	assert.Positive(t, app.Progress.State().XP)

	rounds, err := app.Rounds.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, domain.ModeQuiz, rounds[0].Mode)
	assert.Equal(t, round.Score(), rounds[0].Score)

	// enter on results pops back
	m = drive(t, m, keyEnter())
	assert.Equal(t, ViewDashboard, m.activeView().ID())
}

func TestTypedView_EscPops(t *testing.T) {
	app := testApp(t)
	m := newAppModel(app)
	m.viewStack = append(m.viewStack, newTypedView(m.state, "numbers", mustPool(t, app, "numbers")))

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewDashboard, m.activeView().ID())
}

func TestSpeedView_TimerExpiryRecordsOnce(t *testing.T) {
	app := testApp(t)
	m := newAppModel(app)
	round := session.NewSpeedRound(app.Rand, app.Progress, "numbers", mustPool(t, app, "numbers"), 2)
	view := newSpeedView(m.state, round)
	m.viewStack = append(m.viewStack, view)

	q, ok := round.Question()
	require.True(t, ok)
	m = drive(t, m, keyRune(rune('1'+q.CorrectIndex())))
	m = drive(t, m, keyEnter())

	// expire the timer; the tick at zero finishes and records
	model, _ := m.Update(speedTickMsg{})
	m = model.(appModel)
	model, _ = m.Update(speedTickMsg{})
	m = model.(appModel)
	require.Equal(t, session.PhaseResults, round.Phase())

	// a late esc must not double-record
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)

	rounds, err := app.Rounds.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, domain.ModeSpeed, rounds[0].Mode)
	assert.True(t, rounds[0].NewBest)
	assert.Equal(t, 1, rounds[0].Score)
}

func TestFlashcardsView_RevealAndGrade(t *testing.T) {
	app := testApp(t)
	m := newAppModel(app)
	view := newFlashcardsView(m.state, "numbers", mustPool(t, app, "numbers"))
	m.viewStack = append(m.viewStack, view)

	m = drive(t, m, keyRune(' '))
	assert.True(t, view.round.Revealed())

	m = drive(t, m, keyRune('y'))
	assert.False(t, view.round.Revealed())
	// self-grading never awards XP
	assert.Zero(t, app.Progress.State().XP)
}

func mustPool(t *testing.T, app *App, category string) []domain.WordEntry {
	t.Helper()
	pool, ok := app.Library.Pool(category)
	require.True(t, ok)
	return pool
}
