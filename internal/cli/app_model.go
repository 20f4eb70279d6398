package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/juliakramer/wortschatz/internal/cli/formatter"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack; the header shows XP, streak and best speed.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	m := appModel{state: state}

	// Start with the dashboard as the home view.
	m.viewStack = []View{newDashboardView(state)}

	return m
}

// newAppModelAt starts the TUI on a specific view instead of the
// dashboard. The dashboard stays underneath so Esc still leads home.
func newAppModelAt(app *App, build func(*SharedState) View) appModel {
	m := newAppModel(app)
	m.viewStack = append(m.viewStack, build(m.state))
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.viewStack {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Forward to active view
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()
	}

	// Forward other messages (ticks, cursor blink) to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// If active view captures input (has its own text input), forward
	// directly so it receives all characters including 'q'.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		// The speed view settles its score on Esc, so it gets the key
		// before the stack pops.
		if v := m.activeView(); v != nil && v.ID() == ViewSpeed {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		// Pop view stack (go back).
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("wortschatz")

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	state := m.state.App.Progress.State()
	stats := fmt.Sprintf("%s  %s",
		formatter.StylePurple.Render(fmt.Sprintf("%d XP", state.XP)),
		formatter.StyleYellow.Render(fmt.Sprintf("🔥 %d", state.Streak)))
	if state.BestSpeed > 0 {
		stats += "  " + formatter.StyleGreen.Render(fmt.Sprintf("⚡ %d", state.BestSpeed))
	}

	left := title + breadcrumb
	if m.state.Width > 0 {
		pad := m.state.Width - visibleWidth(left) - visibleWidth(stats)
		if pad > 0 {
			return left + strings.Repeat(" ", pad) + stats
		}
	}
	return left + "  " + stats
}

func (m *appModel) renderStatusBar() string {
	v := m.activeView()
	if v == nil {
		return ""
	}
	var hints []string
	for _, b := range v.ShortHelp() {
		h := b.Help()
		hints = append(hints, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Bold("esc")+" "+formatter.Dim("zurück"))
	}
	return strings.Join(hints, formatter.Dim("  ·  "))
}

// viewCapturesInput reports whether the active view owns the keyboard
// (a text input is focused), bypassing global keybindings.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	return v.ID() == ViewTyped
}

// visibleWidth measures rendered width ignoring ANSI escape codes.
func visibleWidth(s string) int {
	inEscape := false
	n := 0
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			n++
		}
	}
	return n
}

// helpKey builds a key binding used only for its help text.
func helpKey(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, desc))
}
