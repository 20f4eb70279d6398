package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/juliakramer/wortschatz/internal/cli/formatter"
	"github.com/juliakramer/wortschatz/internal/domain"
)

// dashboardView is the home screen: the category list with completion
// bars, plus entry points for merged "all categories" play.
type dashboardView struct {
	state  *SharedState
	cursor int
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		helpKey("↑/↓", "wählen"),
		helpKey("enter", "üben"),
		helpKey("a", "alle Kategorien"),
		helpKey("q", "beenden"),
	}
}

func (v *dashboardView) Init() tea.Cmd { return nil }

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	categories := v.state.App.Library.Categories()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(categories)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(categories) {
				return v, pushView(newModesView(v.state, categories[v.cursor]))
			}
		case "a":
			if len(categories) > 0 {
				return v, pushView(newModesView(v.state, domain.AllCategories))
			}
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	lib := v.state.App.Library
	categories := lib.Categories()
	if len(categories) == 0 {
		return "\n  " + formatter.Dim("Keine Kategorien gefunden. Lege JSON-Dateien ins Datenverzeichnis.")
	}

	var b strings.Builder
	b.WriteString("\n")

	nameWidth := 0
	for _, name := range categories {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	state := v.state.App.Progress.State()
	for i, name := range categories {
		pool, _ := lib.Pool(name)
		completion := state.CategoryCompletion(name, pool)

		cursor := "  "
		label := fmt.Sprintf("%-*s", nameWidth, name)
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
			label = formatter.Bold(label)
		}

		b.WriteString(fmt.Sprintf("%s%s  %s %s\n",
			cursor, label,
			formatter.RenderProgress(completion, 15),
			formatter.Dim(fmt.Sprintf("%d Wörter", len(pool)))))
	}

	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d Kategorien · %d Wörter insgesamt", lib.Len(), lib.TotalWords())))
	return b.String()
}
