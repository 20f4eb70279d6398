package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/juliakramer/wortschatz/internal/domain"
	"github.com/juliakramer/wortschatz/internal/session"
)

func newPlayCmd(app *App) *cobra.Command {
	var category string
	var mode string
	var tier int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a learning session",
		Long: `Open the trainer. Without flags this lands on the category
dashboard; --category and --mode jump straight into a round.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("play needs an interactive terminal")
			}
			if app.Library.Len() == 0 {
				return fmt.Errorf("no categories found in %s", app.Config.DataDir)
			}

			// --mode without --category: ask with a form before the TUI.
			if mode != "" && category == "" {
				if err := pickCategory(app, &category); err != nil {
					return err
				}
			}

			model := newAppModel(app)
			if category != "" {
				if _, ok := app.Library.Resolve(category); !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				if mode != "" && !domain.ValidModes[mode] {
					return fmt.Errorf("unknown mode %q", mode)
				}
				model = newAppModelAt(app, func(state *SharedState) View {
					return startView(state, category, domain.Mode(mode), tier)
				})
			}

			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category to practice (\"all\" for everything)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Mode: flashcards, quiz, typed, speed, sentences")
	cmd.Flags().IntVar(&tier, "tier", 0, "Sentence difficulty 1-3 (0 = all)")

	return cmd
}

// pickCategory asks for a category with a huh select form.
func pickCategory(app *App, out *string) error {
	options := []huh.Option[string]{
		huh.NewOption("Alle Kategorien", domain.AllCategories),
	}
	for _, name := range app.Library.Categories() {
		options = append(options, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Kategorie").
				Options(options...).
				Value(out),
		),
	)
	return form.Run()
}

// startView builds the initial round view for --category/--mode jumps.
// An empty mode lands on the mode picker for the category.
func startView(state *SharedState, category string, mode domain.Mode, tier int) View {
	if mode == "" {
		return newModesView(state, category)
	}
	app := state.App
	pool, _ := app.Library.Resolve(category)

	switch mode {
	case domain.ModeFlashcards:
		return newFlashcardsView(state, category, pool)
	case domain.ModeQuiz:
		return newChoiceView(state, session.NewQuizRound(app.Rand, app.Progress, category, pool))
	case domain.ModeTyped:
		return newTypedView(state, category, pool)
	case domain.ModeSpeed:
		return newSpeedView(state, session.NewSpeedRound(app.Rand, app.Progress, category, pool, app.Config.SpeedSeconds))
	case domain.ModeSentences:
		if tier > 0 {
			return newChoiceView(state, session.NewSentenceRound(app.Rand, app.Progress, category, pool, tier))
		}
		return newTierPickerView(state, category, pool)
	}
	return newModesView(state, category)
}
