// Package cli wires the cobra command tree and the bubbletea TUI that
// drive the vocabulary trainer.
package cli

import (
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/juliakramer/wortschatz/internal/config"
	"github.com/juliakramer/wortschatz/internal/content"
	"github.com/juliakramer/wortschatz/internal/progress"
	"github.com/juliakramer/wortschatz/internal/repository"
)

// App holds the wired dependencies used by CLI commands.
type App struct {
	Progress *progress.Store
	Library  *content.Library
	Rounds   repository.RoundRepo
	Config   *config.Config
	Rand     *rand.Rand
	Logger   *slog.Logger

	// IsInteractive reports whether stdin is a terminal; forms and the
	// TUI are only offered when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "wortschatz" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "wortschatz",
		Short: "German vocabulary trainer",
		Long: `Ein Vokabeltrainer: flashcards, quiz, typing, speed rounds and
sentence practice over JSON word decks, with persistent mastery
tracking, XP and daily streaks.`,
	}

	root.AddCommand(
		newPlayCmd(app),
		newStatsCmd(app),
		newCategoriesCmd(app),
		newLookupCmd(app),
		newServeCmd(app),
		newResetCmd(app),
	)

	return root
}
