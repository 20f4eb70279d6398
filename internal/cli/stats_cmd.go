package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juliakramer/wortschatz/internal/cli/formatter"
	"github.com/juliakramer/wortschatz/internal/domain"
)

func newStatsCmd(app *App) *cobra.Command {
	var recent int
	var category string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show XP, streak and per-category progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Progress.State()

			var cats []formatter.CategoryStat
			for _, name := range app.Library.Categories() {
				pool, _ := app.Library.Pool(name)
				learned := 0
				for _, w := range pool {
					if state.Mastery(w.EffectiveCategory(name), w.De) >= domain.LearnedThreshold {
						learned++
					}
				}
				cats = append(cats, formatter.CategoryStat{
					Name:       name,
					Words:      len(pool),
					Learned:    learned,
					Completion: state.CategoryCompletion(name, pool),
				})
			}

			var rounds []*domain.RoundResult
			if app.Rounds != nil && recent > 0 {
				var err error
				if category != "" {
					rounds, err = app.Rounds.ListByCategory(context.Background(), category, recent)
				} else {
					rounds, err = app.Rounds.ListRecent(context.Background(), recent)
				}
				if err != nil {
					app.Logger.Warn("loading round history failed", "error", err)
				}
			}

			fmt.Print(formatter.FormatStats(state, cats, rounds))
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 5, "Number of recent rounds to show (0 disables)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Limit recent rounds to one category")

	return cmd
}
