package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/juliakramer/wortschatz/internal/cli/formatter"
	"github.com/juliakramer/wortschatz/internal/domain"
)

func newLookupCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "lookup <query>",
		Short: "Fuzzy-search the loaded vocabulary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			results := lookupWords(app, query, limit)
			if len(results) == 0 {
				fmt.Printf("Nichts gefunden für %q.\n", query)
				return nil
			}

			for _, hit := range results {
				line := fmt.Sprintf("%s %s %s  %s",
					formatter.Bold(hit.word.De),
					formatter.Dim("·"),
					hit.word.En,
					formatter.Dim(fmt.Sprintf("[%s]", hit.category)))
				fmt.Println(line)
				fmt.Printf("  %s  %s\n",
					formatter.MasteryStars(app.Progress.Mastery(hit.category, hit.word.De)),
					formatter.Dim(hit.word.Hint))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of results")

	return cmd
}

type lookupHit struct {
	word     domain.WordEntry
	category string
	distance int
}

// lookupWords fuzzy-matches the query against both the German and
// English side of every loaded entry.
func lookupWords(app *App, query string, limit int) []lookupHit {
	merged := app.Library.Merged()

	// index both sides under the entry they belong to
	targets := make([]string, 0, len(merged)*2)
	byTarget := make(map[string]int, len(merged)*2)
	for i, w := range merged {
		for _, text := range []string{w.De, w.En} {
			if _, dup := byTarget[text]; !dup {
				byTarget[text] = i
				targets = append(targets, text)
			}
		}
	}

	matches := fuzzy.RankFindFold(query, targets)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	var hits []lookupHit
	seen := make(map[int]bool)
	for _, m := range matches {
		idx := byTarget[m.Target]
		if seen[idx] {
			continue
		}
		seen[idx] = true
		hits = append(hits, lookupHit{
			word:     merged[idx],
			category: merged[idx].Category,
			distance: m.Distance,
		})
		if len(hits) == limit {
			break
		}
	}
	return hits
}
