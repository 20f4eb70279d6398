package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juliakramer/wortschatz/internal/cli/formatter"
)

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List loaded categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := app.Library.Categories()
			if len(names) == 0 {
				fmt.Printf("No categories found in %s\n", app.Config.DataDir)
				return nil
			}
			for _, name := range names {
				pool, _ := app.Library.Pool(name)
				fmt.Printf("%s %s\n", formatter.Bold(name), formatter.Dim(fmt.Sprintf("(%d Wörter)", len(pool))))
			}
			return nil
		},
	}
}
