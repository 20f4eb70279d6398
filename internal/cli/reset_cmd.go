package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress",
		Long:  `Reset XP, streak, best speed and every word's mastery to zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed := force
			if !confirmed {
				if !app.IsInteractive() {
					return fmt.Errorf("refusing to reset without --force on a non-interactive terminal")
				}
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title("Wirklich den gesamten Fortschritt löschen?").
							Description("XP, Streak, Bestzeiten und alle Mastery-Level gehen verloren.").
							Affirmative("Löschen").
							Negative("Abbrechen").
							Value(&confirmed),
					),
				)
				if err := form.Run(); err != nil {
					return err
				}
			}
			if !confirmed {
				fmt.Println("Abgebrochen.")
				return nil
			}

			app.Progress.Reset()
			fmt.Println("Fortschritt zurückgesetzt.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
