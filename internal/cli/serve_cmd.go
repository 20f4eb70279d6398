package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/juliakramer/wortschatz/internal/web"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web assets over HTTP",
		Long: `Start a local HTTP server for the browser front end. Caching is
disabled so edited word decks show up on reload.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.Config.Serve.Dir
			if dir == "" {
				dir = app.Config.DataDir
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Serving %s on http://%s\n", dir, addr)
			srv := web.NewServer(addr, dir, app.Logger)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to config serve.addr)")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if addr == "" {
			addr = app.Config.Serve.Addr
		}
	}

	return cmd
}
