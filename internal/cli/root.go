// Package cli defines the notedir command tree.
package cli

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/notedir/internal/config"
	"github.com/alexanderramin/notedir/internal/httpapi"
)

// App holds the wired HTTP API and the configuration the commands run
// against.
type App struct {
	API    *httpapi.API
	Config config.Config
}

// NewRootCmd creates the top-level "notedir" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "notedir",
		Short: "Note directory service",
	}

	root.AddCommand(
		newServeCmd(app),
	)

	return root
}

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			timeout := time.Duration(app.Config.ShutdownTimeout) * time.Second
			return app.API.Serve(ctx, addr, timeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.Config.Addr, "listen address")
	return cmd
}
