package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inkwell/internal/serve"
	"inkwell/internal/store"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the story service over HTTP, backed by the local store",
		Long: `Host the story service over HTTP, backed by the local store.

Editors on other machines can publish into it with --api:

  inkwell --api http://host:8787`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(cmd.Context(), app.StoreDir)
			if err != nil {
				return err
			}
			defer st.Close()
			srv := serve.NewServer(serve.ServerConfig{Addr: addr}, st)
			fmt.Fprintf(cmd.OutOrStdout(), "story service listening on %s (store: %s)\n", addr, app.StoreDir)
			return srv.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8787", "Listen address")
	return cmd
}
