package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Pokédex as a JSON HTTP API",
		Long: `Serve the Pokédex as a JSON HTTP API.

Routes:
  GET /api/pokemon/{name}
  GET /api/pokemon/{name}/evolution
  GET /api/pokemon/{name}/moves/{move}
  GET /api/types?t=fire&t=flying
  GET /api/pokemon?limit=20&offset=0
  GET /ws
  GET /healthz

Use the redis or mongo cache backend to share the cache between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.newSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			printInfo("Serving on %s", StyleHighlight.Render(addr))
			return server.New(s.dex, s.client, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
