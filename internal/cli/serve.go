package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/clemen/pkg/observability"
	"github.com/matzehuels/clemen/pkg/server"
)

const defaultAddr = ":8080"

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr string
		cf   cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered scenes over HTTP",
		Long: `Start the preview server.

Builtin scenes are served at /scenes/{name}/{format}; scene files can be
posted to /render/{format}. The server stops on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, cf)
			if err != nil {
				return err
			}
			defer runner.Close()

			printInfo("Serving on %s", StyleLink.Render(addr))
			printKeyValue("scenes", "GET /scenes")
			printKeyValue("render", "GET /scenes/{name}/{format}")
			printKeyValue("post", "POST /render/{format}")
			printKeyValue("stats", "GET /stats")

			counters := &observability.Counters{}
			observability.Attach(counters)

			logger := loggerFromContext(ctx)
			srv := server.New(runner, logger, server.WithStats(counters))
			return server.ListenAndServe(ctx, addr, srv, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cf.register(cmd)

	return cmd
}
