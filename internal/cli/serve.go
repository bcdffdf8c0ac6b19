package cli

import (
	"github.com/spf13/cobra"

	"github.com/lbreuer/folium/internal/server"
	"github.com/lbreuer/folium/pkg/pipeline"
)

// newServeCmd creates the serve command, which runs the HTTP rendering
// service.
func newServeCmd(configFile *string) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFile)
			if err != nil {
				return err
			}
			if listen == "" {
				listen = cfg.Listen
			}
			if listen == "" {
				listen = ":8080"
			}

			logger := loggerFromContext(cmd.Context())
			store, err := openCache(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := server.New(pipeline.NewRunner(store, logger), logger)
			printInfo("Listening on %s", listen)
			return srv.ListenAndServe(cmd.Context(), listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default :8080)")
	return cmd
}
