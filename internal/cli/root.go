package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lbreuer/folium/pkg/buildinfo"
)

// Execute runs the folium CLI and returns an error if any command fails.
//
// The root command wires up the subcommands (render, themes, cache, serve),
// configures logging from the --verbose flag, and attaches the logger to
// the command context where subcommands retrieve it via loggerFromContext.
// Canceling ctx stops long-running commands such as serve.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configFile string
	)

	root := &cobra.Command{
		Use:          "folium",
		Short:        "Folium composes structured documents into print-ready artifacts",
		Long:         `Folium takes a structured document (outline, blocks, styles) and composes it into a finished artifact: a paginated PDF, a self-contained HTML page, or a DOCX flow document.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: user config dir)")

	root.AddCommand(newRenderCmd(&configFile))
	root.AddCommand(newThemesCmd())
	root.AddCommand(newCacheCmd(&configFile))
	root.AddCommand(newServeCmd(&configFile))

	return root.ExecuteContext(ctx)
}
