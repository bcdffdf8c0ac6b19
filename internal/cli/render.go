package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lbreuer/folium/pkg/cache"
	"github.com/lbreuer/folium/pkg/enhance"
	"github.com/lbreuer/folium/pkg/errors"
	docio "github.com/lbreuer/folium/pkg/io"
	"github.com/lbreuer/folium/pkg/pipeline"
	"github.com/lbreuer/folium/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file path; derived from input when empty
	format      string // print, markup, or flow (pdf/html/docx aliases)
	theme       string // theme override
	designStyle string // decoration style selector
	colorScheme string // gradient scheme selector
	noCache     bool   // disable the artifact cache entirely
	refresh     bool   // skip the cache read, still write back
	toc         bool
	annotations bool
	footnotes   bool
	pageNumbers bool
}

// newRenderCmd creates the render command.
//
// Default settings: print format, caching on, every content toggle on.
func newRenderCmd(configFile *string) *cobra.Command {
	opts := renderOpts{
		format:      "print",
		toc:         true,
		annotations: true,
		footnotes:   true,
		pageNumbers: true,
	}

	cmd := &cobra.Command{
		Use:   "render [document.json]",
		Short: "Compose a document into a print, markup, or flow artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return runRender(cmd.Context(), args[0], &opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: print (default), markup, flow")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme override: academic, modern, minimal, colorful")
	cmd.Flags().StringVar(&opts.designStyle, "design-style", "", "decoration style (default: follow theme)")
	cmd.Flags().StringVar(&opts.colorScheme, "color-scheme", "", "gradient scheme: blue (default), green, purple, orange, rose")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVar(&opts.toc, "toc", opts.toc, "include the table of contents")
	cmd.Flags().BoolVar(&opts.annotations, "annotations", opts.annotations, "include annotations")
	cmd.Flags().BoolVar(&opts.footnotes, "footnotes", opts.footnotes, "include footnotes")
	cmd.Flags().BoolVar(&opts.pageNumbers, "page-numbers", opts.pageNumbers, "include page numbers")

	return cmd
}

func runRender(ctx context.Context, inputPath string, opts *renderOpts, cfg Config) error {
	logger := loggerFromContext(ctx)

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	doc, err := docio.ImportJSON(inputPath)
	if err != nil {
		return err
	}

	store, err := openCache(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	theme := opts.theme
	if theme == "" {
		theme = cfg.Theme
	}
	designStyle := opts.designStyle
	if designStyle == "" {
		designStyle = cfg.DesignStyle
	}
	colorScheme := opts.colorScheme
	if colorScheme == "" {
		colorScheme = cfg.ColorScheme
	}

	runner := pipeline.NewRunner(store, logger)
	p := newProgress(logger)
	result, err := runner.Execute(ctx, *doc, pipeline.Options{
		Theme:       theme,
		DesignStyle: enhance.DesignStyle(designStyle),
		ColorScheme: enhance.ColorScheme(colorScheme),
		Layout:      cfg.Layout,
		Refresh:     opts.refresh,
		Render: render.Options{
			Format:             format,
			IncludeTOC:         opts.toc,
			IncludeAnnotations: opts.annotations,
			IncludeFootnotes:   opts.footnotes,
			PageNumbers:        opts.pageNumbers,
		},
		Logger: logger,
	})
	if err != nil {
		var violations errors.ValidationErrors
		if stderrors.As(err, &violations) {
			printError("Document has %d schema violation(s):", len(violations))
			for _, v := range violations {
				printDetail("%s: %s", v.Path, v.Message)
			}
			return fmt.Errorf("validation failed")
		}
		return err
	}
	p.done(fmt.Sprintf("Composed %q", doc.Meta.Title))

	outPath := opts.output
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, ".json") + format.Extension()
	}
	if err := os.WriteFile(outPath, result.Artifact, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	printSuccess("Rendered %s artifact", format)
	printFile(outPath)
	printStats(result.Stats.BlockCount, result.Stats.PageCount, result.Stats.ArtifactSize, result.CacheInfo.ArtifactHit)
	return nil
}

// openCache builds the artifact cache from config: Redis when configured,
// otherwise the file cache, or the null cache when disabled.
func openCache(ctx context.Context, cfg Config, disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisAddr != "" {
		c, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return c, nil
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}
