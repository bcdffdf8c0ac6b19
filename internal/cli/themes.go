package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lbreuer/folium/pkg/style"
)

// newThemesCmd creates the themes command, which lists the built-in themes
// with their palettes and defaults.
func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, name := range style.ThemeNames() {
				if i > 0 {
					fmt.Println()
				}
				theme := style.ThemeByName(name)
				fmt.Println(StyleTitle.Render(theme.Name))
				printKeyValue("fonts", theme.Fonts.Heading+" / "+theme.Fonts.Body)
				printKeyValue("spacing", string(theme.Spacing))
				printKeyValue("page", string(theme.PageSize))

				swatches := make([]string, len(theme.Palette))
				for j, hex := range theme.Palette {
					swatches[j] = swatch(hex)
				}
				printKeyValue("palette", strings.Join(swatches, "  "))
			}
			return nil
		},
	}
}
