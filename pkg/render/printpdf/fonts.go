package printpdf

import (
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/lbreuer/folium/pkg/errors"
)

// fallbackFonts is the substitution chain tried when the requested family
// is not installed. Exhausting the chain is a terminal backend error.
var fallbackFonts = []string{"DejaVu Serif", "Liberation Serif", "Noto Serif", "Arial"}

// fontCache loads each system font family once per renderer; multiple
// documents may render in parallel, so the map is guarded.
type fontCache struct {
	mu       sync.Mutex
	families map[string]*canvas.FontFamily
}

func newFontCache() *fontCache {
	return &fontCache{families: make(map[string]*canvas.FontFamily)}
}

// family returns the loaded font family for a name, substituting down the
// fallback chain when the name is not installed.
func (fc *fontCache) family(name string) (*canvas.FontFamily, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fam, ok := fc.families[name]; ok {
		return fam, nil
	}
	for _, candidate := range append([]string{name}, fallbackFonts...) {
		fam := canvas.NewFontFamily(candidate)
		if err := fam.LoadSystemFont(candidate, canvas.FontRegular); err != nil {
			continue
		}
		fc.families[name] = fam
		return fam, nil
	}
	return nil, errors.New(errors.ErrCodeFontNotFound, "font %q not found and no fallback is installed", name)
}
