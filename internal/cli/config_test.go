package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lbreuer/folium/pkg/layout"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg != (Config{Layout: layout.DefaultConfig()}) {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
theme = "modern"
color_scheme = "green"
redis_addr = "localhost:6379"
listen = ":9090"

[layout]
base_font_size = 12.0
max_line_length = 60
card_threshold = 0.8
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Theme != "modern" || cfg.ColorScheme != "green" {
		t.Errorf("theme/scheme = %q/%q", cfg.Theme, cfg.ColorScheme)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.Listen != ":9090" {
		t.Errorf("addresses = %q/%q", cfg.RedisAddr, cfg.Listen)
	}
	if cfg.Layout.BaseFontSize != 12.0 || cfg.Layout.MaxLineLength != 60 || cfg.Layout.CardThreshold != 0.8 {
		t.Errorf("layout overrides = %+v", cfg.Layout)
	}
	if cfg.Layout.ScaleRatio != layout.DefaultScaleRatio {
		t.Errorf("unset layout keys should keep defaults, scale ratio = %g", cfg.Layout.ScaleRatio)
	}
}

func TestLoadConfigExplicitZeroLayoutValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[layout]
card_threshold = 0.0
margin_top = 0.0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Layout.CardThreshold != 0 {
		t.Errorf("card_threshold = %g, explicit zero must survive", cfg.Layout.CardThreshold)
	}
	if cfg.Layout.MarginTop != 0 {
		t.Errorf("margin_top = %g, explicit zero must survive", cfg.Layout.MarginTop)
	}
	if cfg.Layout.BaseFontSize != layout.DefaultBaseFontSize {
		t.Errorf("base_font_size = %g, unset keys should keep defaults", cfg.Layout.BaseFontSize)
	}
}

func TestCacheDirOverride(t *testing.T) {
	dir, err := cacheDir(Config{CacheDir: "/tmp/folium-test"})
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/folium-test" {
		t.Errorf("cacheDir = %q", dir)
	}
}
