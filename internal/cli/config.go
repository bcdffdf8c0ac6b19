package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lbreuer/folium/pkg/layout"
)

// Config holds the user-level defaults read from the TOML config file.
// Command-line flags override everything here.
type Config struct {
	// CacheDir overrides the artifact cache location.
	CacheDir string `toml:"cache_dir"`

	// RedisAddr switches the cache to Redis (host:port). Empty means the
	// file cache.
	RedisAddr string `toml:"redis_addr"`

	// Theme is the default theme override applied to rendered documents.
	Theme string `toml:"theme"`

	// DesignStyle and ColorScheme are the default decoration selectors.
	DesignStyle string `toml:"design_style"`
	ColorScheme string `toml:"color_scheme"`

	// Layout overrides individual layout parameters.
	Layout layout.Config `toml:"layout"`

	// Listen is the default address for the serve command.
	Listen string `toml:"listen"`
}

// configPath returns the user config file location.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "folium", "config.toml"), nil
}

// loadConfig reads the config file if it exists; a missing file yields the
// default config, not an error. Layout starts from the full defaults so a
// partial [layout] table overrides only the keys it names, and an explicit
// zero in the file is honored.
func loadConfig(path string) (Config, error) {
	cfg := Config{Layout: layout.DefaultConfig()}
	if path == "" {
		var err error
		path, err = configPath()
		if err != nil {
			return cfg, nil
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// cacheDir returns the artifact cache directory, honoring the config
// override.
func cacheDir(cfg Config) (string, error) {
	if cfg.CacheDir != "" {
		return cfg.CacheDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "folium"), nil
}
