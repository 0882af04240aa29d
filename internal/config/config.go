package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"

	"github.com/llehouerou/aotw/internal/query"
)

const (
	appName           = "aotw"
	defaultDataSource = "data.json"
)

type Config struct {
	DataSource string `koanf:"data_source"` // path or http(s) URL of data.json
	Locale     string `koanf:"locale"`      // BCP 47 tag used to collate artist/album names
	Debug      bool   `koanf:"debug"`       // write the debug log under the XDG state dir

	// Initial query parameters for the picks view
	Defaults DefaultsConfig `koanf:"defaults"`
}

// DefaultsConfig holds the query applied on startup.
type DefaultsConfig struct {
	SortBy  string `koanf:"sort_by"`  // "pick_number", "artist", "album", "year"
	SortDir string `koanf:"sort_dir"` // "asc" or "desc"
	GroupBy string `koanf:"group_by"` // "none" or "pick_year"
}

// envOverrides are read from the environment after the config files.
type envOverrides struct {
	DataSource string `env:"AOTW_DATA_SOURCE"`
	Locale     string `env:"AOTW_LOCALE"`
	Debug      bool   `env:"AOTW_DEBUG"`
}

func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		DataSource: defaultDataSource,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if overrides.DataSource != "" {
		cfg.DataSource = overrides.DataSource
	}
	if overrides.Locale != "" {
		cfg.Locale = overrides.Locale
	}
	if overrides.Debug {
		cfg.Debug = true
	}

	cfg.DataSource = strings.TrimSpace(cfg.DataSource)
	if cfg.DataSource == "" {
		cfg.DataSource = defaultDataSource
	}
	if !isURL(cfg.DataSource) {
		cfg.DataSource = expandPath(cfg.DataSource)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/aotw/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Language returns the configured collation locale, or language.Und (root
// collation) when unset or invalid.
func (c *Config) Language() language.Tag {
	if c.Locale == "" {
		return language.Und
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// DefaultQuery returns the startup query built from the defaults section.
// Unknown values fall back to pick order, ascending, ungrouped.
func (c *Config) DefaultQuery() query.Query {
	return query.Query{
		SortKey:   query.ParseSortKey(c.Defaults.SortBy),
		Direction: query.ParseDirection(c.Defaults.SortDir),
		GroupBy:   query.ParseGroupBy(c.Defaults.GroupBy),
		Locale:    c.Language(),
	}
}

// LogPath returns the debug log location under the XDG state directory.
func LogPath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
