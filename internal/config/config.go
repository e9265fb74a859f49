// Package config loads the chart rules file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/naka-gawa/github-stats-card/internal/domain"
)

// DefaultPath is where the rules file is looked up when no path is given.
const DefaultPath = "config.toml"

// Config is the immutable set of rules consumed by the aggregators.
type Config struct {
	LanguagesCount     int               `toml:"languages_count"`
	IgnoreRepositories []string          `toml:"ignore_repositories"`
	IgnoreLanguages    []string          `toml:"ignore_languages"`
	LanguageMapping    map[string]string `toml:"language_mapping"`
	RenameLanguage     map[string]string `toml:"rename_language"`
	FallbackColor      string            `toml:"fallback_color"`
	RecentDays         int               `toml:"recent_days"`
}

// Default returns the rules used when no file exists.
func Default() Config {
	return Config{
		LanguagesCount: 10,
		FallbackColor:  "red",
		RecentDays:     7,
	}
}

// Load reads the TOML rules file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.LanguagesCount < 0:
		return fmt.Errorf("%w: languages_count must not be negative", domain.ErrInvalidConfig)
	case c.RecentDays <= 0:
		return fmt.Errorf("%w: recent_days must be positive", domain.ErrInvalidConfig)
	case c.FallbackColor == "":
		return fmt.Errorf("%w: fallback_color must not be empty", domain.ErrInvalidConfig)
	}
	return nil
}

// IsRepositoryIgnored reports whether a repository is excluded from all aggregation.
func (c Config) IsRepositoryIgnored(name string) bool {
	return slices.Contains(c.IgnoreRepositories, name)
}

// IsLanguageIgnored reports whether a language, by its reported name, is excluded.
func (c Config) IsLanguageIgnored(name string) bool {
	return slices.Contains(c.IgnoreLanguages, name)
}

// Canonical maps a reported language name to its canonical name.
func (c Config) Canonical(name string) string {
	if mapped, ok := c.LanguageMapping[name]; ok {
		return mapped
	}
	return name
}

// Display applies the cosmetic rename to a canonical name.
func (c Config) Display(canonical string) string {
	if renamed, ok := c.RenameLanguage[canonical]; ok {
		return renamed
	}
	return canonical
}
