package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-stats-card/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		missing     bool
		expected    Config
		expectError bool
	}{
		{
			name:     "missing file falls back to defaults",
			missing:  true,
			expected: Default(),
		},
		{
			name: "full rules file",
			content: `
languages_count = 5
ignore_repositories = ["dotfiles"]
ignore_languages = ["Makefile", "Nix"]
fallback_color = "#ccc"
recent_days = 30

[language_mapping]
"TypeScript React" = "TypeScript"

[rename_language]
TypeScript = "TS"
`,
			expected: Config{
				LanguagesCount:     5,
				IgnoreRepositories: []string{"dotfiles"},
				IgnoreLanguages:    []string{"Makefile", "Nix"},
				LanguageMapping:    map[string]string{"TypeScript React": "TypeScript"},
				RenameLanguage:     map[string]string{"TypeScript": "TS"},
				FallbackColor:      "#ccc",
				RecentDays:         30,
			},
		},
		{
			name:    "partial file keeps defaults for the rest",
			content: `ignore_languages = ["HTML"]`,
			expected: Config{
				LanguagesCount:  10,
				IgnoreLanguages: []string{"HTML"},
				FallbackColor:   "red",
				RecentDays:      7,
			},
		},
		{
			name:        "broken toml",
			content:     `languages_count = [`,
			expectError: true,
		},
		{
			name:        "negative languages count",
			content:     `languages_count = -1`,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.toml")
			if !tc.missing {
				path = writeFile(t, "config.toml", tc.content)
			}

			cfg, err := Load(path)

			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	cfg.RecentDays = 0
	assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig)

	cfg = Default()
	cfg.FallbackColor = ""
	assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig)

	assert.NoError(t, Default().Validate())
}

func TestConfig_NameRules(t *testing.T) {
	cfg := Config{
		IgnoreRepositories: []string{"secret"},
		IgnoreLanguages:    []string{"Makefile"},
		LanguageMapping:    map[string]string{"SCSS": "CSS"},
		RenameLanguage:     map[string]string{"CSS": "CSS/SCSS"},
	}

	assert.True(t, cfg.IsRepositoryIgnored("secret"))
	assert.False(t, cfg.IsRepositoryIgnored("public"))
	assert.True(t, cfg.IsLanguageIgnored("Makefile"))
	assert.Equal(t, "CSS", cfg.Canonical("SCSS"))
	assert.Equal(t, "Go", cfg.Canonical("Go"))
	assert.Equal(t, "CSS/SCSS", cfg.Display("CSS"))
	assert.Equal(t, "Go", cfg.Display("Go"))
}

func TestLoadEnv(t *testing.T) {
	t.Run("token from .env file", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("PORT", "")
		os.Unsetenv("GITHUB_TOKEN")
		os.Unsetenv("PORT")
		path := writeFile(t, ".env", "GITHUB_TOKEN=from-file\nPORT=9000\n")

		env, err := LoadEnv(path)

		require.NoError(t, err)
		assert.Equal(t, Env{Token: "from-file", Port: "9000"}, env)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("PORT", "")

		env, err := LoadEnv(filepath.Join(t.TempDir(), "none.env"))

		assert.ErrorIs(t, err, ErrMissingToken)
		assert.Equal(t, "8080", env.Port)
	})

	t.Run("malformed .env file", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "from-env")
		path := writeFile(t, ".env", "GITHUB_TOKEN=\"unterminated\n")

		_, err := LoadEnv(path)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMissingToken)
		assert.Contains(t, err.Error(), "failed to load .env")
	})
}
