package gateway

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/naka-gawa/github-stats-card/internal/domain"
)

const (
	linguistOwner = "github"
	linguistRepo  = "linguist"
	linguistPath  = "lib/linguist/languages.yml"
)

// FetchLanguageColors downloads the linguist language table through the
// contents API and returns its colors.
func (g *GitHubGateway) FetchLanguageColors(ctx context.Context) (domain.ColorTable, error) {
	g.logger.Debug("fetching language colors using REST API", "path", linguistPath)
	file, _, _, err := g.restClient.Repositories.GetContents(ctx, linguistOwner, linguistRepo, linguistPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s with REST API: %w", linguistPath, err)
	}
	if file == nil {
		return nil, fmt.Errorf("failed to fetch %s with REST API: not a file", linguistPath)
	}
	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", linguistPath, err)
	}
	colors, err := ParseLinguist([]byte(content))
	if err != nil {
		return nil, err
	}
	g.logger.Info("fetched language colors", "count", len(colors))
	return colors, nil
}

// LoadLanguageColors reads a local copy of the linguist language table.
func LoadLanguageColors(path string) (domain.ColorTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read language colors: %w", err)
	}
	return ParseLinguist(data)
}

// ParseLinguist extracts the color of every language in a linguist
// languages.yml document. Languages without a color are left out.
func ParseLinguist(data []byte) (domain.ColorTable, error) {
	var languages map[string]struct {
		Color string `yaml:"color"`
	}
	if err := yaml.Unmarshal(data, &languages); err != nil {
		return nil, fmt.Errorf("failed to parse language colors: %w", err)
	}
	colors := make(domain.ColorTable, len(languages))
	for name, lang := range languages {
		if lang.Color != "" {
			colors[name] = lang.Color
		}
	}
	return colors, nil
}
