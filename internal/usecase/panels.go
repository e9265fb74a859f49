package usecase

import (
	"fmt"

	"github.com/naka-gawa/github-stats-card/internal/chart"
	"github.com/naka-gawa/github-stats-card/internal/config"
	"github.com/naka-gawa/github-stats-card/internal/domain"
)

var languageSpec = chart.Spec[domain.AggregatedLanguage]{
	Title:  "Top Languages",
	Name:   func(l domain.AggregatedLanguage) string { return l.Name },
	Metric: func(l domain.AggregatedLanguage) int64 { return l.Size },
	Label:  chart.SizeLabel,
	Color:  func(l domain.AggregatedLanguage) string { return l.Color },
}

var commitsSpec = chart.Spec[domain.AggregatedActivity]{
	Title:  "Top Commits",
	Name:   func(a domain.AggregatedActivity) string { return a.Name },
	Metric: func(a domain.AggregatedActivity) int64 { return a.TotalCommits },
}

func recentSpec(days int) chart.Spec[domain.AggregatedActivity] {
	return chart.Spec[domain.AggregatedActivity]{
		Title:  fmt.Sprintf("Top Recent Commits (%dd)", days),
		Name:   func(a domain.AggregatedActivity) string { return a.Name },
		Metric: func(a domain.AggregatedActivity) int64 { return a.RecentCommits },
	}
}

// BuildPanels turns a summary into the languages, lifetime commits and
// recent commits panels. A panel with a zero total is left empty.
func BuildPanels(summary *domain.Summary, cfg config.Config) ([]chart.Panel, error) {
	langs, err := buildPanel(summary.Languages.Languages, languageSpec, summary.Languages.TotalSize, cfg.LanguagesCount)
	if err != nil {
		return nil, err
	}
	commits, err := buildPanel(summary.Activity.Lifetime, commitsSpec, summary.Activity.LifetimeTotal, cfg.LanguagesCount)
	if err != nil {
		return nil, err
	}
	recent, err := buildPanel(summary.Activity.Recent, recentSpec(cfg.RecentDays), summary.Activity.RecentTotal, cfg.LanguagesCount)
	if err != nil {
		return nil, err
	}
	return []chart.Panel{langs, commits, recent}, nil
}

func buildPanel[T any](items []T, spec chart.Spec[T], total int64, maxCount int) (chart.Panel, error) {
	if total == 0 {
		items = nil
	}
	return chart.BuildPanel(items, spec, total, maxCount)
}
