// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/github-stats-card/internal/chart"
	"github.com/naka-gawa/github-stats-card/internal/config"
	"github.com/naka-gawa/github-stats-card/internal/domain"
	"github.com/naka-gawa/github-stats-card/internal/gateway"
)

// Aggregator is the use case for building the stats card.
// It orchestrates the fetching, aggregation and rendering of data.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
	colors  domain.ColorTable
	options []chart.Option
}

// AggregatorOption customizes an Aggregator.
type AggregatorOption func(*Aggregator)

// WithColors uses a fixed color table instead of fetching one.
func WithColors(colors domain.ColorTable) AggregatorOption {
	return func(a *Aggregator) { a.colors = colors }
}

// WithChartOptions passes options through to chart.Compose.
func WithChartOptions(opts ...chart.Option) AggregatorOption {
	return func(a *Aggregator) { a.options = append(a.options, opts...) }
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Collect fetches the repositories and the language colors concurrently.
func (a *Aggregator) Collect(ctx context.Context, window domain.Window) (*domain.Snapshot, error) {
	a.logger.Debug("usecase: starting data collection")

	snapshot := &domain.Snapshot{Colors: a.colors}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		snapshot.Records, err = a.fetcher.FetchRepositories(egCtx, window)
		return err
	})

	if snapshot.Colors == nil {
		eg.Go(func() error {
			var err error
			snapshot.Colors, err = a.fetcher.FetchLanguageColors(egCtx)
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	a.logger.Debug("usecase: all data fetched successfully", "repositories", len(snapshot.Records))
	return snapshot, nil
}

// Summarize runs every aggregation over a snapshot.
func Summarize(snapshot *domain.Snapshot, cfg config.Config, window domain.Window) (*domain.Summary, error) {
	languages, err := AggregateLanguages(snapshot.Records, cfg, snapshot.Colors)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate languages: %w", err)
	}
	activity, err := AggregateActivity(snapshot.Records, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate activity: %w", err)
	}
	return &domain.Summary{
		Stars:     TotalStars(snapshot.Records, cfg),
		Window:    window,
		Languages: languages,
		Activity:  activity,
	}, nil
}

// Summary fetches a fresh snapshot and summarizes it.
func (a *Aggregator) Summary(ctx context.Context, cfg config.Config, now time.Time) (*domain.Summary, error) {
	window := domain.RecentWindow(now, cfg.RecentDays)
	snapshot, err := a.Collect(ctx, window)
	if err != nil {
		return nil, err
	}
	summary, err := Summarize(snapshot, cfg, window)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("usecase: aggregation complete",
		"languages", len(summary.Languages.Languages),
		"repositories", len(summary.Activity.Lifetime),
		"stars", summary.Stars)
	return summary, nil
}

// Render fetches, aggregates and composes the chart in one go.
func (a *Aggregator) Render(ctx context.Context, cfg config.Config, now time.Time) (*chart.Document, *domain.Summary, error) {
	summary, err := a.Summary(ctx, cfg, now)
	if err != nil {
		return nil, nil, err
	}
	panels, err := BuildPanels(summary, cfg)
	if err != nil {
		return nil, nil, err
	}
	doc := chart.Compose(chart.Header{Stars: summary.Stars}, panels, now, a.options...)
	a.logger.Info("usecase: chart rendered", "width", doc.Width, "height", doc.Height)
	return doc, summary, nil
}
