package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-stats-card/internal/config"
	"github.com/naka-gawa/github-stats-card/internal/domain"
)

func TestAggregateActivity(t *testing.T) {
	records := []domain.RepositoryRecord{
		{Name: "alpha", TotalCommits: 30, RecentCommits: 3, Stars: 5},
		{Name: "hidden", IsPrivate: true, TotalCommits: 100, RecentCommits: 50, Stars: 1},
		{Name: "quiet", TotalCommits: 10, RecentCommits: 0, Stars: 2},
		{Name: "dotfiles", TotalCommits: 500, RecentCommits: 9, Stars: 40},
	}
	cfg := config.Default()
	cfg.IgnoreRepositories = []string{"dotfiles"}

	summary, err := AggregateActivity(records, cfg)
	require.NoError(t, err)

	assert.Equal(t, int64(40), summary.LifetimeTotal)
	assert.Equal(t, int64(3), summary.RecentTotal)

	names := func(list []domain.AggregatedActivity) []string {
		out := make([]string, 0, len(list))
		for _, a := range list {
			out = append(out, a.Name)
		}
		return out
	}
	assert.Equal(t, []string{"alpha", "quiet"}, names(summary.Lifetime))
	assert.Equal(t, []string{"alpha", "quiet"}, names(summary.Recent), "zero recent activity keeps the repository")

	assert.InDelta(t, 75.0, summary.Lifetime[0].TotalShare, 1e-9)
	assert.InDelta(t, 25.0, summary.Lifetime[1].TotalShare, 1e-9)
	assert.InDelta(t, 100.0, summary.Recent[0].RecentShare, 1e-9)
	assert.InDelta(t, 0.0, summary.Recent[1].RecentShare, 1e-9)

	assert.Equal(t, int64(5+1+2), TotalStars(records, cfg), "private repositories still earn stars")
}

func TestAggregateActivity_Empty(t *testing.T) {
	summary, err := AggregateActivity(nil, config.Default())

	require.NoError(t, err)
	assert.Empty(t, summary.Lifetime)
	assert.NotNil(t, summary.Recent)
	assert.Zero(t, summary.LifetimeTotal)
	assert.Zero(t, summary.RecentTotal)
}

func TestAggregateActivity_Idempotent(t *testing.T) {
	records := []domain.RepositoryRecord{
		{Name: "a", TotalCommits: 7, RecentCommits: 1},
		{Name: "b", TotalCommits: 3, RecentCommits: 2},
	}

	first, err := AggregateActivity(records, config.Default())
	require.NoError(t, err)
	second, err := AggregateActivity(records, config.Default())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregateActivity_RejectsNegativeCounts(t *testing.T) {
	_, err := AggregateActivity([]domain.RepositoryRecord{{Name: "a", TotalCommits: -1}}, config.Default())
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}
