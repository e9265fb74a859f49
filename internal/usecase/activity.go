package usecase

import (
	"github.com/naka-gawa/github-stats-card/internal/config"
	"github.com/naka-gawa/github-stats-card/internal/domain"
)

// AggregateActivity collects the commit counts of every public, non-ignored
// repository. Repositories with no recent commits stay in the result.
func AggregateActivity(records []domain.RepositoryRecord, cfg config.Config) (domain.ActivitySummary, error) {
	if err := domain.ValidateRecords(records); err != nil {
		return domain.ActivitySummary{}, err
	}

	var summary domain.ActivitySummary
	entries := make([]domain.AggregatedActivity, 0, len(records))
	for _, r := range records {
		if r.IsPrivate || cfg.IsRepositoryIgnored(r.Name) {
			continue
		}
		entries = append(entries, domain.AggregatedActivity{
			Name:          r.Name,
			TotalCommits:  r.TotalCommits,
			RecentCommits: r.RecentCommits,
		})
		summary.LifetimeTotal += r.TotalCommits
		summary.RecentTotal += r.RecentCommits
	}

	for i := range entries {
		if summary.LifetimeTotal > 0 {
			entries[i].TotalShare = share(entries[i].TotalCommits, summary.LifetimeTotal)
		}
		if summary.RecentTotal > 0 {
			entries[i].RecentShare = share(entries[i].RecentCommits, summary.RecentTotal)
		}
	}

	summary.Lifetime = entries
	summary.Recent = append([]domain.AggregatedActivity(nil), entries...)
	if summary.Recent == nil {
		summary.Recent = []domain.AggregatedActivity{}
	}
	return summary, nil
}

// TotalStars sums the stars of every non-ignored repository.
func TotalStars(records []domain.RepositoryRecord, cfg config.Config) int64 {
	var stars int64
	for _, r := range records {
		if cfg.IsRepositoryIgnored(r.Name) {
			continue
		}
		stars += r.Stars
	}
	return stars
}
