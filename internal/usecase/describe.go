package usecase

import (
	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/github-stats-card/internal/domain"
)

// Describe summarizes how values are spread. An empty input yields zeros.
func Describe(values []int64) domain.Distribution {
	if len(values) == 0 {
		return domain.Distribution{}
	}
	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		data = append(data, float64(v))
	}
	mean, _ := data.Mean()
	median, _ := data.Median()
	p90, err := data.Percentile(90)
	if err != nil {
		p90, _ = data.Max()
	}
	return domain.Distribution{Mean: mean, Median: median, P90: p90}
}

// LifetimeCommits lists the lifetime commit count of every repository in a summary.
func LifetimeCommits(activity domain.ActivitySummary) []int64 {
	values := make([]int64, 0, len(activity.Lifetime))
	for _, a := range activity.Lifetime {
		values = append(values, a.TotalCommits)
	}
	return values
}
