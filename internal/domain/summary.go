package domain

// AggregatedLanguage is one display-name entry of the language summary.
type AggregatedLanguage struct {
	Name  string  `json:"name"`
	Size  int64   `json:"size"`
	Color string  `json:"color"`
	Share float64 `json:"share"`
}

// LanguageSummary is the result of language aggregation.
// Languages are ordered by the first time their display name was seen.
// Shares are only meaningful when TotalSize is greater than zero.
type LanguageSummary struct {
	TotalSize int64                `json:"total_size"`
	Languages []AggregatedLanguage `json:"languages"`
}

// AggregatedActivity holds the commit counts of a single repository.
type AggregatedActivity struct {
	Name          string  `json:"name"`
	TotalCommits  int64   `json:"total_commits"`
	RecentCommits int64   `json:"recent_commits"`
	TotalShare    float64 `json:"total_share"`
	RecentShare   float64 `json:"recent_share"`
}

// ActivitySummary is the result of activity aggregation.
// Lifetime and Recent hold the same repositories in input order; they are
// kept apart because each one is ranked against its own total.
type ActivitySummary struct {
	Lifetime      []AggregatedActivity `json:"lifetime"`
	Recent        []AggregatedActivity `json:"recent"`
	LifetimeTotal int64                `json:"lifetime_total"`
	RecentTotal   int64                `json:"recent_total"`
}

// Distribution describes how commit counts are spread across repositories.
type Distribution struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
}

// Summary is everything derived from one snapshot.
type Summary struct {
	Stars     int64           `json:"stars"`
	Window    Window          `json:"window"`
	Languages LanguageSummary `json:"languages"`
	Activity  ActivitySummary `json:"activity"`
}
