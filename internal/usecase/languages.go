package usecase

import (
	"github.com/naka-gawa/github-stats-card/internal/config"
	"github.com/naka-gawa/github-stats-card/internal/domain"
)

// AggregateLanguages folds the language sizes of every qualifying repository
// into one entry per display name.
//
// For each language entry the rules run in a fixed order: ignore check on the
// reported name, canonical mapping, color lookup on the canonical name, then
// the cosmetic rename. Sizes merge under the display name; when several
// canonical names share a display name, the first color seen is kept.
//
// The result is in first-seen order and is not ranked.
func AggregateLanguages(records []domain.RepositoryRecord, cfg config.Config, colors domain.ColorTable) (domain.LanguageSummary, error) {
	if err := domain.ValidateRecords(records); err != nil {
		return domain.LanguageSummary{}, err
	}

	summary := domain.LanguageSummary{Languages: []domain.AggregatedLanguage{}}
	index := make(map[string]int)

	for _, r := range records {
		if cfg.IsRepositoryIgnored(r.Name) {
			continue
		}
		for _, l := range r.Languages {
			if cfg.IsLanguageIgnored(l.Name) {
				continue
			}
			canonical := cfg.Canonical(l.Name)
			color, ok := colors.Lookup(canonical)
			if !ok {
				color = cfg.FallbackColor
			}
			display := cfg.Display(canonical)

			i, ok := index[display]
			if !ok {
				i = len(summary.Languages)
				index[display] = i
				summary.Languages = append(summary.Languages, domain.AggregatedLanguage{Name: display, Color: color})
			}
			summary.Languages[i].Size += l.Size
			summary.TotalSize += l.Size
		}
	}

	if summary.TotalSize > 0 {
		for i := range summary.Languages {
			summary.Languages[i].Share = share(summary.Languages[i].Size, summary.TotalSize)
		}
	}
	return summary, nil
}

func share(value, total int64) float64 {
	return float64(value) / float64(total) * 100
}
