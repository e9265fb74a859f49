// Package chart ranks aggregated values into bar panels and composes them
// into a single SVG document.
package chart

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/naka-gawa/github-stats-card/internal/domain"
)

// Item is a single bar of a panel.
type Item struct {
	Name  string
	Label string
	Value int64
	// Share is the percentage of Value against the panel total, 0 to 100.
	Share float64
	// Color is empty when the bar is filled with the panel gradient.
	Color string
}

// Panel is a ranked, truncated list of bars under a title.
type Panel struct {
	Title string
	Items []Item
	// Gradient panels take their fill from the document palette.
	Gradient bool
}

// Spec tells BuildPanel how to read a value of type T.
type Spec[T any] struct {
	Title  string
	Name   func(T) string
	Metric func(T) int64
	// Label formats the text of a bar. Defaults to CountLabel.
	Label func(name string, share float64, value int64) string
	// Color returns the fill of a bar. A nil Color makes a gradient panel.
	Color func(T) string
}

// BuildPanel ranks items by descending metric, keeps the first maxCount and
// computes every share against total. Items with equal metrics keep their
// input order. A negative maxCount keeps everything.
//
// total must be positive whenever items is not empty.
func BuildPanel[T any](items []T, spec Spec[T], total int64, maxCount int) (Panel, error) {
	panel := Panel{Title: spec.Title, Items: []Item{}, Gradient: spec.Color == nil}
	if len(items) == 0 {
		return panel, nil
	}
	if total <= 0 {
		return Panel{}, fmt.Errorf("panel %q: %w", spec.Title, domain.ErrZeroTotal)
	}

	label := spec.Label
	if label == nil {
		label = CountLabel
	}

	ranked := make([]int, len(items))
	metrics := make([]int64, len(items))
	for i, item := range items {
		ranked[i] = i
		metrics[i] = spec.Metric(item)
	}
	slices.SortStableFunc(ranked, func(a, b int) int {
		return cmp.Compare(metrics[b], metrics[a])
	})
	if maxCount >= 0 && maxCount < len(ranked) {
		ranked = ranked[:maxCount]
	}

	for _, i := range ranked {
		name := spec.Name(items[i])
		s := float64(metrics[i]) / float64(total) * 100
		item := Item{
			Name:  name,
			Label: label(name, s, metrics[i]),
			Value: metrics[i],
			Share: s,
		}
		if spec.Color != nil {
			item.Color = spec.Color(items[i])
		}
		panel.Items = append(panel.Items, item)
	}
	return panel, nil
}

// SizeLabel formats a byte size entry, e.g. "Go: 42.5% (12KB)".
func SizeLabel(name string, share float64, size int64) string {
	return fmt.Sprintf("%s: %.1f%% (%dKB)", name, share, size/1000)
}

// CountLabel formats a plain count entry, e.g. "repo: 12.0% (30)".
func CountLabel(name string, share float64, count int64) string {
	return fmt.Sprintf("%s: %.1f%% (%d)", name, share, count)
}
