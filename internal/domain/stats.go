// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"fmt"
	"time"
)

// LanguageSize is a single language entry reported for a repository.
type LanguageSize struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// RepositoryRecord holds the normalized data of a single repository.
// It is the input entity of every aggregation and is never mutated by it.
type RepositoryRecord struct {
	Name          string         `json:"name"`
	IsPrivate     bool           `json:"is_private"`
	IsFork        bool           `json:"is_fork"`
	IsArchived    bool           `json:"is_archived"`
	IsTemplate    bool           `json:"is_template"`
	Stars         int64          `json:"stars"`
	TotalCommits  int64          `json:"total_commits"`
	RecentCommits int64          `json:"recent_commits"`
	Languages     []LanguageSize `json:"languages"`
}

// Validate reports whether the record is well formed.
func (r RepositoryRecord) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: repository without a name", ErrMalformedRecord)
	}
	if r.Stars < 0 || r.TotalCommits < 0 || r.RecentCommits < 0 {
		return fmt.Errorf("%w: repository %q has a negative count", ErrMalformedRecord, r.Name)
	}
	seen := make(map[string]struct{}, len(r.Languages))
	for _, l := range r.Languages {
		if l.Name == "" {
			return fmt.Errorf("%w: repository %q lists a language without a name", ErrMalformedRecord, r.Name)
		}
		if l.Size < 0 {
			return fmt.Errorf("%w: repository %q reports a negative size for %s", ErrMalformedRecord, r.Name, l.Name)
		}
		if _, dup := seen[l.Name]; dup {
			return fmt.Errorf("%w: repository %q lists %s twice", ErrMalformedRecord, r.Name, l.Name)
		}
		seen[l.Name] = struct{}{}
	}
	return nil
}

// ValidateRecords checks every record and rejects duplicate repository names.
func ValidateRecords(records []RepositoryRecord) error {
	names := make(map[string]struct{}, len(records))
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
		if _, dup := names[r.Name]; dup {
			return fmt.Errorf("%w: repository %q appears twice", ErrMalformedRecord, r.Name)
		}
		names[r.Name] = struct{}{}
	}
	return nil
}

// Window is the time range of the "recent" commit count.
type Window struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
}

// RecentWindow returns the window of the given number of days ending at now.
func RecentWindow(now time.Time, days int) Window {
	return Window{Since: now.AddDate(0, 0, -days), Until: now}
}

// ColorTable maps a canonical language name to its display color.
type ColorTable map[string]string

// Lookup returns the color of a language, if known.
func (t ColorTable) Lookup(name string) (string, bool) {
	c, ok := t[name]
	return c, ok && c != ""
}

// Snapshot is everything fetched for one run.
type Snapshot struct {
	Records []RepositoryRecord
	Colors  ColorTable
}
