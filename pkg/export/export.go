// Package export builds the JSON documents the app writes out: an
// analytics snapshot and a full-data backup. These are write-only
// artifacts; nothing reads them back in.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"tableflip.dev/memovault/pkg/analytics"
	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/user"
)

// FormatVersion marks the layout of the full-data document.
const FormatVersion = "1.0"

// AnalyticsDocument is the analytics export payload.
type AnalyticsDocument struct {
	Summary     analytics.Summary `json:"summary"`
	Entries     int               `json:"entries"`
	TimeRange   string            `json:"timeRange"`
	GeneratedAt entry.Timestamp   `json:"generatedAt"`
}

// FullDocument is the full-data export payload.
type FullDocument struct {
	User       *user.Profile   `json:"user"`
	Entries    []*entry.Entry  `json:"entries"`
	ExportedAt entry.Timestamp `json:"exportedAt"`
	Version    string          `json:"version"`
}

// Analytics builds the analytics document for an already-scoped snapshot.
func Analytics(entries []*entry.Entry, timeRange string) AnalyticsDocument {
	return AnalyticsDocument{
		Summary:     analytics.Summarize(entries),
		Entries:     len(entries),
		TimeRange:   timeRange,
		GeneratedAt: entry.Now(),
	}
}

// Full builds the full-data document.
func Full(u *user.Profile, entries []*entry.Entry) FullDocument {
	return FullDocument{
		User:       u,
		Entries:    entries,
		ExportedAt: entry.Now(),
		Version:    FormatVersion,
	}
}

// WriteFile marshals the document with indentation and writes it to path.
func WriteFile(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
