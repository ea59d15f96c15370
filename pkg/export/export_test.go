package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/mood"
	"tableflip.dev/memovault/pkg/user"
)

func TestAnalyticsDocument(t *testing.T) {
	happy, _ := mood.ByID("happy")
	entries := []*entry.Entry{
		{ID: "1", Date: "2024-01-01", Content: "two words", Mood: &happy, Tags: []string{"walk"}},
	}

	doc := Analytics(entries, "30d")
	if doc.Entries != 1 || doc.TimeRange != "30d" {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.Summary.TotalEntries != 1 || doc.Summary.TotalWords != 2 {
		t.Fatalf("unexpected summary: %+v", doc.Summary)
	}
	if doc.GeneratedAt.IsZero() {
		t.Fatalf("generatedAt not set")
	}
}

func TestFullDocument(t *testing.T) {
	u := &user.Profile{ID: "u1", Username: "journaler"}
	entries := []*entry.Entry{{ID: "1", Title: "x"}}

	doc := Full(u, entries)
	if doc.Version != FormatVersion {
		t.Fatalf("unexpected version %q", doc.Version)
	}
	if doc.User.Username != "journaler" || len(doc.Entries) != 1 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.ExportedAt.IsZero() {
		t.Fatalf("exportedAt not set")
	}
}

func TestWriteFileShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	doc := Analytics(nil, "7d")
	if err := WriteFile(path, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"summary", "entries", "timeRange", "generatedAt"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing key %q in %s", key, data)
		}
	}
}
