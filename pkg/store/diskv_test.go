package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/user"
)

func newTestStore(t *testing.T) (Persistence, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := Load(StaticConfig(dir))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p, dir
}

func TestReadEntriesMissingKey(t *testing.T) {
	p, _ := newTestStore(t)

	entries, err := p.ReadEntries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty collection, got %d", len(entries))
	}
}

func TestEntriesRoundTrip(t *testing.T) {
	p, _ := newTestStore(t)

	in := []*entry.Entry{
		{ID: "b", Title: "Second", Content: "two words", Date: "2024-01-02", Tags: []string{"work"}},
		{ID: "a", Title: "First", Content: "more than two words", Date: "2024-01-01", Tags: []string{"gratitude"}},
	}
	if err := p.WriteEntries(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := p.ReadEntries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d entries, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i].ID != in[i].ID || out[i].Title != in[i].Title || out[i].Date != in[i].Date {
			t.Fatalf("entry %d changed across the round trip: %+v", i, out[i])
		}
		if len(out[i].Tags) != 1 || out[i].Tags[0] != in[i].Tags[0] {
			t.Fatalf("tags changed across the round trip: %v", out[i].Tags)
		}
	}
}

func TestCorruptEntriesPayload(t *testing.T) {
	p, dir := newTestStore(t)

	if err := os.WriteFile(filepath.Join(dir, "entries"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.ReadEntries(); !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestUserRoundTrip(t *testing.T) {
	p, _ := newTestStore(t)

	if u, err := p.ReadUser(); err != nil || u != nil {
		t.Fatalf("expected no stored profile, got %v (%v)", u, err)
	}

	in := &user.Profile{ID: "u1", Username: "journaler", Preferences: user.DefaultPreferences()}
	if err := p.WriteUser(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := p.ReadUser()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Username != "journaler" || out.Preferences.FontSize != "medium" {
		t.Fatalf("profile changed across the round trip: %+v", out)
	}
}

func TestEraseAll(t *testing.T) {
	p, _ := newTestStore(t)

	_ = p.WriteEntries([]*entry.Entry{{ID: "a", Title: "x"}})
	_ = p.WriteUser(&user.Profile{ID: "u1"})

	if err := p.EraseAll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, err := p.ReadEntries()
	if err != nil || len(entries) != 0 {
		t.Fatalf("expected entries erased, got %d (%v)", len(entries), err)
	}
	if u, err := p.ReadUser(); err != nil || u != nil {
		t.Fatalf("expected profile erased, got %v (%v)", u, err)
	}
}
