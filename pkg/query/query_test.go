package query

import (
	"testing"
	"time"

	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/mood"
)

func mk(id, title, content, date string, moodID string, tags ...string) *entry.Entry {
	e := &entry.Entry{ID: id, Title: title, Content: content, Date: date, Tags: tags}
	if moodID != "" {
		m, ok := mood.ByID(moodID)
		if !ok {
			panic("unknown test mood " + moodID)
		}
		e.Mood = &m
	}
	return e
}

func ids(entries []*entry.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func sample() []*entry.Entry {
	return []*entry.Entry{
		mk("1", "Gratitude list", "coffee with an old friend", "2024-01-01", "amazing", "gratitude"),
		mk("2", "Rough day", "deadline pressure at work", "2024-01-02", "tired", "work"),
		mk("3", "Untitled Entry", "quiet evening, short walk", "2024-01-03", "", "walk", "evening"),
		mk("4", "Beach trip", "sand and WAVES everywhere", "2024-01-05", "happy", "travel"),
	}
}

func TestSearchBlankReturnsInputUnchanged(t *testing.T) {
	in := sample()
	for _, q := range []string{"", "   ", "\t"} {
		got := Search(in, q)
		if len(got) != len(in) {
			t.Fatalf("blank query %q dropped entries", q)
		}
		for i := range in {
			if got[i] != in[i] {
				t.Fatalf("blank query %q reordered entries", q)
			}
		}
	}
}

func TestSearchMatchesTitleContentAndTags(t *testing.T) {
	in := sample()

	if got := ids(Search(in, "waves")); len(got) != 1 || got[0] != "4" {
		t.Fatalf("content search failed: %v", got)
	}
	if got := ids(Search(in, "GRATITUDE")); len(got) != 1 || got[0] != "1" {
		t.Fatalf("case-insensitive search failed: %v", got)
	}
	if got := ids(Search(in, "even")); len(got) != 1 || got[0] != "3" {
		t.Fatalf("tag substring search failed: %v", got)
	}
	if got := Search(in, "nothing matches this"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}
}

func TestByDate(t *testing.T) {
	got := ids(ByDate(sample(), "2024-01-02"))
	if len(got) != 1 || got[0] != "2" {
		t.Fatalf("expected entry 2, got %v", got)
	}
}

func TestByTagCaseInsensitive(t *testing.T) {
	got := ids(ByTag(sample(), "WORK"))
	if len(got) != 1 || got[0] != "2" {
		t.Fatalf("expected entry 2, got %v", got)
	}
}

func TestByMoodIDsEmptyMeansAll(t *testing.T) {
	in := sample()
	if got := ByMoodIDs(in, nil); len(got) != len(in) {
		t.Fatalf("empty filter dropped entries")
	}
	got := ids(ByMoodIDs(in, []string{"happy", "amazing"}))
	if len(got) != 2 || got[0] != "1" || got[1] != "4" {
		t.Fatalf("expected entries 1 and 4, got %v", got)
	}
}

func TestByDateRangeInclusive(t *testing.T) {
	in := sample()

	got := ids(ByDateRange(in, "2024-01-02", "2024-01-05"))
	if len(got) != 3 || got[0] != "2" || got[2] != "4" {
		t.Fatalf("inclusive bounds wrong: %v", got)
	}
	if got := ByDateRange(in, "", ""); len(got) != len(in) {
		t.Fatalf("open range dropped entries")
	}
	if got := ids(ByDateRange(in, "2024-01-03", "")); len(got) != 2 {
		t.Fatalf("open upper bound wrong: %v", got)
	}
	if got := ids(ByDateRange(in, "", "2024-01-01")); len(got) != 1 {
		t.Fatalf("open lower bound wrong: %v", got)
	}
}

func TestSortNewestOldest(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	a := mk("a", "A", "x", "2024-01-01", "")
	b := mk("b", "B", "x", "2024-01-01", "")
	c := mk("c", "C", "x", "2024-01-01", "")
	a.CreatedAt = entry.Timestamp{Time: base}
	b.CreatedAt = entry.Timestamp{Time: base.Add(time.Hour)}
	c.CreatedAt = entry.Timestamp{Time: base.Add(2 * time.Hour)}

	in := []*entry.Entry{a, b, c}
	if got := ids(Sort(in, SortNewest)); got[0] != "c" || got[2] != "a" {
		t.Fatalf("newest sort wrong: %v", got)
	}
	if got := ids(Sort(in, SortOldest)); got[0] != "a" || got[2] != "c" {
		t.Fatalf("oldest sort wrong: %v", got)
	}
	// input untouched
	if in[0] != a {
		t.Fatalf("sort mutated its input")
	}
}

func TestSortTitleLocaleAware(t *testing.T) {
	in := []*entry.Entry{
		mk("1", "zebra", "x", "2024-01-01", ""),
		mk("2", "Apple", "x", "2024-01-01", ""),
		mk("3", "école", "x", "2024-01-01", ""),
	}
	got := ids(Sort(in, SortTitle))
	if got[0] != "2" || got[1] != "3" || got[2] != "1" {
		t.Fatalf("title sort wrong: %v", got)
	}
}

func TestSortMoodBestFirstMissingMoodLast(t *testing.T) {
	in := []*entry.Entry{
		mk("none", "No mood", "x", "2024-01-01", ""),
		mk("best", "Great", "x", "2024-01-01", "amazing"),
		mk("low", "Down", "x", "2024-01-02", "sad"),
	}
	got := ids(Sort(in, SortMoodBestFirst))
	if got[0] != "best" || got[2] != "none" {
		t.Fatalf("mood sort wrong: %v", got)
	}
}

func TestSortStableOnTies(t *testing.T) {
	in := []*entry.Entry{
		mk("first", "Tie", "x", "2024-01-01", "happy"),
		mk("second", "Tie", "x", "2024-01-02", "grateful"), // same value 4
	}
	got := ids(Sort(in, SortMoodBestFirst))
	if got[0] != "first" || got[1] != "second" {
		t.Fatalf("equal keys reordered: %v", got)
	}
}

// The compound filter is the AND of its parts: applying two predicates
// together equals applying them in sequence.
func TestFilterComposition(t *testing.T) {
	in := sample()

	combined := Filter{Query: "work", From: "2024-01-02", To: "2024-01-05"}.Apply(in)
	sequential := ByDateRange(Search(in, "work"), "2024-01-02", "2024-01-05")

	if len(combined) != len(sequential) {
		t.Fatalf("AND law broken: %v vs %v", ids(combined), ids(sequential))
	}
	for i := range combined {
		if combined[i].ID != sequential[i].ID {
			t.Fatalf("AND law broken: %v vs %v", ids(combined), ids(sequential))
		}
	}
}

func TestFilterZeroCriteriaReturnsEverything(t *testing.T) {
	in := sample()
	got := Filter{}.Apply(in)
	if len(got) != len(in) {
		t.Fatalf("zero filters dropped entries: %v", ids(got))
	}
}

func TestParseSortKey(t *testing.T) {
	if k, ok := ParseSortKey(""); !ok || k != SortNewest {
		t.Fatalf("empty input should default to newest")
	}
	if k, ok := ParseSortKey("moodBestFirst"); !ok || k != SortMoodBestFirst {
		t.Fatalf("moodBestFirst alias failed: %v %v", k, ok)
	}
	if _, ok := ParseSortKey("sideways"); ok {
		t.Fatalf("unknown key accepted")
	}
}
