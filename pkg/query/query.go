// Package query provides pure filtering, searching, and sorting over an
// entry snapshot. Nothing here mutates its input or keeps state.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/memovault/pkg/entry"
)

// Search returns the entries whose title, content, or any tag contains q,
// compared case-insensitively. A blank query returns the input unchanged.
func Search(entries []*entry.Entry, q string) []*entry.Entry {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return entries
	}
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if matches(e, needle) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e *entry.Entry, needle string) bool {
	if strings.Contains(strings.ToLower(e.Title), needle) ||
		strings.Contains(strings.ToLower(e.Content), needle) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

// ByDate returns the entries dated exactly date.
func ByDate(entries []*entry.Entry, date string) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// ByTag returns the entries carrying the tag, compared case-insensitively.
func ByTag(entries []*entry.Entry, tag string) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.HasTag(tag) {
			out = append(out, e)
		}
	}
	return out
}

// ByMoodIDs returns the entries whose mood id is in ids. An empty ids
// list means no mood filter and matches everything.
func ByMoodIDs(entries []*entry.Entry, ids []string) []*entry.Entry {
	if len(ids) == 0 {
		return entries
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Mood != nil && want[e.Mood.ID] {
			out = append(out, e)
		}
	}
	return out
}

// ByDateRange returns the entries whose date falls within [from, to]
// inclusive. An empty bound is unconstrained. ISO dates compare
// correctly as strings.
func ByDateRange(entries []*entry.Entry, from, to string) []*entry.Entry {
	if from == "" && to == "" {
		return entries
	}
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if from != "" && e.Date < from {
			continue
		}
		if to != "" && e.Date > to {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SortKey selects an ordering for Sort.
type SortKey string

const (
	SortNewest        SortKey = "newest"
	SortOldest        SortKey = "oldest"
	SortTitle         SortKey = "title"
	SortMoodBestFirst SortKey = "mood"
)

// ParseSortKey resolves user input to a SortKey, defaulting to newest.
func ParseSortKey(raw string) (SortKey, bool) {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SortNewest:
		return SortNewest, true
	case SortOldest:
		return SortOldest, true
	case SortTitle:
		return SortTitle, true
	case SortMoodBestFirst, "moodbestfirst":
		return SortMoodBestFirst, true
	}
	return SortNewest, false
}

// Sort returns a new slice ordered by the key. Equal-key entries keep
// their input order. Title ordering is locale-aware.
func Sort(entries []*entry.Entry, key SortKey) []*entry.Entry {
	out := append([]*entry.Entry(nil), entries...)
	switch key {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt.Time)
		})
	case SortTitle:
		c := collate.New(language.English, collate.Loose)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortMoodBestFirst:
		sort.SliceStable(out, func(i, j int) bool {
			return moodValue(out[i]) > moodValue(out[j])
		})
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt.Time)
		})
	}
	return out
}

// moodValue ranks entries without a mood last, not neutral.
func moodValue(e *entry.Entry) int {
	if e.Mood == nil {
		return 0
	}
	return e.Mood.Value
}

// Filter bundles the browsing surface's criteria. Every active criterion
// must hold for an entry to pass; zero active criteria pass everything.
type Filter struct {
	Query   string
	Tag     string
	Date    string
	From    string
	To      string
	MoodIDs []string
}

// Apply runs the compound filter over the snapshot, preserving order.
func (f Filter) Apply(entries []*entry.Entry) []*entry.Entry {
	out := Search(entries, f.Query)
	if f.Date != "" {
		out = ByDate(out, f.Date)
	}
	if f.Tag != "" {
		out = ByTag(out, f.Tag)
	}
	out = ByMoodIDs(out, f.MoodIDs)
	out = ByDateRange(out, f.From, f.To)
	return out
}
