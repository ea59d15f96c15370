package analytics

import (
	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/timeutil"
)

// Summary is the overview block shown by stats and embedded in the
// analytics export.
type Summary struct {
	TotalEntries     int       `json:"totalEntries"`
	TotalWords       int       `json:"totalWords"`
	AvgWordsPerEntry int       `json:"avgWordsPerEntry"`
	AvgMood          float64   `json:"avgMood"`
	MostUsedMood     *MoodStat `json:"mostUsedMood,omitempty"`
	TopTag           *TagCount `json:"topTag,omitempty"`
	CurrentStreak    int       `json:"currentStreak"`
	LongestStreak    int       `json:"longestStreak"`
}

// Summarize computes the overview for a snapshot already scoped to the
// caller's window. Streaks look at the whole snapshot's dates.
func Summarize(entries []*entry.Entry) Summary {
	s := Summary{
		TotalEntries:  len(entries),
		AvgMood:       round1(AverageMood(entries)),
		CurrentStreak: CurrentStreak(entries, timeutil.Today()),
		LongestStreak: LongestStreak(entries),
	}
	for _, e := range entries {
		s.TotalWords += WordCount(e.Content)
	}
	if len(entries) > 0 {
		s.AvgWordsPerEntry = s.TotalWords / len(entries)
	}

	dist := MoodDistribution(entries)
	best := -1
	for i := range dist {
		if best < 0 || dist[i].Count > dist[best].Count {
			best = i
		}
	}
	if best >= 0 {
		m := dist[best]
		s.MostUsedMood = &m
	}

	if tags := TopTags(entries, 1); len(tags) > 0 {
		t := tags[0]
		s.TopTag = &t
	}
	return s
}
