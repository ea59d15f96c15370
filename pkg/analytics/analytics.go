// Package analytics aggregates an entry snapshot into the derived views
// the dashboards and exports show: mood distribution, tag ranking,
// activity buckets, trends, and streaks. Every function is deterministic,
// side-effect free, and happy with an empty snapshot.
package analytics

import (
	"math"
	"sort"
	"strings"

	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/mood"
	"tableflip.dev/memovault/pkg/timeutil"
)

// MoodStat is one group of the mood distribution.
type MoodStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// TagCount is one row of the tag frequency ranking.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// ActivityBucket is one calendar day of writing activity.
type ActivityBucket struct {
	Date    string `json:"date"`
	Entries int    `json:"entries"`
	Words   int    `json:"words"`
}

// MoodTrendPoint is one calendar week of the mood trend.
type MoodTrendPoint struct {
	WeekStart string  `json:"weekStart"`
	AvgMood   float64 `json:"avgMood"`
	Entries   int     `json:"entries"`
}

// WordCount splits s on runs of whitespace and counts the non-empty
// tokens. This is the one word-count definition used everywhere.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// MoodDistribution groups entries by mood name. Entries without a mood
// are excluded; groups appear in first-seen order. Two catalog rows
// sharing a display name merge into one group.
func MoodDistribution(entries []*entry.Entry) []MoodStat {
	index := make(map[string]int)
	stats := make([]MoodStat, 0)
	for _, e := range entries {
		if e.Mood == nil {
			continue
		}
		if i, ok := index[e.Mood.Name]; ok {
			stats[i].Count++
			continue
		}
		index[e.Mood.Name] = len(stats)
		stats = append(stats, MoodStat{
			Name:  e.Mood.Name,
			Count: 1,
			Color: e.Mood.Color,
			Emoji: e.Mood.Emoji,
		})
	}
	return stats
}

// TagFrequency counts how many entries carry each tag and ranks by count
// descending. Ties keep first-seen order.
func TagFrequency(entries []*entry.Entry) []TagCount {
	index := make(map[string]int)
	counts := make([]TagCount, 0)
	for _, e := range entries {
		for _, t := range e.Tags {
			if i, ok := index[t]; ok {
				counts[i].Count++
				continue
			}
			index[t] = len(counts)
			counts = append(counts, TagCount{Tag: t, Count: 1})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// TopTags caps the tag frequency ranking to its first n rows.
func TopTags(entries []*entry.Entry, n int) []TagCount {
	counts := TagFrequency(entries)
	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// DailyActivity buckets entries by their entry date over every calendar
// day in the closed range, zero-activity days included.
func DailyActivity(entries []*entry.Entry, from, to string) []ActivityBucket {
	perDay := make(map[string]*ActivityBucket)
	for _, e := range entries {
		b, ok := perDay[e.Date]
		if !ok {
			b = &ActivityBucket{Date: e.Date}
			perDay[e.Date] = b
		}
		b.Entries++
		b.Words += WordCount(e.Content)
	}

	days := timeutil.EachDay(from, to)
	buckets := make([]ActivityBucket, 0, len(days))
	for _, day := range days {
		if b, ok := perDay[day]; ok {
			buckets = append(buckets, *b)
		} else {
			buckets = append(buckets, ActivityBucket{Date: day})
		}
	}
	return buckets
}

// WeeklyMoodTrend averages mood values per calendar week (weeks start
// Sunday) for every week intersecting the closed range. Entries without
// a mood count as neutral; a week without entries reports the neutral
// average and zero entries.
func WeeklyMoodTrend(entries []*entry.Entry, from, to string) []MoodTrendPoint {
	type weekAgg struct {
		sum     int
		entries int
	}
	perWeek := make(map[string]*weekAgg)
	for _, e := range entries {
		d, err := timeutil.ParseDate(e.Date)
		if err != nil {
			continue
		}
		ws := timeutil.FormatDate(timeutil.WeekStart(d))
		agg, ok := perWeek[ws]
		if !ok {
			agg = &weekAgg{}
			perWeek[ws] = agg
		}
		agg.sum += e.MoodValue()
		agg.entries++
	}

	weeks := timeutil.EachWeek(from, to)
	points := make([]MoodTrendPoint, 0, len(weeks))
	for _, ws := range weeks {
		p := MoodTrendPoint{WeekStart: ws, AvgMood: mood.Neutral}
		if agg, ok := perWeek[ws]; ok && agg.entries > 0 {
			p.AvgMood = round1(float64(agg.sum) / float64(agg.entries))
			p.Entries = agg.entries
		}
		points = append(points, p)
	}
	return points
}

// LastN keeps the most recent n trend points, for short-range displays.
func LastN(points []MoodTrendPoint, n int) []MoodTrendPoint {
	if n >= 0 && len(points) > n {
		return points[len(points)-n:]
	}
	return points
}

// AverageMood is the mean mood value across entries, counting a missing
// mood as neutral. An empty snapshot is exactly neutral.
func AverageMood(entries []*entry.Entry) float64 {
	if len(entries) == 0 {
		return mood.Neutral
	}
	sum := 0
	for _, e := range entries {
		sum += e.MoodValue()
	}
	return float64(sum) / float64(len(entries))
}

// Trend labels the direction between a day's last two mood check-ins.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// TrendDirection compares the two most recent mood values of a day,
// given oldest first. Fewer than two values is always stable.
func TrendDirection(values []int) Trend {
	if len(values) < 2 {
		return TrendStable
	}
	last, prev := values[len(values)-1], values[len(values)-2]
	switch {
	case last > prev:
		return TrendImproving
	case last < prev:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
