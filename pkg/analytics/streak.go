package analytics

import (
	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/timeutil"
)

// CurrentStreak counts consecutive calendar days with at least one entry,
// walking backward from today. A day without an entry today does not
// break a run that reached yesterday; the streak only resets once a full
// day has been missed.
func CurrentStreak(entries []*entry.Entry, today string) int {
	days := entryDays(entries)
	start, err := timeutil.ParseDate(today)
	if err != nil {
		return 0
	}
	if !days[today] {
		start = start.AddDate(0, 0, -1)
	}
	streak := 0
	for d := start; days[timeutil.FormatDate(d)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// LongestStreak finds the longest run of consecutive entry days anywhere
// in the snapshot.
func LongestStreak(entries []*entry.Entry) int {
	days := entryDays(entries)
	longest := 0
	for day := range days {
		d, err := timeutil.ParseDate(day)
		if err != nil {
			continue
		}
		// only count from the start of a run
		if days[timeutil.FormatDate(d.AddDate(0, 0, -1))] {
			continue
		}
		length := 0
		for cur := d; days[timeutil.FormatDate(cur)]; cur = cur.AddDate(0, 0, 1) {
			length++
		}
		if length > longest {
			longest = length
		}
	}
	return longest
}

func entryDays(entries []*entry.Entry) map[string]bool {
	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Date != "" {
			days[e.Date] = true
		}
	}
	return days
}
