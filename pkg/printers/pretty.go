// Package printers renders entries and analytics for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/memovault/pkg/analytics"
	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/mood"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-000000000000  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries renders a snapshot one row per entry: date, mood, title, tags.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range entries {
		m := " "
		if e.Mood != nil {
			m = e.Mood.Emoji
		}
		tags := strings.Join(e.Tags, ", ")
		if pp.ShowID {
			tbl.AddRow(y.Sprint(e.ID), e.Date, m, e.Title, tags)
		} else {
			tbl.AddRow(e.Date, m, e.Title, tags)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Catalog renders the mood catalog.
func (pp *PrettyPrint) Catalog(moods []mood.Mood) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "MOOD", "VALUE")
	for _, m := range moods {
		tbl.AddRow(m.ID, m.String(), fmt.Sprintf("%d/5", m.Value))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Summary renders the stats overview block.
func (pp *PrettyPrint) Summary(s analytics.Summary) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("entries", fmt.Sprintf("%d", s.TotalEntries))
	tbl.AddRow("words", fmt.Sprintf("%d", s.TotalWords))
	tbl.AddRow("words/entry", fmt.Sprintf("%d", s.AvgWordsPerEntry))
	tbl.AddRow("avg mood", fmt.Sprintf("%.1f/5", s.AvgMood))
	if s.MostUsedMood != nil {
		tbl.AddRow("top mood", fmt.Sprintf("%s %s (%d)", s.MostUsedMood.Emoji, s.MostUsedMood.Name, s.MostUsedMood.Count))
	}
	if s.TopTag != nil {
		tbl.AddRow("top tag", fmt.Sprintf("%s (%d)", s.TopTag.Tag, s.TopTag.Count))
	}
	tbl.AddRow("streak", fmt.Sprintf("%d days (best %d)", s.CurrentStreak, s.LongestStreak))
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Distribution renders the mood distribution as counts.
func (pp *PrettyPrint) Distribution(stats []analytics.MoodStat) {
	if len(stats) == 0 {
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, st := range stats {
		tbl.AddRow(st.Emoji, st.Name, fmt.Sprintf("%d", st.Count), strings.Repeat("█", st.Count))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Tags renders a tag frequency ranking.
func (pp *PrettyPrint) Tags(counts []analytics.TagCount) {
	if len(counts) == 0 {
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, tc := range counts {
		tbl.AddRow("#"+tc.Tag, fmt.Sprintf("%d", tc.Count))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Trend renders weekly mood trend points as a bar per week.
func (pp *PrettyPrint) Trend(points []analytics.MoodTrendPoint) {
	if len(points) == 0 {
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range points {
		tbl.AddRow(p.WeekStart, fmt.Sprintf("%.1f", p.AvgMood), strings.Repeat("▇", int(p.AvgMood+0.5)))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Activity renders daily buckets, skipping nothing so gaps are visible.
func (pp *PrettyPrint) Activity(buckets []analytics.ActivityBucket) {
	if len(buckets) == 0 {
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	f := color.New(color.Faint)
	for _, b := range buckets {
		row := fmt.Sprintf("%d entries, %d words", b.Entries, b.Words)
		if b.Entries == 0 {
			tbl.AddRow(b.Date, f.Sprint("-"))
			continue
		}
		tbl.AddRow(b.Date, row)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
