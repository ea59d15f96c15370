package stats

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/memovault/pkg/analytics"
	"tableflip.dev/memovault/pkg/diary"
	"tableflip.dev/memovault/pkg/printers"
	"tableflip.dev/memovault/pkg/query"
	"tableflip.dev/memovault/pkg/timeutil"
)

const topTagCount = 10

type Stats struct {
	Repo   *diary.Repository
	Window string // lookback, e.g. 7d, 30d, 1y

	// Activity switches the day-by-day table on.
	Activity bool
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not report stats, no repository")
	}

	from, to, label, err := timeutil.WindowRange(n.Window, time.Now())
	if err != nil {
		return err
	}

	scoped := query.ByDateRange(n.Repo.All(), from, to)

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Stats ("+label+")", len(scoped))
	pp.Summary(analytics.Summarize(scoped))

	pp.Title("Moods")
	pp.Distribution(analytics.MoodDistribution(scoped))

	pp.Title("Tags")
	pp.Tags(analytics.TopTags(scoped, topTagCount))

	pp.Title("Mood trend")
	pp.Trend(analytics.LastN(analytics.WeeklyMoodTrend(scoped, from, to), 8))

	if n.Activity {
		pp.Title("Activity")
		pp.Activity(analytics.DailyActivity(scoped, from, to))
	}
	return nil
}
