package tracker

import (
	"math"
	"sort"

	"github.com/JoquimMarques/DaySignal/internal/model"
)

// Stats aggregates one day's non-archived tasks.
type Stats struct {
	Total     int
	Completed int
	Failed    int
	Pending   int
	Percent   int
}

// PhraseBucket selects which family of motivational phrasing applies. The
// engine only ever reports the bucket; text lives in the presentation
// layer.
type PhraseBucket string

const (
	BucketEmpty   PhraseBucket = "empty"
	BucketZero    PhraseBucket = "zero"
	BucketStarted PhraseBucket = "started"
	BucketHalf    PhraseBucket = "half"
	BucketAlmost  PhraseBucket = "almost"
	BucketDone    PhraseBucket = "done"
)

// PhraseBucketFor maps a completion percentage to its bucket. An empty day
// (total 0) is its own bucket, which also pins down 0/0 = 0 rather than
// NaN.
func PhraseBucketFor(percent, total int) PhraseBucket {
	switch {
	case total == 0:
		return BucketEmpty
	case percent == 0:
		return BucketZero
	case percent < 40:
		return BucketStarted
	case percent < 75:
		return BucketHalf
	case percent < 100:
		return BucketAlmost
	default:
		return BucketDone
	}
}

// roundedPercent is round(completed/total*100) with 0/0 defined as 0.
func roundedPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// GroupByDate buckets tasks by calendar day, preserving insertion order
// within each bucket.
func GroupByDate(tasks []model.Task) map[model.Date][]model.Task {
	groups := make(map[model.Date][]model.Task)
	for _, task := range tasks {
		groups[task.Date] = append(groups[task.Date], task)
	}
	return groups
}

// SortedGroupKeys orders date buckets for display: today always first,
// tomorrow pinned second as "upcoming", then every other date in reverse
// chronological order. This is a stable total order over keys, not a
// general date sort.
func SortedGroupKeys(groups map[model.Date][]model.Task, today model.Date) []model.Date {
	tomorrow := today.AddDays(1)
	keys := make([]model.Date, 0, len(groups))
	for date := range groups {
		keys = append(keys, date)
	}
	rank := func(d model.Date) int {
		switch d {
		case today:
			return 0
		case tomorrow:
			return 1
		default:
			return 2
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[j].Before(keys[i])
	})
	return keys
}

func dailyStatsOf(tasks []model.Task, date model.Date) Stats {
	var s Stats
	for _, task := range tasks {
		if task.Archived || task.Date != date {
			continue
		}
		s.Total++
		switch task.Status {
		case model.StatusCompleted:
			s.Completed++
		case model.StatusFailed:
			s.Failed++
		default:
			s.Pending++
		}
	}
	s.Percent = roundedPercent(s.Completed, s.Total)
	return s
}

// DailyStats aggregates non-archived tasks scheduled for the given day.
func (t *Tracker) DailyStats(date model.Date) Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return dailyStatsOf(t.tasks, date)
}

// TodayStats is DailyStats for the clock's current day.
func (t *Tracker) TodayStats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return dailyStatsOf(t.tasks, t.clock.Today())
}

// RecentHomeItems returns the last n non-archived tasks, most recently
// created or finalized first.
func (t *Tracker) RecentHomeItems(n int) []model.Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	active := t.activeTasksLocked()
	out := make([]model.Task, 0, n)
	for i := len(active) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, active[i])
	}
	return out
}

// GroupedActiveTasks returns the date buckets of non-archived tasks plus
// their display key order.
func (t *Tracker) GroupedActiveTasks() (map[model.Date][]model.Task, []model.Date) {
	t.mu.Lock()
	defer t.mu.Unlock()
	groups := GroupByDate(t.activeTasksLocked())
	return groups, SortedGroupKeys(groups, t.clock.Today())
}

// Calendar series shape: one entry per day from six days ago through
// tomorrow.
const (
	calendarOffsetStart = -6
	calendarOffsetEnd   = 1
)

// CalendarDay is one heat-map cell of the productivity history.
type CalendarDay struct {
	Date      model.Date
	Total     int
	Completed int
	Percent   int
	Intensity float64
	HasItems  bool
	IsToday   bool
}

// CalendarSeries derives the 8-day history strip. Tasks and goals are
// counted together. Intensity buckets are fixed: a day without items gets
// the 0.05 baseline, tomorrow's slot with items gets the 0.2 preview shade
// regardless of percent (future items cannot be completed yet), and past
// or current days scale with completion.
func (t *Tracker) CalendarSeries() []CalendarDay {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.clock.Today()
	items := make([]model.Item, 0, len(t.tasks)+len(t.goals))
	for _, task := range t.tasks {
		if !task.Archived {
			items = append(items, task)
		}
	}
	for _, goal := range t.goals {
		items = append(items, goal)
	}
	return calendarSeriesOf(items, today)
}

func calendarSeriesOf(items []model.Item, today model.Date) []CalendarDay {
	tomorrow := today.AddDays(1)
	out := make([]CalendarDay, 0, calendarOffsetEnd-calendarOffsetStart+1)
	for offset := calendarOffsetStart; offset <= calendarOffsetEnd; offset++ {
		date := today.AddDays(offset)
		day := CalendarDay{Date: date, IsToday: date == today}
		for _, item := range items {
			if item.ItemDate() != date {
				continue
			}
			day.Total++
			if item.ItemStatus() == model.StatusCompleted {
				day.Completed++
			}
		}
		day.HasItems = day.Total > 0
		day.Percent = roundedPercent(day.Completed, day.Total)
		day.Intensity = intensityFor(day, date == tomorrow)
		out = append(out, day)
	}
	return out
}

func intensityFor(day CalendarDay, isTomorrow bool) float64 {
	if !day.HasItems {
		return 0.05
	}
	if isTomorrow {
		return 0.2
	}
	switch {
	case day.Percent == 0:
		return 0.1
	case day.Percent < 50:
		return 0.4
	case day.Percent < 100:
		return 0.7
	default:
		return 1.0
	}
}
