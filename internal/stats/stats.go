package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/aribzeeshan2446/NutriSnap/internal/entry"
	"github.com/aribzeeshan2446/NutriSnap/internal/settings"
)

// Bucket is one derived aggregate of calories for a day, week or
// month. Buckets are computed fresh on every read and never persisted.
type Bucket struct {
	Label    string  `json:"label"`
	Calories float64 `json:"calories"`
}

// All computations use the local clock with Monday as week start,
// matching what the rest of the app shows the user. Entries are
// bucketed by calendar date; time of day is ignored.

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// startOfWeek returns local midnight of the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	t = t.Local()
	offset := int(t.Weekday()) - 1
	if offset < 0 {
		offset = 6 // Sunday belongs to the preceding Monday
	}
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// TodayTotal sums calories over entries logged on now's calendar day.
func TodayTotal(entries []entry.LogEntry, now time.Time) float64 {
	var total float64
	for _, e := range entries {
		if sameDay(e.Date, now) {
			total += e.Calories
		}
	}
	return total
}

// ProgressRatio reports today's intake as a fraction of the effective
// daily goal, capped at 1. A non-positive goal yields 0 rather than a
// division error.
func ProgressRatio(entries []entry.LogEntry, s settings.UserSettings, now time.Time) float64 {
	goal := s.EffectiveDailyCalorieGoal()
	if goal <= 0 {
		return 0
	}

	ratio := TodayTotal(entries, now) / goal
	if ratio > 1 {
		return 1
	}
	return ratio
}

// DailySeries covers the current Monday-start week: one bucket per
// day, zero-filled, labelled by weekday.
func DailySeries(entries []entry.LogEntry, now time.Time) []Bucket {
	weekStart := startOfWeek(now)

	buckets := make([]Bucket, 0, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)

		var total float64
		for _, e := range entries {
			if sameDay(e.Date, day) {
				total += e.Calories
			}
		}

		buckets = append(buckets, Bucket{
			Label:    day.Format("Mon"),
			Calories: total,
		})
	}
	return buckets
}

// WeeklySeries covers the current calendar month, keyed by ISO week.
// Entries count as long as their week intersects the month, so a few
// days from the neighbouring months can contribute to the edge weeks.
func WeeklySeries(entries []entry.LogEntry, now time.Time) []Bucket {
	now = now.Local()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	lower := startOfWeek(monthStart)
	upper := startOfWeek(monthEnd).AddDate(0, 0, 7) // exclusive

	totals := make(map[string]float64)
	for _, e := range entries {
		d := e.Date.Local()
		if d.Before(lower) || !d.Before(upper) {
			continue
		}
		year, week := d.ISOWeek()
		totals[fmt.Sprintf("%d-W%02d", year, week)] += e.Calories
	}

	buckets := make([]Bucket, 0, len(totals))
	for label, calories := range totals {
		buckets = append(buckets, Bucket{Label: label, Calories: calories})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Label < buckets[j].Label
	})
	return buckets
}

// MonthlySeries covers the trailing 6 calendar months including the
// current one, zero-filled, in chronological order.
func MonthlySeries(entries []entry.LogEntry, now time.Time) []Bucket {
	now = now.Local()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]Bucket, 0, 6)
	for i := 5; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0)

		var total float64
		for _, e := range entries {
			d := e.Date.Local()
			if d.Year() == month.Year() && d.Month() == month.Month() {
				total += e.Calories
			}
		}

		buckets = append(buckets, Bucket{
			Label:    month.Format("Jan 2006"),
			Calories: total,
		})
	}
	return buckets
}
