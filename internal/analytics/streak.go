package analytics

import (
	"time"

	"habitdash/internal/models"
)

// HabitAnalytics computes the streak, success and recent-history figures for
// one habit's entries.
//
// BestStreak counts consecutive successful entries in date order. A gap of
// untracked days between two successful entries does not break the run.
func (e *Engine) HabitAnalytics(entries []models.Entry) models.HabitAnalytics {
	sorted := sortEntries(entries)
	idx := indexByDay(sorted)
	today := e.Today()

	successful := 0
	for _, entry := range sorted {
		if entry.Value > 0 {
			successful++
		}
	}

	return models.HabitAnalytics{
		SuccessRate:    percent(float64(successful), float64(len(sorted))),
		CurrentStreak:  currentStreak(sorted, idx, today),
		BestStreak:     bestStreak(sorted),
		TotalTracked:   len(sorted),
		SuccessfulDays: successful,
		Last30Days:     lastDays(idx, today, DefaultWindow),
	}
}

func currentStreak(sorted []models.Entry, idx map[string]models.Entry, today time.Time) int {
	oldest := today
	for _, entry := range sorted {
		if day, ok := dayOf(entry.Date); ok {
			oldest = parseDay(day)
			break
		}
	}

	streak := 0
	for day := today; !day.Before(oldest); day = day.AddDate(0, 0, -1) {
		entry, ok := idx[day.Format(DateFormat)]
		if !ok || entry.Value <= 0 {
			break
		}
		streak++
	}
	return streak
}

func bestStreak(sorted []models.Entry) int {
	best, run := 0, 0
	for _, entry := range sorted {
		if entry.Value <= 0 {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}
	return best
}

func lastDays(idx map[string]models.Entry, today time.Time, n int) []models.DayStatus {
	days := make([]models.DayStatus, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(DateFormat)
		value := idx[date].Value
		days = append(days, models.DayStatus{
			Date:      date,
			Value:     value,
			Completed: value > 0,
		})
	}
	return days
}
