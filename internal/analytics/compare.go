package analytics

import (
	"math"
	"time"

	"habitdash/internal/models"
)

func (e *Engine) SuccessRateComparison(habits []models.Habit) []models.SuccessRateRow {
	rows := make([]models.SuccessRateRow, 0, len(habits))
	for _, h := range habits {
		a := e.HabitAnalytics(h.Entries())
		rows = append(rows, models.SuccessRateRow{
			Name:          h.Name,
			SuccessRate:   a.SuccessRate,
			CompletedDays: a.SuccessfulDays,
			TotalDays:     a.TotalTracked,
			Color:         h.Color,
		})
	}
	return rows
}

func (e *Engine) StreakComparison(habits []models.Habit) []models.StreakRow {
	rows := make([]models.StreakRow, 0, len(habits))
	for _, h := range habits {
		a := e.HabitAnalytics(h.Entries())
		rows = append(rows, models.StreakRow{
			Name:          h.Name,
			CurrentStreak: a.CurrentStreak,
			BestStreak:    a.BestStreak,
			Color:         h.Color,
		})
	}
	return rows
}

// HabitSummary reports what the habit list shows: whether each habit is done
// today, its success rate and its successful entries over the last week and
// month.
func (e *Engine) HabitSummary(habits []models.Habit) models.HabitSummary {
	today := e.Today()
	todayKey := today.Format(DateFormat)
	weekStart := today.AddDate(0, 0, -6)
	monthStart := today.AddDate(0, 0, -29)

	summary := models.HabitSummary{Habits: make([]models.HabitStatus, 0, len(habits))}
	rateSum := 0
	for _, h := range habits {
		sorted := sortEntries(h.Entries())
		idx := indexByDay(sorted)

		status := models.HabitStatus{
			HabitID:        h.ID,
			Name:           h.Name,
			Color:          h.Color,
			TodayCompleted: idx[todayKey].Value > 0,
		}
		successful := 0
		for _, entry := range sorted {
			if entry.Value <= 0 {
				continue
			}
			successful++
			day, ok := dayOf(entry.Date)
			if !ok {
				continue
			}
			at := parseDay(day)
			if !at.Before(weekStart) {
				status.CompletionsThisWeek++
			}
			if !at.Before(monthStart) {
				status.CompletionsThisMonth++
			}
		}
		status.SuccessRate = percent(float64(successful), float64(len(sorted)))
		rateSum += status.SuccessRate

		if status.TodayCompleted {
			summary.CompletedToday++
		}
		summary.Habits = append(summary.Habits, status)
	}

	if len(habits) > 0 {
		summary.DailyProgress = percent(float64(summary.CompletedToday), float64(len(habits)))
		summary.AverageSuccessRate = int(math.Round(float64(rateSum) / float64(len(habits))))
	}
	return summary
}

// CompletedOn reports whether the habit has a successful entry on day.
func CompletedOn(h models.Habit, day time.Time) bool {
	idx := indexByDay(sortEntries(h.Entries()))
	return idx[day.Format(DateFormat)].Value > 0
}
