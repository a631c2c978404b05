package analytics

import (
	"math"

	"habitdash/internal/models"
)

func (e *Engine) OverallStats(habits []models.Habit) models.AggregateStats {
	if len(habits) == 0 {
		return models.AggregateStats{}
	}

	var stats models.AggregateStats
	rateSum := 0
	for _, h := range habits {
		a := e.HabitAnalytics(h.Entries())
		stats.TotalSuccessfulDays += a.SuccessfulDays
		stats.TotalEntries += a.TotalTracked
		rateSum += a.SuccessRate
		if a.CurrentStreak > stats.LongestCurrentStreak {
			stats.LongestCurrentStreak = a.CurrentStreak
		}
	}

	stats.AverageSuccessRate = int(math.Round(float64(rateSum) / float64(len(habits))))
	stats.ActiveHabits = len(habits)
	stats.TotalHabits = len(habits)
	return stats
}

// AnalyticsByHabit keys each habit's analytics by habit ID.
func (e *Engine) AnalyticsByHabit(habits []models.Habit) map[string]models.HabitAnalytics {
	out := make(map[string]models.HabitAnalytics, len(habits))
	for _, h := range habits {
		out[h.ID] = e.HabitAnalytics(h.Entries())
	}
	return out
}
