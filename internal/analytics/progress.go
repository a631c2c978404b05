package analytics

import (
	"habitdash/internal/models"
)

// ProgressSeries builds one row per day for the last days days, oldest
// first. Each row maps a habit name to the percentage of its target logged
// that day, capped at 100. Habits sharing a name overwrite each other in
// the row, the later habit winning.
func (e *Engine) ProgressSeries(habits []models.Habit, days int) []models.ProgressRow {
	if days <= 0 {
		return []models.ProgressRow{}
	}

	indexes := make([]map[string]models.Entry, len(habits))
	for i, h := range habits {
		indexes[i] = indexByDay(sortEntries(h.Entries()))
	}

	today := e.Today()
	rows := make([]models.ProgressRow, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format(DateFormat)
		row := models.ProgressRow{
			Label:  day.Format(ChartFormat),
			Date:   date,
			Values: make(map[string]int, len(habits)),
		}
		for j, h := range habits {
			row.Values[h.Name] = targetPercent(indexes[j][date].Value, h.Target)
		}
		rows = append(rows, row)
	}
	return rows
}

func targetPercent(value, target float64) int {
	if target <= 0 {
		return 0
	}
	p := percent(value, target)
	switch {
	case p > 100:
		return 100
	case p < 0:
		return 0
	}
	return p
}
