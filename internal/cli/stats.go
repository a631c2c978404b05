package cli

import (
	"fmt"
	"sort"

	"habitdash/internal/analytics"
	"habitdash/internal/models"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	habits, err := ctx.API.GetHabits(ctx.Ctx)
	if err != nil {
		return err
	}

	stats := ctx.Engine.OverallStats(habits)
	ctx.printTable([]string{"stat", "value"}, [][]string{
		{"habits", fmt.Sprintf("%d (%d active)", stats.TotalHabits, stats.ActiveHabits)},
		{"entries", itoa(stats.TotalEntries)},
		{"successful days", itoa(stats.TotalSuccessfulDays)},
		{"average success", itoa(stats.AverageSuccessRate) + "%"},
		{"longest current streak", itoa(stats.LongestCurrentStreak)},
	})

	streaks := ctx.Engine.StreakComparison(habits)
	rates := ctx.Engine.SuccessRateComparison(habits)
	rows := make([][]string, 0, len(streaks))
	for i, s := range streaks {
		rows = append(rows, []string{
			s.Name,
			itoa(s.CurrentStreak),
			itoa(s.BestStreak),
			fmt.Sprintf("%d%% (%d/%d)", rates[i].SuccessRate, rates[i].CompletedDays, rates[i].TotalDays),
		})
	}
	if len(rows) > 0 {
		ctx.printTable([]string{"habit", "streak", "best", "success"}, rows)
	}
	return nil
}

type ProgressCmd struct {
	Days int `help:"Window length in days (7, 30 or 90)." default:"30"`
}

func (c *ProgressCmd) Run(ctx *Context) error {
	switch c.Days {
	case 7, 30, 90:
	default:
		return fmt.Errorf("--days must be 7, 30 or 90, got %d", c.Days)
	}
	habits, err := ctx.API.GetHabits(ctx.Ctx)
	if err != nil {
		return err
	}
	series := ctx.Engine.ProgressSeries(habits, c.Days)
	ctx.printTable(progressTable(series))
	return nil
}

// progressTable lays the series out with one column per habit name.
func progressTable(series []models.ProgressRow) ([]string, [][]string) {
	seen := map[string]bool{}
	var names []string
	for _, row := range series {
		for name := range row.Values {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)

	headers := append([]string{"day"}, names...)
	rows := make([][]string, 0, len(series))
	for _, row := range series {
		cells := []string{row.Label}
		for _, name := range names {
			cells = append(cells, itoa(row.Values[name])+"%")
		}
		rows = append(rows, cells)
	}
	return headers, rows
}

type RankCmd struct {
	Points *int `help:"Classify this point total instead of the account's."`
}

func (c *RankCmd) Run(ctx *Context) error {
	var rank models.Rank
	if c.Points != nil {
		rank = analytics.RankForPoints(*c.Points)
	} else {
		badges, err := ctx.API.GetBadges(ctx.Ctx)
		if err != nil {
			return err
		}
		rank = analytics.RankForPoints(badges.UserStats.TotalPoints)
	}
	ctx.printf("%s (%d points)\n", rank, rank.Points)
	return nil
}
