package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitdash/internal/models"
)

func sampleHabits() []models.Habit {
	return []models.Habit{
		{
			ID:    "h1",
			Name:  "Read",
			Color: "#111111",
			HabitEntries: []models.Entry{
				entry(daysAgo(0), 1),
				entry(daysAgo(1), 1),
				entry(daysAgo(10), 1),
				entry(daysAgo(40), 0),
			},
		},
		{
			ID:    "h2",
			Name:  "Run",
			Color: "#222222",
			HabitEntries: []models.Entry{
				entry(daysAgo(1), 1),
				entry(daysAgo(6), 1),
				entry(daysAgo(7), 1),
			},
		},
	}
}

func TestSuccessRateComparison(t *testing.T) {
	rows := newTestEngine().SuccessRateComparison(sampleHabits())
	require.Len(t, rows, 2)
	assert.Equal(t, models.SuccessRateRow{
		Name: "Read", SuccessRate: 75, CompletedDays: 3, TotalDays: 4, Color: "#111111",
	}, rows[0])
	assert.Equal(t, 100, rows[1].SuccessRate)
}

func TestStreakComparison(t *testing.T) {
	rows := newTestEngine().StreakComparison(sampleHabits())
	require.Len(t, rows, 2)
	assert.Equal(t, models.StreakRow{Name: "Read", CurrentStreak: 2, BestStreak: 3, Color: "#111111"}, rows[0])
	assert.Equal(t, models.StreakRow{Name: "Run", CurrentStreak: 0, BestStreak: 3, Color: "#222222"}, rows[1])
}

func TestHabitSummary(t *testing.T) {
	summary := newTestEngine().HabitSummary(sampleHabits())
	require.Len(t, summary.Habits, 2)

	read := summary.Habits[0]
	assert.True(t, read.TodayCompleted)
	assert.Equal(t, 2, read.CompletionsThisWeek)
	assert.Equal(t, 3, read.CompletionsThisMonth)

	run := summary.Habits[1]
	assert.False(t, run.TodayCompleted)
	assert.Equal(t, 2, run.CompletionsThisWeek)
	assert.Equal(t, 3, run.CompletionsThisMonth)

	assert.Equal(t, 1, summary.CompletedToday)
	assert.Equal(t, 50, summary.DailyProgress)
	assert.Equal(t, 88, summary.AverageSuccessRate)
}

func TestHabitSummary_Empty(t *testing.T) {
	summary := newTestEngine().HabitSummary(nil)
	assert.Empty(t, summary.Habits)
	assert.Zero(t, summary.DailyProgress)
	assert.Zero(t, summary.AverageSuccessRate)
}

func TestCompletedOn(t *testing.T) {
	e := newTestEngine()
	habits := sampleHabits()
	assert.True(t, CompletedOn(habits[0], e.Today()))
	assert.False(t, CompletedOn(habits[1], e.Today()))
}

func TestPartitionBadges(t *testing.T) {
	badges := []models.Badge{
		{ID: "b1", Category: "streak", Earned: true},
		{ID: "b2", Category: "streak", Earned: false},
		{ID: "b3", Category: "beginner", Earned: true},
	}

	earned, locked := PartitionBadges(badges, models.BadgeCategoryAll)
	assert.Len(t, earned, 2)
	assert.Len(t, locked, 1)

	earned, locked = PartitionBadges(badges, "streak")
	require.Len(t, earned, 1)
	assert.Equal(t, "b1", earned[0].ID)
	require.Len(t, locked, 1)
	assert.Equal(t, "b2", locked[0].ID)

	earned, locked = PartitionBadges(badges, "social")
	assert.Empty(t, earned)
	assert.Empty(t, locked)
}
