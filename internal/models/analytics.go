package models

type DayStatus struct {
	Date      string  `json:"date"`
	Value     float64 `json:"value"`
	Completed bool    `json:"completed"`
}

type HabitAnalytics struct {
	SuccessRate    int         `json:"successRate"`
	CurrentStreak  int         `json:"currentStreak"`
	BestStreak     int         `json:"bestStreak"`
	TotalTracked   int         `json:"totalTracked"`
	SuccessfulDays int         `json:"successfulDays"`
	Last30Days     []DayStatus `json:"last30Days"`
}

type AggregateStats struct {
	TotalSuccessfulDays  int `json:"totalSuccessfulDays"`
	AverageSuccessRate   int `json:"averageSuccessRate"`
	LongestCurrentStreak int `json:"longestCurrentStreak"`
	ActiveHabits         int `json:"activeHabits"`
	TotalHabits          int `json:"totalHabits"`
	TotalEntries         int `json:"totalEntries"`
}

// ProgressRow is one day of the progress chart. Values is keyed by habit name.
type ProgressRow struct {
	Label  string         `json:"label"`
	Date   string         `json:"date"`
	Values map[string]int `json:"values"`
}

type SuccessRateRow struct {
	Name          string `json:"name"`
	SuccessRate   int    `json:"successRate"`
	CompletedDays int    `json:"completedDays"`
	TotalDays     int    `json:"totalDays"`
	Color         string `json:"color"`
}

type StreakRow struct {
	Name          string `json:"name"`
	CurrentStreak int    `json:"currentStreak"`
	BestStreak    int    `json:"bestStreak"`
	Color         string `json:"color"`
}

type HabitStatus struct {
	HabitID              string `json:"habitId"`
	Name                 string `json:"name"`
	Color                string `json:"color"`
	TodayCompleted       bool   `json:"todayCompleted"`
	SuccessRate          int    `json:"successRate"`
	CompletionsThisWeek  int    `json:"completionsThisWeek"`
	CompletionsThisMonth int    `json:"completionsThisMonth"`
}

type HabitSummary struct {
	Habits             []HabitStatus `json:"habits"`
	CompletedToday     int           `json:"completedToday"`
	DailyProgress      int           `json:"dailyProgress"`
	AverageSuccessRate int           `json:"averageSuccessRate"`
}

type Rank struct {
	Tier    string `json:"tier"`
	Numeral string `json:"numeral"`
	Color   string `json:"color"`
	Points  int    `json:"points"`
	Ordinal int    `json:"ordinal"`
}

func (r Rank) String() string {
	return r.Tier + " " + r.Numeral
}
