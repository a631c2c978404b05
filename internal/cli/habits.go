package cli

import (
	"fmt"
	"strconv"

	"habitdash/internal/models"
)

type HabitsCmd struct {
	List   HabitListCmd   `cmd:"" help:"List habits with today's status." default:"1"`
	Mark   HabitMarkCmd   `cmd:"" help:"Toggle today's completion for a habit."`
	Add    HabitAddCmd    `cmd:"" help:"Create a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.API.GetHabits(ctx.Ctx)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		ctx.printf("No habits found.\n")
		return nil
	}

	summary := ctx.Engine.HabitSummary(habits)
	rows := make([][]string, 0, len(summary.Habits))
	for _, h := range summary.Habits {
		done := " "
		if h.TodayCompleted {
			done = "x"
		}
		rows = append(rows, []string{
			done,
			h.HabitID,
			h.Name,
			itoa(h.CompletionsThisWeek),
			itoa(h.CompletionsThisMonth),
			itoa(h.SuccessRate) + "%",
		})
	}
	ctx.printTable([]string{"", "id", "name", "7d", "30d", "rate"}, rows)
	ctx.printf("%d / %d done today (%d%%)\n", summary.CompletedToday, len(summary.Habits), summary.DailyProgress)
	return nil
}

type HabitMarkCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitMarkCmd) Run(ctx *Context) error {
	completed, err := ctx.Habits.ToggleToday(ctx.Ctx, c.ID)
	if err != nil {
		return err
	}
	if completed {
		ctx.printf("Marked %s done for today\n", c.ID)
	} else {
		ctx.printf("Unmarked %s for today\n", c.ID)
	}
	return nil
}

type HabitAddCmd struct {
	Name        string  `arg:"" help:"Habit name."`
	Description string  `help:"Description."`
	Target      float64 `help:"Daily target value." default:"1"`
	Unit        string  `help:"Unit for the target (e.g. pages, minutes)."`
	Color       string  `help:"Display color." default:"#3b82f6"`
	Frequency   string  `help:"Frequency." enum:"daily,weekly,monthly" default:"daily"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if c.Target <= 0 {
		return fmt.Errorf("target must be positive, got %s", strconv.FormatFloat(c.Target, 'g', -1, 64))
	}
	habit, err := ctx.API.CreateHabit(ctx.Ctx, models.CreateHabitData{
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		Frequency:   models.Frequency(c.Frequency),
		Target:      c.Target,
		Unit:        c.Unit,
	})
	if err != nil {
		return err
	}
	ctx.printf("Added habit %s (%s)\n", habit.Name, habit.ID)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.API.DeleteHabit(ctx.Ctx, c.ID); err != nil {
		return err
	}
	ctx.printf("Deleted habit %s\n", c.ID)
	return nil
}
