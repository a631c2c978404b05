package services

import (
	"context"
	"fmt"
	"log/slog"

	"habitdash/internal/analytics"
	"habitdash/internal/models"
)

type EntryUpdater interface {
	GetHabit(context.Context, string) (models.Habit, error)
	MarkComplete(ctx context.Context, habitID, date string) (models.Entry, error)
	MarkIncomplete(ctx context.Context, habitID, date string) error
}

type HabitService struct {
	api    EntryUpdater
	engine *analytics.Engine
}

func NewHabitService(api EntryUpdater, engine *analytics.Engine) HabitService {
	return HabitService{api: api, engine: engine}
}

// ToggleToday flips today's completion for habitID and reports whether the
// habit is now completed.
func (h *HabitService) ToggleToday(ctx context.Context, habitID string) (bool, error) {
	habit, err := h.api.GetHabit(ctx, habitID)
	if err != nil {
		return false, fmt.Errorf("error loading habit: %w", err)
	}

	today := h.engine.Today()
	date := today.Format(analytics.DateFormat)
	if analytics.CompletedOn(habit, today) {
		if err := h.api.MarkIncomplete(ctx, habitID, date); err != nil {
			return true, err
		}
		slog.Info("unmarked habit", "habitId", habitID, "date", date)
		return false, nil
	}

	if _, err := h.api.MarkComplete(ctx, habitID, date); err != nil {
		return false, err
	}
	slog.Info("marked habit", "habitId", habitID, "date", date)
	return true, nil
}
