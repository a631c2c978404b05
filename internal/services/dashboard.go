package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"habitdash/internal/analytics"
	"habitdash/internal/models"
)

type HabitLister interface {
	GetHabits(context.Context) ([]models.Habit, error)
}

type BadgeFetcher interface {
	GetBadges(context.Context) (models.BadgeResponse, error)
}

type DashboardService struct {
	habits HabitLister
	badges BadgeFetcher
	engine *analytics.Engine
}

func NewDashboardService(habits HabitLister, badges BadgeFetcher, engine *analytics.Engine) *DashboardService {
	return &DashboardService{habits, badges, engine}
}

// GetDashboard fetches habits and badges concurrently and derives every
// figure the dashboard shows. Fetch failures are reported in Errors; the
// remaining sections are still filled from whatever did load.
func (d *DashboardService) GetDashboard(ctx context.Context, days int) models.DashboardResponse {
	var (
		habits []models.Habit
		badges models.BadgeResponse
	)
	ch := make(chan error, 2)
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		habits, err = d.habits.GetHabits(ctx)
		if err != nil {
			slog.Error("error getting habits", "err", err)
		}
		ch <- err
	}()

	go func() {
		defer wg.Done()
		var err error
		badges, err = d.badges.GetBadges(ctx)
		if err != nil {
			slog.Error("error getting badges", "err", err)
		}
		ch <- err
	}()

	wg.Wait()
	close(ch)

	resp := models.DashboardResponse{
		Stats:     d.engine.OverallStats(habits),
		Summary:   d.engine.HabitSummary(habits),
		Analytics: d.engine.AnalyticsByHabit(habits),
		Progress:  d.engine.ProgressSeries(habits, days),
		Streaks:   d.engine.StreakComparison(habits),
		Rank:      analytics.RankForPoints(badges.UserStats.TotalPoints),
		Badges:    badges.UserStats,
	}
	var errs []error
	for e := range ch {
		if e != nil {
			errs = append(errs, e)
			resp.Errors = append(resp.Errors, e.Error())
		}
	}
	resp.Err = errors.Join(errs...)
	return resp
}
