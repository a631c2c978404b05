package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"habitdash/internal/analytics"
	"habitdash/internal/app"
	"habitdash/internal/database"
	"habitdash/internal/models"
	"habitdash/internal/services"
)

type HabitAPI interface {
	GetHabits(context.Context) ([]models.Habit, error)
	GetHabit(context.Context, string) (models.Habit, error)
}

type DashboardService interface {
	GetDashboard(ctx context.Context, days int) models.DashboardResponse
}

type HabitToggler interface {
	ToggleToday(ctx context.Context, habitID string) (bool, error)
}

type Server struct {
	port int

	db               database.Service
	engine           *analytics.Engine
	habits           HabitAPI
	badges           services.BadgeFetcher
	dashboardService DashboardService
	habitService     HabitToggler
}

func NewServer(a *app.App) *http.Server {
	habitService := services.NewHabitService(a.Client, a.Engine)

	NewServer := &Server{
		port: a.Config.Port,

		db:               a.DB,
		engine:           a.Engine,
		habits:           a.Client,
		badges:           a.Client,
		dashboardService: services.NewDashboardService(a.Client, a.Client, a.Engine),
		habitService:     &habitService,
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", NewServer.port),
		Handler:      NewServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
