package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"habitdash/clients/tracker"
	"habitdash/internal/analytics"
	"habitdash/internal/models"
	"habitdash/internal/web"
)

var chartWindows = map[int]bool{7: true, 30: true, 90: true}

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) RegisterRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /api/dashboard", s.DashboardHandler)
	mux.HandleFunc("GET /api/analytics", s.OverallStatsHandler)
	mux.HandleFunc("GET /api/analytics/habits/{id}", s.HabitAnalyticsHandler)
	mux.HandleFunc("GET /api/progress", s.ProgressHandler)
	mux.HandleFunc("GET /api/comparison/success", s.SuccessComparisonHandler)
	mux.HandleFunc("GET /api/comparison/streaks", s.StreakComparisonHandler)
	mux.HandleFunc("GET /api/rank", s.RankHandler)
	mux.HandleFunc("GET /api/badges", s.BadgesHandler)
	mux.HandleFunc("POST /api/habits/{id}/toggle", s.ToggleHandler)
	mux.HandleFunc("GET /rank", s.RankPageHandler)

	return requestID(mux)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		slog.Info("got req", "method", r.Method, "path", r.URL.Path, "requestId", id)
		next.ServeHTTP(w, r)
	})
}

func writeEnvelope(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("error encoding response", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, apiResponse{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeEnvelope(w, status, apiResponse{Success: false, Error: msg})
}

// writeUpstreamError maps a habit API failure onto a response status.
func writeUpstreamError(w http.ResponseWriter, err error) {
	slog.Error("error calling habit api", "err", err)
	if errors.Is(err, tracker.ErrUnauthorized) {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	writeError(w, http.StatusBadGateway, "habit api request failed")
}

func parseDays(r *http.Request) (int, bool) {
	v := r.URL.Query().Get("days")
	if v == "" {
		return analytics.DefaultWindow, true
	}
	days, err := strconv.Atoi(v)
	if err != nil || !chartWindows[days] {
		return 0, false
	}
	return days, true
}

func (s *Server) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	days, ok := parseDays(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "days must be 7, 30 or 90")
		return
	}

	resp := s.dashboardService.GetDashboard(r.Context(), days)
	if errors.Is(resp.Err, tracker.ErrUnauthorized) {
		writeUpstreamError(w, resp.Err)
		return
	}
	if len(resp.Errors) > 0 {
		// partial data still goes out alongside the failure
		writeEnvelope(w, http.StatusBadGateway, apiResponse{
			Success: false,
			Data:    resp,
			Error:   strings.Join(resp.Errors, "; "),
		})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) OverallStatsHandler(w http.ResponseWriter, r *http.Request) {
	habits, err := s.habits.GetHabits(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.OverallStats(habits))
}

func (s *Server) HabitAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	habit, err := s.habits.GetHabit(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.HabitAnalytics(habit.Entries()))
}

func (s *Server) ProgressHandler(w http.ResponseWriter, r *http.Request) {
	days, ok := parseDays(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "days must be 7, 30 or 90")
		return
	}
	habits, err := s.habits.GetHabits(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.ProgressSeries(habits, days))
}

func (s *Server) SuccessComparisonHandler(w http.ResponseWriter, r *http.Request) {
	habits, err := s.habits.GetHabits(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.SuccessRateComparison(habits))
}

func (s *Server) StreakComparisonHandler(w http.ResponseWriter, r *http.Request) {
	habits, err := s.habits.GetHabits(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.StreakComparison(habits))
}

func (s *Server) RankHandler(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("points"); v != "" {
		points, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "points must be an integer")
			return
		}
		writeJSON(w, http.StatusOK, analytics.RankForPoints(points))
		return
	}

	badges, err := s.badges.GetBadges(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.RankForPoints(badges.UserStats.TotalPoints))
}

type badgesPayload struct {
	Earned    []models.Badge    `json:"earned"`
	Locked    []models.Badge    `json:"locked"`
	UserStats models.BadgeStats `json:"userStats"`
	Rank      models.Rank       `json:"rank"`
}

func (s *Server) BadgesHandler(w http.ResponseWriter, r *http.Request) {
	badges, err := s.badges.GetBadges(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.BadgeCategoryAll
	}
	earned, locked := analytics.PartitionBadges(badges.Badges, category)
	writeJSON(w, http.StatusOK, badgesPayload{
		Earned:    earned,
		Locked:    locked,
		UserStats: badges.UserStats,
		Rank:      analytics.RankForPoints(badges.UserStats.TotalPoints),
	})
}

func (s *Server) ToggleHandler(w http.ResponseWriter, r *http.Request) {
	completed, err := s.habitService.ToggleToday(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"completed": completed})
}

func (s *Server) RankPageHandler(w http.ResponseWriter, r *http.Request) {
	badges, err := s.badges.GetBadges(r.Context())
	if err != nil {
		slog.Error("error getting badges", "err", err)
		http.Error(w, "unable to load rank", http.StatusBadGateway)
		return
	}
	rank := analytics.RankForPoints(badges.UserStats.TotalPoints)
	templ.Handler(web.RankPage(rank, badges.UserStats)).ServeHTTP(w, r)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := map[string]string{"status": "up"}
	if s.db != nil {
		stats = s.db.Health()
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		slog.Error("error encoding health", "err", err)
	}
}
