// Package cli holds the habitctl commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"habitdash/clients/tracker"
	"habitdash/internal/analytics"
	"habitdash/internal/models"
	"habitdash/internal/services"
)

// API is the slice of the habit tracker client the commands use.
type API interface {
	services.AuthAPI
	services.EntryUpdater
	GetHabits(context.Context) ([]models.Habit, error)
	CreateHabit(context.Context, models.CreateHabitData) (models.Habit, error)
	DeleteHabit(context.Context, string) error
	GetBadges(context.Context) (models.BadgeResponse, error)
}

type Context struct {
	Ctx     context.Context
	API     API
	Session *services.SessionService
	Habits  *services.HabitService
	Engine  *analytics.Engine
	Out     io.Writer
}

func NewContext(ctx context.Context, api API, session *services.SessionService, engine *analytics.Engine, out io.Writer) *Context {
	habits := services.NewHabitService(api, engine)
	return &Context{
		Ctx:     ctx,
		API:     api,
		Session: session,
		Habits:  &habits,
		Engine:  engine,
		Out:     out,
	}
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) printTable(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(c.Out, t.Render())
}

// Describe renders a command error for the terminal.
func Describe(err error) string {
	if errors.Is(err, tracker.ErrUnauthorized) {
		return "not signed in, run habitctl login"
	}
	return err.Error()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
