package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"habitdash/internal/models"
)

const (
	refreshInterval = 30 * time.Second
	fetchTimeout    = 15 * time.Second
	recentDays      = 7
	Strikethrough   = "\033[9m"
	Reset           = "\033[0m"
)

type Dashboard interface {
	GetDashboard(ctx context.Context, days int) models.DashboardResponse
}

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg{} })
}

type model struct {
	dashboard Dashboard
	width     int
	height    int
	txtStyle  lipgloss.Style
	quitStyle lipgloss.Style
	renderer  *lipgloss.Renderer
	data      models.DashboardResponse
	err       error
	content   string
	viewport  viewport.Model
	ready     bool
}

func newModel(dashboard Dashboard, width, height int, renderer *lipgloss.Renderer) model {
	return model{
		dashboard: dashboard,
		width:     width,
		height:    height,
		renderer:  renderer,
		txtStyle:  renderer.NewStyle().Foreground(lipgloss.Color("31")),
		quitStyle: renderer.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (m model) updateState() model {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	data := m.dashboard.GetDashboard(ctx, recentDays)
	if len(data.Errors) > 0 {
		slog.Error("error updating state", "errors", data.Errors)
		m.err = fmt.Errorf("error updating state: %s", strings.Join(data.Errors, "; "))
	} else {
		m.err = nil
	}
	m.data = data
	return m
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.ready = true
		} else {
			m.viewport.Height = msg.Height
			m.viewport.Width = msg.Width
		}
		slog.Debug("window update", "height", m.height, "width", m.width)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m = m.updateState()
		}
	case tickMsg:
		m = m.updateState()
		cmds = append(cmds, tick())
	}
	m.content = m.updateContent()
	m.viewport.SetContent(m.content)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m model) updateContent() string {
	title := m.txtStyle.Align(lipgloss.Center, lipgloss.Center).Render("Habit Dash")

	summary := m.data.Summary
	progressStr := fmt.Sprintf(
		"%d / %d done today (%d%%)",
		summary.CompletedToday,
		len(summary.Habits),
		summary.DailyProgress,
	)

	rank := m.data.Rank
	rankStr := m.renderer.NewStyle().
		Foreground(lipgloss.Color(rank.Color)).
		Bold(true).
		Render(fmt.Sprintf("%s  %d pts", rank, rank.Points))

	habitTable := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("habit", "streak", "best", "7d", "30d", "rate", "last 7").
		Rows(habitRows(m.data)...).
		Render()

	stats := m.data.Stats
	statsStr := fmt.Sprintf(
		"%d active  %d%% avg  longest streak %d",
		stats.ActiveHabits,
		stats.AverageSuccessRate,
		stats.LongestCurrentStreak,
	)

	sections := []string{title, progressStr, rankStr, habitTable, statsStr}
	if m.err != nil {
		sections = append(sections, m.quitStyle.Render(m.err.Error()))
	}
	sections = append(sections, m.quitStyle.Render("r refresh • q quit"))

	style := m.renderer.NewStyle().Align(lipgloss.Center).Border(lipgloss.NormalBorder())
	return style.Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func habitRows(data models.DashboardResponse) [][]string {
	rows := make([][]string, 0, len(data.Summary.Habits))
	for _, h := range data.Summary.Habits {
		a := data.Analytics[h.HabitID]
		name := h.Name
		if h.TodayCompleted {
			name = Strikethrough + name + Reset
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", a.CurrentStreak),
			fmt.Sprintf("%d", a.BestStreak),
			fmt.Sprintf("%d", h.CompletionsThisWeek),
			fmt.Sprintf("%d", h.CompletionsThisMonth),
			fmt.Sprintf("%d%%", h.SuccessRate),
			recentStrip(a.Last30Days, recentDays),
		})
	}
	return rows
}

// recentStrip renders the trailing n days, oldest first.
func recentStrip(days []models.DayStatus, n int) string {
	if len(days) > n {
		days = days[len(days)-n:]
	}
	var b strings.Builder
	for _, d := range days {
		if d.Completed {
			b.WriteString("■")
		} else {
			b.WriteString("·")
		}
	}
	return b.String()
}

func (m model) View() string {
	if !m.ready {
		return m.content
	}
	return m.viewport.View()
}
