package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"habitdash/internal/app"
	"habitdash/internal/config"
	"habitdash/internal/logger"
	"habitdash/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "test" {
		f, _ := tea.LogToFile("test.log", "")
		defer f.Close()
		a, err := app.Open(cfg)
		if err != nil {
			log.Fatal("could not open app", "err", err)
		}
		defer a.Close()
		m := newModel(dashboardFor(a), 10, 10, lipgloss.DefaultRenderer())
		m = m.updateState()
		prog := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := prog.Run(); err != nil {
			slog.Error("error running program", "err", err)
		}
		return
	}

	if _, err := logger.Init(logger.Config{Level: cfg.LogLevel, Dir: cfg.LogDir, Prefix: "habitdash"}); err != nil {
		log.Fatal("could not init logger", "err", err)
	}
	a, err := app.Open(cfg)
	if err != nil {
		log.Fatal("could not open app", "err", err)
	}
	defer a.Close()
	dashboard := dashboardFor(a)

	s, err := wish.NewServer(
		wish.WithAddress(cfg.SSHAddr),
		wish.WithHostKeyPath(cfg.SSHHostKey),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler(dashboard)),
			activeterm.Middleware(), // Bubble Tea apps usually require a PTY.
			logging.Middleware(),
		),
	)
	if err != nil {
		log.Fatal("Could not create server", "error", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "addr", cfg.SSHAddr)
	go func() {
		if err = s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			done <- nil
		}
	}()

	<-done
	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer func() { cancel() }()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop server", "error", err)
	}
}

func dashboardFor(a *app.App) *services.DashboardService {
	return services.NewDashboardService(a.Client, a.Client, a.Engine)
}

// teaHandler builds one model per session. Styles come from the session's
// renderer so colors match the client terminal, not the server.
func teaHandler(dashboard Dashboard) bubbletea.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		// This should never fail, as we are using the activeterm middleware.
		pty, _, _ := s.Pty()

		renderer := bubbletea.MakeRenderer(s)
		m := newModel(dashboard, pty.Window.Width, pty.Window.Height, renderer)
		m = m.updateState()
		return m, []tea.ProgramOption{tea.WithAltScreen()}
	}
}
