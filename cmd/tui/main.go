package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "modernc.org/sqlite"

	"github.com/saytruth/saytruth/internal/buildinfo"
	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/config"
	"github.com/saytruth/saytruth/internal/client/services"
	"github.com/saytruth/saytruth/internal/client/session"
	"github.com/saytruth/saytruth/internal/client/store"
	"github.com/saytruth/saytruth/internal/client/tui"
	"github.com/saytruth/saytruth/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// the TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile("saytruth-tui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer logFile.Close()
	logger := logging.NewTextLogger(logFile, slog.LevelInfo)

	st, db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer db.Close()

	client := api.NewHTTPClient(cfg.ServerEndpointAddr, cfg.RequestTimeout)
	sess := session.NewController(client, st, logger)

	model := tui.NewModel(
		sess,
		services.NewLinkService(client, sess, logger),
		services.NewMessageService(client, logger),
		services.NewUserService(client, logger),
	)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("%v", err)
	}

}
