package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/saytruth/saytruth/internal/buildinfo"
	"github.com/saytruth/saytruth/internal/client/cli"
	"github.com/saytruth/saytruth/internal/client/config"
	"github.com/saytruth/saytruth/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
