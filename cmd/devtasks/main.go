package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/kjstillabower/devtasks/internal/config"
	"github.com/kjstillabower/devtasks/internal/observability"
	"github.com/kjstillabower/devtasks/internal/updater"
)

func main() {
	logger, err := observability.NewConsoleLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = observability.FlushTelemetry(logger) }()

	app := newApp(logger)
	if err := app.Run(os.Args); err != nil {
		logger.Error("task failed", zap.Error(err))
		_ = observability.FlushTelemetry(logger)
		os.Exit(1)
	}
}

func newApp(logger *zap.Logger) *cli.App {
	app := cli.NewApp()
	app.Name = "devtasks"
	app.Usage = "developer-machine maintenance tasks"
	app.Commands = []cli.Command{
		{
			Name:  "update-vscode",
			Usage: "clone, build, install, and clean up the VS Code Insiders package",
			Action: func(c *cli.Context) error {
				return runUpdate(logger)
			},
		},
	}
	return app
}

func runUpdate(logger *zap.Logger) error {
	settings, err := config.LoadUpdaterSettings()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	u := updater.New(settings, updater.NewExecRunner(logger), logger)
	return u.Run(ctx)
}
