package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/fantasy-hockey/internal/app"
	"github.com/riskibarqy/fantasy-hockey/internal/config"
	"github.com/riskibarqy/fantasy-hockey/internal/interfaces/cli"
	"github.com/riskibarqy/fantasy-hockey/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	if code, proceed := cli.Preflight(os.Args[1:], os.Stdout, os.Stderr); !proceed {
		return code
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprintln(os.Stderr, "hint: set ESPN_LEAGUE_ID, ESPN_SWID and ESPN_S2 in the environment or a .env file")
		return cli.ExitFailure
	}

	logger := logging.NewConsole(cfg.LogLevel, os.Stderr)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	cliApp, shutdown, err := app.NewCLI(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return cli.ExitFailure
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return cliApp.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
