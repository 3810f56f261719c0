package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/earshot/earshot/pkg/earshot"
	"github.com/earshot/earshot/pkg/logging"
	"github.com/earshot/earshot/pkg/runner"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := earshot.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Init(cfg.LogLevel, cfg.LogFormat)

	app, err := earshot.NewApp(cfg, earshot.DefaultProviderRegistry())
	if err != nil {
		logger.Error("startup_failed", "error", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lr := runner.NewLifecycleRunner(app, runner.Hooks{
		OnStart: func() {
			if err := app.Start(ctx); err != nil {
				logger.Error("server_start_failed", "error", err.Error())
			}
		},
		OnStop: func() {
			logger.Info("shutdown_complete")
		},
	}, 15*time.Second)

	if err := lr.Run(ctx); err != nil {
		logger.Error("run_failed", "error", err.Error())
		os.Exit(1)
	}
}
