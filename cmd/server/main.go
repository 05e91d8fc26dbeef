package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/employee-org-analyzer/internal/app"
	"github.com/ogurasousui/employee-org-analyzer/internal/platform/config"
	"github.com/ogurasousui/employee-org-analyzer/internal/platform/logging"
	"github.com/ogurasousui/employee-org-analyzer/internal/platform/server"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.EffectivePath(*configPath))
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		logrus.Fatalf("failed to initialize logger: %v", err)
	}

	analysisSvc, cleanup, err := app.NewAnalysisService(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to initialize analysis service: %v", err)
	}
	defer cleanup()

	grpcServer := server.New(cfg.Server.ListenAddr, analysisSvc, logger)

	logger.WithFields(logrus.Fields{
		"listen_addr": cfg.Server.ListenAddr,
		"source":      cfg.Source.Kind,
	}).Info("gRPC server listening")

	if err := grpcServer.Run(ctx); err != nil {
		logger.Fatalf("server stopped with error: %v", err)
	}
}
