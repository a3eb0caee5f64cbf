package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/HungEzz/surfsui/infrastructure/database/postgres"
	"github.com/HungEzz/surfsui/infrastructure/repository"
	"github.com/HungEzz/surfsui/internal/api"
	"github.com/HungEzz/surfsui/internal/config"
	"github.com/HungEzz/surfsui/internal/monitor"
	"github.com/HungEzz/surfsui/internal/usecases/ranking"
	"github.com/HungEzz/surfsui/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	rankingRepo := repository.NewDAppRankingRepository(pgConn)
	rankingService := ranking.NewDAppRankingService(rankingRepo)

	healthMonitor := monitor.NewHealthMonitorService(pgConn, rankingRepo, cfg)
	if err := healthMonitor.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start health monitor")
	}

	server, err := api.New(cfg, pgConn, rankingService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	if log.IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
		return
	}

	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
