package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/weblytics/traffic-dashboard-api/infrastructure/database/postgres"
	"github.com/weblytics/traffic-dashboard-api/infrastructure/repository"
	"github.com/weblytics/traffic-dashboard-api/infrastructure/sheets"
	"github.com/weblytics/traffic-dashboard-api/infrastructure/warehouse"
	"github.com/weblytics/traffic-dashboard-api/internal/api"
	"github.com/weblytics/traffic-dashboard-api/internal/cache"
	"github.com/weblytics/traffic-dashboard-api/internal/config"
	"github.com/weblytics/traffic-dashboard-api/internal/scheduler"
	"github.com/weblytics/traffic-dashboard-api/internal/usecases/authenticating"
	"github.com/weblytics/traffic-dashboard-api/internal/usecases/dashboarding"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appConn := pgconn(ctx, "application database", cfg.Database.DSN)
	defer appConn.Close()

	warehouseConn := pgconn(ctx, "analytics warehouse", cfg.Warehouse.DSN)
	defer warehouseConn.Close()

	userRepo := repository.NewUserRepository(appConn)
	authenticator := authenticating.NewService(userRepo, cfg)

	configSource := sheets.NewSource(cfg)
	warehouseClient := warehouse.NewClient(warehouseConn, cfg)

	dashboardService := dashboarding.NewService(
		configSource,
		warehouseClient,
		warehouseClient,
		cache.New(cfg.Cache.TTL),
	)

	refreshService := scheduler.NewDashboardRefreshService(dashboardService, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting the dashboard refresh scheduler")
	} else {
		logrus.Info("dashboard refresh scheduler started")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		authenticator,
		refreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and makes paths relative to this file
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, name, dsn string) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dsn)
	if err != nil {
		logrus.WithError(err).Fatalf("error connecting to the %s", name)
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatalf("error pinging the %s", name)
	}

	logrus.Infof("connection to the %s established", name)
	return conn
}
