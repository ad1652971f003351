package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"staffdir/docs"
	"staffdir/internal/cache"
	"staffdir/internal/client"
	"staffdir/internal/config"
	"staffdir/internal/db"
	"staffdir/internal/handler"
	"staffdir/internal/logging"
	"staffdir/internal/metrics"
	"staffdir/internal/model"
	"staffdir/internal/repository"
	"staffdir/internal/router"
	"staffdir/internal/server"
	"staffdir/internal/service"
)

const serviceName = "user"

// @title User Service API
// @version 1.0
// @description Owns user records and resolves their department from the department service.
// @host localhost:8082
// @BasePath /api/v1
// @schemes http
func main() {
	cfg, err := config.Load("8082")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(serviceName+"-service", cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	gormDB, err := db.NewMySQL(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}
	if cfg.Database.AutoMigrate {
		if err := db.Migrate(gormDB, &model.User{}); err != nil {
			logger.Fatal("database migrate", zap.Error(err))
		}
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	defer cacheClient.Close()

	m := metrics.New(serviceName + "-service")
	departmentClient := client.NewDepartmentClient(cfg.Department.BaseURL, cfg.Department.Timeout, m)
	logger.Info("department service configured",
		zap.String("baseURL", cfg.Department.BaseURL),
		zap.Duration("timeout", cfg.Department.Timeout),
	)

	userRepo := repository.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo, departmentClient, cacheClient)
	userHandler := handler.NewUserHandler(userService)

	if cfg.Server.SwaggerHost != "" {
		docs.SwaggerInfouser.Host = cfg.Server.SwaggerHost
	}

	e := router.New(serviceName, cfg, logger, m)
	router.RegisterUser(e, userHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := server.Run(ctx, e, cfg.Server); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
