package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"staffdir/docs"
	"staffdir/internal/cache"
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

const serviceName = "department"

// @title Department Service API
// @version 1.0
// @description Owns department records.
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
func main() {
	cfg, err := config.Load("8081")
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
		if err := db.Migrate(gormDB, &model.Department{}); err != nil {
			logger.Fatal("database migrate", zap.Error(err))
		}
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	defer cacheClient.Close()

	departmentRepo := repository.NewDepartmentRepository(gormDB)
	departmentService := service.NewDepartmentService(departmentRepo, cacheClient)
	departmentHandler := handler.NewDepartmentHandler(departmentService)

	if cfg.Server.SwaggerHost != "" {
		docs.SwaggerInfodepartment.Host = cfg.Server.SwaggerHost
	}

	e := router.New(serviceName, cfg, logger, metrics.New(serviceName+"-service"))
	router.RegisterDepartment(e, departmentHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := server.Run(ctx, e, cfg.Server); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
