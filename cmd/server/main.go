package main

import (
	"log"
	"net/http"
	"os"

	_ "actipoint/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"actipoint/internal/cache"
	"actipoint/internal/config"
	"actipoint/internal/db"
	"actipoint/internal/handler"
	"actipoint/internal/model"
	"actipoint/internal/repository"
	"actipoint/internal/router"
	"actipoint/internal/service"
)

// @title Community Activity API
// @version 1.0
// @description Community activity backend with user registration, an activity catalog, a reward point ledger, and verification photo uploads.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.PointEntry{},
			&model.Photo{},
			&model.Comment{},
			&model.Activity{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Activity{},
		&model.Comment{},
		&model.Photo{},
		&model.PointEntry{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)
	photoRepo := repository.NewPhotoRepository(gormDB)
	entryRepo := repository.NewPointEntryRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	activityService := service.NewActivityService(activityRepo, cacheClient)
	ledgerService := service.NewLedgerService(userRepo, entryRepo)
	photoService := service.NewPhotoService(photoRepo, ledgerService, cfg.UploadDir)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	activityHandler := handler.NewActivityHandler(activityService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	photoHandler := handler.NewPhotoHandler(photoService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		activityHandler,
		ledgerHandler,
		photoHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
