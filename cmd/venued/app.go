package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-VenueService/internal/config"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
)

// App общие зависимости всех команд
type App struct {
	Cfg    *config.Config
	Logger *logger.Logger
	DB     *sql.DB
}

// initApp загружает конфигурацию, поднимает логгер и соединение с БД
func initApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Info("Configuration loaded from %s", configPath)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		log.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	return &App{Cfg: cfg, Logger: log, DB: db}, nil
}

func (a *App) Close() {
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Failed to close database: %v", err)
	}
	a.Logger.Close()
}
