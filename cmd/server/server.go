package main

import (
	"context"
	"fmt"

	"codeberg.org/da-project/server/daproject/columns"
	"codeberg.org/da-project/server/daproject/comments"
	"codeberg.org/da-project/server/daproject/pages"
	"codeberg.org/da-project/server/daproject/reports"
	"codeberg.org/da-project/server/internal/config"
	"codeberg.org/da-project/server/internal/storage"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	db, err := storage.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// create missing tables so a fresh database is usable immediately
	if err := storage.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	reportRepo := reports.NewRepository(db)
	pageRepo := pages.NewRepository(db)
	columnRepo := columns.NewRepository(db)
	commentRepo := comments.NewRepository(db)

	services := InitializeServices(cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		db:          db,
		config:      cfg,
		reportRepo:  reportRepo,
		pageRepo:    pageRepo,
		columnRepo:  columnRepo,
		commentRepo: commentRepo,
		services:    services,
		router:      router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
