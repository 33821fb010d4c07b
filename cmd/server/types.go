package main

import (
	"codeberg.org/da-project/server/daproject/columns"
	"codeberg.org/da-project/server/daproject/comments"
	"codeberg.org/da-project/server/daproject/pages"
	"codeberg.org/da-project/server/daproject/reports"
	"codeberg.org/da-project/server/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	reportRepo  *reports.Repository
	pageRepo    *pages.Repository
	columnRepo  *columns.Repository
	commentRepo *comments.Repository
	services    *Services
	router      *gin.Engine
}
