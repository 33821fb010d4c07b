package pages

import (
	"codeberg.org/da-project/server/daproject/columns"
	"codeberg.org/da-project/server/daproject/pages"
	"codeberg.org/da-project/server/daproject/reports"
	"codeberg.org/da-project/server/internal/gemini"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, reportRepo *reports.Repository, pageRepo *pages.Repository, columnRepo *columns.Repository, generator gemini.Generator) {
	pagesGroup := router.Group("/report/:reportId/page")
	{
		pagesGroup.GET("", ListPagesHandler(reportRepo, pageRepo))
		pagesGroup.POST("", CreatePageHandler(reportRepo, pageRepo, columnRepo, generator))
		pagesGroup.GET("/:pageId", GetPageHandler(pageRepo))
		pagesGroup.PATCH("/:pageId", UpdatePageHandler(pageRepo))
		pagesGroup.DELETE("/:pageId", DeletePageHandler(pageRepo))
	}
}
