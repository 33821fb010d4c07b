package reports

import (
	"codeberg.org/da-project/server/daproject/columns"
	"codeberg.org/da-project/server/daproject/reports"
	"codeberg.org/da-project/server/internal/gemini"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, reportRepo *reports.Repository, columnRepo *columns.Repository, generator gemini.Generator) {
	reportsGroup := router.Group("/report")
	{
		reportsGroup.GET("", ListReportsHandler(reportRepo))
		reportsGroup.POST("", CreateReportHandler(reportRepo, columnRepo, generator))
		reportsGroup.GET("/:reportId", GetReportHandler(reportRepo))
		reportsGroup.PATCH("/:reportId", UpdateReportHandler(reportRepo))
		reportsGroup.DELETE("/:reportId", DeleteReportHandler(reportRepo))
	}
}
