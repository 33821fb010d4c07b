package columns

import (
	"codeberg.org/da-project/server/daproject/columns"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, columnRepo *columns.Repository) {
	columnsGroup := router.Group("/report/:reportId/column")
	{
		columnsGroup.GET("", ListColumnsHandler(columnRepo))
		columnsGroup.GET("/:label", GetColumnHandler(columnRepo))
	}
}
