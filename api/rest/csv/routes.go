package csv

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/csv/clean", CleanCSVHandler())
}
