package gemini

import (
	"codeberg.org/da-project/server/internal/gemini"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, generator gemini.Generator) {
	router.POST("/gemini", GenerateHandler(generator))
}
