package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// returns the server health status
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: "da-project",
		Version: "1.0.0",
	})
}

// RootHandler serves the root smoke-test route
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hello": "world"})
}
