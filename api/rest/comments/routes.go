package comments

import (
	"codeberg.org/da-project/server/daproject/comments"
	"codeberg.org/da-project/server/daproject/pages"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, pageRepo *pages.Repository, commentRepo *comments.Repository) {
	commentsGroup := router.Group("/report/:reportId/page/:pageId/comment")
	{
		commentsGroup.GET("", ListCommentsHandler(commentRepo))
		commentsGroup.POST("", CreateCommentHandler(pageRepo, commentRepo))
		commentsGroup.PATCH("/:commentId", UpdateCommentHandler(commentRepo))
		commentsGroup.DELETE("/:commentId", DeleteCommentHandler(commentRepo))
	}
}
