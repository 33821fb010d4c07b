package comments

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/da-project/server/api/rest/pagination"
	"codeberg.org/da-project/server/daproject/comments"
	"codeberg.org/da-project/server/daproject/pages"
	"codeberg.org/da-project/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListCommentsHandler lists a page's comments with pagination
func ListCommentsHandler(commentRepo *comments.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, pageID, ok := pathIDs(c)
		if !ok {
			return
		}

		params := pagination.FromContext(c)

		commentsList, total, err := commentRepo.List(c.Request.Context(), reportID, pageID, params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list comments", err)
			return
		}

		c.JSON(http.StatusOK, CommentsListResponse{
			Comments:   commentsList,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// CreateCommentHandler adds a comment to a page
func CreateCommentHandler(pageRepo *pages.Repository, commentRepo *comments.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, pageID, ok := pathIDs(c)
		if !ok {
			return
		}

		// the page lookup also verifies the report scope
		if _, err := pageRepo.Get(c.Request.Context(), reportID, pageID); err != nil {
			if stderrors.Is(err, pages.ErrPageNotFound) {
				errors.NotFound(c, "page")
				return
			}

			errors.InternalError(c, "failed to check page", err)
			return
		}

		var req comments.CreateCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		comment, err := commentRepo.Create(c.Request.Context(), pageID, req)
		if err != nil {
			errors.InternalError(c, "failed to create comment", err)
			return
		}

		c.JSON(http.StatusCreated, comment)
	}
}

// UpdateCommentHandler updates a comment's text
func UpdateCommentHandler(commentRepo *comments.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, pageID, ok := pathIDs(c)
		if !ok {
			return
		}
		commentID, ok := errors.ValidatePathID(c, "commentId", "comment")
		if !ok {
			return
		}

		var req comments.UpdateCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		comment, err := commentRepo.Update(c.Request.Context(), reportID, pageID, commentID, req)
		if err != nil {
			if stderrors.Is(err, comments.ErrCommentNotFound) {
				errors.NotFound(c, "comment")
				return
			}

			errors.InternalError(c, "failed to update comment", err)
			return
		}

		c.JSON(http.StatusOK, comment)
	}
}

// DeleteCommentHandler deletes a comment
func DeleteCommentHandler(commentRepo *comments.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, pageID, ok := pathIDs(c)
		if !ok {
			return
		}
		commentID, ok := errors.ValidatePathID(c, "commentId", "comment")
		if !ok {
			return
		}

		comment, err := commentRepo.Delete(c.Request.Context(), reportID, pageID, commentID)
		if err != nil {
			if stderrors.Is(err, comments.ErrCommentNotFound) {
				errors.NotFound(c, "comment")
				return
			}

			errors.InternalError(c, "failed to delete comment", err)
			return
		}

		c.JSON(http.StatusOK, comment)
	}
}

func pathIDs(c *gin.Context) (reportID, pageID int64, ok bool) {
	reportID, ok = errors.ValidatePathID(c, "reportId", "report")
	if !ok {
		return 0, 0, false
	}

	pageID, ok = errors.ValidatePathID(c, "pageId", "page")
	if !ok {
		return 0, 0, false
	}

	return reportID, pageID, true
}
