package columns

import (
	stderrors "errors"
	"net/http"
	"strings"

	"codeberg.org/da-project/server/api/rest/pagination"
	"codeberg.org/da-project/server/daproject/columns"
	"codeberg.org/da-project/server/internal/csvclean"
	"codeberg.org/da-project/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListColumnsHandler lists a report's columns, optionally filtered by
// label and data type
func ListColumnsHandler(columnRepo *columns.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, ok := errors.ValidatePathID(c, "reportId", "report")
		if !ok {
			return
		}

		params := pagination.FromContext(c)
		filter := columns.ListFilter{Limit: params.Limit, Offset: params.Offset}

		if raw := c.Query("labels"); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					filter.Labels = append(filter.Labels, trimmed)
				}
			}
		}

		if raw := c.Query("dtype"); raw != "" {
			dtype, ok := csvclean.ParseDataType(raw)
			if !ok {
				errors.BadRequest(c, "unknown column type", nil)
				return
			}
			filter.Dtype = dtype
		}

		cols, total, err := columnRepo.List(c.Request.Context(), reportID, filter)
		if err != nil {
			errors.InternalError(c, "failed to list columns", err)
			return
		}

		c.JSON(http.StatusOK, ColumnsListResponse{
			Columns:    columns.Responses(cols),
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetColumnHandler gets a single column by label, optionally reduced
// through an aggregate operation
func GetColumnHandler(columnRepo *columns.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, ok := errors.ValidatePathID(c, "reportId", "report")
		if !ok {
			return
		}

		label := c.Param("label")

		column, err := columnRepo.GetByLabel(c.Request.Context(), reportID, label)
		if err != nil {
			if stderrors.Is(err, columns.ErrColumnNotFound) {
				errors.NotFound(c, "column")
				return
			}

			errors.InternalError(c, "failed to get column", err)
			return
		}

		op, ok := columns.ParseOperation(c.Query("operation"))
		if !ok {
			errors.BadRequest(c, "unknown operation", nil)
			return
		}

		value, err := column.Compute(op)
		if err != nil {
			switch {
			case stderrors.Is(err, columns.ErrUnsupportedOperation), stderrors.Is(err, columns.ErrEmptyColumn):
				errors.UnprocessableEntity(c, err.Error())
			default:
				errors.InternalError(c, "column operation failed", err)
			}
			return
		}

		c.JSON(http.StatusOK, ColumnValueResponse{
			Label:     column.Label,
			Dtype:     column.Dtype,
			Operation: op,
			Value:     value,
		})
	}
}
