package pages

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"codeberg.org/da-project/server/api/rest/pagination"
	"codeberg.org/da-project/server/daproject/columns"
	"codeberg.org/da-project/server/daproject/pages"
	"codeberg.org/da-project/server/daproject/reports"
	"codeberg.org/da-project/server/internal/errors"
	"codeberg.org/da-project/server/internal/gemini"
	"github.com/gin-gonic/gin"
)

const pageOverviewPrompt = "Given this data and a hypothetical report page made using it, " +
	"give an overview of the report page as if it is already done."

// ListPagesHandler lists a report's pages with pagination
func ListPagesHandler(reportRepo *reports.Repository, pageRepo *pages.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, ok := errors.ValidatePathID(c, "reportId", "report")
		if !ok {
			return
		}

		if ok := reportMustExist(c, reportRepo, reportID); !ok {
			return
		}

		params := pagination.FromContext(c)

		pagesList, total, err := pageRepo.List(c.Request.Context(), reportID, params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list pages", err)
			return
		}

		c.JSON(http.StatusOK, PagesListResponse{
			Pages:      pagesList,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// CreatePageHandler creates a page on a report and generates its overview
// from the columns the page selects
func CreatePageHandler(reportRepo *reports.Repository, pageRepo *pages.Repository, columnRepo *columns.Repository, generator gemini.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, ok := errors.ValidatePathID(c, "reportId", "report")
		if !ok {
			return
		}

		if ok := reportMustExist(c, reportRepo, reportID); !ok {
			return
		}

		var req pages.CreatePageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		labels := splitLabels(req.Labels)

		cols, _, err := columnRepo.List(c.Request.Context(), reportID, columns.ListFilter{Labels: labels})
		if err != nil {
			errors.InternalError(c, "failed to load page columns", err)
			return
		}
		if len(cols) != len(labels) {
			errors.NotFound(c, "column")
			return
		}

		prompt := gemini.BuildPrompt(pageOverviewPrompt, map[string]string{
			"page_name":  req.Name,
			"chart_type": string(req.ChartType),
			"columns":    describeColumns(cols),
		})

		overview, err := generator.GenerateContent(c.Request.Context(), gemini.DefaultModel, prompt)
		if err != nil {
			errors.BadGateway(c, "overview generation failed", err)
			return
		}

		page, err := pageRepo.Create(c.Request.Context(), reportID, req, overview)
		if err != nil {
			errors.InternalError(c, "failed to create page", err)
			return
		}

		c.JSON(http.StatusCreated, page)
	}
}

// GetPageHandler gets a single page scoped to its report
func GetPageHandler(pageRepo *pages.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, ok := errors.ValidatePathID(c, "reportId", "report")
		if !ok {
			return
		}
		pageID, ok := errors.ValidatePathID(c, "pageId", "page")
		if !ok {
			return
		}

		page, err := pageRepo.Get(c.Request.Context(), reportID, pageID)
		if err != nil {
			if stderrors.Is(err, pages.ErrPageNotFound) {
				errors.NotFound(c, "page")
				return
			}

			errors.InternalError(c, "failed to get page", err)
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

// UpdatePageHandler updates a page's name, overview, chart type or labels
func UpdatePageHandler(pageRepo *pages.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, ok := errors.ValidatePathID(c, "reportId", "report")
		if !ok {
			return
		}
		pageID, ok := errors.ValidatePathID(c, "pageId", "page")
		if !ok {
			return
		}

		var req pages.UpdatePageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		page, err := pageRepo.Update(c.Request.Context(), reportID, pageID, req)
		if err != nil {
			if stderrors.Is(err, pages.ErrPageNotFound) {
				errors.NotFound(c, "page")
				return
			}

			errors.InternalError(c, "failed to update page", err)
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

// DeletePageHandler deletes a page and its comments
func DeletePageHandler(pageRepo *pages.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, ok := errors.ValidatePathID(c, "reportId", "report")
		if !ok {
			return
		}
		pageID, ok := errors.ValidatePathID(c, "pageId", "page")
		if !ok {
			return
		}

		page, err := pageRepo.Delete(c.Request.Context(), reportID, pageID)
		if err != nil {
			if stderrors.Is(err, pages.ErrPageNotFound) {
				errors.NotFound(c, "page")
				return
			}

			errors.InternalError(c, "failed to delete page", err)
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

func reportMustExist(c *gin.Context, reportRepo *reports.Repository, reportID int64) bool {
	exists, err := reportRepo.Exists(c.Request.Context(), reportID)
	if err != nil {
		errors.InternalError(c, "failed to check report", err)
		return false
	}
	if !exists {
		errors.NotFound(c, "report")
		return false
	}
	return true
}

// parses the comma-separated label selection into a unique, ordered set
func splitLabels(raw string) []string {
	parts := strings.Split(raw, ",")
	labels := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		if _, dup := seen[trimmed]; dup {
			continue
		}

		seen[trimmed] = struct{}{}
		labels = append(labels, trimmed)
	}

	return labels
}

// renders the selected columns as prompt context, one line per column
func describeColumns(cols []columns.Column) string {
	var sb strings.Builder

	for i := range cols {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s (%s): %s", cols[i].Label, cols[i].Dtype, cols[i].Rows)
	}

	return sb.String()
}
