package reports

import (
	stderrors "errors"
	"io"
	"net/http"

	"codeberg.org/da-project/server/api/rest/pagination"
	"codeberg.org/da-project/server/daproject/columns"
	"codeberg.org/da-project/server/daproject/reports"
	"codeberg.org/da-project/server/internal/csvclean"
	"codeberg.org/da-project/server/internal/errors"
	"codeberg.org/da-project/server/internal/gemini"
	"github.com/gin-gonic/gin"
)

const reportOverviewPrompt = "Given this data and a hypothetical report made using it, " +
	"give an overview of the report as if it is already done."

// maximum accepted CSV upload size (8 MiB)
const maxUploadBytes = 8 << 20

// ListReportsHandler lists all reports with pagination
func ListReportsHandler(reportRepo *reports.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromContext(c)

		reportsList, total, err := reportRepo.List(c.Request.Context(), params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list reports", err)
			return
		}

		c.JSON(http.StatusOK, ReportsListResponse{
			Reports:    reportsList,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// CreateReportHandler accepts a multipart CSV upload, cleans it, generates
// an overview and stores the report together with its columns
func CreateReportHandler(reportRepo *reports.Repository, columnRepo *columns.Repository, generator gemini.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			errors.BadRequest(c, "name is required", nil)
			return
		}

		strategy, ok := csvclean.ParseFillStrategy(c.PostForm("strategy"))
		if !ok {
			errors.BadRequest(c, "unknown fill strategy", nil)
			return
		}

		fileHeader, err := c.FormFile("csv_upload")
		if err != nil {
			errors.BadRequest(c, "csv_upload file is required", err)
			return
		}
		if fileHeader.Size > maxUploadBytes {
			errors.BadRequest(c, "csv_upload exceeds the maximum allowed size", nil)
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			errors.BadRequest(c, "failed to read csv_upload", err)
			return
		}
		defer file.Close()

		rawCSV, err := io.ReadAll(file)
		if err != nil {
			errors.BadRequest(c, "failed to read csv_upload", err)
			return
		}

		result, err := csvclean.Clean(string(rawCSV), strategy)
		if err != nil {
			errors.UnprocessableEntity(c, err.Error())
			return
		}

		prompt := gemini.BuildPrompt(reportOverviewPrompt, map[string]string{"data": result.CSV})

		overview, err := generator.GenerateContent(c.Request.Context(), gemini.DefaultModel, prompt)
		if err != nil {
			errors.BadGateway(c, "overview generation failed", err)
			return
		}

		report, err := reportRepo.Create(c.Request.Context(), name, rawCSV, result.CSV, overview)
		if err != nil {
			errors.InternalError(c, "failed to create report", err)
			return
		}

		cols, err := columnRepo.CreateBatch(c.Request.Context(), report.ID, result.Columns)
		if err != nil {
			errors.InternalError(c, "failed to store report columns", err)
			return
		}

		c.JSON(http.StatusCreated, ReportWithColumnsResponse{
			Report:  *report,
			Columns: columns.Responses(cols),
		})
	}
}

// GetReportHandler gets a single report by ID
func GetReportHandler(reportRepo *reports.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, ok := errors.ValidatePathID(c, "reportId", "report")
		if !ok {
			return
		}

		report, err := reportRepo.Get(c.Request.Context(), reportID)
		if err != nil {
			if stderrors.Is(err, reports.ErrReportNotFound) {
				errors.NotFound(c, "report")
				return
			}

			errors.InternalError(c, "failed to get report", err)
			return
		}

		c.JSON(http.StatusOK, report)
	}
}

// UpdateReportHandler updates a report's name and/or overview
func UpdateReportHandler(reportRepo *reports.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, ok := errors.ValidatePathID(c, "reportId", "report")
		if !ok {
			return
		}

		var req reports.UpdateReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		report, err := reportRepo.Update(c.Request.Context(), reportID, req)
		if err != nil {
			if stderrors.Is(err, reports.ErrReportNotFound) {
				errors.NotFound(c, "report")
				return
			}

			errors.InternalError(c, "failed to update report", err)
			return
		}

		c.JSON(http.StatusOK, report)
	}
}

// DeleteReportHandler deletes a report and everything attached to it
func DeleteReportHandler(reportRepo *reports.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reportID, ok := errors.ValidatePathID(c, "reportId", "report")
		if !ok {
			return
		}

		report, err := reportRepo.Delete(c.Request.Context(), reportID)
		if err != nil {
			if stderrors.Is(err, reports.ErrReportNotFound) {
				errors.NotFound(c, "report")
				return
			}

			errors.InternalError(c, "failed to delete report", err)
			return
		}

		c.JSON(http.StatusOK, report)
	}
}
