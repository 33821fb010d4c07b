package csv

import (
	"io"
	"net/http"

	"codeberg.org/da-project/server/internal/csvclean"
	"codeberg.org/da-project/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// maximum accepted CSV upload size (8 MiB)
const maxUploadBytes = 8 << 20

// CleanCSVHandler cleans an uploaded CSV and returns the result without
// persisting anything
func CleanCSVHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
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

		contents, err := io.ReadAll(file)
		if err != nil {
			errors.BadRequest(c, "failed to read csv_upload", err)
			return
		}

		result, err := csvclean.Clean(string(contents), strategy)
		if err != nil {
			errors.UnprocessableEntity(c, err.Error())
			return
		}

		c.JSON(http.StatusOK, CleanResponse{
			CSV:     result.CSV,
			Columns: result.Columns,
		})
	}
}
