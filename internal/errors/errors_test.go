package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	return c, recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	return response
}

func TestNotFound(t *testing.T) {
	c, recorder := testContext(t)

	NotFound(c, "report")

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, CodeNotFound, response.Error)
	assert.Equal(t, "report not found", response.Message)
}

func TestNotFound_NoResource(t *testing.T) {
	c, recorder := testContext(t)

	NotFound(c, "")

	response := decodeError(t, recorder)
	assert.Equal(t, "resource not found", response.Message)
}

func TestBadRequest(t *testing.T) {
	c, recorder := testContext(t)

	BadRequest(c, "name is required", nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, CodeBadRequest, response.Error)
	assert.Equal(t, "name is required", response.Message)
	assert.Empty(t, response.Details)
}

func TestUnprocessableEntity(t *testing.T) {
	c, recorder := testContext(t)

	UnprocessableEntity(c, "operation not supported for column data type")

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, CodeUnprocessable, response.Error)
}

func TestInternalError_SanitizesDetails(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	c, recorder := testContext(t)

	InternalError(c, "failed to create report", fmt.Errorf("connection refused to 10.0.0.5:5432"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, CodeServerError, response.Error)
	assert.NotContains(t, response.Details, "10.0.0.5")
}

func TestBadGateway(t *testing.T) {
	c, recorder := testContext(t)

	BadGateway(c, "overview generation failed", fmt.Errorf("API request failed with status 500"))

	assert.Equal(t, http.StatusBadGateway, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, CodeBadGateway, response.Error)
}

func TestValidatePathID(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		wantID  int64
		wantOK  bool
		wantNot bool // expect a 404 response written
	}{
		{name: "valid id", param: "42", wantID: 42, wantOK: true},
		{name: "zero", param: "0", wantNot: true},
		{name: "negative", param: "-3", wantNot: true},
		{name: "not a number", param: "abc", wantNot: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, recorder := testContext(t)
			c.Params = gin.Params{{Key: "reportId", Value: tt.param}}

			id, ok := ValidatePathID(c, "reportId", "report")

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)

			if tt.wantNot {
				assert.Equal(t, http.StatusNotFound, recorder.Code)
			}
		})
	}
}

func TestClassifyError_NoRows(t *testing.T) {
	info := classifyError(pgx.ErrNoRows)

	assert.Equal(t, CategoryNotFound, info.category)
}

func TestClassifyError_Nil(t *testing.T) {
	info := classifyError(nil)

	assert.Empty(t, info.sanitized)
}
