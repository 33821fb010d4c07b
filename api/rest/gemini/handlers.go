package gemini

import (
	"net/http"

	"codeberg.org/da-project/server/internal/errors"
	"codeberg.org/da-project/server/internal/gemini"
	"github.com/gin-gonic/gin"
)

// GenerateHandler forwards a prompt to the model and returns its answer
func GenerateHandler(generator gemini.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		model := req.Model
		if model == "" {
			model = gemini.DefaultModel
		}
		if !gemini.IsSupportedModel(model) {
			errors.BadRequest(c, "unsupported model", nil)
			return
		}

		prompt := gemini.BuildPrompt(req.Prompt, req.Context)

		answer, err := generator.GenerateContent(c.Request.Context(), model, prompt)
		if err != nil {
			errors.BadGateway(c, "generation failed", err)
			return
		}

		c.JSON(http.StatusOK, GenerateResponse{
			Model:  model,
			Answer: answer,
		})
	}
}
