package gemini

import "context"

// generates text from a prompt. Satisfied by *Client; handlers depend on
// this interface so tests can stub the model out.
type Generator interface {
	GenerateContent(ctx context.Context, model, prompt string) (string, error)
}

// models accepted by the prompt endpoint
const (
	ModelFlash   = "gemini-1.5-flash"
	ModelFlash8B = "gemini-1.5-flash-8b"
	ModelPro     = "gemini-1.5-pro"

	DefaultModel = ModelFlash
)

// reports whether the model name is on the allowlist
func IsSupportedModel(model string) bool {
	switch model {
	case ModelFlash, ModelFlash8B, ModelPro:
		return true
	default:
		return false
	}
}

// request/response wire types for the generateContent API

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
	Usage      struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

type candidate struct {
	Content struct {
		Parts []part `json:"parts"`
		Role  string `json:"role"`
	} `json:"content"`
	FinishReason string `json:"finishReason"`
}
