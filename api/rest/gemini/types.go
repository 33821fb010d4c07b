package gemini

// GenerateRequest asks the model for a completion, optionally with tagged
// context blocks appended to the prompt
type GenerateRequest struct {
	Prompt  string            `json:"prompt" binding:"required,max=20000"`
	Context map[string]string `json:"context,omitempty"`
	Model   string            `json:"model,omitempty"`
}

type GenerateResponse struct {
	Model  string `json:"model"`
	Answer string `json:"answer"`
}
