package dto

// PredictionRequest wraps a free-form match description sent to the AI
// prediction proxy. The proxy is a stateless request/response forwarder.
type PredictionRequest struct {
	Prompt string `json:"prompt" validate:"required,min=10"`
}

type PredictionResponse struct {
	Prediction string `json:"prediction"`
	Model      string `json:"model"`
}
