package predictor

import "context"

// Provider is the contract for any model backend the prediction proxy can
// forward to. The proxy is stateless: one prompt in, one completion out.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}
