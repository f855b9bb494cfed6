package service

import (
	"context"
	"errors"
	"strings"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/logger"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/predictor"
)

const predictionSystemPrompt = `You are a sports betting analyst. Given a match description, give a short, reasoned prediction (likely outcome, suggested market). Always include a one-line disclaimer that betting involves risk. Do not invent odds.`

type IPredictionService interface {
	Predict(ctx context.Context, req *dto.PredictionRequest) (*dto.PredictionResponse, error)
}

type predictionService struct {
	provider predictor.Provider
	logger   logger.ILogger
}

func NewPredictionService(provider predictor.Provider, log logger.ILogger) IPredictionService {
	return &predictionService{
		provider: provider,
		logger:   log,
	}
}

// Predict forwards the prompt to the configured model. Stateless: no
// conversation history, nothing is persisted.
func (s *predictionService) Predict(ctx context.Context, req *dto.PredictionRequest) (*dto.PredictionResponse, error) {
	if s.provider == nil {
		return nil, errors.New("prediction provider is not configured")
	}

	prompt := predictionSystemPrompt + "\n\nMatch: " + strings.TrimSpace(req.Prompt)

	answer, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("PREDICTION", "Provider call failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	return &dto.PredictionResponse{
		Prediction: answer,
		Model:      s.provider.ModelName(),
	}, nil
}
