package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/kulhunter/eventis-backend/internal/models"
)

// Recommender answers free-form questions about the caller's current event
// list through the same gated model as the scrape path.
type Recommender struct {
	model TextGenerator
}

func NewRecommender(model TextGenerator) *Recommender {
	return &Recommender{model: model}
}

// Recommend builds the chatbot prompt and returns the model's reply verbatim.
func (r *Recommender) Recommend(ctx context.Context, question string, events []models.Event) (string, error) {
	reply, err := r.model.Generate(ctx, BuildRecommendPrompt(question, events))
	if err != nil {
		return "", fmt.Errorf("recommendation: %w", err)
	}
	return strings.TrimSpace(reply), nil
}
