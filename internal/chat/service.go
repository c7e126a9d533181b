package chat

import (
	"context"
	"fmt"

	"careercompass-backend/internal/llm"
)

// Service answers chat messages with a single gateway call per message.
// No conversation history is kept.
type Service struct {
	LLM llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Reply sends the message to the model and returns its reply verbatim.
// Gateway failures propagate to the caller, unlike the resume pipeline.
func (s *Service) Reply(ctx context.Context, message string) (string, error) {
	raw, err := s.LLM.GenerateContent(ctx, message)
	if err != nil {
		return "", fmt.Errorf("chat reply: %w", err)
	}
	text, err := llm.TextFromResponse(raw)
	if err != nil {
		return "", fmt.Errorf("chat reply: %w", err)
	}
	return text, nil
}
