package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// Client abstracts hosted generative-text providers. Implementations return
// the provider's raw response body; callers own decoding.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (json.RawMessage, error)
}

// ErrNoContent is returned when no recognized response shape carries text.
var ErrNoContent = errors.New("no content in model response")

// Provider responses have carried the generated text under more than one
// shape. Each variant is tried in a fixed priority order.
type generationsResponse struct {
	Generations []candidate `json:"generations"`
}

type candidatesResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"content"`
}

// TextFromResponse extracts the primary generated text from a raw provider
// response. It tries the "generations" shape, then the "candidates" shape,
// and returns ErrNoContent when neither yields a non-blank text part.
func TextFromResponse(raw json.RawMessage) (string, error) {
	var gens generationsResponse
	if err := json.Unmarshal(raw, &gens); err == nil {
		if text, ok := firstPartText(gens.Generations); ok {
			return text, nil
		}
	}

	var cands candidatesResponse
	if err := json.Unmarshal(raw, &cands); err == nil {
		if text, ok := firstPartText(cands.Candidates); ok {
			return text, nil
		}
	}

	return "", ErrNoContent
}

func firstPartText(candidates []candidate) (string, bool) {
	if len(candidates) == 0 || len(candidates[0].Content.Parts) == 0 {
		return "", false
	}
	text := candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
