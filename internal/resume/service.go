package resume

import (
	"context"
	"strings"

	"careercompass-backend/internal/extract"
	"careercompass-backend/internal/llm"
	"careercompass-backend/internal/shared/telemetry"
)

// Service runs the resume pipeline: extract, prompt, generate, normalize.
type Service struct {
	// Extract produces plain text from an uploaded file. Overridable in
	// tests; defaults to extract.Extract.
	Extract func(path string, kind extract.Kind) string
	LLM     llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{
		Extract: extract.Extract,
		LLM:     client,
	}
}

// Parse returns a structured Record for the file at path. It never returns
// an error: every internal failure degrades to the canonical empty Record,
// and files with no extractable text skip the model call entirely.
func (s *Service) Parse(ctx context.Context, path string, kind extract.Kind) Record {
	text := s.Extract(path, kind)
	if strings.TrimSpace(text) == "" {
		telemetry.Info("resume.parse.no_text", map[string]any{"kind": string(kind)})
		return EmptyRecord()
	}

	prompt := llm.BuildExtractionPrompt(text)
	raw, err := s.LLM.GenerateContent(ctx, prompt)
	if err != nil {
		telemetry.Error("resume.parse.generate_failed", map[string]any{"kind": string(kind), "err": err.Error()})
		return EmptyRecord()
	}

	rec, outcome := Normalize(raw)
	if outcome != OutcomeOK {
		telemetry.Info("resume.parse.degraded", map[string]any{"kind": string(kind), "outcome": string(outcome)})
	}
	return rec
}
