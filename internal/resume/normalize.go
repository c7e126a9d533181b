package resume

import (
	"encoding/json"
	"strings"

	"careercompass-backend/internal/llm"
	"careercompass-backend/internal/shared/telemetry"
)

// Outcome reports how a Record was produced. The HTTP response looks the
// same either way; outcomes exist so logs can tell "nothing found" apart
// from "model output discarded".
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeNoContent Outcome = "no_content"
	OutcomeBadJSON   Outcome = "bad_json"
)

// Normalize converts a raw gateway response into a well-formed Record.
// It never fails: unrecognized response shapes and malformed JSON both
// degrade to the canonical empty Record.
func Normalize(raw json.RawMessage) (Record, Outcome) {
	text, err := llm.TextFromResponse(raw)
	if err != nil {
		telemetry.Error("resume.normalize.no_content", map[string]any{"err": err.Error()})
		return EmptyRecord(), OutcomeNoContent
	}

	cleaned := stripFences(text)

	var rec Record
	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		telemetry.Error("resume.normalize.bad_json", map[string]any{"err": err.Error()})
		return EmptyRecord(), OutcomeBadJSON
	}
	fillEmpty(&rec)
	return rec, OutcomeOK
}

// stripFences removes a surrounding markdown code fence, with or without
// the json language tag, before parsing.
func stripFences(text string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
