package resume

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"careercompass-backend/internal/extract"
)

type stubLLM struct {
	calls int
	raw   json.RawMessage
	err   error
}

func (s *stubLLM) GenerateContent(ctx context.Context, prompt string) (json.RawMessage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.raw, nil
}

func stubExtractor(text string) (func(path string, kind extract.Kind) string, *int) {
	calls := new(int)
	return func(path string, kind extract.Kind) string {
		*calls++
		return text
	}, calls
}

func TestParseWhitespaceTextSkipsLLM(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t \n"} {
		llmStub := &stubLLM{raw: candidatesBody(sampleRecordJSON)}
		extractFn, _ := stubExtractor(text)
		svc := &Service{Extract: extractFn, LLM: llmStub}

		rec := svc.Parse(context.Background(), "/tmp/whatever.pdf", extract.KindPDF)

		if !reflect.DeepEqual(rec, EmptyRecord()) {
			t.Fatalf("expected canonical empty record for %q, got %+v", text, rec)
		}
		if llmStub.calls != 0 {
			t.Fatalf("expected no gateway calls for %q, got %d", text, llmStub.calls)
		}
	}
}

func TestParseGatewayFailureDegrades(t *testing.T) {
	llmStub := &stubLLM{err: errors.New("gateway unreachable")}
	extractFn, _ := stubExtractor("Jane Doe, Software Engineer")
	svc := &Service{Extract: extractFn, LLM: llmStub}

	rec := svc.Parse(context.Background(), "/tmp/resume.pdf", extract.KindPDF)

	if !reflect.DeepEqual(rec, EmptyRecord()) {
		t.Fatalf("expected canonical empty record, got %+v", rec)
	}
	if llmStub.calls != 1 {
		t.Fatalf("expected 1 gateway call, got %d", llmStub.calls)
	}
}

func TestParseReturnsNormalizedRecord(t *testing.T) {
	llmStub := &stubLLM{raw: candidatesBody(sampleRecordJSON)}
	extractFn, extractCalls := stubExtractor("Jane Doe, Software Engineer")
	svc := &Service{Extract: extractFn, LLM: llmStub}

	rec := svc.Parse(context.Background(), "/tmp/resume.docx", extract.KindDOCX)

	if *extractCalls != 1 {
		t.Fatalf("expected 1 extract call, got %d", *extractCalls)
	}
	if rec.PersonalInfo["name"] != "Jane Doe" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestParseIdempotent(t *testing.T) {
	llmStub := &stubLLM{raw: candidatesBody(sampleRecordJSON)}
	extractFn, _ := stubExtractor("Jane Doe, Software Engineer")
	svc := &Service{Extract: extractFn, LLM: llmStub}

	first := svc.Parse(context.Background(), "/tmp/resume.pdf", extract.KindPDF)
	second := svc.Parse(context.Background(), "/tmp/resume.pdf", extract.KindPDF)

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if string(firstJSON) != string(secondJSON) {
		t.Fatalf("expected byte-identical records:\n%s\n%s", firstJSON, secondJSON)
	}
}
