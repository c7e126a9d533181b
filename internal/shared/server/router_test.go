package server

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careercompass-backend/internal/shared/config"
)

type stubLLM struct {
	calls int
	raw   json.RawMessage
}

func (s *stubLLM) GenerateContent(ctx context.Context, prompt string) (json.RawMessage, error) {
	s.calls++
	return s.raw, nil
}

func testConfig() config.Config {
	return config.Config{
		Port:            "8080",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LLMModel:        "gemini-2.5-pro",
		Env:             "dev",
	}
}

func TestRootReturnsStatusMessage(t *testing.T) {
	router := NewRouter(testConfig(), &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if body := strings.TrimSpace(resp.Body.String()); body != `{"message":"CareerCompass Backend Running"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestChatEndToEnd(t *testing.T) {
	llmStub := &stubLLM{raw: json.RawMessage(`{"candidates":[{"content":{"parts":[{"text":"Hi there"}]}}]}`)}
	router := NewRouter(testConfig(), llmStub)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": "Hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if body := strings.TrimSpace(resp.Body.String()); body != `{"reply":"Hi there"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestChatEmptyMessageEndToEnd(t *testing.T) {
	router := NewRouter(testConfig(), &stubLLM{})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": ""}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if body := strings.TrimSpace(resp.Body.String()); body != `{"error":"Message is required"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

// A docx whose only paragraph is whitespace must come back as the canonical
// empty record without any model call.
func TestUploadWhitespaceResumeEndToEnd(t *testing.T) {
	llmStub := &stubLLM{raw: json.RawMessage(`{"candidates":[]}`)}
	router := NewRouter(testConfig(), llmStub)

	var doc bytes.Buffer
	zw := zip.NewWriter(&doc)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	xml := `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t xml:space="preserve">   </w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(xml)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("resume", "blank.docx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(doc.Bytes()); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload-resume", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	expected := `{"personalInfo":{},"skills":[],"experience":[],"certifications":[]}`
	if got := strings.TrimSpace(resp.Body.String()); got != expected {
		t.Fatalf("unexpected body: %s", got)
	}
	if llmStub.calls != 0 {
		t.Fatalf("expected no gateway calls, got %d", llmStub.calls)
	}
}

func TestAddr(t *testing.T) {
	cases := []struct {
		port string
		want string
	}{
		{"", ":8080"},
		{"9000", ":9000"},
		{":9000", ":9000"},
	}
	for _, tc := range cases {
		if got := Addr(tc.port); got != tc.want {
			t.Fatalf("Addr(%q) = %q, want %q", tc.port, got, tc.want)
		}
	}
}
