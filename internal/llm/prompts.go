package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/extract_v1.txt
	extractPromptV1 string
)

// BuildExtractionPrompt embeds the resume text into the fixed structured
// extraction template. The same template is used regardless of resume
// content or length.
func BuildExtractionPrompt(resumeText string) string {
	return strings.ReplaceAll(extractPromptV1, "{{RESUME_TEXT}}", resumeText)
}
