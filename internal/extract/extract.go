package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"careercompass-backend/internal/shared/telemetry"
)

// Kind identifies the declared resume file type. Anything else is rejected
// by the routing layer before reaching this package.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
)

const previewLimit = 1000

// Extract pulls best-effort plain text from the file at path.
// It never fails: any read or parse error is logged and yields an empty
// string, which the resume pipeline treats as "nothing extracted".
func Extract(path string, kind Kind) string {
	data, err := os.ReadFile(path)
	if err != nil {
		telemetry.Error("extract.read_failed", map[string]any{"kind": string(kind), "err": err.Error()})
		return ""
	}

	var text string
	switch kind {
	case KindPDF:
		text, err = extractPDF(data)
	case KindDOCX:
		text, err = extractDOCX(data)
	default:
		telemetry.Error("extract.unsupported_kind", map[string]any{"kind": string(kind)})
		return ""
	}
	if err != nil {
		telemetry.Error("extract.failed", map[string]any{"kind": string(kind), "err": err.Error()})
		return ""
	}

	telemetry.Debug("extract.preview", map[string]any{"kind": string(kind), "text": preview(text)})
	return text
}

// extractPDF concatenates each page's plain text in page order.
// Library: github.com/ledongthuc/pdf.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		buf.WriteString(content)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

// extractDOCX reads word/document.xml out of the OOXML zip and flattens it
// to plain text, one line per paragraph.
func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	return flattenDocxXML(raw)
}

func flattenDocxXML(raw []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return buf.String(), nil
}

func preview(text string) string {
	if len(text) <= previewLimit {
		return text
	}
	return text[:previewLimit]
}
