// Package ingestion converts uploaded resume documents (PDF, DOCX, HTML, plain text)
// into cleaned plain text for attribute extraction.
package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/talent-match/internal/fetch"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format is a supported resume document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
	FormatText Format = "text"
)

var extensionFormats = map[string]Format{
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".html": FormatHTML,
	".htm":  FormatHTML,
	".txt":  FormatText,
	".text": FormatText,
	".md":   FormatText,
}

var mimeFormats = map[string]Format{
	"application/pdf": FormatPDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDOCX,
	"text/html":  FormatHTML,
	"text/plain": FormatText,
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTab          = regexp.MustCompile(`<w:tab/>`)
	docxBreak        = regexp.MustCompile(`<w:br/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// DetectFormat determines a document's format from its content type, falling back
// to the file extension. Content types like application/octet-stream are ignored.
func DetectFormat(filename, contentType string) (Format, error) {
	if contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			if f, ok := mimeFormats[mediaType]; ok {
				return f, nil
			}
		}
	}

	name := filename
	if u, err := url.Parse(filename); err == nil && u.Path != "" {
		name = u.Path
	}
	ext := strings.ToLower(filepath.Ext(name))
	if f, ok := extensionFormats[ext]; ok {
		return f, nil
	}
	return "", &UnsupportedFormatError{Filename: filename, ContentType: contentType}
}

// ExtractText converts document bytes to cleaned plain text.
func ExtractText(format Format, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch format {
	case FormatPDF:
		text, err = extractPDFText(data)
	case FormatDOCX:
		text, err = extractDOCXText(data)
	case FormatHTML:
		text, err = fetch.ExtractMainText(string(data), fetch.ResumeSelectors(), fetch.PageNoiseSelectors()...)
	case FormatText:
		text = strings.ToValidUTF8(string(data), "�")
	default:
		return "", &UnsupportedFormatError{ContentType: string(format)}
	}
	if err != nil {
		return "", &DocumentError{Format: format, Message: "failed to extract text", Cause: err}
	}

	return CleanText(text), nil
}

// IngestFromFile reads a resume file, validates it against maxBytes, and returns its
// cleaned text with metadata.
func IngestFromFile(path string, maxBytes int64) (string, *Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if err := ValidateResumeFile(filepath.Base(path), info.Size(), maxBytes); err != nil {
		return "", nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Ingest(path, "", data)
}

// Ingest extracts text from an in-memory document. source names the document
// (a path or URL) for format detection and metadata.
func Ingest(source, contentType string, data []byte) (string, *Metadata, error) {
	format, err := DetectFormat(source, contentType)
	if err != nil {
		return "", nil, err
	}

	text, err := ExtractText(format, data)
	if err != nil {
		return "", nil, err
	}

	return text, NewMetadata(source, format, data, text), nil
}

// extractPDFText reads the plain text of every page. The pdf reader panics on some
// malformed files; those are reported as errors.
func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDOCXText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = docxBreak.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}
