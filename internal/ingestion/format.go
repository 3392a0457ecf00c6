package ingestion

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format is a supported document format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

var extensionFormats = map[string]Format{
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".html":     FormatHTML,
	".htm":      FormatHTML,
}

var mediaTypeFormats = map[string]Format{
	"text/plain":    FormatText,
	"text/markdown": FormatMarkdown,
	"text/html":     FormatHTML,
}

// DetectFormat picks the format from the file extension, then the media type.
// A file without either defaults to plain text.
func DetectFormat(filename, contentType string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if f, ok := extensionFormats[ext]; ok {
		return f, nil
	}

	mediaType := ""
	if contentType != "" {
		if mt, _, err := mime.ParseMediaType(contentType); err == nil {
			mediaType = mt
		}
	}
	if f, ok := mediaTypeFormats[mediaType]; ok {
		return f, nil
	}

	if ext == "" && (mediaType == "" || mediaType == "application/octet-stream") {
		return FormatText, nil
	}

	name := strings.TrimPrefix(ext, ".")
	if name == "" {
		name = mediaType
	}
	return "", &DocumentFormatError{Filename: filename, Format: name}
}

// Extract returns the cleaned text of an uploaded document.
func Extract(filename, contentType string, data []byte) (*Document, error) {
	format, err := DetectFormat(filename, contentType)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, &DocumentFormatError{Filename: filename, Format: string(format), Reason: "content is not valid UTF-8"}
	}

	var text string
	switch format {
	case FormatHTML:
		text, err = ExtractText(string(data))
		if err != nil {
			return nil, err
		}
	default:
		text = CleanText(string(data))
	}
	return NewDocument(text, filename, format), nil
}

// ReadFile reads and extracts a document from disk.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Extract(filepath.Base(path), "", data)
}
