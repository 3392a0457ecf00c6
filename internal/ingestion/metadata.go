package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Document is extracted, cleaned text plus where it came from.
type Document struct {
	Text      string `json:"text"`
	Filename  string `json:"filename,omitempty"`
	Format    Format `json:"format"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of Text
}

// NewDocument wraps cleaned text with the current timestamp and its hash.
func NewDocument(text, filename string, format Format) *Document {
	return &Document{
		Text:      text,
		Filename:  filename,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(text),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
