package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/talent-match/internal/parsing"
)

const previewLength = 200

// Metadata describes an ingested resume document.
type Metadata struct {
	Source     string `json:"source,omitempty"` // Path or URL
	Format     Format `json:"format"`
	SizeBytes  int    `json:"size_bytes"`
	Hash       string `json:"hash"`        // SHA256 of the raw document
	TextLength int    `json:"text_length"` // Characters of cleaned text
	Preview    string `json:"preview,omitempty"`
	Timestamp  string `json:"timestamp"` // RFC3339
}

// NewMetadata builds metadata for a document and its extracted text.
func NewMetadata(source string, format Format, raw []byte, text string) *Metadata {
	return &Metadata{
		Source:     source,
		Format:     format,
		SizeBytes:  len(raw),
		Hash:       computeHash(raw),
		TextLength: len([]rune(text)),
		Preview:    parsing.TruncateRunes(text, previewLength),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
