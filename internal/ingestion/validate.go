package ingestion

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultMaxResumeBytes is the upload size limit when none is configured.
const DefaultMaxResumeBytes int64 = 10 << 20

// ValidateResumeFile checks an upload's name and size before it is read.
// A non-positive maxBytes uses DefaultMaxResumeBytes.
func ValidateResumeFile(filename string, size, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxResumeBytes
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := extensionFormats[ext]; !ok {
		return &FileValidationError{Filename: filename, Message: "unsupported file extension"}
	}
	if size <= 0 {
		return &FileValidationError{Filename: filename, Message: "file is empty"}
	}
	if size > maxBytes {
		return &FileValidationError{
			Filename: filename,
			Message:  fmt.Sprintf("file is %d bytes, limit is %d", size, maxBytes),
		}
	}
	return nil
}
