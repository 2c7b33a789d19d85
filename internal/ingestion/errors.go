package ingestion

import "fmt"

// UnsupportedFormatError is returned for documents that are not PDF, DOCX, HTML or text.
type UnsupportedFormatError struct {
	Filename    string
	ContentType string
}

func (e *UnsupportedFormatError) Error() string {
	switch {
	case e.Filename != "" && e.ContentType != "":
		return fmt.Sprintf("unsupported document format: %s (%s)", e.Filename, e.ContentType)
	case e.Filename != "":
		return fmt.Sprintf("unsupported document format: %s", e.Filename)
	default:
		return fmt.Sprintf("unsupported document format: %s", e.ContentType)
	}
}

// DocumentError is returned when a document of a known format cannot be read.
type DocumentError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s document error: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s document error: %s", e.Format, e.Message)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// FileValidationError is returned when an upload breaks the size or type rules.
type FileValidationError struct {
	Filename string
	Message  string
}

func (e *FileValidationError) Error() string {
	return fmt.Sprintf("invalid resume file %s: %s", e.Filename, e.Message)
}
