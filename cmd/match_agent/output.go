package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/observability"
	"github.com/jonathan/talent-match/internal/schemas"
)

// stdout and stderr are swapped out in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// writeJSON writes v as indented JSON to path, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		if _, err := stdout.Write(jsonBytes); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// readJSON decodes the JSON file at path into v.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse JSON in %s: %w", path, err)
	}
	return nil
}

// checkSchema validates v against an embedded schema. A data mismatch is an error;
// a schema that cannot be loaded only warns.
func checkSchema(schemaName string, v any) error {
	err := schemas.ValidateValue(schemaName, v)
	if err == nil {
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("output does not validate against %s: %w", schemaName, err)
	}
	currentLogger().Warn("could not validate output against schema",
		zap.String("schema", schemaName), zap.Error(err))
	return nil
}

func printer() *observability.Printer {
	return observability.NewPrinter(stderr)
}
