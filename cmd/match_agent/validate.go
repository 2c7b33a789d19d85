package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/schemas"
	embedded "github.com/jonathan/talent-match/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a JSON Schema",
	Long: `Validate a JSON file against a schema. --schema may be a file path or the name of a
bundled schema (for example extracted_profile.schema.json). Names are looked up in the
configured schema directory, then ./schemas, then the schemas built into the binary.`,
	RunE: runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Schema file path or bundled schema name (required)")
	validateCmd.Flags().StringVar(&validateJSON, "json", "", "Path to JSON file to validate (required)")
	_ = validateCmd.MarkFlagRequired("schema")
	_ = validateCmd.MarkFlagRequired("json")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	err := validateFile(validateSchema, validateJSON)
	if err == nil {
		_, _ = fmt.Fprintln(stdout, "Validation passed")
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(stderr, "Validation failed:\n%s", validationErr.Error())
	}
	return err
}

func validateFile(schema, jsonPath string) error {
	if schemaPath := findSchemaFile(schema); schemaPath != "" {
		return schemas.ValidateJSON(schemaPath, jsonPath)
	}

	schemaContent, err := embedded.Read(filepath.Base(schema))
	if err != nil {
		return fmt.Errorf("schema file not found: %s", schema)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("JSON file not found: %s", jsonPath)
	}
	return schemas.ValidateJSONString(schemaContent, string(data))
}

// findSchemaFile resolves schema to a file on disk, or returns "" to fall back to the embedded copy.
func findSchemaFile(schema string) string {
	if info, err := os.Stat(schema); err == nil && !info.IsDir() {
		return schema
	}
	if dir := currentConfig().SchemaDir; dir != "" {
		path := filepath.Join(dir, filepath.Base(schema))
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return schemas.ResolveSchemaPath(filepath.Join("schemas", filepath.Base(schema)))
}
