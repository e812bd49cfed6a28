package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// validateDoc validates one export document against the meta-schema before
// it is written. An empty meta-schema path skips validation.
func validateDoc(doc schemaDoc, metaSchemaPath string) error {
	if metaSchemaPath == "" {
		return nil
	}

	metaSchemaLoader := gojsonschema.NewReferenceLoader("file://" + metaSchemaPath)

	// Validation always runs over the JSON shape, whatever the output format
	docBytes, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for validation: %w", doc.Component, err)
	}
	documentLoader := gojsonschema.NewBytesLoader(docBytes)

	result, err := gojsonschema.Validate(metaSchemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errMsg := fmt.Sprintf("schema validation failed for %s:\n", doc.Component)
		for _, desc := range result.Errors() {
			errMsg += fmt.Sprintf("  - %s: %s\n", desc.Field(), desc.Description())
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

// loadMetaSchemaPath locates the meta-schema file relative to the working
// directory.
func loadMetaSchemaPath() (string, error) {
	possiblePaths := []string{
		"./specs/schema-meta.json",
		"../specs/schema-meta.json",
		"../../specs/schema-meta.json",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return "", fmt.Errorf("failed to get absolute path: %w", err)
			}
			return absPath, nil
		}
	}

	return "", fmt.Errorf("meta-schema not found in any of: %v", possiblePaths)
}
