package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Atlasbruce/olympe/builtin"
	"github.com/Atlasbruce/olympe/component"
	"github.com/Atlasbruce/olympe/param"
)

// metaSchemaForTest resolves the repo's meta-schema relative to this package
func metaSchemaForTest(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "..", "specs", "schema-meta.json"))
	if err != nil {
		t.Fatalf("Failed to resolve meta-schema path: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Meta-schema missing: %v", err)
	}
	return path
}

// TestSchemaGeneration runs the full pipeline: register, discover, build,
// meta-validate, and write every builtin component's schema document.
func TestSchemaGeneration(t *testing.T) {
	outDir := t.TempDir()
	metaSchemaPath := metaSchemaForTest(t)

	registry := component.NewRegistry()
	store := component.NewStore(component.StoreConfig{})
	if err := builtin.Register(registry, store); err != nil {
		t.Fatalf("Failed to register components: %v", err)
	}
	store.EnsureInitialized(registry)

	written := 0
	registry.ForEach(func(desc *component.Descriptor) bool {
		doc := buildDoc(desc, store)

		if doc.Component != desc.Name() {
			t.Errorf("Component %s: wrong component key %q", desc.Name(), doc.Component)
		}
		if doc.Required == nil {
			t.Errorf("Component %s: required list should not be nil", desc.Name())
		}
		if err := validateDoc(doc, metaSchemaPath); err != nil {
			t.Errorf("Component %s: meta-validation failed: %v", desc.Name(), err)
		}

		outFile := filepath.Join(outDir, doc.Component+".v1.json")
		if err := writeDoc(outFile, "json", doc); err != nil {
			t.Fatalf("Failed to write schema for %s: %v", desc.Name(), err)
		}
		if _, err := os.Stat(outFile); err != nil {
			t.Errorf("Component %s: schema file not written: %v", desc.Name(), err)
		}
		written++
		return true
	})

	if written != registry.Len() {
		t.Errorf("Expected %d schema documents, wrote %d", registry.Len(), written)
	}
}

// TestValidateDoc_RejectsMalformed ensures the meta-schema actually bites
func TestValidateDoc_RejectsMalformed(t *testing.T) {
	metaSchemaPath := metaSchemaForTest(t)

	good := schemaDoc{
		Component: "Health_data",
		Fields:    []component.Field{{Name: "health", Type: param.TypeInt}},
		Entries: []component.Entry{{
			Parameter: "health",
			Component: "Health_data",
			Field:     "health",
			Type:      param.TypeInt,
			Required:  true,
			Default:   param.Int(0),
		}},
		Required: []string{"health"},
	}
	if err := validateDoc(good, metaSchemaPath); err != nil {
		t.Fatalf("Valid document rejected: %v", err)
	}

	missingComponent := good
	missingComponent.Component = ""
	if err := validateDoc(missingComponent, metaSchemaPath); err == nil {
		t.Error("Expected empty component name to fail meta-validation")
	}

	badField := good
	badField.Fields = []component.Field{{Name: "", Type: param.TypeInt}}
	if err := validateDoc(badField, metaSchemaPath); err == nil {
		t.Error("Expected unnamed field to fail meta-validation")
	}
}

// TestValidateDoc_SkipsWithoutMetaSchema matches the exporter's behavior when
// no meta-schema ships alongside the binary.
func TestValidateDoc_SkipsWithoutMetaSchema(t *testing.T) {
	if err := validateDoc(schemaDoc{}, ""); err != nil {
		t.Fatalf("Expected empty path to skip validation, got: %v", err)
	}
}
