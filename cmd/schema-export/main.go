// Command schema-export writes the parameter schemas of every registered
// component type to machine-readable documents, one file per type plus an
// index. Exports follow registration order, so output is reproducible
// across runs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Atlasbruce/olympe/builtin"
	"github.com/Atlasbruce/olympe/component"
)

type schemaDoc struct {
	Component   string            `json:"component" yaml:"component"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []component.Field `json:"fields" yaml:"fields"`
	Entries     []component.Entry `json:"entries" yaml:"entries"`
	Required    []string          `json:"required" yaml:"required"`
}

type indexDoc struct {
	Components []string `json:"components" yaml:"components"`
	Count      int      `json:"count" yaml:"count"`
}

func main() {
	outDir := flag.String("out", "./schemas", "Output directory for schema documents")
	format := flag.String("format", "json", "Output format: json or yaml")
	flag.Parse()

	if *format != "json" && *format != "yaml" {
		log.Fatalf("unsupported format %q", *format)
	}

	registry := component.NewRegistry()
	store := component.NewStore(component.StoreConfig{})

	if err := builtin.Register(registry, store); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}
	store.EnsureInitialized(registry)

	metaSchemaPath, err := loadMetaSchemaPath()
	if err != nil {
		log.Printf("Meta-schema not found, skipping validation: %v", err)
		metaSchemaPath = ""
	} else {
		log.Printf("Using meta-schema: %s", metaSchemaPath)
	}

	log.Printf("Schema Export")
	log.Printf("  Components: %d", registry.Len())
	log.Printf("  Schemas: %d", store.SchemaCount())
	log.Printf("  Output dir: %s", *outDir)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	index := indexDoc{}
	var exportErr error
	registry.ForEach(func(desc *component.Descriptor) bool {
		doc := buildDoc(desc, store)

		if err := validateDoc(doc, metaSchemaPath); err != nil {
			exportErr = err
			return false
		}

		outFile := filepath.Join(*outDir, fmt.Sprintf("%s.v1.%s", desc.Name(), *format))
		if err := writeDoc(outFile, *format, doc); err != nil {
			exportErr = err
			return false
		}

		index.Components = append(index.Components, desc.Name())
		log.Printf("  Generated: %s", outFile)
		return true
	})
	if exportErr != nil {
		log.Fatalf("Failed to export schema: %v", exportErr)
	}

	index.Count = len(index.Components)
	indexFile := filepath.Join(*outDir, "index."+*format)
	if err := writeDoc(indexFile, *format, index); err != nil {
		log.Fatalf("Failed to write index: %v", err)
	}
	log.Printf("  Generated: %s", indexFile)
}

// buildDoc collects one component's schema into its export shape, with
// entries and the required set sorted by parameter name.
func buildDoc(desc *component.Descriptor, store *component.Store) schemaDoc {
	doc := schemaDoc{
		Component:   desc.Name(),
		Description: desc.Description(),
		Fields:      desc.Fields(),
		Required:    []string{},
	}

	schema := store.GetComponentSchema(desc.Name())
	if schema == nil {
		return doc
	}

	entries := schema.Entries()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		doc.Entries = append(doc.Entries, entries[name])
	}

	doc.Required = schema.Required()
	sort.Strings(doc.Required)
	return doc
}

func writeDoc(path, format string, doc any) error {
	var data []byte
	var err error
	switch format {
	case "yaml":
		data, err = yaml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
