package blueprint

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Atlasbruce/olympe/component"
	"github.com/Atlasbruce/olympe/errors"
	"github.com/Atlasbruce/olympe/param"
)

// Format identifies a blueprint document encoding
type Format int

const (
	// FormatJSON is a JSON blueprint document
	FormatJSON Format = iota
	// FormatYAML is a YAML blueprint document
	FormatYAML
)

// LoaderConfig configures a blueprint loader
type LoaderConfig struct {
	Registry *component.Registry
	Store    *component.Store
	Logger   *slog.Logger

	// DisableDiscovery turns off blueprint-driven schema synthesis during
	// instantiation. Hosts running the store in strict mode typically set
	// this so only hand-authored schemas validate.
	DisableDiscovery bool
}

// Loader parses blueprint documents and drives discovery and validation
// against the registry and schema store.
type Loader struct {
	reg      *component.Registry
	store    *component.Store
	log      *slog.Logger
	discover bool
}

// NewLoader creates a blueprint loader.
// Returns an error when the registry or store is missing: a nil collaborator
// is a programming error, not content to diagnose at load time.
func NewLoader(cfg LoaderConfig) (*Loader, error) {
	if cfg.Registry == nil {
		return nil, errors.WrapFatal(fmt.Errorf("registry cannot be nil"),
			"Loader", "NewLoader", "registry validation")
	}
	if cfg.Store == nil {
		return nil, errors.WrapFatal(fmt.Errorf("schema store cannot be nil"),
			"Loader", "NewLoader", "schema store validation")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{
		reg:      cfg.Registry,
		store:    cfg.Store,
		log:      log,
		discover: !cfg.DisableDiscovery,
	}, nil
}

// Load parses one blueprint document from a reader
func (l *Loader) Load(r io.Reader, format Format) (*Blueprint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Loader", "Load", "document read")
	}

	var doc document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: %v", errors.ErrMalformedDocument, err),
				"Loader", "Load", "JSON decoding")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: %v", errors.ErrMalformedDocument, err),
				"Loader", "Load", "YAML decoding")
		}
	default:
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "Loader", "Load", "format selection")
	}

	bp, err := fromDocument(doc)
	if err != nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %v", errors.ErrMalformedDocument, err),
			"Loader", "Load", "document validation")
	}
	return bp, nil
}

// LoadFile loads one blueprint document, selecting the format from the
// file extension (.json, .yaml, .yml).
func (l *Loader) LoadFile(path string) (*Blueprint, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "Loader", "LoadFile", "file open")
	}
	defer f.Close()

	bp, err := l.Load(f, format)
	if err != nil {
		return nil, errors.Wrap(err, "Loader", "LoadFile", fmt.Sprintf("document %q", path))
	}
	return bp, nil
}

// LoadDir loads every blueprint document in a directory, skipping files
// with unrecognized extensions. Order follows the directory listing, which
// os.ReadDir returns sorted by name.
func (l *Loader) LoadDir(dir string) ([]*Blueprint, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "Loader", "LoadDir", "directory read")
	}

	var blueprints []*Blueprint
	for _, ent := range dirents {
		if ent.IsDir() {
			continue
		}
		if _, err := formatForPath(ent.Name()); err != nil {
			continue
		}

		bp, err := l.LoadFile(filepath.Join(dir, ent.Name()))
		if err != nil {
			return nil, err
		}
		blueprints = append(blueprints, bp)
		l.log.Debug("loaded blueprint", "name", bp.Name, "file", ent.Name())
	}
	return blueprints, nil
}

// ComponentResult is the validation outcome for one component block.
// Fields is the validated target-field to value map when Err is nil.
type ComponentResult struct {
	Type   string
	Fields map[string]param.Value
	Err    error
}

// Instantiate runs discovery and the validation/mapping engine for every
// component block of a blueprint. Each component is validated independently;
// a failing block does not stop its siblings, so partial blueprint success
// is visible in the returned list.
func (l *Loader) Instantiate(bp *Blueprint) []ComponentResult {
	results := make([]ComponentResult, 0, len(bp.Components))

	for _, block := range bp.Components {
		if _, err := l.reg.Lookup(block.Type); err != nil {
			results = append(results, ComponentResult{Type: block.Type, Err: err})
			continue
		}

		if l.discover {
			l.store.DiscoverSchemasFromBlueprint(block.Type, block.Params)
		}

		fields, err := l.store.MapParameters(block.Type, block.Params)
		if err != nil {
			l.log.Warn("component rejected",
				"blueprint", bp.Name, "component", block.Type, "error", err)
			results = append(results, ComponentResult{Type: block.Type, Err: err})
			continue
		}
		results = append(results, ComponentResult{Type: block.Type, Fields: fields})
	}

	return results
}

// formatForPath maps a file extension to a document format
func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, errors.WrapInvalid(
			fmt.Errorf("%w: unsupported extension %q", errors.ErrMalformedDocument, filepath.Ext(path)),
			"Loader", "formatForPath", "format selection")
	}
}
