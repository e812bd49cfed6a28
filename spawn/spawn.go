// Package spawn turns validated blueprints into live entities: it applies
// the validation/mapping engine's field maps onto freshly constructed
// component instances. The schema engine hands back data; this package is
// the collaborator that performs the field assignment.
package spawn

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Atlasbruce/olympe/blueprint"
	"github.com/Atlasbruce/olympe/component"
	"github.com/Atlasbruce/olympe/errors"
	"github.com/Atlasbruce/olympe/metric"
)

// Entity is a spawned entity: an identifier and its constructed component
// instances, keyed by component type name.
type Entity struct {
	ID         uuid.UUID
	Name       string
	Components map[string]any
}

// Component returns the constructed instance for a component type
func (e *Entity) Component(typeName string) (any, bool) {
	c, ok := e.Components[typeName]
	return c, ok
}

// Config configures a spawner
type Config struct {
	Registry *component.Registry
	Loader   *blueprint.Loader
	Logger   *slog.Logger
	Metrics  *metric.Metrics
}

// Spawner constructs entities from blueprints
type Spawner struct {
	reg     *component.Registry
	loader  *blueprint.Loader
	log     *slog.Logger
	metrics *metric.Metrics
}

// NewSpawner creates a spawner
func NewSpawner(cfg Config) (*Spawner, error) {
	if cfg.Registry == nil {
		return nil, errors.WrapFatal(fmt.Errorf("registry cannot be nil"),
			"Spawner", "NewSpawner", "registry validation")
	}
	if cfg.Loader == nil {
		return nil, errors.WrapFatal(fmt.Errorf("loader cannot be nil"),
			"Spawner", "NewSpawner", "loader validation")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Spawner{
		reg:     cfg.Registry,
		loader:  cfg.Loader,
		log:     log,
		metrics: cfg.Metrics,
	}, nil
}

// Spawn validates a blueprint and constructs an entity from the component
// blocks that pass. Per-component outcomes are returned alongside the
// entity: a failing component is skipped and reported, its siblings still
// instantiate. The entity is returned even when some components failed;
// the caller decides whether partial success is acceptable.
func (s *Spawner) Spawn(bp *blueprint.Blueprint) (*Entity, []blueprint.ComponentResult, error) {
	if bp == nil {
		return nil, nil, errors.WrapInvalid(fmt.Errorf("%w: nil blueprint", errors.ErrInvalidConfig),
			"Spawner", "Spawn", "blueprint validation")
	}

	results := s.loader.Instantiate(bp)

	entity := &Entity{
		ID:         uuid.New(),
		Name:       bp.Name,
		Components: make(map[string]any, len(results)),
	}

	for i := range results {
		res := &results[i]
		if res.Err != nil {
			s.countComponent(res.Type, "rejected")
			continue
		}

		desc, err := s.reg.Lookup(res.Type)
		if err != nil {
			res.Err = err
			s.countComponent(res.Type, "rejected")
			continue
		}

		instance := desc.New()
		if err := s.applyFields(instance, res); err != nil {
			res.Err = err
			s.countComponent(res.Type, "failed")
			continue
		}

		entity.Components[res.Type] = instance
		s.countComponent(res.Type, "ok")
	}

	if s.metrics != nil {
		s.metrics.SpawnedEntities.Inc()
	}
	s.log.Debug("spawned entity",
		"blueprint", bp.Name, "id", entity.ID, "components", len(entity.Components))

	return entity, results, nil
}

// applyFields assigns every mapped field onto the instance. Fields with no
// matching struct member are extension parameters; they are logged and
// dropped, never an error.
func (s *Spawner) applyFields(instance any, res *blueprint.ComponentResult) error {
	for name, value := range res.Fields {
		set, err := SetField(instance, name, value)
		if err != nil {
			return errors.Wrap(err, "Spawner", "Spawn", fmt.Sprintf("component %q construction", res.Type))
		}
		if !set {
			s.log.Debug("extension parameter has no field",
				"component", res.Type, "field", name)
		}
	}
	return nil
}

func (s *Spawner) countComponent(typeName, status string) {
	if s.metrics != nil {
		s.metrics.SpawnedComponents.WithLabelValues(typeName, status).Inc()
	}
}
