package component

// Schema discovery synthesizes missing schema entries so modules are not
// forced to hand-author schemas for simple fields. Discovery only fills
// gaps: it routes every synthesized entry through the normal registration
// path and never touches an entry that already exists, so running it twice
// changes nothing.

// DiscoverComponentSchema enumerates a descriptor's fields and synthesizes
// an optional schema entry for every field no existing entry maps onto.
// Synthesized entries use the field name as the parameter name and the
// field type's zero value as the default. Returns the number of entries
// synthesized.
func (s *Store) DiscoverComponentSchema(desc *Descriptor) int {
	if desc == nil {
		return 0
	}

	s.mu.RLock()
	schema := s.schemas[desc.Name()]
	var missing []Field
	for _, f := range desc.Fields() {
		if schema != nil && schema.targetsField(f.Name) {
			continue
		}
		missing = append(missing, f)
	}
	s.mu.RUnlock()

	synthesized := 0
	for _, f := range missing {
		err := s.RegisterParameterSchema(Entry{
			Parameter: f.Name,
			Component: desc.Name(),
			Field:     f.Name,
			Type:      f.Type,
		})
		if err != nil {
			s.log.Warn("schema discovery skipped field",
				"component", desc.Name(), "field", f.Name, "error", err)
			continue
		}
		synthesized++
		if s.metrics != nil {
			s.metrics.DiscoveredEntries.WithLabelValues(desc.Name(), "fields").Inc()
		}
	}

	if synthesized > 0 {
		s.log.Debug("discovered component schema",
			"component", desc.Name(), "synthesized", synthesized)
	}
	return synthesized
}

// DiscoverSchemasFromBlueprint scans a blueprint's instance-level parameter
// list for one target component type and registers an entry for any
// parameter not already schematized, inferring the expected type from the
// supplied value's tag. Later loads of structurally similar blueprints then
// validate without re-specifying every field. Returns the number of entries
// synthesized.
func (s *Store) DiscoverSchemasFromBlueprint(componentType string, params []Param) int {
	synthesized := 0
	for _, p := range params {
		if s.FindParameterSchema(p.Name) != nil {
			continue
		}
		if !p.Value.Type().Valid() {
			// Untyped values never reach the store through the loader;
			// skip rather than guess.
			continue
		}

		err := s.RegisterParameterSchema(Entry{
			Parameter: p.Name,
			Component: componentType,
			Field:     p.Name,
			Type:      p.Value.Type(),
		})
		if err != nil {
			s.log.Warn("blueprint discovery skipped parameter",
				"component", componentType, "parameter", p.Name, "error", err)
			continue
		}
		synthesized++
		if s.metrics != nil {
			s.metrics.DiscoveredEntries.WithLabelValues(componentType, "blueprint").Inc()
		}
	}
	return synthesized
}
