// Package blueprint provides the declarative entity description documents
// and the loader that turns them into validated component field maps.
//
// A blueprint is a data-only description of an entity: an ordered list of
// component blocks, each naming a registered component type and supplying
// (parameter, value) pairs. The loader parses JSON or YAML documents,
// triggers schema discovery for parameters nobody declared, and runs the
// validation/mapping engine per component. Results are reported per
// component, never collapsed into a single pass/fail: a blueprint
// instantiating five components where one fails still reports which one
// and why, and the host decides whether to skip, warn, or abort.
package blueprint

import (
	"fmt"
	"sort"

	"github.com/Atlasbruce/olympe/component"
	"github.com/Atlasbruce/olympe/param"
)

// ComponentBlock names one component type and the parameters the blueprint
// supplies for it.
type ComponentBlock struct {
	Type   string
	Params []component.Param
}

// Param returns the value supplied for a parameter name
func (b ComponentBlock) Param(name string) (param.Value, bool) {
	for _, p := range b.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return param.Value{}, false
}

// Blueprint is a declarative, data-only description of an entity
type Blueprint struct {
	Name       string
	Components []ComponentBlock
}

// Component returns the block for a component type
func (bp *Blueprint) Component(typeName string) (ComponentBlock, bool) {
	for _, c := range bp.Components {
		if c.Type == typeName {
			return c, true
		}
	}
	return ComponentBlock{}, false
}

// document is the wire shape of a blueprint file
type document struct {
	Name       string          `json:"name" yaml:"name"`
	Components []documentBlock `json:"components" yaml:"components"`
}

type documentBlock struct {
	Type   string                 `json:"type" yaml:"type"`
	Params map[string]param.Value `json:"params" yaml:"params"`
}

// fromDocument converts the decoded wire shape into a Blueprint, sorting
// each block's parameters by name so instantiation order is deterministic.
func fromDocument(doc document) (*Blueprint, error) {
	if doc.Name == "" {
		return nil, fmt.Errorf("blueprint name is required")
	}

	bp := &Blueprint{Name: doc.Name}
	for i, block := range doc.Components {
		if block.Type == "" {
			return nil, fmt.Errorf("component block %d has no type", i)
		}

		names := make([]string, 0, len(block.Params))
		for name := range block.Params {
			if name == "" {
				return nil, fmt.Errorf("component %q has an unnamed parameter", block.Type)
			}
			names = append(names, name)
		}
		sort.Strings(names)

		cb := ComponentBlock{Type: block.Type, Params: make([]component.Param, 0, len(names))}
		for _, name := range names {
			cb.Params = append(cb.Params, component.Param{Name: name, Value: block.Params[name]})
		}
		bp.Components = append(bp.Components, cb)
	}
	return bp, nil
}
