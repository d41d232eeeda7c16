package entity

import (
	"fmt"

	"github.com/c360studio/semcrm/graph"
	"github.com/cayleygraph/quad"
)

// Property is a forward/inverse predicate pair. Either side may be empty.
type Property struct {
	Forward quad.IRI
	Inverse quad.IRI
}

// NewProperty parses a forward and an inverse predicate IRI. Empty strings
// leave that side unset.
func NewProperty(forward, inverse string) (Property, error) {
	var p Property
	if forward != "" {
		iri, err := graph.ParseURI(forward)
		if err != nil {
			return Property{}, fmt.Errorf("forward predicate: %w", err)
		}
		p.Forward = iri
	}
	if inverse != "" {
		iri, err := graph.ParseURI(inverse)
		if err != nil {
			return Property{}, fmt.Errorf("inverse predicate: %w", err)
		}
		p.Inverse = iri
	}
	return p, nil
}

// IsZero reports whether neither predicate is set.
func (p Property) IsZero() bool {
	return p.Forward == "" && p.Inverse == ""
}

// Inverted swaps the forward and inverse predicates.
func (p Property) Inverted() Property {
	return Property{Forward: p.Inverse, Inverse: p.Forward}
}

// Targets holds the two alternative relation targets of AddTriples.
type Targets struct {
	Entities []*Entity
	URIs     []string
}

// AddTriples relates e to targets.Entities, or to targets.URIs when no
// entities are given. URIs supplied together with entities are ignored.
func (e *Entity) AddTriples(p Property, targets Targets) bool {
	switch {
	case len(targets.Entities) > 0:
		if len(targets.URIs) > 0 {
			e.logger.Warn("Both entities and URIs supplied, ignoring URIs",
				"subject", string(e.uri), "uris", len(targets.URIs))
		}
		return e.RelateToEntities(p, targets.Entities...)
	case len(targets.URIs) > 0:
		return e.RelateToURIs(p, targets.URIs...)
	default:
		e.logger.Warn("No entities or URIs supplied, not adding triples", "subject", string(e.uri))
		return false
	}
}

// RelateToEntities emits (e, forward, t) and (t, inverse, e) for every target
// and merges each target's graph into e. It reports false without changing
// the graph when e has no URI or no target could be related.
func (e *Entity) RelateToEntities(p Property, targets ...*Entity) bool {
	if !e.checkRelation(p, len(targets)) {
		return false
	}

	result := graph.New()
	related := 0
	for _, t := range targets {
		if t == nil || !t.HasURI() {
			e.logger.Warn("Related entity has no URI, skipping", "subject", string(e.uri))
			continue
		}
		addPair(result, e.uri, p, t.uri)
		result.Merge(t.graph)
		related++
	}
	if related == 0 {
		return false
	}

	e.graph.Merge(result)
	return true
}

// RelateToURIs emits (e, forward, u) and (u, inverse, e) for every URI. No
// graph is merged. A malformed URI fails the whole call without changing the graph.
func (e *Entity) RelateToURIs(p Property, uris ...string) bool {
	if !e.checkRelation(p, len(uris)) {
		return false
	}

	result := graph.New()
	for _, u := range uris {
		target, err := graph.ParseURI(u)
		if err != nil {
			e.logger.Error("Invalid target URI, not adding triples", "subject", string(e.uri), "error", err)
			return false
		}
		addPair(result, e.uri, p, target)
	}

	e.graph.Merge(result)
	return true
}

// AddLiteral emits (e, predicate, value). Literal properties have no inverse.
func (e *Entity) AddLiteral(predicate quad.IRI, value quad.Value) bool {
	if !e.HasURI() {
		e.logger.Warn("Entity has no URI, not adding literal", "predicate", string(predicate))
		return false
	}
	if predicate == "" || value == nil {
		e.logger.Warn("Literal needs a predicate and a value", "subject", string(e.uri))
		return false
	}
	e.graph.Add(e.uri, predicate, value)
	return true
}

func (e *Entity) checkRelation(p Property, n int) bool {
	if !e.HasURI() {
		e.logger.Warn("Entity has no URI, not adding triples",
			"forward", string(p.Forward), "inverse", string(p.Inverse))
		return false
	}
	if n == 0 {
		e.logger.Warn("No relation targets supplied, not adding triples", "subject", string(e.uri))
		return false
	}
	if p.IsZero() {
		e.logger.Warn("Property has neither forward nor inverse predicate", "subject", string(e.uri))
	}
	return true
}

func addPair(g *graph.Graph, subject quad.IRI, p Property, object quad.IRI) {
	if p.Forward != "" {
		g.Add(subject, p.Forward, object)
	}
	if p.Inverse != "" {
		g.Add(object, p.Inverse, subject)
	}
}
