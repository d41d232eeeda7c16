package ontology

import (
	"fmt"

	"github.com/c360studio/semcrm/entity"
	"github.com/c360studio/semcrm/graph"
)

// Resource is an entity bound to a catalog class.
type Resource struct {
	*entity.Entity

	class *Class
}

// New creates a resource of the named class. The class IRI is the default
// class of the entity; an entity.WithClass option still overrides it.
func (c *Catalog) New(class string, opts ...entity.Option) (*Resource, error) {
	cls, ok := c.Class(class)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, class)
	}

	all := append([]entity.Option{entity.WithDefaultClass(string(cls.IRI))}, opts...)
	e, err := entity.New(all...)
	if err != nil {
		return nil, fmt.Errorf("new %s: %w", cls.Name, err)
	}
	return &Resource{Entity: e, class: cls}, nil
}

// Class returns the resource's class.
func (r *Resource) Class() *Class { return r.class }

// Relate asserts the named relation to each target.
func (r *Resource) Relate(name string, targets ...*Resource) bool {
	rel, ok := r.relation(name)
	if !ok {
		return false
	}

	entities := make([]*entity.Entity, 0, len(targets))
	for _, t := range targets {
		if t == nil {
			continue
		}
		if rel.Range != "" && !t.class.IsA(rel.Range) {
			r.Logger().Warn("Related resource is outside the relation range",
				"relation", name, "range", rel.Range, "target", t.String(), "class", t.class.Name)
		}
		entities = append(entities, t.Entity)
	}
	return r.RelateToEntities(rel.Property, entities...)
}

// RelateURIs asserts the named relation to external resources.
func (r *Resource) RelateURIs(name string, uris ...string) bool {
	rel, ok := r.relation(name)
	if !ok {
		return false
	}
	return r.RelateToURIs(rel.Property, uris...)
}

// SetLiteral adds a value for the named literal property. lang applies only
// to properties without a datatype.
func (r *Resource) SetLiteral(name, text, lang string) bool {
	lit, ok := r.class.Literal(name)
	if !ok {
		r.Logger().Warn("Literal property not supported by class", "class", r.class.Name, "property", name)
		return false
	}
	value, err := graph.Literal(text, lang, lit.Datatype)
	if err != nil {
		r.Logger().Warn("Invalid literal", "class", r.class.Name, "property", name, "error", err)
		return false
	}
	return r.AddLiteral(lit.Predicate, value)
}

// IsIdentifiedBy asserts P1 is identified by.
func (r *Resource) IsIdentifiedBy(targets ...*Resource) bool {
	return r.Relate(RelIsIdentifiedBy, targets...)
}

// Identifies asserts P1i identifies.
func (r *Resource) Identifies(targets ...*Resource) bool {
	return r.Relate(RelIdentifies, targets...)
}

// HasType asserts P2 has type.
func (r *Resource) HasType(targets ...*Resource) bool {
	return r.Relate(RelHasType, targets...)
}

// HasNote adds a P3 has note literal.
func (r *Resource) HasNote(text, lang string) bool {
	return r.SetLiteral(LitHasNote, text, lang)
}

// HasSymbolicContent adds a P190 has symbolic content literal.
func (r *Resource) HasSymbolicContent(text, lang string) bool {
	return r.SetLiteral(LitHasSymbolicContent, text, lang)
}

// IsRealisedIn asserts R3 is realised in.
func (r *Resource) IsRealisedIn(targets ...*Resource) bool {
	return r.Relate(RelIsRealisedIn, targets...)
}

func (r *Resource) relation(name string) (Relation, bool) {
	rel, ok := r.class.Relation(name)
	if !ok {
		r.Logger().Warn("Relation not supported by class", "class", r.class.Name, "relation", name)
	}
	return rel, ok
}
