// Package ontology describes ontology classes as capability sets: each class
// lists the relations and literal properties it supports, flattened over its
// ancestors when registered. A Resource pairs an entity with its class and
// dispatches named relations through the catalog.
package ontology

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/c360studio/semcrm/entity"
	"github.com/c360studio/semcrm/graph"
	"github.com/cayleygraph/quad"
)

var (
	// ErrUnknownClass is returned for class names not in the catalog.
	ErrUnknownClass = errors.New("unknown class")

	// ErrDuplicateClass is returned when a class name is registered twice.
	ErrDuplicateClass = errors.New("class already registered")

	// ErrUnsupportedRelation is returned when a class has no relation of that name.
	ErrUnsupportedRelation = errors.New("relation not supported by class")

	// ErrInconsistentHierarchy is returned when parents cannot be ordered consistently.
	ErrInconsistentHierarchy = errors.New("inconsistent class hierarchy")
)

// Relation is a named object property with its inverse. Range names the
// class expected for related resources and is advisory.
type Relation struct {
	Name     string
	Property entity.Property
	Range    string
}

// LiteralRelation is a named data property.
type LiteralRelation struct {
	Name      string
	Predicate quad.IRI
	Datatype  quad.IRI
}

// ClassSpec declares a class for registration.
type ClassSpec struct {
	Name      string
	IRI       string
	Parents   []string
	Relations []Relation
	Literals  []LiteralRelation
}

// Class is a registered class with its flattened capability set.
// Ancestors lists every superclass, nearest first.
type Class struct {
	Name      string
	IRI       quad.IRI
	Parents   []string
	Ancestors []string

	ownRelations map[string]Relation
	ownLiterals  map[string]LiteralRelation
	relations    map[string]Relation
	literals     map[string]LiteralRelation
}

// Relation returns the relation called name.
func (c *Class) Relation(name string) (Relation, bool) {
	r, ok := c.relations[name]
	return r, ok
}

// Literal returns the literal property called name.
func (c *Class) Literal(name string) (LiteralRelation, bool) {
	l, ok := c.literals[name]
	return l, ok
}

// Relations returns all supported relations sorted by name.
func (c *Class) Relations() []Relation {
	out := make([]Relation, 0, len(c.relations))
	for _, r := range c.relations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Literals returns all supported literal properties sorted by name.
func (c *Class) Literals() []LiteralRelation {
	out := make([]LiteralRelation, 0, len(c.literals))
	for _, l := range c.literals {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// IsA reports whether c is the named class or one of its descendants.
func (c *Class) IsA(name string) bool {
	if c.Name == name {
		return true
	}
	for _, a := range c.Ancestors {
		if a == name {
			return true
		}
	}
	return false
}

// Catalog holds registered classes.
type Catalog struct {
	mu      sync.RWMutex
	classes map[string]*Class
	byIRI   map[quad.IRI]*Class
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		classes: make(map[string]*Class),
		byIRI:   make(map[quad.IRI]*Class),
	}
}

// Register adds a class. Parents must already be registered. The class
// supports every relation of its ancestors; when two ancestors define the
// same relation name, the one earlier in the class's C3 linearization wins,
// and the class's own definitions win over all inherited ones.
func (c *Catalog) Register(spec ClassSpec) error {
	if spec.Name == "" {
		return errors.New("class name is required")
	}
	iri, err := graph.ParseURI(spec.IRI)
	if err != nil {
		return fmt.Errorf("class %s: %w", spec.Name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.classes[spec.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateClass, spec.Name)
	}

	cls := &Class{
		Name:         spec.Name,
		IRI:          iri,
		Parents:      append([]string(nil), spec.Parents...),
		ownRelations: make(map[string]Relation),
		ownLiterals:  make(map[string]LiteralRelation),
		relations:    make(map[string]Relation),
		literals:     make(map[string]LiteralRelation),
	}
	for _, r := range spec.Relations {
		cls.ownRelations[r.Name] = r
	}
	for _, l := range spec.Literals {
		cls.ownLiterals[l.Name] = l
	}

	seqs := make([][]string, 0, len(spec.Parents)+1)
	for _, name := range spec.Parents {
		parent, ok := c.classes[name]
		if !ok {
			return fmt.Errorf("%w: parent %s of %s", ErrUnknownClass, name, spec.Name)
		}
		seqs = append(seqs, append([]string{parent.Name}, parent.Ancestors...))
	}
	seqs = append(seqs, append([]string(nil), spec.Parents...))

	cls.Ancestors, err = linearize(seqs)
	if err != nil {
		return fmt.Errorf("class %s: %w", spec.Name, err)
	}

	lookup := func(name string) *Class {
		if name == cls.Name {
			return cls
		}
		return c.classes[name]
	}
	for _, name := range append([]string{cls.Name}, cls.Ancestors...) {
		src := lookup(name)
		for k, r := range src.ownRelations {
			if _, ok := cls.relations[k]; !ok {
				cls.relations[k] = r
			}
		}
		for k, l := range src.ownLiterals {
			if _, ok := cls.literals[k]; !ok {
				cls.literals[k] = l
			}
		}
	}

	c.classes[cls.Name] = cls
	c.byIRI[cls.IRI] = cls
	return nil
}

// linearize merges the parents' linearizations and the parent list itself
// into one order in which every class precedes its own ancestors.
func linearize(seqs [][]string) ([]string, error) {
	var out []string
	for {
		remaining := seqs[:0]
		for _, s := range seqs {
			if len(s) > 0 {
				remaining = append(remaining, s)
			}
		}
		seqs = remaining
		if len(seqs) == 0 {
			return out, nil
		}

		var head string
		for _, s := range seqs {
			candidate := s[0]
			if !inTail(seqs, candidate) {
				head = candidate
				break
			}
		}
		if head == "" {
			return nil, ErrInconsistentHierarchy
		}

		out = append(out, head)
		for i, s := range seqs {
			if s[0] == head {
				seqs[i] = s[1:]
			}
		}
	}
}

func inTail(seqs [][]string, name string) bool {
	for _, s := range seqs {
		for _, n := range s[1:] {
			if n == name {
				return true
			}
		}
	}
	return false
}

// MustRegister registers every spec and panics on the first error.
func (c *Catalog) MustRegister(specs ...ClassSpec) {
	for _, s := range specs {
		if err := c.Register(s); err != nil {
			panic(err)
		}
	}
}

// Class looks a class up by name (E41_Appellation), compact IRI
// (crm:E41_Appellation) or full IRI.
func (c *Catalog) Class(ref string) (*Class, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if cls, ok := c.classes[ref]; ok {
		return cls, true
	}
	if !strings.Contains(ref, ":") {
		return nil, false
	}
	iri, err := graph.ParseURI(ref)
	if err != nil {
		return nil, false
	}
	cls, ok := c.byIRI[iri]
	return cls, ok
}

// Classes returns all classes sorted by name.
func (c *Catalog) Classes() []*Class {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Class, 0, len(c.classes))
	for _, cls := range c.classes {
		out = append(out, cls)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Property returns the predicate pair for a relation of class.
func (c *Catalog) Property(class, relation string) (entity.Property, error) {
	cls, ok := c.Class(class)
	if !ok {
		return entity.Property{}, fmt.Errorf("%w: %s", ErrUnknownClass, class)
	}
	r, ok := cls.Relation(relation)
	if !ok {
		return entity.Property{}, fmt.Errorf("%w: %s.%s", ErrUnsupportedRelation, cls.Name, relation)
	}
	return r.Property, nil
}

// Supports reports whether class has a relation or literal property called name.
func (c *Catalog) Supports(class, name string) bool {
	cls, ok := c.Class(class)
	if !ok {
		return false
	}
	if _, ok := cls.Relation(name); ok {
		return true
	}
	_, ok = cls.Literal(name)
	return ok
}
