// Package entity generates the RDF statements describing one ontology
// instance: its class membership, its labels and its relations to other
// entities or external resources.
//
// An Entity owns its graph. Relating it to another Entity copies that
// entity's statements in at call time; later changes to the related entity
// are not reflected in graphs it was already merged into.
package entity

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/c360studio/semcrm/graph"
	"github.com/cayleygraph/quad"
)

// ErrURIAlreadyAssigned is returned by AssignURI when the entity has a URI.
var ErrURIAlreadyAssigned = errors.New("entity URI already assigned")

// Entity is an ontology instance and the statements generated for it.
type Entity struct {
	uri       quad.IRI
	classURI  quad.IRI
	labels    []Label
	status    LabelStatus
	graph     *graph.Graph
	store     Store
	validator LabelValidator
	logger    *slog.Logger
}

type config struct {
	uri          string
	class        string
	defaultClass string
	labels       []Label
	validator    LabelValidator
	store        Store
	logger       *slog.Logger
}

// Option configures an Entity.
type Option func(*config)

// WithURI sets the entity URI.
func WithURI(uri string) Option {
	return func(c *config) {
		c.uri = uri
	}
}

// WithClass sets the class URI explicitly. It takes precedence over WithDefaultClass.
func WithClass(classURI string) Option {
	return func(c *config) {
		c.class = classURI
	}
}

// WithDefaultClass sets the class URI used when no explicit class is given.
// Ontology classes supply their own IRI through this option.
func WithDefaultClass(classURI string) Option {
	return func(c *config) {
		c.defaultClass = classURI
	}
}

// WithLabels sets the rdfs:label candidates.
func WithLabels(labels ...Label) Option {
	return func(c *config) {
		c.labels = append(c.labels, labels...)
	}
}

// WithLabelValidator replaces the default ShapeValidator.
func WithLabelValidator(v LabelValidator) Option {
	return func(c *config) {
		c.validator = v
	}
}

// WithStore attaches an external store handle. The entity keeps it but does
// not read from it.
func WithStore(s Store) Option {
	return func(c *config) {
		c.store = s
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New creates an entity. When both the URI and a class are known the
// class-membership statement is emitted immediately; valid labels are
// emitted as rdfs:label statements. A malformed URI or class URI is an error.
func New(opts ...Option) (*Entity, error) {
	cfg := config{
		validator: ShapeValidator{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Entity{
		graph:     graph.New(),
		store:     cfg.store,
		validator: cfg.validator,
		logger:    cfg.logger,
	}

	if cfg.uri != "" {
		uri, err := graph.ParseURI(cfg.uri)
		if err != nil {
			return nil, fmt.Errorf("entity uri: %w", err)
		}
		e.uri = uri
	}

	class := cfg.class
	if class == "" {
		class = cfg.defaultClass
	}
	if class != "" {
		classURI, err := graph.ParseURI(class)
		if err != nil {
			return nil, fmt.Errorf("entity class: %w", err)
		}
		e.classURI = classURI
	}

	if len(cfg.labels) > 0 {
		e.loadLabels(cfg.labels)
	}

	if e.HasURI() {
		e.emitIdentity()
	} else if e.classURI != "" || len(e.labels) > 0 {
		e.logger.Warn("Entity has no URI, deferring class and label statements",
			"class", string(e.classURI), "labels", len(e.labels))
	}

	return e, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Entity {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// AssignURI gives a URI to an entity created without one and emits the
// class-membership and label statements that were deferred.
func (e *Entity) AssignURI(uri string) error {
	if e.HasURI() {
		return fmt.Errorf("%w: %s", ErrURIAlreadyAssigned, e.uri)
	}
	parsed, err := graph.ParseURI(uri)
	if err != nil {
		return fmt.Errorf("entity uri: %w", err)
	}
	e.uri = parsed
	e.emitIdentity()
	return nil
}

func (e *Entity) emitIdentity() {
	if e.classURI != "" {
		e.graph.Add(e.uri, graph.RDFType, e.classURI)
	}
	for _, st := range e.labelStatements() {
		e.graph.AddStatement(st)
	}
}

// URI returns the entity URI, or "" when unassigned.
func (e *Entity) URI() quad.IRI { return e.uri }

// HasURI reports whether the entity has a URI.
func (e *Entity) HasURI() bool { return e.uri != "" }

// ClassURI returns the resolved class URI, or "" when none was given.
func (e *Entity) ClassURI() quad.IRI { return e.classURI }

// Labels returns the accepted labels.
func (e *Entity) Labels() []Label {
	out := make([]Label, len(e.labels))
	copy(out, e.labels)
	return out
}

// LabelStatus reports the outcome of label loading.
func (e *Entity) LabelStatus() LabelStatus { return e.status }

// Store returns the attached store handle, if any.
func (e *Entity) Store() Store { return e.store }

// Graph returns a copy of the statements generated so far.
func (e *Entity) Graph() *graph.Graph { return e.graph.Clone() }

// Logger returns the logger the entity reports warnings to.
func (e *Entity) Logger() *slog.Logger { return e.logger }

// Len returns the number of statements in the entity's graph.
func (e *Entity) Len() int { return e.graph.Len() }

// String returns the entity URI.
func (e *Entity) String() string { return string(e.uri) }
