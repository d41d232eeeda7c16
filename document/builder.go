package document

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/semcrm/entity"
	"github.com/c360studio/semcrm/graph"
	"github.com/c360studio/semcrm/ontology"
	"github.com/google/uuid"
)

var (
	// ErrDuplicateID is returned when two entities share an id within a build.
	ErrDuplicateID = errors.New("duplicate entity id")

	// ErrUnknownTarget is returned when a relation names an id that no entity has.
	ErrUnknownTarget = errors.New("unknown relation target")

	// ErrStrictLabels is returned in strict mode when any label is dropped.
	ErrStrictLabels = errors.New("invalid labels")
)

// Report summarizes a build.
type Report struct {
	Documents        int `json:"documents"`
	Entities         int `json:"entities"`
	Statements       int `json:"statements"`
	Minted           int `json:"minted"`
	Relations        int `json:"relations"`
	FailedRelations  int `json:"failed_relations"`
	Literals         int `json:"literals"`
	FailedLiterals   int `json:"failed_literals"`
	DroppedLabels    int `json:"dropped_labels"`
	DegradedEntities int `json:"degraded_entities"`
}

// Failures is the number of relations and literals that were not added.
func (r Report) Failures() int {
	return r.FailedRelations + r.FailedLiterals
}

// Builder turns documents into a graph using a class catalog.
type Builder struct {
	catalog *ontology.Catalog
	base    string
	mint    bool
	strict  bool
	store   entity.Store
	logger  *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithBase sets the fallback namespace for entities whose document has no base.
func WithBase(base string) BuilderOption {
	return func(b *Builder) { b.base = base }
}

// WithMintURIs makes the builder mint base+uuid URIs for entities without
// one instead of deriving base+id.
func WithMintURIs(mint bool) BuilderOption {
	return func(b *Builder) { b.mint = mint }
}

// WithStrictLabels fails the build when any label is dropped.
func WithStrictLabels(strict bool) BuilderOption {
	return func(b *Builder) { b.strict = strict }
}

// WithStore hands a store to every created entity.
func WithStore(store entity.Store) BuilderOption {
	return func(b *Builder) { b.store = store }
}

// WithLogger sets the logger passed to every created entity.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder creates a builder. A nil catalog means ontology.Default().
func NewBuilder(cat *ontology.Catalog, opts ...BuilderOption) *Builder {
	if cat == nil {
		cat = ontology.Default()
	}
	b := &Builder{
		catalog: cat,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build creates every entity of docs, then applies literals and relations in
// document order. Ids are shared across documents so relations may cross
// files. The result is the union of all entity graphs.
//
// An unknown class, duplicate id or unknown target id is an error. Relations
// and literals the engine declines are logged and counted in the report.
func (b *Builder) Build(docs ...*Document) (*graph.Graph, Report, error) {
	var report Report
	report.Documents = len(docs)

	resources := make(map[string]*ontology.Resource)
	order := make([]*ontology.Resource, 0)

	for _, doc := range docs {
		for i, spec := range doc.Entities {
			r, minted, err := b.create(doc, spec)
			if err != nil {
				return nil, report, fmt.Errorf("%s: entity %d: %w", doc.name(), i, err)
			}
			if spec.ID != "" {
				if _, dup := resources[spec.ID]; dup {
					return nil, report, fmt.Errorf("%s: %w: %s", doc.name(), ErrDuplicateID, spec.ID)
				}
				resources[spec.ID] = r
			}
			order = append(order, r)

			report.Entities++
			if minted {
				report.Minted++
			}
			status := r.LabelStatus()
			report.DroppedLabels += status.Dropped
			if status.Degraded {
				report.DegradedEntities++
			}
		}
	}

	idx := 0
	for _, doc := range docs {
		for _, spec := range doc.Entities {
			r := order[idx]
			idx++

			for _, lit := range spec.Literals {
				report.Literals++
				if !r.SetLiteral(lit.Relation, lit.Text, lit.Lang) {
					report.FailedLiterals++
				}
			}

			for _, rel := range spec.Relations {
				report.Relations++
				ok, err := b.relate(r, rel, resources)
				if err != nil {
					return nil, report, fmt.Errorf("%s: entity %q: %w", doc.name(), spec.ID, err)
				}
				if !ok {
					report.FailedRelations++
				}
			}
		}
	}

	graphs := make([]*graph.Graph, 0, len(order))
	for _, r := range order {
		graphs = append(graphs, r.Graph())
	}
	g := graph.Union(graphs...)
	report.Statements = g.Len()

	b.logger.Debug("Build complete",
		"documents", report.Documents,
		"entities", report.Entities,
		"statements", report.Statements,
		"failures", report.Failures())

	return g, report, nil
}

func (b *Builder) create(doc *Document, spec EntitySpec) (*ontology.Resource, bool, error) {
	if spec.Class == "" {
		return nil, false, errors.New("class is required")
	}

	labels := make([]entity.Label, 0, len(spec.Labels))
	invalid := 0
	for _, raw := range spec.Labels {
		l, err := entity.ParseLabel(raw)
		if err != nil {
			b.logger.Debug("Skipping malformed label record", "id", spec.ID, "error", err)
			invalid++
			continue
		}
		labels = append(labels, l)
	}

	uri, minted := b.uriFor(doc, spec)

	r, err := b.catalog.New(spec.Class,
		entity.WithURI(uri),
		entity.WithLabels(labels...),
		entity.WithStore(b.store),
		entity.WithLogger(b.logger.With("id", spec.ID)),
	)
	if err != nil {
		return nil, false, err
	}

	if b.strict && (invalid > 0 || r.LabelStatus().Dropped > 0) {
		return nil, false, fmt.Errorf("%w: %s", ErrStrictLabels, spec.ID)
	}
	return r, minted, nil
}

// uriFor picks the entity URI: the explicit one, else base+uuid when minting,
// else base+id. Without a base the entity has no URI.
func (b *Builder) uriFor(doc *Document, spec EntitySpec) (string, bool) {
	if spec.URI != "" {
		return spec.URI, false
	}
	base := doc.Base
	if base == "" {
		base = b.base
	}
	if base == "" {
		return "", false
	}
	if !strings.HasSuffix(base, "/") && !strings.HasSuffix(base, "#") {
		base += "/"
	}
	if b.mint || spec.ID == "" {
		return base + uuid.NewString(), true
	}
	return base + spec.ID, false
}

func (b *Builder) relate(r *ontology.Resource, rel RelationSpec, resources map[string]*ontology.Resource) (bool, error) {
	targets := make([]*ontology.Resource, 0, len(rel.Targets))
	for _, id := range rel.Targets {
		t, ok := resources[id]
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrUnknownTarget, id)
		}
		targets = append(targets, t)
	}

	ok := true
	if len(targets) > 0 || len(rel.URIs) == 0 {
		ok = r.Relate(rel.Relation, targets...)
	}
	if len(rel.URIs) > 0 {
		ok = r.RelateURIs(rel.Relation, rel.URIs...) && ok
	}
	return ok, nil
}

// Build builds docs with a default builder over cat.
func Build(cat *ontology.Catalog, docs ...*Document) (*graph.Graph, Report, error) {
	return NewBuilder(cat).Build(docs...)
}

func (d *Document) name() string {
	if d.Path != "" {
		return d.Path
	}
	return "document"
}
