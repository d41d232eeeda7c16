// Package graph provides the RDF statement set shared by entities, and
// utilities for publishing it to the semstreams knowledge graph.
package graph

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/c360studio/semcrm/export"
	"github.com/c360studio/semcrm/vocabulary/namespaces"
	"github.com/cayleygraph/quad"
)

// Graph is a set of statements. Adding a statement that is already present
// has no effect. The zero value is not usable; call New.
type Graph struct {
	stmts map[string]Statement
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{stmts: make(map[string]Statement)}
}

// FromQuads builds a graph from parsed quads. Graph labels are ignored.
func FromQuads(quads []quad.Quad) (*Graph, error) {
	g := New()
	for _, q := range quads {
		st, err := StatementFromQuad(q)
		if err != nil {
			return nil, err
		}
		g.AddStatement(st)
	}
	return g, nil
}

// Add inserts (s, p, o) and reports whether the statement was new.
// Statements with an empty position are ignored.
func (g *Graph) Add(s, p quad.IRI, o quad.Value) bool {
	return g.AddStatement(Statement{Subject: s, Predicate: p, Object: o})
}

// AddStatement inserts st and reports whether it was new. Language tags are
// stored in canonical case.
func (g *Graph) AddStatement(st Statement) bool {
	if !st.Valid() {
		return false
	}
	st.Object = canonicalObject(st.Object)
	key := st.String()
	if _, ok := g.stmts[key]; ok {
		return false
	}
	g.stmts[key] = st
	return true
}

// Merge adds every statement of other to g and returns g. Merging a nil or
// empty graph is a no-op.
func (g *Graph) Merge(other *Graph) *Graph {
	if other == nil || other == g {
		return g
	}
	for k, st := range other.stmts {
		g.stmts[k] = st
	}
	return g
}

// Union returns a new graph holding the statements of all graphs. The inputs
// are not modified.
func Union(graphs ...*Graph) *Graph {
	out := New()
	for _, other := range graphs {
		out.Merge(other)
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	return Union(g)
}

// Len returns the number of statements.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.stmts)
}

// IsEmpty reports whether the graph has no statements.
func (g *Graph) IsEmpty() bool {
	return g.Len() == 0
}

// Contains reports whether (s, p, o) is in the graph.
func (g *Graph) Contains(s, p quad.IRI, o quad.Value) bool {
	return g.ContainsStatement(Statement{Subject: s, Predicate: p, Object: o})
}

// ContainsStatement reports whether st is in the graph.
func (g *Graph) ContainsStatement(st Statement) bool {
	if g == nil || !st.Valid() {
		return false
	}
	st.Object = canonicalObject(st.Object)
	_, ok := g.stmts[st.String()]
	return ok
}

// Statements returns all statements ordered by subject, predicate and object.
func (g *Graph) Statements() []Statement {
	if g == nil {
		return nil
	}
	out := make([]Statement, 0, len(g.stmts))
	for _, st := range g.stmts {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Subject != b.Subject {
			return a.Subject < b.Subject
		}
		if a.Predicate != b.Predicate {
			return a.Predicate < b.Predicate
		}
		return a.Object.String() < b.Object.String()
	})
	return out
}

// Quads returns the statements as quads, in Statements order.
func (g *Graph) Quads() []quad.Quad {
	stmts := g.Statements()
	out := make([]quad.Quad, len(stmts))
	for i, st := range stmts {
		out[i] = st.Quad()
	}
	return out
}

// Subjects returns the distinct subjects in sorted order.
func (g *Graph) Subjects() []quad.IRI {
	var out []quad.IRI
	for _, st := range g.Statements() {
		if len(out) == 0 || out[len(out)-1] != st.Subject {
			out = append(out, st.Subject)
		}
	}
	return out
}

// Objects returns the objects of statements matching subject and predicate.
func (g *Graph) Objects(s, p quad.IRI) []quad.Value {
	var out []quad.Value
	for _, st := range g.Statements() {
		if st.Subject == s && st.Predicate == p {
			out = append(out, st.Object)
		}
	}
	return out
}

// Equal reports whether g and other hold the same statements.
func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() {
		return false
	}
	if g.Len() == 0 {
		return true
	}
	for k := range g.stmts {
		if _, ok := other.stmts[k]; !ok {
			return false
		}
	}
	return true
}

// Serialize renders the graph in format with the default ontology prefixes.
// An empty format selects Turtle.
func (g *Graph) Serialize(format export.Format, opts ...export.Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Write(&buf, format, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write streams the serialized graph to w.
func (g *Graph) Write(w io.Writer, format export.Format, opts ...export.Option) error {
	all := append([]export.Option{export.WithPrefixes(namespaces.Map())}, opts...)
	if err := export.Write(w, format, g.Quads(), all...); err != nil {
		return fmt.Errorf("serialize graph: %w", err)
	}
	return nil
}
