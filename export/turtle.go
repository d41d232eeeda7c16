package export

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/c360studio/semcrm/vocabulary/namespaces"
	"github.com/cayleygraph/quad"
)

const rdfType = namespaces.RDF + "type"

// pnLocal matches local names that can be written as a prefixed name without escaping.
var pnLocal = regexp.MustCompile(`^[A-Za-z0-9_]([A-Za-z0-9_.\-]*[A-Za-z0-9_\-])?$`)

// relativeRef matches IRI remainders that resolve back to the same IRI
// against a base ending in "/".
var relativeRef = regexp.MustCompile(`^[A-Za-z0-9_.\-~]+$`)

// TurtleWriter writes RDF in Turtle format.
type TurtleWriter struct {
	prefixes map[string]string
	base     string
	sb       strings.Builder
}

// NewTurtleWriter creates a Turtle writer with the default ontology prefixes
// plus any extra prefixes given.
func NewTurtleWriter(extra map[string]string) *TurtleWriter {
	prefixes := namespaces.Map()
	for k, v := range extra {
		prefixes[k] = v
	}
	return &TurtleWriter{prefixes: prefixes}
}

// SetPrefix sets a namespace prefix.
func (w *TurtleWriter) SetPrefix(prefix, iri string) {
	w.prefixes[prefix] = iri
}

// SetBase sets the @base IRI. IRIs are only written relative to a base
// ending in "/". An empty base disables relative IRIs.
func (w *TurtleWriter) SetBase(base string) {
	w.base = base
}

// WritePrefixes writes the @base and prefix declarations.
func (w *TurtleWriter) WritePrefixes() {
	if w.base != "" {
		fmt.Fprintf(&w.sb, "@base <%s> .\n", w.base)
	}

	// Sort prefixes for consistent output
	keys := make([]string, 0, len(w.prefixes))
	for k := range w.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, prefix := range keys {
		fmt.Fprintf(&w.sb, "@prefix %s: <%s> .\n", prefix, w.prefixes[prefix])
	}
	w.sb.WriteString("\n")
}

// WriteSubject starts a new subject block.
func (w *TurtleWriter) WriteSubject(subject quad.Value) {
	fmt.Fprintf(&w.sb, "%s\n", w.formatTerm(subject))
}

// WriteType writes a type assertion.
func (w *TurtleWriter) WriteType(class quad.Value, last bool) {
	fmt.Fprintf(&w.sb, "    a %s%s\n", w.formatTerm(class), terminator(last))
}

// WritePredicate writes a predicate-object pair.
func (w *TurtleWriter) WritePredicate(predicate, object quad.Value, last bool) {
	fmt.Fprintf(&w.sb, "    %s %s%s\n", w.formatTerm(predicate), w.formatTerm(object), terminator(last))
}

// WriteBlank writes a blank line for readability.
func (w *TurtleWriter) WriteBlank() {
	w.sb.WriteString("\n")
}

// WriteQuads writes the prefix block followed by one block per subject.
// Subjects appear in order of first occurrence, with rdf:type first.
func (w *TurtleWriter) WriteQuads(quads []quad.Quad) {
	w.WritePrefixes()

	var order []string
	bySubject := make(map[string][]quad.Quad)
	subjects := make(map[string]quad.Value)
	for _, q := range quads {
		key := q.Subject.String()
		if _, ok := bySubject[key]; !ok {
			order = append(order, key)
			subjects[key] = q.Subject
		}
		bySubject[key] = append(bySubject[key], q)
	}

	for _, key := range order {
		group := bySubject[key]
		sort.SliceStable(group, func(i, j int) bool {
			return isType(group[i]) && !isType(group[j])
		})

		w.WriteSubject(subjects[key])
		for i, q := range group {
			last := i == len(group)-1
			if isType(q) {
				w.WriteType(q.Object, last)
			} else {
				w.WritePredicate(q.Predicate, q.Object, last)
			}
		}
		w.WriteBlank()
	}
}

// String returns the accumulated Turtle output.
func (w *TurtleWriter) String() string {
	return w.sb.String()
}

func (w *TurtleWriter) formatTerm(v quad.Value) string {
	switch t := v.(type) {
	case quad.IRI:
		return w.formatIRI(string(t))
	case quad.TypedString:
		return quad.String(t.Value).String() + "^^" + w.formatIRI(string(t.Type))
	case nil:
		return `""`
	default:
		// quad renders strings, language strings and blank nodes in
		// N-Triples syntax, which Turtle accepts unchanged.
		return v.String()
	}
}

func (w *TurtleWriter) formatIRI(iri string) string {
	if prefix, local, ok := namespaces.Compact(iri, w.prefixes); ok && pnLocal.MatchString(local) {
		return prefix + ":" + local
	}
	if strings.HasSuffix(w.base, "/") && strings.HasPrefix(iri, w.base) {
		if rest := strings.TrimPrefix(iri, w.base); rest != "." && rest != ".." && relativeRef.MatchString(rest) {
			return "<" + rest + ">"
		}
	}
	return quad.IRI(iri).String()
}

func isType(q quad.Quad) bool {
	p, ok := q.Predicate.(quad.IRI)
	return ok && string(p) == rdfType
}

func terminator(last bool) string {
	if last {
		return " ."
	}
	return " ;"
}
