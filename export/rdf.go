// Package export serializes RDF statements to standard textual syntaxes.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/dot"
	"github.com/cayleygraph/quad/jsonld"
	"github.com/cayleygraph/quad/nquads"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"

	// FormatDOT produces a Graphviz digraph.
	FormatDOT Format = "dot"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatTurtle

// ErrUnsupportedFormat is returned when a serialization format is not recognized.
var ErrUnsupportedFormat = errors.New("unsupported format")

// quadWriter is the subset of the quad writers used here.
type quadWriter interface {
	WriteQuad(quad.Quad) error
	Close() error
}

type options struct {
	prefixes map[string]string
	base     string
}

// Option configures a serialization.
type Option func(*options)

// WithPrefixes adds namespace prefixes used by the Turtle writer. Later
// options override earlier ones for the same prefix.
func WithPrefixes(prefixes map[string]string) Option {
	return func(o *options) {
		for k, v := range prefixes {
			o.prefixes[k] = v
		}
	}
}

// WithBase sets the Turtle @base IRI. When the base ends in "/", IRIs under
// it are written relative to it.
func WithBase(base string) Option {
	return func(o *options) {
		o.base = base
	}
}

// Write serializes quads to w in the requested format. Quads are written in
// the order given; callers wanting deterministic output must sort them first.
func Write(w io.Writer, format Format, quads []quad.Quad, opts ...Option) error {
	o := options{prefixes: make(map[string]string)}
	for _, opt := range opts {
		opt(&o)
	}

	if format == "" {
		format = DefaultFormat
	}

	switch format {
	case FormatTurtle:
		tw := NewTurtleWriter(o.prefixes)
		tw.SetBase(o.base)
		tw.WriteQuads(quads)
		if _, err := io.WriteString(w, tw.String()); err != nil {
			return fmt.Errorf("write turtle: %w", err)
		}
		return nil
	case FormatNTriples:
		return writeAll(nquads.NewWriter(w), quads, format)
	case FormatJSONLD:
		return writeAll(jsonld.NewWriter(w), quads, format)
	case FormatDOT:
		return writeAll(dot.NewWriter(w), quads, format)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func writeAll(qw quadWriter, quads []quad.Quad, format Format) error {
	for _, q := range quads {
		if err := qw.WriteQuad(q); err != nil {
			qw.Close()
			return fmt.Errorf("write %s: %w", format, err)
		}
	}
	if err := qw.Close(); err != nil {
		return fmt.Errorf("close %s writer: %w", format, err)
	}
	return nil
}
