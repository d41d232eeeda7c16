package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/c360studio/semcrm/vocabulary/namespaces"
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
	"github.com/piprate/json-gold/ld"
)

const xsdString = namespaces.XSD + "string"

// ReadNTriples parses N-Triples (or N-Quads) from r. Literals keep their
// lexical form and full datatype IRI.
func ReadNTriples(r io.Reader) ([]quad.Quad, error) {
	qr := nquads.NewReader(r, true)

	var out []quad.Quad
	for {
		q, err := qr.ReadQuad()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read n-triples: %w", err)
		}
		out = append(out, q)
	}
}

// ReadJSONLD parses a JSON-LD document from r into quads of the default
// graph. Typed literals are kept as quad.TypedString.
func ReadJSONLD(r io.Reader) ([]quad.Quad, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("read json-ld: %w", err)
	}

	data, err := ld.NewJsonLdProcessor().ToRDF(doc, ld.NewJsonLdOptions(""))
	if err != nil {
		return nil, fmt.Errorf("read json-ld: %w", err)
	}
	dataset, ok := data.(*ld.RDFDataset)
	if !ok {
		return nil, fmt.Errorf("read json-ld: unexpected result %T", data)
	}

	var out []quad.Quad
	for _, q := range dataset.Graphs["@default"] {
		out = append(out, quad.Quad{
			Subject:   fromNode(q.Subject),
			Predicate: fromNode(q.Predicate),
			Object:    fromNode(q.Object),
		})
	}
	return out, nil
}

func fromNode(n ld.Node) quad.Value {
	switch t := n.(type) {
	case *ld.IRI:
		return quad.IRI(t.Value)
	case *ld.BlankNode:
		return quad.BNode(strings.TrimPrefix(t.Attribute, "_:"))
	case *ld.Literal:
		switch {
		case t.Language != "":
			return quad.LangString{Value: quad.String(t.Value), Lang: t.Language}
		case t.Datatype != "" && t.Datatype != xsdString:
			return quad.TypedString{Value: quad.String(t.Value), Type: quad.IRI(t.Datatype)}
		default:
			return quad.String(t.Value)
		}
	default:
		return nil
	}
}
