package export_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/c360studio/semcrm/export"
	"github.com/cayleygraph/quad"
	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	crmNS   = "http://www.cidoc-crm.org/cidoc-crm/"
	rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	label   = "http://www.w3.org/2000/01/rdf-schema#label"
	xsdNS   = "http://www.w3.org/2001/XMLSchema#"
)

func sampleQuads() []quad.Quad {
	return []quad.Quad{
		{Subject: quad.IRI("urn:x"), Predicate: quad.IRI(crmNS + "P1_is_identified_by"), Object: quad.IRI("urn:y")},
		{Subject: quad.IRI("urn:x"), Predicate: quad.IRI(rdfType), Object: quad.IRI(crmNS + "E70_Thing")},
		{Subject: quad.IRI("urn:y"), Predicate: quad.IRI(rdfType), Object: quad.IRI(crmNS + "E41_Appellation")},
		{Subject: quad.IRI("urn:y"), Predicate: quad.IRI(label), Object: quad.LangString{Value: "Faust", Lang: "de"}},
		{Subject: quad.IRI("urn:y"), Predicate: quad.IRI(crmNS + "P3_has_note"), Object: quad.String(`say "hi"`)},
	}
}

func TestWriteTurtle(t *testing.T) {
	var buf bytes.Buffer
	err := export.Write(&buf, export.FormatTurtle, sampleQuads())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "@prefix crm: <http://www.cidoc-crm.org/cidoc-crm/> .")
	assert.Contains(t, out, "<urn:x>\n    a crm:E70_Thing ;\n    crm:P1_is_identified_by <urn:y> .\n")
	assert.Contains(t, out, `rdfs:label "Faust"@de ;`)
	assert.Contains(t, out, `crm:P3_has_note "say \"hi\"" .`)
	assert.True(t, strings.Index(out, "<urn:x>") < strings.Index(out, "<urn:y>"))
}

func TestWriteTurtleIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, export.Write(&a, export.FormatTurtle, sampleQuads()))
	require.NoError(t, export.Write(&b, export.FormatTurtle, sampleQuads()))
	assert.Equal(t, a.String(), b.String())
}

func TestWriteTurtleUnsafeLocalName(t *testing.T) {
	quads := []quad.Quad{
		{Subject: quad.IRI(crmNS + "odd/name"), Predicate: quad.IRI(rdfType), Object: quad.IRI(crmNS + "E1_CRM_Entity")},
	}

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatTurtle, quads))
	assert.Contains(t, buf.String(), "<http://www.cidoc-crm.org/cidoc-crm/odd/name>")
}

func TestWriteTurtleBaseAndPrefixes(t *testing.T) {
	quads := []quad.Quad{
		{Subject: quad.IRI("http://example.org/data/x1"), Predicate: quad.IRI(rdfType), Object: quad.IRI("http://example.org/voc/Thing")},
	}

	var buf bytes.Buffer
	err := export.Write(&buf, export.FormatTurtle, quads,
		export.WithBase("http://example.org/data/"),
		export.WithPrefixes(map[string]string{"ex": "http://example.org/voc/"}))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "@base <http://example.org/data/> .")
	assert.Contains(t, out, "@prefix ex: <http://example.org/voc/> .")
	assert.Contains(t, out, "<x1>\n    a ex:Thing .")
}

func TestWriteTypedLiteralTurtle(t *testing.T) {
	quads := []quad.Quad{
		{Subject: quad.IRI("urn:d"), Predicate: quad.IRI(crmNS + "P90_has_value"), Object: quad.TypedString{
			Value: "12.5",
			Type:  quad.IRI("http://www.w3.org/2001/XMLSchema#decimal"),
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatTurtle, quads))
	assert.Contains(t, buf.String(), `crm:P90_has_value "12.5"^^xsd:decimal .`)
}

func TestNTriplesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatNTriples, sampleQuads()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(sampleQuads()))

	got, err := export.ReadNTriples(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(sampleQuads()))
	for i, q := range sampleQuads() {
		assert.Equal(t, q.Subject, got[i].Subject)
		assert.Equal(t, q.Predicate, got[i].Predicate)
		assert.Equal(t, q.Object, got[i].Object)
	}
}

func TestWriteJSONLD(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatJSONLD, sampleQuads()))

	var doc any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Contains(t, buf.String(), "urn:x")
	assert.Contains(t, buf.String(), "Faust")
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatDOT, sampleQuads()))
	assert.Contains(t, buf.String(), "digraph")
	assert.Contains(t, buf.String(), "urn:y")
}

func TestWriteUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := export.Write(&buf, export.Format("rdfxml"), sampleQuads())
	require.Error(t, err)
	assert.True(t, errors.Is(err, export.ErrUnsupportedFormat))
	assert.Zero(t, buf.Len())
}

func TestWriteDefaultsToTurtle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, "", sampleQuads()))
	assert.Contains(t, buf.String(), "@prefix")
}

func typedQuads() []quad.Quad {
	d := quad.IRI("http://example.org/data/d1")
	return []quad.Quad{
		{Subject: d, Predicate: quad.IRI(crmNS + "P90_has_value"), Object: quad.TypedString{Value: "true", Type: xsdNS + "boolean"}},
		{Subject: d, Predicate: quad.IRI(crmNS + "P90_has_value"), Object: quad.TypedString{Value: "12.5", Type: xsdNS + "double"}},
		{Subject: d, Predicate: quad.IRI(crmNS + "P90_has_value"), Object: quad.TypedString{Value: "7", Type: xsdNS + "int"}},
		{Subject: d, Predicate: quad.IRI(crmNS + "P90_has_value"), Object: quad.TypedString{Value: "12.50", Type: xsdNS + "decimal"}},
	}
}

// readBackQuads mixes IRIs, language strings, escaped strings and typed literals.
func readBackQuads() []quad.Quad {
	x := quad.IRI("http://example.org/data/x1")
	y := quad.IRI("http://example.org/data/y1")
	return append([]quad.Quad{
		{Subject: x, Predicate: quad.IRI(rdfType), Object: quad.IRI(crmNS + "E70_Thing")},
		{Subject: x, Predicate: quad.IRI(crmNS + "P1_is_identified_by"), Object: y},
		{Subject: y, Predicate: quad.IRI(rdfType), Object: quad.IRI(crmNS + "E41_Appellation")},
		{Subject: y, Predicate: quad.IRI(crmNS + "P1i_identifies"), Object: x},
		{Subject: y, Predicate: quad.IRI(label), Object: quad.LangString{Value: "Faust", Lang: "de"}},
		{Subject: y, Predicate: quad.IRI(crmNS + "P3_has_note"), Object: quad.String(`say "hi"`)},
		{Subject: y, Predicate: quad.IRI(crmNS + "P3_has_note"), Object: quad.String("line one\nline two")},
	}, typedQuads()...)
}

func TestNTriplesTypedLiteralsRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatNTriples, typedQuads()))

	got, err := export.ReadNTriples(&buf)
	require.NoError(t, err)
	assert.Equal(t, typedQuads(), got)
}

// readTurtle parses Turtle with an independent parser and maps its terms
// back to quad values.
func readTurtle(t *testing.T, data string) []quad.Quad {
	t.Helper()
	triples, err := rdf.NewTripleDecoder(strings.NewReader(data), rdf.Turtle).DecodeAll()
	require.NoError(t, err, data)

	out := make([]quad.Quad, 0, len(triples))
	for _, tr := range triples {
		out = append(out, quad.Quad{
			Subject:   fromTerm(t, tr.Subj),
			Predicate: fromTerm(t, tr.Pred),
			Object:    fromTerm(t, tr.Obj),
		})
	}
	return out
}

func fromTerm(t *testing.T, term rdf.Term) quad.Value {
	t.Helper()
	switch v := term.(type) {
	case rdf.IRI:
		return quad.IRI(v.String())
	case rdf.Literal:
		if v.Lang() != "" {
			return quad.LangString{Value: quad.String(v.String()), Lang: v.Lang()}
		}
		if dt := v.DataType.String(); dt != "" && dt != xsdNS+"string" {
			return quad.TypedString{Value: quad.String(v.String()), Type: quad.IRI(dt)}
		}
		return quad.String(v.String())
	default:
		t.Fatalf("unexpected term %T", term)
		return nil
	}
}

func TestTurtleReadsBack(t *testing.T) {
	tests := []struct {
		name     string
		opts     []export.Option
		relative bool
	}{
		{name: "no base"},
		{name: "slash base", opts: []export.Option{export.WithBase("http://example.org/data/")}, relative: true},
		{name: "hash base", opts: []export.Option{export.WithBase("http://example.org/data#")}},
		{name: "base without separator", opts: []export.Option{export.WithBase("http://example.org/data/x")}},
		{name: "extra prefix", opts: []export.Option{export.WithPrefixes(map[string]string{"ex": "http://example.org/data/"})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, export.Write(&buf, export.FormatTurtle, readBackQuads(), tt.opts...))

			assert.ElementsMatch(t, readBackQuads(), readTurtle(t, buf.String()))
			assert.Equal(t, tt.relative, strings.Contains(buf.String(), "<x1>"))
		})
	}
}

func TestTurtleHashBaseWritesAbsoluteIRIs(t *testing.T) {
	quads := []quad.Quad{
		{Subject: quad.IRI("http://example.org/ns#ger"), Predicate: quad.IRI(rdfType), Object: quad.IRI(crmNS + "E70_Thing")},
		{Subject: quad.IRI("http://example.org/entityger"), Predicate: quad.IRI(rdfType), Object: quad.IRI(crmNS + "E70_Thing")},
	}

	for _, base := range []string{"http://example.org/ns#", "http://example.org/entity"} {
		var buf bytes.Buffer
		require.NoError(t, export.Write(&buf, export.FormatTurtle, quads, export.WithBase(base)))

		out := buf.String()
		assert.NotContains(t, out, "<ger>", base)
		assert.Contains(t, out, "<http://example.org/ns#ger>")
		assert.Contains(t, out, "<http://example.org/entityger>")
		assert.ElementsMatch(t, quads, readTurtle(t, out))
	}
}

func TestJSONLDReadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatJSONLD, readBackQuads()))

	got, err := export.ReadJSONLD(&buf)
	require.NoError(t, err)
	assert.ElementsMatch(t, readBackQuads(), got)
}

func TestReadJSONLDInvalid(t *testing.T) {
	_, err := export.ReadJSONLD(strings.NewReader("{not json"))
	assert.Error(t, err)
}
