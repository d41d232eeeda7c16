package graph

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/c360studio/semcrm/vocabulary/namespaces"
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
	"golang.org/x/text/language"
)

var (
	// ErrInvalidURI is returned when a string is not an absolute URI.
	ErrInvalidURI = errors.New("invalid URI")

	// ErrConflictingLiteral is returned when a literal is given both a language tag and a datatype.
	ErrConflictingLiteral = errors.New("literal cannot have both a language tag and a datatype")
)

// Well-known predicates.
var (
	RDFType   = quad.IRI(rdf.Type).Full()
	RDFSLabel = quad.IRI(rdfs.Label).Full()
)

// ParseURI validates s as an absolute URI. Compact IRIs using a known ontology
// prefix (crm:E41_Appellation) are expanded first.
func ParseURI(s string) (quad.IRI, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURI)
	}
	if full, ok := namespaces.Expand(s); ok {
		s = full
	}
	if strings.ContainsAny(s, " \t\r\n<>\"{}|\\^`") {
		return "", fmt.Errorf("%w: %q contains illegal characters", ErrInvalidURI, s)
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	if u.Scheme == "" {
		return "", fmt.Errorf("%w: %q is not absolute", ErrInvalidURI, s)
	}
	return quad.IRI(s), nil
}

// MustParseURI is like ParseURI but panics on error. Use it for constants.
func MustParseURI(s string) quad.IRI {
	iri, err := ParseURI(s)
	if err != nil {
		panic(err)
	}
	return iri
}

// PlainLiteral returns a literal without language tag or datatype.
func PlainLiteral(text string) quad.Value {
	return quad.String(text)
}

// LangLiteral returns a language-tagged literal with the tag in canonical
// case (en, en-GB). An empty tag yields a plain literal.
func LangLiteral(text, lang string) quad.Value {
	if lang == "" {
		return quad.String(text)
	}
	return quad.LangString{Value: quad.String(text), Lang: CanonicalLang(lang)}
}

// CanonicalLang returns the BCP 47 canonical casing of tag. Language tags
// compare case-insensitively, so "EN" and "en" name the same language.
// Tags that do not parse are lowercased.
func CanonicalLang(tag string) string {
	if t, err := language.Raw.Parse(tag); err == nil {
		return t.String()
	}
	return strings.ToLower(tag)
}

func canonicalObject(v quad.Value) quad.Value {
	if ls, ok := v.(quad.LangString); ok && ls.Lang != "" {
		ls.Lang = CanonicalLang(ls.Lang)
		return ls
	}
	return v
}

// TypedLiteral returns a literal with a datatype IRI.
func TypedLiteral(text string, datatype quad.IRI) quad.Value {
	if datatype == "" {
		return quad.String(text)
	}
	return quad.TypedString{Value: quad.String(text), Type: datatype}
}

// Literal builds a literal carrying at most one of lang and datatype.
func Literal(text, lang string, datatype quad.IRI) (quad.Value, error) {
	switch {
	case lang != "" && datatype != "":
		return nil, ErrConflictingLiteral
	case lang != "":
		return LangLiteral(text, lang), nil
	case datatype != "":
		return TypedLiteral(text, datatype), nil
	default:
		return PlainLiteral(text), nil
	}
}

// Statement is a single subject-predicate-object assertion.
type Statement struct {
	Subject   quad.IRI
	Predicate quad.IRI
	Object    quad.Value
}

// Valid reports whether every position of the statement is set.
func (s Statement) Valid() bool {
	return s.Subject != "" && s.Predicate != "" && s.Object != nil
}

// Quad converts the statement to a quad in the default graph.
func (s Statement) Quad() quad.Quad {
	return quad.Quad{Subject: s.Subject, Predicate: s.Predicate, Object: s.Object}
}

// String returns the statement in N-Triples syntax without the trailing dot.
func (s Statement) String() string {
	return s.Subject.String() + " " + s.Predicate.String() + " " + s.Object.String()
}

// StatementFromQuad converts q, rejecting quads whose subject or predicate is not an IRI.
func StatementFromQuad(q quad.Quad) (Statement, error) {
	subj, ok := q.Subject.(quad.IRI)
	if !ok {
		return Statement{}, fmt.Errorf("%w: subject %v", ErrInvalidURI, q.Subject)
	}
	pred, ok := q.Predicate.(quad.IRI)
	if !ok {
		return Statement{}, fmt.Errorf("%w: predicate %v", ErrInvalidURI, q.Predicate)
	}
	if q.Object == nil {
		return Statement{}, errors.New("statement has no object")
	}
	return Statement{Subject: subj, Predicate: pred, Object: q.Object}, nil
}
