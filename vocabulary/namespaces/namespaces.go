// Package namespaces holds the ontology namespaces and prefixes used by semcrm
// and the registration helper shared by the ontology vocabularies.
package namespaces

import (
	"log/slog"
	"sort"
	"strings"
)

// W3C namespaces.
const (
	RDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS = "http://www.w3.org/2000/01/rdf-schema#"
	OWL  = "http://www.w3.org/2002/07/owl#"
	XSD  = "http://www.w3.org/2001/XMLSchema#"
)

// Ontology namespaces of the CIDOC-CRM family.
const (
	// CRM is the CIDOC-CRM base namespace.
	CRM = "http://www.cidoc-crm.org/cidoc-crm/"

	// LRM is the LRMoo namespace.
	LRM = "http://www.cidoc-crm.org/cidoc-crm/lrmoo/"

	// DIG is the CRMdig namespace.
	DIG = "http://www.ics.forth.gr/isl/CRMdig/"

	// PEM is the Parthenos Entities Model namespace as published in its RDFS file.
	PEM = "http://parthenos.d4science.org/CRMext/CRMpe.rdfs#"

	// CLS is the CRMcls namespace.
	CLS = "https://clscor.io/ontologies/CRMcls/"
)

// Prefix binds a short prefix to a namespace IRI.
type Prefix struct {
	Prefix  string `json:"prefix" yaml:"prefix"`
	IRI     string `json:"uri" yaml:"uri"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

var defaults = []Prefix{
	{Prefix: "rdf", IRI: RDF},
	{Prefix: "rdfs", IRI: RDFS},
	{Prefix: "owl", IRI: OWL},
	{Prefix: "xsd", IRI: XSD},
	{Prefix: "crm", IRI: CRM, Version: "v7.1.2"},
	{Prefix: "cls", IRI: CLS},
	{Prefix: "lrm", IRI: LRM, Version: "v0.9"},
	{Prefix: "pem", IRI: PEM},
	{Prefix: "dig", IRI: DIG},
}

// All returns the known prefixes in declaration order.
func All() []Prefix {
	out := make([]Prefix, len(defaults))
	copy(out, defaults)
	return out
}

// Map returns the prefixes as a prefix -> namespace map.
func Map() map[string]string {
	m := make(map[string]string, len(defaults))
	for _, p := range defaults {
		m[p.Prefix] = p.IRI
	}
	return m
}

// Lookup returns the namespace IRI for prefix, or "" if the prefix is not defined.
func Lookup(prefix string) string {
	for _, p := range defaults {
		if p.Prefix == prefix {
			return p.IRI
		}
	}
	slog.Warn("Prefix is not defined", "prefix", prefix)
	return ""
}

// Expand turns a compact IRI such as "crm:E41_Appellation" into a full IRI.
// The second return value is false when the prefix is unknown or the input is
// not in prefix:local form.
func Expand(curie string) (string, bool) {
	prefix, local, found := strings.Cut(curie, ":")
	if !found || strings.HasPrefix(local, "//") {
		return "", false
	}
	for _, p := range defaults {
		if p.Prefix == prefix {
			return p.IRI + local, true
		}
	}
	return "", false
}

// Compact splits iri into a known prefix and local name, preferring the
// longest matching namespace (lrm over crm).
func Compact(iri string, prefixes map[string]string) (prefix, local string, ok bool) {
	if prefixes == nil {
		prefixes = Map()
	}

	keys := make([]string, 0, len(prefixes))
	for k := range prefixes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := len(prefixes[keys[i]]), len(prefixes[keys[j]])
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})

	for _, k := range keys {
		ns := prefixes[k]
		if ns != "" && strings.HasPrefix(iri, ns) {
			return k, strings.TrimPrefix(iri, ns), true
		}
	}
	return "", "", false
}
