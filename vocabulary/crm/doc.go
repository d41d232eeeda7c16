// Package crm provides CIDOC-CRM class and property IRIs and registers the
// CRM properties as semstreams vocabulary predicates.
//
// Predicates use three-level dotted names (crm.category.property) and map to
// the CRM property IRI through vocabulary.WithIRI. Forward and inverse
// properties are registered separately.
//
// Import this package to auto-register predicates:
//
//	import _ "github.com/c360studio/semcrm/vocabulary/crm"
package crm
