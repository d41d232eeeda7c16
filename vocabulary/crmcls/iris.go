// Package crmcls provides CRMcls class IRIs for describing literary corpora.
package crmcls

import "github.com/c360studio/semcrm/vocabulary/namespaces"

// Namespace is the CRMcls base IRI.
const Namespace = namespaces.CLS

// Class IRIs.
const (
	// Extends: crmdig:D1 Digital Object, lrm:F3 Manifestation
	ClassCorpus = Namespace + "X1_Corpus"

	// Extends: crmdig:D1 Digital Object, lrm:F3 Manifestation
	ClassCorpusDocument = Namespace + "X2_Corpus_Document"

	// Extends: crm:E73 Information Object, crm:E55 Type
	ClassFeature = Namespace + "X3_Feature"

	// Extends: crm:E7 Activity
	ClassProject = Namespace + "X4_Project"

	// Extends: crm:E7 Activity
	ClassResearchActivity = Namespace + "X5_Research_Activity"

	// Extends: crm:E29 Design or Procedure
	ClassMethod = Namespace + "X6_Method"

	// Equivalent to pem:PE43_Encoding_Type
	ClassFormat = Namespace + "X7_Format"

	// Equivalent to pem:PE38_Schema
	ClassSchema = Namespace + "X8_Schema"

	// Extends: crm:E83 Type Creation
	ClassCorpusDescription = Namespace + "X9_Corpus_Description"

	// Extends: crm:E90 Symbolic Object
	ClassEncodingPattern = Namespace + "X10_Encoding_Pattern"

	// Extends: crm:E55 Type
	ClassPrototypicalDocument = Namespace + "X11_Prototypical_Document"
)
