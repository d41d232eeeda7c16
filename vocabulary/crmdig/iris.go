// Package crmdig provides CRMdig class IRIs.
package crmdig

import "github.com/c360studio/semcrm/vocabulary/namespaces"

// Namespace is the CRMdig base IRI.
const Namespace = namespaces.DIG

// Class IRIs.
const (
	// ClassDigitalObject is D1 Digital Object.
	// Extends: crm:E73 Information Object
	ClassDigitalObject = Namespace + "D1_Digital_Object"

	// ClassSoftware is D14 Software.
	// Extends: D1 Digital Object
	ClassSoftware = Namespace + "D14_Software"
)
