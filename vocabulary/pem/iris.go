// Package pem provides Parthenos Entities Model class IRIs for the PEM classes
// reused by CRMcls.
package pem

import "github.com/c360studio/semcrm/vocabulary/namespaces"

// Namespace is the PEM base IRI.
const Namespace = namespaces.PEM

// Class IRIs.
const (
	// Extends: crm:E7 Activity
	ClassService = Namespace + "PE1_Service"

	// Extends: PE1 Service
	ClassEService = Namespace + "PE8_E-Service"

	// Extends: crmdig:D1 Digital Object
	ClassPersistentDigitalObject = Namespace + "PE19_Persistent_Digital_Object"

	// Extends: crmdig:D1 Digital Object, crm:E70 Thing
	ClassVolatileDigitalObject = Namespace + "PE20_Volatile_Digital_Object"

	// Extends: crmdig:D14 Software, PE20 Volatile Digital Object
	ClassVolatileSoftware = Namespace + "PE23_Volatile_Software"

	// Extends: crm:E70 Thing
	ClassCuratedThing = Namespace + "PE32_Curated_Thing"

	// Extends: crm:E55 Type
	ClassProtocolType = Namespace + "PE37_Protocol_Type"

	// Extends: crmdig:D14 Software
	ClassSchema = Namespace + "PE38_Schema"

	// Extends: crm:E55 Type
	ClassEncodingType = Namespace + "PE43_Encoding_Type"
)
