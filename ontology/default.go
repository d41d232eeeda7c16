package ontology

import (
	"sync"

	"github.com/c360studio/semcrm/entity"
	"github.com/c360studio/semcrm/vocabulary/crm"
	"github.com/c360studio/semcrm/vocabulary/crmcls"
	"github.com/c360studio/semcrm/vocabulary/crmdig"
	"github.com/c360studio/semcrm/vocabulary/lrmoo"
	"github.com/c360studio/semcrm/vocabulary/namespaces"
	"github.com/c360studio/semcrm/vocabulary/pem"
	"github.com/cayleygraph/quad"
)

// Relation names.
const (
	RelIsIdentifiedBy          = "is_identified_by"
	RelIdentifies              = "identifies"
	RelHasType                 = "has_type"
	RelIsTypeOf                = "is_type_of"
	RelHasPreferredIdentifier  = "has_preferred_identifier"
	RelIsPreferredIdentifierOf = "is_preferred_identifier_of"
	RelIsReferredToBy          = "is_referred_to_by"
	RelRefersTo                = "refers_to"
	RelHasDimension            = "has_dimension"
	RelIsDimensionOf           = "is_dimension_of"
	RelWasUsedFor              = "was_used_for"
	RelHasTitle                = "has_title"
	RelIsTitleOf               = "is_title_of"
	RelWasCreatedBy            = "was_created_by"
	RelTypeWasCreatedBy        = "type_was_created_by"
	RelHasComponent            = "has_component"
	RelIsComponentOf           = "is_component_of"
	RelIsComposedOf            = "is_composed_of"
	RelFormsPartOf             = "forms_part_of"
	RelCarries                 = "carries"
	RelIsCarriedBy             = "is_carried_by"
	RelWasUsedBy               = "was_used_by"
	RelCarriedOutBy            = "carried_out_by"
	RelUsedSpecificObject      = "used_specific_object"
	RelUsedSpecificTechnique   = "used_specific_technique"
	RelHasCreated              = "has_created"
	RelCreatedType             = "created_type"

	RelIsLogicalSuccessorOf             = "is_logical_successor_of"
	RelHasSuccessor                     = "has_successor"
	RelIsDerivativeOf                   = "is_derivative_of"
	RelHasDerivative                    = "has_derivative"
	RelIsRealisedIn                     = "is_realised_in"
	RelRealises                         = "realises"
	RelHasMember                        = "has_member"
	RelIsMemberOf                       = "is_member_of"
	RelHasPart                          = "has_part"
	RelIsInspiredBy                     = "is_inspired_by"
	RelIsInspirationFor                 = "is_inspiration_for"
	RelTakesRepresentativeAttributeFrom = "takes_representative_attribute_from"
	RelBearsRepresentativeAttributeFor  = "bears_representative_attribute_for"
	RelUsesExpressionOf                 = "uses_expression_of"
	RelHasExpressionUsedIn              = "has_expression_used_in"
	RelHasFragment                      = "has_fragment"
	RelIsFragmentOf                     = "is_fragment_of"
	RelIncorporates                     = "incorporates"
	RelIsIncorporatedIn                 = "is_incorporated_in"
)

// Literal property names.
const (
	LitHasNote            = "has_note"
	LitHasValue           = "has_value"
	LitHasSymbolicContent = "has_symbolic_content"
)

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared built-in catalog. Callers that register their
// own classes should start from NewDefaultCatalog instead.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewDefaultCatalog()
	})
	return defaultCatalog
}

// NewDefaultCatalog returns a fresh catalog holding the built-in CIDOC-CRM,
// LRMoo, CRMdig, PEM and CRMcls classes.
func NewDefaultCatalog() *Catalog {
	c := NewCatalog()
	c.MustRegister(crmClasses()...)
	c.MustRegister(lrmooClasses()...)
	c.MustRegister(extensionClasses()...)
	return c
}

func rel(name, forward, inverse, rng string) Relation {
	return Relation{
		Name:     name,
		Property: entity.Property{Forward: quad.IRI(forward), Inverse: quad.IRI(inverse)},
		Range:    rng,
	}
}

// The implemented hierarchy skips intermediate CRM classes that are not
// modelled; E70 hangs directly off E1.
func crmClasses() []ClassSpec {
	return []ClassSpec{
		{
			Name: "E1_CRM_Entity", IRI: crm.ClassCRMEntity,
			Relations: []Relation{
				rel(RelIsIdentifiedBy, crm.PropIsIdentifiedBy, crm.PropIdentifies, "E41_Appellation"),
				rel(RelHasType, crm.PropHasType, crm.PropIsTypeOf, "E55_Type"),
				rel(RelHasPreferredIdentifier, crm.PropHasPreferredIdentifier, crm.PropIsPreferredIdentifierOf, "E41_Appellation"),
				rel(RelIsReferredToBy, crm.PropIsReferredToBy, crm.PropRefersTo, "E89_Propositional_Object"),
			},
			Literals: []LiteralRelation{
				{Name: LitHasNote, Predicate: crm.PropHasNote},
			},
		},
		{
			Name: "E70_Thing", IRI: crm.ClassThing, Parents: []string{"E1_CRM_Entity"},
			Relations: []Relation{
				rel(RelHasDimension, crm.PropHasDimension, crm.PropIsDimensionOf, "E54_Dimension"),
				rel(RelWasUsedFor, crm.PropWasUsedFor, crm.PropUsedSpecificObject, "E7_Activity"),
			},
		},
		{
			Name: "E71_Human-Made_Thing", IRI: crm.ClassHumanMadeThing, Parents: []string{"E70_Thing"},
			Relations: []Relation{
				rel(RelHasTitle, crm.PropHasTitle, crm.PropIsTitleOf, "E41_Appellation"),
			},
		},
		{Name: "E72_Legal_Object", IRI: crm.ClassLegalObject, Parents: []string{"E70_Thing"}},
		{
			Name: "E24_Physical_Human-Made_Thing", IRI: crm.ClassPhysicalHumanMadeThing, Parents: []string{"E71_Human-Made_Thing"},
			Relations: []Relation{
				rel(RelCarries, crm.PropCarries, crm.PropIsCarriedBy, "E90_Symbolic_Object"),
			},
		},
		{
			Name: "E28_Conceptual_Object", IRI: crm.ClassConceptualObject, Parents: []string{"E71_Human-Made_Thing"},
			Relations: []Relation{
				rel(RelWasCreatedBy, crm.PropWasCreatedBy, crm.PropHasCreated, "E65_Creation"),
			},
		},
		{
			Name: "E89_Propositional_Object", IRI: crm.ClassPropositionalObject, Parents: []string{"E28_Conceptual_Object"},
			Relations: []Relation{
				rel(RelRefersTo, crm.PropRefersTo, crm.PropIsReferredToBy, ""),
				rel(RelHasComponent, crm.PropHasComponent, crm.PropIsComponentOf, "E89_Propositional_Object"),
				rel(RelIsComponentOf, crm.PropIsComponentOf, crm.PropHasComponent, "E89_Propositional_Object"),
			},
		},
		{
			Name: "E90_Symbolic_Object", IRI: crm.ClassSymbolicObject, Parents: []string{"E28_Conceptual_Object", "E72_Legal_Object"},
			Relations: []Relation{
				rel(RelIsComposedOf, crm.PropIsComposedOf, crm.PropFormsPartOf, "E90_Symbolic_Object"),
				rel(RelFormsPartOf, crm.PropFormsPartOf, crm.PropIsComposedOf, "E90_Symbolic_Object"),
				rel(RelIsCarriedBy, crm.PropIsCarriedBy, crm.PropCarries, "E24_Physical_Human-Made_Thing"),
			},
			Literals: []LiteralRelation{
				{Name: LitHasSymbolicContent, Predicate: crm.PropHasSymbolicContent},
			},
		},
		{
			Name: "E41_Appellation", IRI: crm.ClassAppellation, Parents: []string{"E90_Symbolic_Object"},
			Relations: []Relation{
				rel(RelIdentifies, crm.PropIdentifies, crm.PropIsIdentifiedBy, ""),
				rel(RelIsPreferredIdentifierOf, crm.PropIsPreferredIdentifierOf, crm.PropHasPreferredIdentifier, ""),
				rel(RelIsTitleOf, crm.PropIsTitleOf, crm.PropHasTitle, "E71_Human-Made_Thing"),
			},
		},
		{
			Name: "E55_Type", IRI: crm.ClassType, Parents: []string{"E28_Conceptual_Object"},
			Relations: []Relation{
				rel(RelIsTypeOf, crm.PropIsTypeOf, crm.PropHasType, ""),
				rel(RelTypeWasCreatedBy, crm.PropWasCreatedByTypeAct, crm.PropCreatedType, "E83_Type_Creation"),
			},
		},
		{
			Name: "E73_Information_Object", IRI: crm.ClassInformationObject, Parents: []string{"E89_Propositional_Object", "E90_Symbolic_Object"},
		},
		{
			Name: "E29_Design_or_Procedure", IRI: crm.ClassDesignOrProcedure, Parents: []string{"E73_Information_Object"},
			Relations: []Relation{
				rel(RelWasUsedBy, crm.PropWasUsedBy, crm.PropUsedSpecificTechnique, "E7_Activity"),
			},
		},
		{
			Name: "E54_Dimension", IRI: crm.ClassDimension, Parents: []string{"E1_CRM_Entity"},
			Relations: []Relation{
				rel(RelIsDimensionOf, crm.PropIsDimensionOf, crm.PropHasDimension, "E70_Thing"),
			},
			Literals: []LiteralRelation{
				{Name: LitHasValue, Predicate: crm.PropHasValue, Datatype: namespaces.XSD + "decimal"},
			},
		},
		{
			Name: "E7_Activity", IRI: crm.ClassActivity, Parents: []string{"E1_CRM_Entity"},
			Relations: []Relation{
				rel(RelCarriedOutBy, crm.PropCarriedOutBy, crm.PropPerformed, ""),
				rel(RelUsedSpecificObject, crm.PropUsedSpecificObject, crm.PropWasUsedFor, "E70_Thing"),
				rel(RelUsedSpecificTechnique, crm.PropUsedSpecificTechnique, crm.PropWasUsedBy, "E29_Design_or_Procedure"),
			},
		},
		{
			Name: "E65_Creation", IRI: crm.ClassCreation, Parents: []string{"E7_Activity"},
			Relations: []Relation{
				rel(RelHasCreated, crm.PropHasCreated, crm.PropWasCreatedBy, "E28_Conceptual_Object"),
			},
		},
		{
			Name: "E83_Type_Creation", IRI: crm.ClassTypeCreation, Parents: []string{"E65_Creation"},
			Relations: []Relation{
				rel(RelCreatedType, crm.PropCreatedType, crm.PropWasCreatedByTypeAct, "E55_Type"),
			},
		},
	}
}

func lrmooClasses() []ClassSpec {
	return []ClassSpec{
		{
			Name: "F1_Work", IRI: lrmoo.ClassWork, Parents: []string{"E89_Propositional_Object"},
			Relations: []Relation{
				rel(RelIsLogicalSuccessorOf, lrmoo.PropIsLogicalSuccessorOf, lrmoo.PropHasSuccessor, "F1_Work"),
				rel(RelHasSuccessor, lrmoo.PropHasSuccessor, lrmoo.PropIsLogicalSuccessorOf, "F1_Work"),
				rel(RelIsDerivativeOf, lrmoo.PropIsDerivativeOf, lrmoo.PropHasDerivative, "F1_Work"),
				rel(RelHasDerivative, lrmoo.PropHasDerivative, lrmoo.PropIsDerivativeOf, "F1_Work"),
				rel(RelIsRealisedIn, lrmoo.PropIsRealisedIn, lrmoo.PropRealises, "F2_Expression"),
				rel(RelHasMember, lrmoo.PropHasMember, lrmoo.PropIsMemberOf, "F1_Work"),
				rel(RelIsMemberOf, lrmoo.PropIsMemberOf, lrmoo.PropHasMember, "F1_Work"),
				rel(RelHasPart, lrmoo.PropHasPart, lrmoo.PropFormsPartOf, "F1_Work"),
				rel(RelFormsPartOf, lrmoo.PropFormsPartOf, lrmoo.PropHasPart, "F1_Work"),
				rel(RelIsInspiredBy, lrmoo.PropIsInspiredBy, lrmoo.PropIsInspirationFor, "F1_Work"),
				rel(RelIsInspirationFor, lrmoo.PropIsInspirationFor, lrmoo.PropIsInspiredBy, "F1_Work"),
				rel(RelTakesRepresentativeAttributeFrom, lrmoo.PropTakesRepresentativeAttributeFrom, lrmoo.PropBearsRepresentativeAttributeFor, "F2_Expression"),
				rel(RelUsesExpressionOf, lrmoo.PropUsesExpressionOf, lrmoo.PropHasExpressionUsedIn, "F1_Work"),
				rel(RelHasExpressionUsedIn, lrmoo.PropHasExpressionUsedIn, lrmoo.PropUsesExpressionOf, "F1_Work"),
			},
		},
		{
			Name: "F2_Expression", IRI: lrmoo.ClassExpression, Parents: []string{"E73_Information_Object"},
			Relations: []Relation{
				rel(RelHasComponent, lrmoo.PropHasComponent, lrmoo.PropIsComponentOf, "F2_Expression"),
				rel(RelIsComponentOf, lrmoo.PropIsComponentOf, lrmoo.PropHasComponent, "F2_Expression"),
				rel(RelHasFragment, lrmoo.PropHasFragment, lrmoo.PropIsFragmentOf, "E90_Symbolic_Object"),
				rel(RelIsFragmentOf, lrmoo.PropIsFragmentOf, lrmoo.PropHasFragment, "F2_Expression"),
				rel(RelIncorporates, lrmoo.PropIncorporates, lrmoo.PropIsIncorporatedIn, "F2_Expression"),
				rel(RelIsIncorporatedIn, lrmoo.PropIsIncorporatedIn, lrmoo.PropIncorporates, "F2_Expression"),
				rel(RelIsDerivativeOf, lrmoo.PropExpressionIsDerivativeOf, lrmoo.PropExpressionHasDerivative, "F2_Expression"),
				rel(RelHasDerivative, lrmoo.PropExpressionHasDerivative, lrmoo.PropExpressionIsDerivativeOf, "F2_Expression"),
				rel(RelRealises, lrmoo.PropRealises, lrmoo.PropIsRealisedIn, "F1_Work"),
				rel(RelBearsRepresentativeAttributeFor, lrmoo.PropBearsRepresentativeAttributeFor, lrmoo.PropTakesRepresentativeAttributeFrom, "F1_Work"),
			},
		},
		{Name: "F3_Manifestation", IRI: lrmoo.ClassManifestation, Parents: []string{"F2_Expression"}},
		{Name: "F5_Item", IRI: lrmoo.ClassItem, Parents: []string{"E24_Physical_Human-Made_Thing"}},
		{Name: "F27_Work_Creation", IRI: lrmoo.ClassWorkCreation, Parents: []string{"E65_Creation"}},
		{Name: "F28_Expression_Creation", IRI: lrmoo.ClassExpressionCreation, Parents: []string{"E65_Creation"}},
		{Name: "F30_Manifestation_Creation", IRI: lrmoo.ClassManifestationCreation, Parents: []string{"E65_Creation"}},
	}
}

// X7 and X8 are declared equivalent to PE43 and PE38 and are registered as
// their subclasses.
func extensionClasses() []ClassSpec {
	return []ClassSpec{
		{Name: "D1_Digital_Object", IRI: crmdig.ClassDigitalObject, Parents: []string{"E73_Information_Object"}},
		{Name: "D14_Software", IRI: crmdig.ClassSoftware, Parents: []string{"D1_Digital_Object"}},

		{Name: "PE1_Service", IRI: pem.ClassService, Parents: []string{"E7_Activity"}},
		{Name: "PE8_E-Service", IRI: pem.ClassEService, Parents: []string{"PE1_Service"}},
		{Name: "PE19_Persistent_Digital_Object", IRI: pem.ClassPersistentDigitalObject, Parents: []string{"D1_Digital_Object"}},
		{Name: "PE32_Curated_Thing", IRI: pem.ClassCuratedThing, Parents: []string{"E70_Thing"}},
		{Name: "PE20_Volatile_Digital_Object", IRI: pem.ClassVolatileDigitalObject, Parents: []string{"D1_Digital_Object", "E70_Thing"}},
		{Name: "PE23_Volatile_Software", IRI: pem.ClassVolatileSoftware, Parents: []string{"D14_Software", "PE20_Volatile_Digital_Object"}},
		{Name: "PE37_Protocol_Type", IRI: pem.ClassProtocolType, Parents: []string{"E55_Type"}},
		{Name: "PE38_Schema", IRI: pem.ClassSchema, Parents: []string{"D14_Software"}},
		{Name: "PE43_Encoding_Type", IRI: pem.ClassEncodingType, Parents: []string{"E55_Type"}},

		{Name: "X1_Corpus", IRI: crmcls.ClassCorpus, Parents: []string{"D1_Digital_Object", "F3_Manifestation"}},
		{Name: "X2_Corpus_Document", IRI: crmcls.ClassCorpusDocument, Parents: []string{"D1_Digital_Object", "F3_Manifestation"}},
		{Name: "X3_Feature", IRI: crmcls.ClassFeature, Parents: []string{"E73_Information_Object", "E55_Type"}},
		{Name: "X4_Project", IRI: crmcls.ClassProject, Parents: []string{"E7_Activity"}},
		{Name: "X5_Research_Activity", IRI: crmcls.ClassResearchActivity, Parents: []string{"E7_Activity"}},
		{Name: "X6_Method", IRI: crmcls.ClassMethod, Parents: []string{"E29_Design_or_Procedure"}},
		{Name: "X7_Format", IRI: crmcls.ClassFormat, Parents: []string{"PE43_Encoding_Type"}},
		{Name: "X8_Schema", IRI: crmcls.ClassSchema, Parents: []string{"PE38_Schema"}},
		{Name: "X9_Corpus_Description", IRI: crmcls.ClassCorpusDescription, Parents: []string{"E83_Type_Creation"}},
		{Name: "X10_Encoding_Pattern", IRI: crmcls.ClassEncodingPattern, Parents: []string{"E90_Symbolic_Object"}},
		{Name: "X11_Prototypical_Document", IRI: crmcls.ClassPrototypicalDocument, Parents: []string{"E55_Type"}},
	}
}
