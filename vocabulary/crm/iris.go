package crm

import "github.com/c360studio/semcrm/vocabulary/namespaces"

// Namespace is the CIDOC-CRM base IRI.
const Namespace = namespaces.CRM

// Class IRIs. The implemented classes are a subset of CIDOC-CRM 7.1.2; some
// intermediate classes are not modelled.
const (
	ClassCRMEntity              = Namespace + "E1_CRM_Entity"
	ClassActivity               = Namespace + "E7_Activity"
	ClassPhysicalHumanMadeThing = Namespace + "E24_Physical_Human-Made_Thing"
	ClassConceptualObject       = Namespace + "E28_Conceptual_Object"
	ClassDesignOrProcedure      = Namespace + "E29_Design_or_Procedure"
	ClassAppellation            = Namespace + "E41_Appellation"
	ClassDimension              = Namespace + "E54_Dimension"
	ClassType                   = Namespace + "E55_Type"
	ClassCreation               = Namespace + "E65_Creation"
	ClassThing                  = Namespace + "E70_Thing"
	ClassHumanMadeThing         = Namespace + "E71_Human-Made_Thing"
	ClassLegalObject            = Namespace + "E72_Legal_Object"
	ClassInformationObject      = Namespace + "E73_Information_Object"
	ClassTypeCreation           = Namespace + "E83_Type_Creation"
	ClassPropositionalObject    = Namespace + "E89_Propositional_Object"
	ClassSymbolicObject         = Namespace + "E90_Symbolic_Object"
)

// Object property IRIs, listed as forward/inverse pairs.
const (
	// Domain: E1, Range: E41
	PropIsIdentifiedBy = Namespace + "P1_is_identified_by"
	PropIdentifies     = Namespace + "P1i_identifies"

	// Domain: E1, Range: E55
	PropHasType  = Namespace + "P2_has_type"
	PropIsTypeOf = Namespace + "P2i_is_type_of"

	// Domain: E7, Range: E39 Actor
	PropCarriedOutBy = Namespace + "P14_carried_out_by"
	PropPerformed    = Namespace + "P14i_performed"

	// Domain: E7, Range: E70
	PropUsedSpecificObject = Namespace + "P16_used_specific_object"
	PropWasUsedFor         = Namespace + "P16i_was_used_for"

	// Domain: E7, Range: E29
	PropUsedSpecificTechnique = Namespace + "P33_used_specific_technique"
	PropWasUsedBy             = Namespace + "P33i_was_used_by"

	// Domain: E70, Range: E54
	PropHasDimension  = Namespace + "P43_has_dimension"
	PropIsDimensionOf = Namespace + "P43i_is_dimension_of"

	// Domain: E1, Range: E42 Identifier
	PropHasPreferredIdentifier  = Namespace + "P48_has_preferred_identifier"
	PropIsPreferredIdentifierOf = Namespace + "P48i_is_preferred_identifier_of"

	// Domain: E89, Range: E1
	PropRefersTo       = Namespace + "P67_refers_to"
	PropIsReferredToBy = Namespace + "P67i_is_referred_to_by"

	// Domain: E65, Range: E28
	PropHasCreated   = Namespace + "P94_has_created"
	PropWasCreatedBy = Namespace + "P94i_was_created_by"

	// Domain: E71, Range: E35 Title
	PropHasTitle  = Namespace + "P102_has_title"
	PropIsTitleOf = Namespace + "P102i_is_title_of"

	// Domain: E90, Range: E90
	PropIsComposedOf = Namespace + "P106_is_composed_of"
	PropFormsPartOf  = Namespace + "P106i_forms_part_of"

	// Domain: E24, Range: E90
	PropCarries     = Namespace + "P128_carries"
	PropIsCarriedBy = Namespace + "P128i_is_carried_by"

	// Domain: E83, Range: E55
	PropCreatedType         = Namespace + "P135_created_type"
	PropWasCreatedByTypeAct = Namespace + "P135i_was_created_by"

	// Domain: E89, Range: E89
	PropHasComponent  = Namespace + "P148_has_component"
	PropIsComponentOf = Namespace + "P148i_is_component_of"
)

// Data property IRIs. These take literals and have no inverse.
const (
	// Domain: E1, Range: E62 String
	PropHasNote = Namespace + "P3_has_note"

	// Domain: E54, Range: E60 Number
	PropHasValue = Namespace + "P90_has_value"

	// Domain: E90, Range: E62 String
	PropHasSymbolicContent = Namespace + "P190_has_symbolic_content"
)
