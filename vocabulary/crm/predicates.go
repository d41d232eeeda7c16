package crm

import "github.com/c360studio/semcrm/vocabulary/namespaces"

// Identification predicates.
const (
	IsIdentifiedBy          = "crm.identification.is_identified_by"
	Identifies              = "crm.identification.identifies"
	HasPreferredIdentifier  = "crm.identification.has_preferred_identifier"
	IsPreferredIdentifierOf = "crm.identification.is_preferred_identifier_of"
	HasTitle                = "crm.identification.has_title"
	IsTitleOf               = "crm.identification.is_title_of"
)

// Typing predicates.
const (
	HasType  = "crm.typing.has_type"
	IsTypeOf = "crm.typing.is_type_of"
)

// Activity predicates.
const (
	CarriedOutBy          = "crm.activity.carried_out_by"
	Performed             = "crm.activity.performed"
	UsedSpecificObject    = "crm.activity.used_specific_object"
	WasUsedFor            = "crm.activity.was_used_for"
	UsedSpecificTechnique = "crm.activity.used_specific_technique"
	WasUsedBy             = "crm.activity.was_used_by"
	HasCreated            = "crm.activity.has_created"
	WasCreatedBy          = "crm.activity.was_created_by"
	CreatedType           = "crm.activity.created_type"
	TypeWasCreatedBy      = "crm.activity.type_was_created_by"
)

// Structure predicates.
const (
	HasDimension   = "crm.structure.has_dimension"
	IsDimensionOf  = "crm.structure.is_dimension_of"
	RefersTo       = "crm.structure.refers_to"
	IsReferredToBy = "crm.structure.is_referred_to_by"
	IsComposedOf   = "crm.structure.is_composed_of"
	FormsPartOf    = "crm.structure.forms_part_of"
	Carries        = "crm.structure.carries"
	IsCarriedBy    = "crm.structure.is_carried_by"
	HasComponent   = "crm.structure.has_component"
	IsComponentOf  = "crm.structure.is_component_of"
)

// Literal predicates.
const (
	HasNote            = "crm.content.has_note"
	HasValue           = "crm.content.has_value"
	HasSymbolicContent = "crm.content.has_symbolic_content"
)

func init() {
	namespaces.RegisterProperty(IsIdentifiedBy, PropIsIdentifiedBy,
		"P1 is identified by: an appellation used to refer to the entity")
	namespaces.RegisterProperty(Identifies, PropIdentifies,
		"P1i identifies: the entity referred to by an appellation")
	namespaces.RegisterProperty(HasPreferredIdentifier, PropHasPreferredIdentifier,
		"P48 has preferred identifier")
	namespaces.RegisterProperty(IsPreferredIdentifierOf, PropIsPreferredIdentifierOf,
		"P48i is preferred identifier of")
	namespaces.RegisterProperty(HasTitle, PropHasTitle,
		"P102 has title: a title given to a human-made thing")
	namespaces.RegisterProperty(IsTitleOf, PropIsTitleOf,
		"P102i is title of")

	namespaces.RegisterProperty(HasType, PropHasType,
		"P2 has type: classification of the entity by an E55 Type")
	namespaces.RegisterProperty(IsTypeOf, PropIsTypeOf,
		"P2i is type of")

	namespaces.RegisterProperty(CarriedOutBy, PropCarriedOutBy,
		"P14 carried out by: the actor performing an activity")
	namespaces.RegisterProperty(Performed, PropPerformed,
		"P14i performed")
	namespaces.RegisterProperty(UsedSpecificObject, PropUsedSpecificObject,
		"P16 used specific object")
	namespaces.RegisterProperty(WasUsedFor, PropWasUsedFor,
		"P16i was used for")
	namespaces.RegisterProperty(UsedSpecificTechnique, PropUsedSpecificTechnique,
		"P33 used specific technique: a design or procedure applied in an activity")
	namespaces.RegisterProperty(WasUsedBy, PropWasUsedBy,
		"P33i was used by")
	namespaces.RegisterProperty(HasCreated, PropHasCreated,
		"P94 has created: the conceptual object brought into existence by a creation")
	namespaces.RegisterProperty(WasCreatedBy, PropWasCreatedBy,
		"P94i was created by")
	namespaces.RegisterProperty(CreatedType, PropCreatedType,
		"P135 created type")
	namespaces.RegisterProperty(TypeWasCreatedBy, PropWasCreatedByTypeAct,
		"P135i was created by")

	namespaces.RegisterProperty(HasDimension, PropHasDimension,
		"P43 has dimension")
	namespaces.RegisterProperty(IsDimensionOf, PropIsDimensionOf,
		"P43i is dimension of")
	namespaces.RegisterProperty(RefersTo, PropRefersTo,
		"P67 refers to: a propositional object making reference to an entity")
	namespaces.RegisterProperty(IsReferredToBy, PropIsReferredToBy,
		"P67i is referred to by")
	namespaces.RegisterProperty(IsComposedOf, PropIsComposedOf,
		"P106 is composed of: symbolic object parts")
	namespaces.RegisterProperty(FormsPartOf, PropFormsPartOf,
		"P106i forms part of")
	namespaces.RegisterProperty(Carries, PropCarries,
		"P128 carries: a physical thing carrying a symbolic object")
	namespaces.RegisterProperty(IsCarriedBy, PropIsCarriedBy,
		"P128i is carried by")
	namespaces.RegisterProperty(HasComponent, PropHasComponent,
		"P148 has component: conceptual components of a propositional object")
	namespaces.RegisterProperty(IsComponentOf, PropIsComponentOf,
		"P148i is component of")

	namespaces.RegisterDataProperty(HasNote, PropHasNote,
		"P3 has note: free text describing the entity", "string")
	namespaces.RegisterDataProperty(HasValue, PropHasValue,
		"P90 has value: numeric value of a dimension", "float64")
	namespaces.RegisterDataProperty(HasSymbolicContent, PropHasSymbolicContent,
		"P190 has symbolic content: the content of a symbolic object", "string")
}
