package lrmoo

import "github.com/c360studio/semcrm/vocabulary/namespaces"

// Namespace is the LRMoo base IRI.
const Namespace = namespaces.LRM

// Class IRIs.
const (
	ClassWork                  = Namespace + "F1_Work"
	ClassExpression            = Namespace + "F2_Expression"
	ClassManifestation         = Namespace + "F3_Manifestation"
	ClassItem                  = Namespace + "F5_Item"
	ClassWorkCreation          = Namespace + "F27_Work_Creation"
	ClassExpressionCreation    = Namespace + "F28_Expression_Creation"
	ClassManifestationCreation = Namespace + "F30_Manifestation_Creation"
)

// Property IRIs of F1 Work.
const (
	PropIsLogicalSuccessorOf = Namespace + "R1_is_logical_successor_of"
	PropHasSuccessor         = Namespace + "R1i_has_successor"

	PropIsDerivativeOf = Namespace + "R2_is_derivative_of"
	PropHasDerivative  = Namespace + "R2i_has_derivative"

	PropIsRealisedIn = Namespace + "R3_is_realised_in"
	PropRealises     = Namespace + "R3i_realises"

	PropHasMember  = Namespace + "R10_has_member"
	PropIsMemberOf = Namespace + "R10i_is_member_of"

	PropHasPart     = Namespace + "R67_has_part"
	PropFormsPartOf = Namespace + "R67i_forms_part_of"

	PropIsInspiredBy     = Namespace + "R68_is_inspired_by"
	PropIsInspirationFor = Namespace + "R68i_is_inspiration_for"

	PropTakesRepresentativeAttributeFrom = Namespace + "R73_takes_representative_attribute_from"
	PropBearsRepresentativeAttributeFor  = Namespace + "R73i_bears_representative_attribute_for"

	PropUsesExpressionOf    = Namespace + "R74_uses_expression_of"
	PropHasExpressionUsedIn = Namespace + "R74i_has_expression_used_in"
)

// Property IRIs of F2 Expression.
const (
	PropHasComponent  = Namespace + "R5_has_component"
	PropIsComponentOf = Namespace + "R5i_is_component_of"

	PropHasFragment  = Namespace + "R15_has_fragment"
	PropIsFragmentOf = Namespace + "R15i_is_fragment_of"

	PropIncorporates     = Namespace + "R75_incorporates"
	PropIsIncorporatedIn = Namespace + "R75i_is_incorporated_in"

	PropExpressionIsDerivativeOf = Namespace + "R76_is_derivative_of"
	PropExpressionHasDerivative  = Namespace + "R76i_has_derivative"
)
