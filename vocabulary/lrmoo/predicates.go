package lrmoo

import "github.com/c360studio/semcrm/vocabulary/namespaces"

// Work predicates (F1).
const (
	IsLogicalSuccessorOf             = "lrm.work.is_logical_successor_of"
	HasSuccessor                     = "lrm.work.has_successor"
	IsDerivativeOf                   = "lrm.work.is_derivative_of"
	HasDerivative                    = "lrm.work.has_derivative"
	IsRealisedIn                     = "lrm.work.is_realised_in"
	HasMember                        = "lrm.work.has_member"
	IsMemberOf                       = "lrm.work.is_member_of"
	HasPart                          = "lrm.work.has_part"
	FormsPartOf                      = "lrm.work.forms_part_of"
	IsInspiredBy                     = "lrm.work.is_inspired_by"
	IsInspirationFor                 = "lrm.work.is_inspiration_for"
	TakesRepresentativeAttributeFrom = "lrm.work.takes_representative_attribute_from"
	UsesExpressionOf                 = "lrm.work.uses_expression_of"
	HasExpressionUsedIn              = "lrm.work.has_expression_used_in"
)

// Expression predicates (F2).
const (
	Realises                        = "lrm.expression.realises"
	BearsRepresentativeAttributeFor = "lrm.expression.bears_representative_attribute_for"
	HasComponent                    = "lrm.expression.has_component"
	IsComponentOf                   = "lrm.expression.is_component_of"
	HasFragment                     = "lrm.expression.has_fragment"
	IsFragmentOf                    = "lrm.expression.is_fragment_of"
	Incorporates                    = "lrm.expression.incorporates"
	IsIncorporatedIn                = "lrm.expression.is_incorporated_in"
	ExpressionIsDerivativeOf        = "lrm.expression.is_derivative_of"
	ExpressionHasDerivative         = "lrm.expression.has_derivative"
)

func init() {
	namespaces.RegisterProperty(IsLogicalSuccessorOf, PropIsLogicalSuccessorOf,
		"R1 is logical successor of: F1 Work")
	namespaces.RegisterProperty(HasSuccessor, PropHasSuccessor,
		"R1i has successor: F1 Work")
	namespaces.RegisterProperty(IsDerivativeOf, PropIsDerivativeOf,
		"R2 is derivative of: F1 Work")
	namespaces.RegisterProperty(HasDerivative, PropHasDerivative,
		"R2i has derivative: F1 Work")
	namespaces.RegisterProperty(IsRealisedIn, PropIsRealisedIn,
		"R3 is realised in: F2 Expression")
	namespaces.RegisterProperty(HasMember, PropHasMember,
		"R10 has member: F1 Work")
	namespaces.RegisterProperty(IsMemberOf, PropIsMemberOf,
		"R10i is member of: F1 Work")
	namespaces.RegisterProperty(HasPart, PropHasPart,
		"R67 has part: F1 Work")
	namespaces.RegisterProperty(FormsPartOf, PropFormsPartOf,
		"R67i forms part of: F1 Work")
	namespaces.RegisterProperty(IsInspiredBy, PropIsInspiredBy,
		"R68 is inspired by: F1 Work")
	namespaces.RegisterProperty(IsInspirationFor, PropIsInspirationFor,
		"R68i is inspiration for: F1 Work")
	namespaces.RegisterProperty(TakesRepresentativeAttributeFrom, PropTakesRepresentativeAttributeFrom,
		"R73 takes representative attribute from: F2 Expression")
	namespaces.RegisterProperty(UsesExpressionOf, PropUsesExpressionOf,
		"R74 uses expression of: F1 Work")
	namespaces.RegisterProperty(HasExpressionUsedIn, PropHasExpressionUsedIn,
		"R74i has expression used in: F1 Work")

	namespaces.RegisterProperty(Realises, PropRealises,
		"R3i realises: F1 Work")
	namespaces.RegisterProperty(BearsRepresentativeAttributeFor, PropBearsRepresentativeAttributeFor,
		"R73i bears representative attribute for: F1 Work")
	namespaces.RegisterProperty(HasComponent, PropHasComponent,
		"R5 has component: F2 Expression")
	namespaces.RegisterProperty(IsComponentOf, PropIsComponentOf,
		"R5i is component of: F2 Expression")
	namespaces.RegisterProperty(HasFragment, PropHasFragment,
		"R15 has fragment: E90 Symbolic Object")
	namespaces.RegisterProperty(IsFragmentOf, PropIsFragmentOf,
		"R15i is fragment of: F2 Expression")
	namespaces.RegisterProperty(Incorporates, PropIncorporates,
		"R75 incorporates: F2 Expression")
	namespaces.RegisterProperty(IsIncorporatedIn, PropIsIncorporatedIn,
		"R75i is incorporated in: F2 Expression")
	namespaces.RegisterProperty(ExpressionIsDerivativeOf, PropExpressionIsDerivativeOf,
		"R76 is derivative of: F2 Expression")
	namespaces.RegisterProperty(ExpressionHasDerivative, PropExpressionHasDerivative,
		"R76i has derivative: F2 Expression")
}
