package ontology_test

import (
	"testing"

	"github.com/c360studio/semcrm/entity"
	"github.com/c360studio/semcrm/ontology"
	"github.com/c360studio/semcrm/vocabulary/crm"
	"github.com/c360studio/semcrm/vocabulary/lrmoo"
	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogCoversClasses(t *testing.T) {
	cat := ontology.Default()

	names := []string{
		"E1_CRM_Entity", "E7_Activity", "E24_Physical_Human-Made_Thing", "E28_Conceptual_Object",
		"E29_Design_or_Procedure", "E41_Appellation", "E54_Dimension", "E55_Type", "E65_Creation",
		"E70_Thing", "E71_Human-Made_Thing", "E72_Legal_Object", "E73_Information_Object",
		"E83_Type_Creation", "E89_Propositional_Object", "E90_Symbolic_Object",
		"F1_Work", "F2_Expression", "F3_Manifestation", "F5_Item", "F27_Work_Creation",
		"F28_Expression_Creation", "F30_Manifestation_Creation",
		"D1_Digital_Object", "D14_Software",
		"PE1_Service", "PE8_E-Service", "PE19_Persistent_Digital_Object", "PE20_Volatile_Digital_Object",
		"PE23_Volatile_Software", "PE32_Curated_Thing", "PE37_Protocol_Type", "PE38_Schema", "PE43_Encoding_Type",
		"X1_Corpus", "X2_Corpus_Document", "X3_Feature", "X4_Project", "X5_Research_Activity", "X6_Method",
		"X7_Format", "X8_Schema", "X9_Corpus_Description", "X10_Encoding_Pattern", "X11_Prototypical_Document",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			cls, ok := cat.Class(name)
			require.True(t, ok)
			assert.Equal(t, name, cls.Name)
			if name != "E1_CRM_Entity" {
				assert.True(t, cls.IsA("E1_CRM_Entity"), "%s should descend from E1", name)
				assert.True(t, cat.Supports(name, ontology.RelIsIdentifiedBy))
			}
		})
	}
	assert.Len(t, cat.Classes(), len(names))
}

func TestClassLookupByIRI(t *testing.T) {
	cat := ontology.Default()

	cls, ok := cat.Class(crm.ClassAppellation)
	require.True(t, ok)
	assert.Equal(t, "E41_Appellation", cls.Name)

	cls, ok = cat.Class("lrm:F1_Work")
	require.True(t, ok)
	assert.Equal(t, quad.IRI(lrmoo.ClassWork), cls.IRI)

	_, ok = cat.Class("E999_Unknown")
	assert.False(t, ok)
}

func TestDiamondInheritanceCollapses(t *testing.T) {
	cat := ontology.Default()

	info, _ := cat.Class("E73_Information_Object")
	count := map[string]int{}
	for _, a := range info.Ancestors {
		count[a]++
	}
	for a, n := range count {
		assert.Equal(t, 1, n, "ancestor %s listed more than once", a)
	}
	assert.Equal(t, []string{
		"E89_Propositional_Object", "E90_Symbolic_Object", "E28_Conceptual_Object",
		"E71_Human-Made_Thing", "E72_Legal_Object", "E70_Thing", "E1_CRM_Entity",
	}, info.Ancestors)
}

func TestRelationPrecedence(t *testing.T) {
	cat := ontology.Default()

	t.Run("own definition overrides inherited", func(t *testing.T) {
		p, err := cat.Property("F2_Expression", ontology.RelHasComponent)
		require.NoError(t, err)
		assert.Equal(t, quad.IRI(lrmoo.PropHasComponent), p.Forward)

		p, err = cat.Property("E89_Propositional_Object", ontology.RelHasComponent)
		require.NoError(t, err)
		assert.Equal(t, quad.IRI(crm.PropHasComponent), p.Forward)
	})

	t.Run("linearization prefers the nearer ancestor", func(t *testing.T) {
		// X1 extends D1 and F3; F2 precedes E89 in its linearization.
		p, err := cat.Property("X1_Corpus", ontology.RelHasComponent)
		require.NoError(t, err)
		assert.Equal(t, quad.IRI(lrmoo.PropHasComponent), p.Forward)
	})

	t.Run("work and expression derivatives differ", func(t *testing.T) {
		work, _ := cat.Property("F1_Work", ontology.RelIsDerivativeOf)
		expr, _ := cat.Property("F3_Manifestation", ontology.RelIsDerivativeOf)
		assert.Equal(t, quad.IRI(lrmoo.PropIsDerivativeOf), work.Forward)
		assert.Equal(t, quad.IRI(lrmoo.PropExpressionIsDerivativeOf), expr.Forward)
	})
}

func TestPropertyErrors(t *testing.T) {
	cat := ontology.Default()

	_, err := cat.Property("Nope", ontology.RelHasType)
	assert.ErrorIs(t, err, ontology.ErrUnknownClass)

	_, err = cat.Property("E41_Appellation", ontology.RelIsRealisedIn)
	assert.ErrorIs(t, err, ontology.ErrUnsupportedRelation)

	assert.True(t, cat.Supports("E54_Dimension", ontology.LitHasValue))
	assert.False(t, cat.Supports("E41_Appellation", ontology.LitHasValue))
	assert.False(t, cat.Supports("Nope", ontology.LitHasNote))
}

func TestRegisterErrors(t *testing.T) {
	cat := ontology.NewCatalog()
	require.NoError(t, cat.Register(ontology.ClassSpec{Name: "A", IRI: "urn:A"}))

	err := cat.Register(ontology.ClassSpec{Name: "A", IRI: "urn:A2"})
	assert.ErrorIs(t, err, ontology.ErrDuplicateClass)

	err = cat.Register(ontology.ClassSpec{Name: "B", IRI: "urn:B", Parents: []string{"Missing"}})
	assert.ErrorIs(t, err, ontology.ErrUnknownClass)

	err = cat.Register(ontology.ClassSpec{Name: "C", IRI: "not an iri"})
	assert.Error(t, err)

	err = cat.Register(ontology.ClassSpec{IRI: "urn:D"})
	assert.Error(t, err)
}

func TestRegisterInconsistentHierarchy(t *testing.T) {
	cat := ontology.NewCatalog()
	cat.MustRegister(
		ontology.ClassSpec{Name: "A", IRI: "urn:A"},
		ontology.ClassSpec{Name: "B", IRI: "urn:B", Parents: []string{"A"}},
	)

	// A before B contradicts B's own linearization.
	err := cat.Register(ontology.ClassSpec{Name: "C", IRI: "urn:C", Parents: []string{"A", "B"}})
	assert.ErrorIs(t, err, ontology.ErrInconsistentHierarchy)
}

func TestCustomCatalog(t *testing.T) {
	cat := ontology.NewCatalog()
	cat.MustRegister(
		ontology.ClassSpec{
			Name: "Base", IRI: "urn:Base",
			Relations: []ontology.Relation{{Name: "links", Property: entity.Property{Forward: "urn:links", Inverse: "urn:linkedBy"}}},
		},
		ontology.ClassSpec{Name: "Left", IRI: "urn:Left", Parents: []string{"Base"}},
		ontology.ClassSpec{Name: "Right", IRI: "urn:Right", Parents: []string{"Base"}},
		ontology.ClassSpec{Name: "Both", IRI: "urn:Both", Parents: []string{"Left", "Right"}},
	)

	both, ok := cat.Class("Both")
	require.True(t, ok)
	assert.Equal(t, []string{"Left", "Right", "Base"}, both.Ancestors)
	assert.Len(t, both.Relations(), 1)
}
