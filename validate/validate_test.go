package validate_test

import (
	"testing"

	"github.com/shyptr/gqlschema"
	"github.com/shyptr/gqlschema/validate"
	"github.com/stretchr/testify/assert"
)

func TestValidate_UndefinedReference(t *testing.T) {
	b := gqlschema.NewBuilder()
	s := b.Schema()
	b.AddType(&gqlschema.Object{
		Name:   "Query",
		Fields: []*gqlschema.Field{{Name: "x", Type: s.Ref("Missing")}},
	})
	schema := b.Seal()

	problems := validate.Validate(schema)
	assert.NotEmpty(t, problems)
	assert.Contains(t, problems[0].Message, "Undefined type 'Missing'")
}

func TestValidate_UndefinedDirectiveArgumentType(t *testing.T) {
	b := gqlschema.NewBuilder()
	s := b.Schema()
	b.AddType(&gqlschema.Object{Name: "Query", Fields: []*gqlschema.Field{{Name: "x", Type: gqlschema.IntScalar}}})
	b.AddDirective(&gqlschema.DirectiveDef{
		Name:      "foo",
		Args:      []*gqlschema.InputValue{{Name: "x", Type: s.Ref("Ghost")}},
		Locations: map[gqlschema.DirectiveLocation]struct{}{gqlschema.LocationObject: {}},
	})
	schema := b.Seal()

	problems := validate.Validate(schema)
	found := false
	for _, p := range problems {
		if p.Message == "Undefined type 'Ghost' referenced in argument 'x' of directive 'foo'" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_DuplicateDefinition(t *testing.T) {
	b := gqlschema.NewBuilder()
	b.AddType(&gqlschema.Object{Name: "Query", Fields: []*gqlschema.Field{{Name: "x", Type: gqlschema.IntScalar}}})
	b.AddType(&gqlschema.Object{Name: "Query", Fields: []*gqlschema.Field{{Name: "y", Type: gqlschema.IntScalar}}})
	schema := b.Seal()

	problems := validate.Validate(schema)
	found := false
	for _, p := range problems {
		if p.Message == "Duplicate type definition 'Query'" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_DuplicateEnumValue(t *testing.T) {
	b := gqlschema.NewBuilder()
	b.AddType(&gqlschema.Enum{Name: "Color", Values: []*gqlschema.EnumValueDefinition{{Name: "RED"}, {Name: "RED"}}})
	schema := b.Seal()

	problems := validate.Validate(schema)
	found := false
	for _, p := range problems {
		if p.Message == "Duplicate enum value 'RED' in 'Color'" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_Implementations(t *testing.T) {
	// interface Node { id: ID! } type User implements Node { id: ID! name: String }
	b := gqlschema.NewBuilder()
	node := &gqlschema.Interface{Name: "Node", Fields: []*gqlschema.Field{{Name: "id", Type: gqlschema.IDScalar}}}
	b.AddType(node)
	b.AddType(&gqlschema.Object{
		Name: "User",
		Fields: []*gqlschema.Field{
			{Name: "id", Type: gqlschema.IDScalar},
			{Name: "name", Type: &gqlschema.Nullable{Of: gqlschema.StringScalar}},
		},
		Interfaces: []*gqlschema.Interface{{Name: "Node"}},
	})
	schema := b.Seal()

	problems := validate.Validate(schema)
	assert.Empty(t, problems)

	userObj := schema.Definition("User").(*gqlschema.Object)
	assert.True(t, gqlschema.Subtype(userObj, node))
	assert.False(t, gqlschema.Subtype(node, userObj))
	assert.True(t, schema.Exhaustive(node, []gqlschema.Type{userObj}))
}

func TestValidate_MissingInterfaceField(t *testing.T) {
	b := gqlschema.NewBuilder()
	b.AddType(&gqlschema.Interface{Name: "Node", Fields: []*gqlschema.Field{{Name: "id", Type: gqlschema.IDScalar}}})
	b.AddType(&gqlschema.Object{
		Name:       "Broken",
		Fields:     []*gqlschema.Field{{Name: "name", Type: &gqlschema.Nullable{Of: gqlschema.StringScalar}}},
		Interfaces: []*gqlschema.Interface{{Name: "Node"}},
	})
	schema := b.Seal()

	problems := validate.Validate(schema)
	found := false
	for _, p := range problems {
		if p.Message == "'Broken' must declare field 'id' to implement 'Node'" {
			found = true
		}
	}
	assert.True(t, found)
}
