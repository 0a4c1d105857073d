package directive_test

import (
	"testing"

	"github.com/shyptr/gqlschema"
	"github.com/shyptr/gqlschema/directive"
	"github.com/shyptr/gqlschema/value"
	"github.com/stretchr/testify/assert"
)

func newTestSchema(dd *gqlschema.DirectiveDef) *gqlschema.Schema {
	b := gqlschema.NewBuilder()
	b.AddDirective(dd)
	return b.Seal()
}

func TestValidateSite_LocationError(t *testing.T) {
	// directive @tag(v: String!) on FIELD_DEFINITION; applied at FIELD.
	tag := &gqlschema.DirectiveDef{
		Name:      "tag",
		Args:      []*gqlschema.InputValue{{Name: "v", Type: gqlschema.StringScalar}},
		Locations: map[gqlschema.DirectiveLocation]struct{}{gqlschema.LocationFieldDefinition: {}},
	}
	schema := newTestSchema(tag)
	dirs := []*gqlschema.Directive{{Name: "tag", Args: []*gqlschema.Argument{{Name: "v", Value: value.String("a")}}}}

	problems := directive.ValidateSite(schema, dirs, gqlschema.LocationField, nil)
	assert.Len(t, problems, 1)
	assert.Equal(t, "Directive 'tag' is not allowed on FIELD", problems[0].Message)
}

func TestValidateSite_Undefined(t *testing.T) {
	schema := newTestSchema(&gqlschema.DirectiveDef{Name: "known", Locations: map[gqlschema.DirectiveLocation]struct{}{gqlschema.LocationField: {}}})
	dirs := []*gqlschema.Directive{{Name: "mystery"}}
	problems := directive.ValidateSite(schema, dirs, gqlschema.LocationField, nil)
	assert.Len(t, problems, 1)
	assert.Contains(t, problems[0].Message, "Undefined directive 'mystery'")
}

func TestValidateSite_Repetition(t *testing.T) {
	d := &gqlschema.DirectiveDef{Name: "once", Locations: map[gqlschema.DirectiveLocation]struct{}{gqlschema.LocationField: {}}}
	schema := newTestSchema(d)
	dirs := []*gqlschema.Directive{{Name: "once"}, {Name: "once"}}

	problems := directive.ValidateSite(schema, dirs, gqlschema.LocationField, nil)
	assert.Len(t, problems, 1)
	assert.Contains(t, problems[0].Message, "may not be used more than once")
}

func TestValidateSite_RepeatableAllowsDuplicates(t *testing.T) {
	d := &gqlschema.DirectiveDef{Name: "rep", IsRepeatable: true, Locations: map[gqlschema.DirectiveLocation]struct{}{gqlschema.LocationField: {}}}
	schema := newTestSchema(d)
	dirs := []*gqlschema.Directive{{Name: "rep"}, {Name: "rep"}}
	problems := directive.ValidateSite(schema, dirs, gqlschema.LocationField, nil)
	assert.Empty(t, problems)
}

func TestValidateSite_UnknownArgument(t *testing.T) {
	d := &gqlschema.DirectiveDef{Name: "only", Locations: map[gqlschema.DirectiveLocation]struct{}{gqlschema.LocationField: {}}}
	schema := newTestSchema(d)
	dirs := []*gqlschema.Directive{{Name: "only", Args: []*gqlschema.Argument{{Name: "extra", Value: value.Int(1)}}}}
	problems := directive.ValidateSite(schema, dirs, gqlschema.LocationField, nil)
	assert.Len(t, problems, 1)
	assert.Contains(t, problems[0].Message, "Unknown argument 'extra'")
}

func TestElaborateSite(t *testing.T) {
	d := &gqlschema.DirectiveDef{
		Name:      "limit",
		Args:      []*gqlschema.InputValue{{Name: "n", Type: gqlschema.IntScalar}},
		Locations: map[gqlschema.DirectiveLocation]struct{}{gqlschema.LocationField: {}},
	}
	schema := newTestSchema(d)
	dirs := []*gqlschema.Directive{{Name: "limit", Args: []*gqlschema.Argument{{Name: "n", Value: value.VariableRef("max")}}}}

	r := directive.ElaborateSite(schema, dirs, gqlschema.LocationField, map[string]value.Value{"max": value.Int(10)})
	assert.True(t, r.Ok())
	assert.Equal(t, "limit", r.Value()[0].Name)
	assert.Equal(t, int64(10), r.Value()[0].Bindings[0].Value.Int)
}
