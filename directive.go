package gqlschema

import "github.com/shyptr/gqlschema/value"

// DirectiveLocation names one of the sites at which a directive may
// legally be applied, per the GraphQL directive location table.
type DirectiveLocation string

const (
	// Operation locations, used when validating directives on a query.
	LocationQuery              DirectiveLocation = "QUERY"
	LocationMutation           DirectiveLocation = "MUTATION"
	LocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	LocationField              DirectiveLocation = "FIELD"
	LocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	LocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	LocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	LocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"

	// Schema-definition locations, used when validating directives on the
	// type system itself.
	LocationSchema               DirectiveLocation = "SCHEMA"
	LocationScalar               DirectiveLocation = "SCALAR"
	LocationObject               DirectiveLocation = "OBJECT"
	LocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	LocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	LocationInterface            DirectiveLocation = "INTERFACE"
	LocationUnion                DirectiveLocation = "UNION"
	LocationEnum                 DirectiveLocation = "ENUM"
	LocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	LocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	LocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// DefaultDeprecationReason is substituted for @deprecated when no reason
// argument is supplied.
const DefaultDeprecationReason = "No longer supported"

// DirectiveDef is the static definition of a directive: its argument list,
// whether it may be repeated at a single site, and the set of locations it
// is legal at.
type DirectiveDef struct {
	Name         string
	Description  string
	Args         []*InputValue
	IsRepeatable bool
	Locations    map[DirectiveLocation]struct{}
}

// HasLocation reports whether loc is one of d's legal locations.
func (d *DirectiveDef) HasLocation(loc DirectiveLocation) bool {
	_, ok := d.Locations[loc]
	return ok
}

func locations(locs ...DirectiveLocation) map[DirectiveLocation]struct{} {
	m := make(map[DirectiveLocation]struct{}, len(locs))
	for _, l := range locs {
		m[l] = struct{}{}
	}
	return m
}

// Binding is a fully-elaborated directive argument: name paired with a
// resolved value.Value, produced by ElaborateSite in the directive
// package.
type Binding struct {
	Name  string
	Value value.Value
}

// Directive is a directive as applied at a site: a name and its argument
// list, prior to elaboration (coercion/variable substitution), which
// produces a []Binding instead.
type Directive struct {
	Name string
	Args []*Argument
}

// Argument is one name/value pair as written at an application site,
// before elaboration.
type Argument struct {
	Name  string
	Value value.Value
}

// SkipDirective is the built-in @skip(if: Boolean!) directive.
var SkipDirective = &DirectiveDef{
	Name:        "skip",
	Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
	Args: []*InputValue{
		{Name: "if", Description: "Skipped when true.", Type: &Scalar{Name: "Boolean"}},
	},
	Locations: locations(LocationField, LocationFragmentSpread, LocationInlineFragment),
}

// IncludeDirective is the built-in @include(if: Boolean!) directive.
var IncludeDirective = &DirectiveDef{
	Name:        "include",
	Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
	Args: []*InputValue{
		{Name: "if", Description: "Included when true.", Type: &Scalar{Name: "Boolean"}},
	},
	Locations: locations(LocationField, LocationFragmentSpread, LocationInlineFragment),
}

// DeprecatedDirective is the built-in @deprecated(reason: String) directive.
var DeprecatedDirective = &DirectiveDef{
	Name:        "deprecated",
	Description: "Marks an element of a GraphQL schema as no longer supported.",
	Args: []*InputValue{
		{
			Name:         "reason",
			Description:  "Explains why this element was deprecated, usually also including a suggestion for how to access supported similar data.",
			Type:         &Nullable{Of: &Scalar{Name: "String"}},
			DefaultValue: value.String(DefaultDeprecationReason),
		},
	},
	Locations: locations(LocationFieldDefinition, LocationEnumValue),
}

// BuiltinDirectives is the set always present in a Schema, regardless of
// what the SDL declared.
var BuiltinDirectives = []*DirectiveDef{SkipDirective, IncludeDirective, DeprecatedDirective}
