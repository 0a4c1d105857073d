package directive

import (
	"github.com/shyptr/gqlschema"
	"github.com/shyptr/gqlschema/gqlerrors"
)

// ValidateForSchema traverses every schema component and validates the
// directives attached to it, pairing each with the DirectiveLocation
// appropriate to that component's kind.
func ValidateForSchema(schema *gqlschema.Schema) gqlerrors.Problems {
	var problems gqlerrors.Problems

	add := func(dirs []*gqlschema.Directive, loc gqlschema.DirectiveLocation) {
		problems = append(problems, ValidateSite(schema, dirs, loc, nil)...)
	}

	for _, t := range schema.Types() {
		switch v := t.(type) {
		case *gqlschema.Scalar:
			add(v.Directives, gqlschema.LocationScalar)
		case *gqlschema.Enum:
			add(v.Directives, gqlschema.LocationEnum)
			for _, ev := range v.Values {
				add(ev.Directives, gqlschema.LocationEnumValue)
			}
		case *gqlschema.Object:
			add(v.Directives, gqlschema.LocationObject)
			validateFields(schema, v.Fields, &problems)
		case *gqlschema.Interface:
			add(v.Directives, gqlschema.LocationInterface)
			validateFields(schema, v.Fields, &problems)
		case *gqlschema.Union:
			add(v.Directives, gqlschema.LocationUnion)
		case *gqlschema.InputObject:
			add(v.Directives, gqlschema.LocationInputObject)
			for _, f := range v.InputFields {
				add(f.Directives, gqlschema.LocationInputFieldDefinition)
			}
		}
	}
	add(schema.SchemaType().Directives, gqlschema.LocationSchema)
	return problems
}

func validateFields(schema *gqlschema.Schema, fields []*gqlschema.Field, problems *gqlerrors.Problems) {
	for _, f := range fields {
		*problems = append(*problems, ValidateSite(schema, f.Directives, gqlschema.LocationFieldDefinition, nil)...)
		for _, arg := range f.Args {
			*problems = append(*problems, ValidateSite(schema, arg.Directives, gqlschema.LocationArgumentDefinition, nil)...)
		}
	}
}
