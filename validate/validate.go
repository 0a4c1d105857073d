// Package validate implements the post-parse schema validator: reference
// resolution, duplicate detection, enum-value uniqueness, interface
// implementation conformance, and directive validity.
package validate

import (
	"github.com/shyptr/gqlschema"
	"github.com/shyptr/gqlschema/directive"
	"github.com/shyptr/gqlschema/gqlerrors"
)

// Validate runs the four independent passes over schema and concatenates
// their Problems (references, unique definitions/enum-values,
// implementations, directives), returning an empty slice if the schema is
// sound.
func Validate(schema *gqlschema.Schema) gqlerrors.Problems {
	var problems gqlerrors.Problems
	problems = append(problems, validateReferences(schema)...)
	problems = append(problems, validateUniqueDefinitions(schema)...)
	problems = append(problems, validateUniqueEnumValues(schema)...)
	problems = append(problems, validateImplementations(schema)...)
	problems = append(problems, directive.ValidateForSchema(schema)...)
	return problems
}

func resolvable(schema *gqlschema.Schema, name string) bool {
	return schema.Definition(name) != nil
}

func checkTypeRefs(schema *gqlschema.Schema, t gqlschema.Type, context string, problems *gqlerrors.Problems) {
	switch v := t.(type) {
	case *gqlschema.TypeRef:
		if !resolvable(schema, v.Name) {
			*problems = problems.Add(gqlerrors.New("Undefined type '%s' referenced in %s", v.Name, context))
		}
	case *gqlschema.List:
		checkTypeRefs(schema, v.Of, context, problems)
	case *gqlschema.Nullable:
		checkTypeRefs(schema, v.Of, context, problems)
	}
}

// validateReferences checks that every named type mentioned in field
// types, argument types, interface implementation lists, union members and
// directive definition arguments resolves against the built-ins plus the
// schema's own declared types.
func validateReferences(schema *gqlschema.Schema) gqlerrors.Problems {
	var problems gqlerrors.Problems
	addFieldRefs := func(fields []*gqlschema.Field, owner string) {
		for _, f := range fields {
			checkTypeRefs(schema, f.Type, "field '"+f.Name+"' of '"+owner+"'", &problems)
			for _, a := range f.Args {
				checkTypeRefs(schema, a.Type, "argument '"+a.Name+"' of field '"+f.Name+"' on '"+owner+"'", &problems)
			}
		}
	}
	for _, t := range schema.Types() {
		switch v := t.(type) {
		case *gqlschema.Object:
			addFieldRefs(v.Fields, v.Name)
			for _, i := range v.Interfaces {
				if schema.Definition(i.Name) == nil {
					problems = problems.Add(gqlerrors.New("Undefined interface '%s' implemented by '%s'", i.Name, v.Name))
				}
			}
		case *gqlschema.Interface:
			addFieldRefs(v.Fields, v.Name)
			for _, i := range v.Interfaces {
				if schema.Definition(i.Name) == nil {
					problems = problems.Add(gqlerrors.New("Undefined interface '%s' implemented by '%s'", i.Name, v.Name))
				}
			}
		case *gqlschema.Union:
			for _, m := range v.Members {
				if schema.Definition(m.Name) == nil {
					problems = problems.Add(gqlerrors.New("Undefined type '%s' as member of union '%s'", m.Name, v.Name))
				}
			}
		case *gqlschema.InputObject:
			for _, f := range v.InputFields {
				checkTypeRefs(schema, f.Type, "field '"+f.Name+"' of input object '"+v.Name+"'", &problems)
			}
		}
	}
	for _, d := range schema.Directives() {
		for _, a := range d.Args {
			checkTypeRefs(schema, a.Type, "argument '"+a.Name+"' of directive '"+d.Name+"'", &problems)
		}
	}
	return problems
}

func validateUniqueDefinitions(schema *gqlschema.Schema) gqlerrors.Problems {
	var problems gqlerrors.Problems
	seen := map[string]bool{}
	for _, t := range schema.Types() {
		if seen[t.TypeName()] {
			problems = problems.Add(gqlerrors.New("Duplicate type definition '%s'", t.TypeName()))
			continue
		}
		seen[t.TypeName()] = true
	}
	return problems
}

func validateUniqueEnumValues(schema *gqlschema.Schema) gqlerrors.Problems {
	var problems gqlerrors.Problems
	for _, t := range schema.Types() {
		e, ok := t.(*gqlschema.Enum)
		if !ok {
			continue
		}
		seen := map[string]bool{}
		for _, v := range e.Values {
			if seen[v.Name] {
				problems = problems.Add(gqlerrors.New("Duplicate enum value '%s' in '%s'", v.Name, e.Name))
				continue
			}
			seen[v.Name] = true
		}
	}
	return problems
}

// validateImplementations enforces interface conformance: for every interface I
// implemented by object/interface T, every field of I must exist on T
// with an exactly-equal argument list and a return type that is a subtype
// of I's field type. A non-interface type named in an `implements` list
// also fails here. Interface stubs recorded on Object/Interface during
// parsing carry only a name, so the real field-bearing definition is
// re-resolved from the schema before comparison.
func validateImplementations(schema *gqlschema.Schema) gqlerrors.Problems {
	var problems gqlerrors.Problems
	check := func(typeName string, fields []*gqlschema.Field, ifaceStubs []*gqlschema.Interface) {
		for _, stub := range ifaceStubs {
			def := schema.Definition(stub.Name)
			iface, ok := def.(*gqlschema.Interface)
			if !ok {
				if def != nil {
					problems = problems.Add(gqlerrors.New("'%s' implements non-interface type '%s'", typeName, stub.Name))
				}
				continue
			}
			for _, ifField := range iface.Fields {
				tField := fieldByName(fields, ifField.Name)
				if tField == nil {
					problems = problems.Add(gqlerrors.New("'%s' must declare field '%s' to implement '%s'", typeName, ifField.Name, iface.Name))
					continue
				}
				if !argsEqual(tField.Args, ifField.Args) {
					problems = problems.Add(gqlerrors.New("Field '%s' on '%s' has an argument list incompatible with interface '%s'", ifField.Name, typeName, iface.Name))
				}
				if !gqlschema.Subtype(tField.Type, ifField.Type) {
					problems = problems.Add(gqlerrors.New("Field '%s' on '%s' has type '%s', not a subtype of '%s' required by interface '%s'",
						ifField.Name, typeName, gqlschema.TypeString(tField.Type), gqlschema.TypeString(ifField.Type), iface.Name))
				}
			}
		}
	}
	for _, t := range schema.Types() {
		switch v := t.(type) {
		case *gqlschema.Object:
			check(v.Name, v.Fields, v.Interfaces)
		case *gqlschema.Interface:
			check(v.Name, v.Fields, v.Interfaces)
		}
	}
	return problems
}

func fieldByName(fields []*gqlschema.Field, name string) *gqlschema.Field {
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// argsEqual compares two argument lists by position, name and type
// identity: argument lists must be exactly equal.
func argsEqual(a, b []*gqlschema.InputValue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			return false
		}
		if !gqlschema.Equivalent(a[i].Type, b[i].Type) {
			return false
		}
	}
	return true
}
