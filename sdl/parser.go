// Package sdl turns GraphQL Schema Definition Language source into a
// gqlschema.Schema and prints a Schema back to canonical SDL, pairing the
// parser and the renderer so the round-trip property has a single
// home.
package sdl

import (
	"github.com/shyptr/gqlschema"
	"github.com/shyptr/gqlschema/gqlerrors"
	"github.com/shyptr/gqlschema/validate"
	"github.com/shyptr/gqlschema/value"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
)

// ParseText is the top-level entry point: parses SDL source, builds a
// Schema through BuildSchema's phases sharing one in-progress instance so
// TypeRefs can close cycles, then validates it. A failed Result carries every
// accumulated Problem in traversal order.
func ParseText(name, src string) gqlerrors.Result[*gqlschema.Schema] {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: src})
	if err != nil {
		return gqlerrors.FailWith[*gqlschema.Schema](astErrToProblem(err))
	}
	return BuildSchema(doc)
}

func astErrToProblem(err *gqlerror.Error) *gqlerrors.Problem {
	p := gqlerrors.New("%s", err.Message)
	for _, l := range err.Locations {
		p.Locations = append(p.Locations, gqlerrors.Location{Line: l.Line, Column: l.Column})
	}
	return p
}

// BuildSchema builds a Schema from an already-parsed SchemaDocument. Phase
// 1 allocates the skeleton, phase 2 builds type nodes (deferring name
// resolution to TypeRef), phase 3 establishes the schema root, phase 4
// links interface-implements stubs to their real definitions, phase 5
// seals, phase 6 validates.
func BuildSchema(doc *ast.SchemaDocument) gqlerrors.Result[*gqlschema.Schema] {
	b := gqlschema.NewBuilder()
	s := b.Schema()

	var problems gqlerrors.Problems

	for _, def := range doc.Definitions {
		if t, p := buildTypeNode(s, def); t != nil {
			b.AddType(t)
			problems = append(problems, p...)
		} else {
			problems = append(problems, p...)
		}
	}
	for _, dd := range doc.Directives {
		b.AddDirective(buildDirectiveDef(s, dd))
	}

	if len(doc.Schema) > 1 {
		problems = problems.Add(gqlerrors.New("At most one schema definition permitted"))
	} else if len(doc.Schema) == 1 {
		b.SetSchemaType(buildSchemaRoot(s, doc.Schema[0]))
	}

	linkInterfaceStubs(s)

	schema := b.Seal()

	if len(problems) > 0 {
		return gqlerrors.Fail[*gqlschema.Schema](problems)
	}
	if validationProblems := validate.Validate(schema); len(validationProblems) > 0 {
		return gqlerrors.Fail[*gqlschema.Schema](validationProblems)
	}
	return gqlerrors.Success(schema)
}

// linkInterfaceStubs replaces the name-only stub *Interface entries
// buildTypeNode records on every Object/Interface's Interfaces list with
// the real, field-bearing definition from the schema. Each stub slice is
// mutated in place, so a single pass resolves transitive chains too: once
// interface B's own Interfaces has been rewritten to point at the real A,
// any object implementing B observes A's fields through that same pointer
// regardless of which of the two was rewritten first.
func linkInterfaceStubs(s *gqlschema.Schema) {
	for _, t := range s.Types() {
		switch v := t.(type) {
		case *gqlschema.Object:
			linkStubs(s, v.Interfaces)
		case *gqlschema.Interface:
			linkStubs(s, v.Interfaces)
		}
	}
}

func linkStubs(s *gqlschema.Schema, ifaces []*gqlschema.Interface) {
	for i, stub := range ifaces {
		if resolved, ok := s.Definition(stub.Name).(*gqlschema.Interface); ok {
			ifaces[i] = resolved
		}
	}
}

func buildSchemaRoot(s *gqlschema.Schema, def *ast.Definition) *gqlschema.Object {
	root := &gqlschema.Object{Name: "schema", Description: def.Description, Directives: buildAppliedDirectives(def.Directives)}
	hasQuery := false
	for _, f := range def.Fields {
		switch f.Name {
		case "query", "mutation", "subscription":
			root.Fields = append(root.Fields, &gqlschema.Field{Name: f.Name, Type: s.Ref(f.Type.NamedType)})
			if f.Name == "query" {
				hasQuery = true
			}
		}
	}
	if !hasQuery {
		root.Fields = append(root.Fields, &gqlschema.Field{Name: "query", Type: s.Ref("Query")})
	}
	return root
}

func buildTypeNode(s *gqlschema.Schema, def *ast.Definition) (gqlschema.NamedType, gqlerrors.Problems) {
	var problems gqlerrors.Problems
	switch def.Kind {
	case ast.Scalar:
		if gqlschema.IsBuiltinScalarName(def.Name) {
			return nil, nil
		}
		return &gqlschema.Scalar{Name: def.Name, Description: def.Description, Directives: buildAppliedDirectives(def.Directives)}, nil

	case ast.Enum:
		if len(def.EnumValues) == 0 {
			problems = problems.Add(gqlerrors.New("Enum '%s' must declare at least one value", def.Name))
		}
		e := &gqlschema.Enum{Name: def.Name, Description: def.Description, Directives: buildAppliedDirectives(def.Directives)}
		for _, v := range def.EnumValues {
			e.Values = append(e.Values, &gqlschema.EnumValueDefinition{Name: v.Name, Description: v.Description, Directives: buildAppliedDirectives(v.Directives)})
		}
		return e, problems

	case ast.Object:
		if len(def.Fields) == 0 {
			problems = problems.Add(gqlerrors.New("Object '%s' must declare at least one field", def.Name))
		}
		o := &gqlschema.Object{Name: def.Name, Description: def.Description, Directives: buildAppliedDirectives(def.Directives)}
		for _, i := range def.Interfaces {
			o.Interfaces = append(o.Interfaces, &gqlschema.Interface{Name: i})
		}
		o.Fields = buildFields(s, def.Fields)
		return o, problems

	case ast.Interface:
		if len(def.Fields) == 0 {
			problems = problems.Add(gqlerrors.New("Interface '%s' must declare at least one field", def.Name))
		}
		i := &gqlschema.Interface{Name: def.Name, Description: def.Description, Directives: buildAppliedDirectives(def.Directives)}
		for _, parent := range def.Interfaces {
			i.Interfaces = append(i.Interfaces, &gqlschema.Interface{Name: parent})
		}
		i.Fields = buildFields(s, def.Fields)
		return i, problems

	case ast.Union:
		if len(def.Types) == 0 {
			problems = problems.Add(gqlerrors.New("Union '%s' must declare at least one member", def.Name))
		}
		u := &gqlschema.Union{Name: def.Name, Description: def.Description, Directives: buildAppliedDirectives(def.Directives)}
		for _, m := range def.Types {
			u.Members = append(u.Members, &gqlschema.Object{Name: m})
		}
		return u, problems

	case ast.InputObject:
		if len(def.Fields) == 0 {
			problems = problems.Add(gqlerrors.New("Input object '%s' must declare at least one field", def.Name))
		}
		io := &gqlschema.InputObject{Name: def.Name, Description: def.Description, Directives: buildAppliedDirectives(def.Directives)}
		io.InputFields = buildInputValues(s, def.Fields)
		return io, problems
	}
	return nil, problems
}

func buildFields(s *gqlschema.Schema, defs ast.FieldList) []*gqlschema.Field {
	out := make([]*gqlschema.Field, 0, len(defs))
	for _, f := range defs {
		out = append(out, &gqlschema.Field{
			Name:        f.Name,
			Description: f.Description,
			Type:        mkType(s, f.Type, true),
			Args:        buildInputValues(s, f.Arguments),
			Directives:  buildAppliedDirectives(f.Directives),
		})
	}
	return out
}

func buildInputValues(s *gqlschema.Schema, defs ast.FieldList) []*gqlschema.InputValue {
	out := make([]*gqlschema.InputValue, 0, len(defs))
	for _, f := range defs {
		dflt := value.Absent
		if f.DefaultValue != nil {
			dflt = value.FromAST(f.DefaultValue)
		}
		out = append(out, &gqlschema.InputValue{
			Name:         f.Name,
			Description:  f.Description,
			Type:         mkType(s, f.Type, true),
			DefaultValue: dflt,
			Directives:   buildAppliedDirectives(f.Directives),
		})
	}
	return out
}

// mkType is a two-argument recursion tracking nullability: entry with
// nullable=true (GraphQL types are nullable by default); a NonNull wrapper
// switches it to false; a List wraps its recursively-built element (itself
// entered with nullable=true) and then wraps the whole list in Nullable
// iff the current flag is true.
func mkType(s *gqlschema.Schema, t *ast.Type, nullable bool) gqlschema.Type {
	if t.NonNull {
		return mkType(s, &ast.Type{NamedType: t.NamedType, Elem: t.Elem}, false)
	}
	var inner gqlschema.Type
	if t.Elem != nil {
		inner = gqlschema.ListOf(mkType(s, t.Elem, true))
	} else {
		inner = s.Ref(t.NamedType)
	}
	if nullable {
		return gqlschema.NullableOf(inner)
	}
	return inner
}

func buildDirectiveDef(s *gqlschema.Schema, dd *ast.DirectiveDefinition) *gqlschema.DirectiveDef {
	locs := make(map[gqlschema.DirectiveLocation]struct{}, len(dd.Locations))
	for _, l := range dd.Locations {
		locs[gqlschema.DirectiveLocation(l)] = struct{}{}
	}
	return &gqlschema.DirectiveDef{
		Name:         dd.Name,
		Description:  dd.Description,
		Args:         buildInputValues(s, dd.Arguments),
		IsRepeatable: dd.IsRepeatable,
		Locations:    locs,
	}
}

func buildAppliedDirectives(dirs ast.DirectiveList) []*gqlschema.Directive {
	out := make([]*gqlschema.Directive, 0, len(dirs))
	for _, d := range dirs {
		args := make([]*gqlschema.Argument, 0, len(d.Arguments))
		for _, a := range d.Arguments {
			args = append(args, &gqlschema.Argument{Name: a.Name, Value: value.FromAST(a.Value)})
		}
		out = append(out, &gqlschema.Directive{Name: d.Name, Args: args})
	}
	return out
}
