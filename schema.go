package gqlschema

// Built-in scalars resolve implicitly even when a schema's SDL never
// declares them.
var (
	IntScalar     = &Scalar{Name: "Int", Description: "The Int scalar type represents non-fractional signed whole numeric values."}
	FloatScalar   = &Scalar{Name: "Float", Description: "The Float scalar type represents signed double-precision fractional values."}
	StringScalar  = &Scalar{Name: "String", Description: "The String scalar type represents textual data, represented as UTF-8 character sequences."}
	BooleanScalar = &Scalar{Name: "Boolean", Description: "The Boolean scalar type represents true or false."}
	IDScalar      = &Scalar{Name: "ID", Description: "The ID scalar type represents a unique identifier, often used to refetch an object."}
)

var builtinScalars = map[string]*Scalar{
	"Int":     IntScalar,
	"Float":   FloatScalar,
	"String":  StringScalar,
	"Boolean": BooleanScalar,
	"ID":      IDScalar,
}

// IsBuiltinScalarName reports whether name is one of the five always-
// present scalar types.
func IsBuiltinScalarName(name string) bool {
	_, ok := builtinScalars[name]
	return ok
}

// Schema holds a schema's named types and directive definitions, resolves
// names to NamedTypes, and exposes the three root operation types. Once
// built through a Builder and sealed, a Schema is observationally
// immutable and safe for concurrent readers.
type Schema struct {
	types      []NamedType
	directives []*DirectiveDef
	schemaType *Object

	typeIndex map[string]NamedType
	sealed    bool
}

// Types returns every named type held by the schema, in declaration order.
func (s *Schema) Types() []NamedType { return s.types }

// Directives returns every directive definition, including the three
// built-ins.
func (s *Schema) Directives() []*DirectiveDef { return s.directives }

// Directive looks up a directive definition by name.
func (s *Schema) Directive(name string) *DirectiveDef {
	for _, d := range s.directives {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// Definition looks up a named type, falling back to the five built-in
// scalars, and always returns the dealiased value (never a *TypeRef).
func (s *Schema) Definition(name string) NamedType {
	if s.typeIndex == nil {
		s.buildIndex()
	}
	if t, ok := s.typeIndex[name]; ok {
		return t
	}
	if sc, ok := builtinScalars[name]; ok {
		return sc
	}
	return nil
}

func (s *Schema) buildIndex() {
	s.typeIndex = make(map[string]NamedType, len(s.types))
	for _, t := range s.types {
		s.typeIndex[t.TypeName()] = t
	}
}

// SchemaType is the explicit `schema { ... }` root object, if the SDL
// declared one; otherwise the default root built from whichever of
// Query/Mutation/Subscription named types exist.
func (s *Schema) SchemaType() *Object {
	if s.schemaType != nil {
		return s.schemaType
	}
	return s.defaultSchemaType()
}

func (s *Schema) defaultSchemaType() *Object {
	root := &Object{Name: "schema"}
	if q, ok := s.Definition("Query").(*Object); ok {
		root.Fields = append(root.Fields, &Field{Name: "query", Type: q})
	}
	if m, ok := s.Definition("Mutation").(*Object); ok {
		root.Fields = append(root.Fields, &Field{Name: "mutation", Type: m})
	}
	if sub, ok := s.Definition("Subscription").(*Object); ok {
		root.Fields = append(root.Fields, &Field{Name: "subscription", Type: sub})
	}
	return root
}

func rootOperationType(root *Object, op string) *Object {
	for _, f := range root.Fields {
		if f.Name == op {
			if o, ok := Dealias(f.Type).(*Object); ok {
				return o
			}
		}
	}
	return nil
}

// QueryType is the mandatory root query type.
func (s *Schema) QueryType() *Object { return rootOperationType(s.SchemaType(), "query") }

// MutationType is the optional root mutation type.
func (s *Schema) MutationType() *Object { return rootOperationType(s.SchemaType(), "mutation") }

// SubscriptionType is the optional root subscription type.
func (s *Schema) SubscriptionType() *Object { return rootOperationType(s.SchemaType(), "subscription") }

// IsRootType reports whether t is the query, mutation or subscription root.
func (s *Schema) IsRootType(t NamedType) bool {
	for _, root := range []*Object{s.QueryType(), s.MutationType(), s.SubscriptionType()} {
		if root != nil && root == t {
			return true
		}
	}
	return false
}

// ObjectsImplementing returns every Object type in the schema that
// declares i among its interfaces, directly or transitively.
func (s *Schema) ObjectsImplementing(i *Interface) []*Object {
	var out []*Object
	for _, t := range s.types {
		o, ok := t.(*Object)
		if !ok {
			continue
		}
		if implementsTransitively(o.Interfaces, i) {
			out = append(out, o)
		}
	}
	return out
}

func implementsTransitively(ifaces []*Interface, target *Interface) bool {
	for _, i := range ifaces {
		if i.Name == target.Name {
			return true
		}
		if implementsTransitively(i.Interfaces, target) {
			return true
		}
	}
	return false
}

// Exhaustive reports whether every Object subtype of tpe within this
// schema is covered by some branch — the Schema-aware form of the
// package-level Exhaustive, able to resolve "every object implementing
// interface I" by scanning the schema's type list.
func (s *Schema) Exhaustive(tpe Type, branches []Type) bool {
	var members []*Object
	switch v := Dealias(tpe).(type) {
	case *Object:
		members = []*Object{v}
	case *Union:
		members = v.Members
	case *Interface:
		members = s.ObjectsImplementing(v)
	default:
		return false
	}
	if len(members) == 0 {
		return false
	}
	for _, m := range members {
		covered := false
		for _, b := range branches {
			if Subtype(m, b) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// Dealias replaces a TypeRef with the NamedType it resolves to against
// this schema, or returns the TypeRef itself if the name is undefined.
// Any other Type is returned unchanged.
func Dealias(t Type) Type {
	ref, ok := t.(*TypeRef)
	if !ok {
		return t
	}
	if d := ref.Schema.Definition(ref.Name); d != nil {
		return d
	}
	return ref
}

// Builder constructs a Schema imperatively so that TypeRefs created during
// construction can resolve once every named type is known, then seals the
// result into a read-only Schema. The in-progress schema must not be
// observed by callers before Seal is called.
type Builder struct {
	schema *Schema
}

// NewBuilder allocates an empty in-progress schema.
func NewBuilder() *Builder {
	return &Builder{schema: &Schema{directives: append([]*DirectiveDef{}, BuiltinDirectives...)}}
}

// Schema returns the in-progress schema, for TypeRef construction via
// s.Ref(name) while building. Callers must not treat its contents as
// final until Seal has been called.
func (b *Builder) Schema() *Schema { return b.schema }

// AddType appends a named type to the schema under construction.
func (b *Builder) AddType(t NamedType) {
	b.schema.types = append(b.schema.types, t)
}

// AddDirective appends a directive definition parsed from the SDL; the
// three built-ins are already present and need not be added again.
func (b *Builder) AddDirective(d *DirectiveDef) {
	b.schema.directives = append(b.schema.directives, d)
}

// SetSchemaType installs an explicit `schema { ... }` root.
func (b *Builder) SetSchemaType(root *Object) {
	b.schema.schemaType = root
}

// Seal finalizes construction and returns the immutable Schema. It does
// not itself run schema validation (see the validate package); callers
// that need a validated Schema call validate.Validate after Seal.
func (b *Builder) Seal() *Schema {
	b.schema.sealed = true
	b.schema.buildIndex()
	return b.schema
}
