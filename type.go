// Package gqlschema implements the GraphQL type algebra: named types
// (scalar, enum, object, interface, union, input object), the List and
// Nullable modifiers that wrap them, and the TypeRef indirection that lets
// mutually recursive type graphs be built before every name resolves.
//
// Internally every Type is non-null unless explicitly wrapped in Nullable —
// the inverse of the SDL's own default, where a bare name is nullable and
// "!" opts into non-null. mkType in the sdl package is the seam that
// performs this inversion while reading SDL.
package gqlschema

import (
	"fmt"

	"github.com/shyptr/gqlschema/value"
)

// Type is the sum of every GraphQL type-algebra node: the two modifiers
// (List, Nullable), the six named kinds, and TypeRef. Implementations are
// distinguished by a type switch on the concrete pointer type, not by
// method dispatch, matching the kind-tag-by-struct convention of the
// surrounding core.
type Type interface {
	isType()
}

// NamedType is the subset of Type that carries a name, description and
// directives directly rather than through another wrapped Type.
type NamedType interface {
	Type
	TypeName() string
	TypeDescription() string
	TypeDirectives() []*Directive
}

// List wraps an element type in the list modifier.
type List struct {
	Of Type
}

func (*List) isType() {}

// Nullable wraps a type in the nullable modifier. Nullable(Nullable(t))
// never occurs in a well-formed graph: nullable on an already-nullable
// type is a no-op, enforced by the NullableOf helper rather than by this
// struct.
type Nullable struct {
	Of Type
}

func (*Nullable) isType() {}

// TypeRef is a by-name handle into a Schema, used to close cycles during
// construction. It never fails to construct; an undefined name only
// surfaces as a Problem during schema validation.
type TypeRef struct {
	Schema *Schema
	Name   string
}

func (*TypeRef) isType() {}

// Ref builds a TypeRef against this schema. Cheap, always succeeds.
func (s *Schema) Ref(name string) *TypeRef {
	return &TypeRef{Schema: s, Name: name}
}

// Scalar is a leaf type serialized to/from a primitive representation.
type Scalar struct {
	Name        string
	Description string
	Directives  []*Directive
}

func (*Scalar) isType()                        {}
func (s *Scalar) TypeName() string              { return s.Name }
func (s *Scalar) TypeDescription() string       { return s.Description }
func (s *Scalar) TypeDirectives() []*Directive  { return s.Directives }

// EnumValueDefinition is one member of an Enum.
type EnumValueDefinition struct {
	Name        string
	Description string
	Directives  []*Directive
}

// Enum is a leaf type whose values are a fixed, named set.
type Enum struct {
	Name        string
	Description string
	Values      []*EnumValueDefinition
	Directives  []*Directive
}

func (*Enum) isType()                       {}
func (e *Enum) TypeName() string             { return e.Name }
func (e *Enum) TypeDescription() string      { return e.Description }
func (e *Enum) TypeDirectives() []*Directive { return e.Directives }

// HasValue reports whether name is a declared member of the enum.
func (e *Enum) HasValue(name string) bool {
	for _, v := range e.Values {
		if v.Name == name {
			return true
		}
	}
	return false
}

// InputValue is an argument definition or input-object field definition:
// a name, a type, an optional default value, and directives.
type InputValue struct {
	Name        string
	Description string
	Type        Type
	// DefaultValue.Kind == value.KindAbsent means no default was declared.
	DefaultValue value.Value
	Directives   []*Directive
}

// Field is an object or interface field: a name, argument list, return
// type, and directives.
type Field struct {
	Name        string
	Description string
	Args        []*InputValue
	Type        Type
	Directives  []*Directive
}

// Object is a composite output type with fields and the interfaces it
// implements.
type Object struct {
	Name        string
	Description string
	Fields      []*Field
	Interfaces  []*Interface
	Directives  []*Directive
}

func (*Object) isType()                       {}
func (o *Object) TypeName() string             { return o.Name }
func (o *Object) TypeDescription() string      { return o.Description }
func (o *Object) TypeDirectives() []*Directive { return o.Directives }

// Field looks up a declared field by name, nil if absent.
func (o *Object) Field(name string) *Field {
	for _, f := range o.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// ImplementsInterface reports whether i is among o's declared interfaces.
func (o *Object) ImplementsInterface(i *Interface) bool {
	for _, impl := range o.Interfaces {
		if impl.Name == i.Name {
			return true
		}
	}
	return false
}

// Interface is an abstract output type: a field contract objects (and other
// interfaces) may implement.
type Interface struct {
	Name        string
	Description string
	Fields      []*Field
	Interfaces  []*Interface
	Directives  []*Directive
}

func (*Interface) isType()                       {}
func (i *Interface) TypeName() string             { return i.Name }
func (i *Interface) TypeDescription() string      { return i.Description }
func (i *Interface) TypeDirectives() []*Directive { return i.Directives }

func (i *Interface) Field(name string) *Field {
	for _, f := range i.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Union is an output type whose value is exactly one of its member Objects.
type Union struct {
	Name        string
	Description string
	Members     []*Object
	Directives  []*Directive
}

func (*Union) isType()                       {}
func (u *Union) TypeName() string             { return u.Name }
func (u *Union) TypeDescription() string      { return u.Description }
func (u *Union) TypeDirectives() []*Directive { return u.Directives }

func (u *Union) HasMember(name string) bool {
	for _, m := range u.Members {
		if m.Name == name {
			return true
		}
	}
	return false
}

// InputObject is a structured collection of InputValue fields that may be
// supplied as an argument or nested input value.
type InputObject struct {
	Name        string
	Description string
	InputFields []*InputValue
	Directives  []*Directive
}

func (*InputObject) isType()                       {}
func (i *InputObject) TypeName() string             { return i.Name }
func (i *InputObject) TypeDescription() string      { return i.Description }
func (i *InputObject) TypeDirectives() []*Directive { return i.Directives }

func (i *InputObject) InputField(name string) *InputValue {
	for _, f := range i.InputFields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// TypeString renders t using canonical GraphQL modifier syntax, correctly
// inverting this package's non-null-by-default internal representation
// back to the SDL's non-null-suffix convention: a bare internal Type gets
// the "!" suffix, a Nullable-wrapped one gets none.
func TypeString(t Type) string {
	if n, ok := t.(*Nullable); ok {
		return renderShape(n.Of)
	}
	return renderShape(t) + "!"
}

// renderShape prints the list/name shape of t with no trailing "!",
// recursing into list elements through TypeString so their own
// nullability is rendered correctly.
func renderShape(t Type) string {
	switch v := t.(type) {
	case *List:
		return fmt.Sprintf("[%s]", TypeString(v.Of))
	case *Nullable:
		return renderShape(v.Of)
	case *TypeRef:
		return v.Name
	case NamedType:
		return v.TypeName()
	default:
		return fmt.Sprintf("%v", t)
	}
}

var (
	_ NamedType = (*Scalar)(nil)
	_ NamedType = (*Enum)(nil)
	_ NamedType = (*Object)(nil)
	_ NamedType = (*Interface)(nil)
	_ NamedType = (*Union)(nil)
	_ NamedType = (*InputObject)(nil)
)
