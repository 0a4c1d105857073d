// Package value implements the GraphQL input-value model: the tagged union
// of literal and coerced values that flow through argument and variable
// coercion, independent of the type system that validates them.
package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shyptr/gqlschema/gqlerrors"
	"github.com/vektah/gqlparser/v2/ast"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	// KindAbsent is the zero value: an InputValue with no DefaultValue set
	// compares as Absent rather than as a spurious Int(0).
	KindAbsent Kind = iota
	KindInt
	KindFloat
	KindString
	KindBoolean
	KindID
	KindEnum
	KindList
	KindObject
	KindVariableRef
	KindNull
)

// ObjectField is one name/value pair of an Object value; field order is
// preserved for rendering.
type ObjectField struct {
	Name  string
	Value Value
}

// Value is the sum described in the value model: scalars, Enum, List,
// Object, VariableRef, Null and Absent. Only the field matching Kind is
// meaningful.
type Value struct {
	Kind     Kind
	Int      int64
	Float    float64
	Str      string // String, ID, Enum name, VariableRef name all live here
	Bool     bool
	List     []Value
	Object   []ObjectField
}

func Int(i int64) Value          { return Value{Kind: KindInt, Int: i} }
func Float(f float64) Value      { return Value{Kind: KindFloat, Float: f} }
func String(s string) Value      { return Value{Kind: KindString, Str: s} }
func Boolean(b bool) Value       { return Value{Kind: KindBoolean, Bool: b} }
func ID(s string) Value          { return Value{Kind: KindID, Str: s} }
func Enum(name string) Value     { return Value{Kind: KindEnum, Str: name} }
func ListOf(vs ...Value) Value   { return Value{Kind: KindList, List: vs} }
func ObjectOf(fs ...ObjectField) Value { return Value{Kind: KindObject, Object: fs} }
func VariableRef(name string) Value { return Value{Kind: KindVariableRef, Str: name} }

var Null = Value{Kind: KindNull}
var Absent = Value{Kind: KindAbsent}

// StringList destructures a List whose elements are all String, returning
// ok=false if v is not such a list.
func StringList(v Value) (items []string, ok bool) {
	if v.Kind != KindList {
		return nil, false
	}
	out := make([]string, 0, len(v.List))
	for _, el := range v.List {
		if el.Kind != KindString {
			return nil, false
		}
		out = append(out, el.Str)
	}
	return out, true
}

// NewStringList builds a List value out of plain strings.
func NewStringList(items ...string) Value {
	vs := make([]Value, len(items))
	for i, s := range items {
		vs[i] = String(s)
	}
	return ListOf(vs...)
}

// FromAST converts a gqlparser literal AST value into this package's Value
// model; variables stay as VariableRef here (see ElaborateValue for
// substitution).
func FromAST(v *ast.Value) Value {
	if v == nil {
		return Absent
	}
	switch v.Kind {
	case ast.IntValue:
		n, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return Int(0)
		}
		return Int(n)
	case ast.FloatValue:
		f, err := strconv.ParseFloat(v.Raw, 64)
		if err != nil {
			return Float(0)
		}
		return Float(f)
	case ast.StringValue, ast.BlockValue:
		return String(v.Raw)
	case ast.BooleanValue:
		return Boolean(v.Raw == "true")
	case ast.NullValue:
		return Null
	case ast.EnumValue:
		return Enum(v.Raw)
	case ast.Variable:
		return VariableRef(v.Raw)
	case ast.ListValue:
		items := make([]Value, 0, len(v.Children))
		for _, c := range v.Children {
			items = append(items, FromAST(c.Value))
		}
		return ListOf(items...)
	case ast.ObjectValue:
		fields := make([]ObjectField, 0, len(v.Children))
		for _, c := range v.Children {
			fields = append(fields, ObjectField{Name: c.Name, Value: FromAST(c.Value)})
		}
		return ObjectOf(fields...)
	default:
		return Null
	}
}

// ElaborateValue recursively substitutes every VariableRef(n) with vars[n],
// failing if a referenced variable is absent. Object and list elements are
// traversed; other variants pass through unchanged.
func ElaborateValue(v Value, vars map[string]Value) gqlerrors.Result[Value] {
	switch v.Kind {
	case KindVariableRef:
		val, ok := vars[v.Str]
		if !ok {
			return gqlerrors.FailWith[Value](gqlerrors.New("Undefined variable '%s'", v.Str))
		}
		return gqlerrors.Success(val)
	case KindList:
		out := make([]Value, 0, len(v.List))
		var problems gqlerrors.Problems
		for _, el := range v.List {
			r := ElaborateValue(el, vars)
			problems = append(problems, r.Problems()...)
			if !r.Ok() {
				continue
			}
			out = append(out, r.Value())
		}
		if len(problems) > 0 {
			return gqlerrors.Fail[Value](problems)
		}
		return gqlerrors.Success(ListOf(out...))
	case KindObject:
		out := make([]ObjectField, 0, len(v.Object))
		var problems gqlerrors.Problems
		for _, f := range v.Object {
			r := ElaborateValue(f.Value, vars)
			problems = append(problems, r.Problems()...)
			if !r.Ok() {
				continue
			}
			out = append(out, ObjectField{Name: f.Name, Value: r.Value()})
		}
		if len(problems) > 0 {
			return gqlerrors.Fail[Value](problems)
		}
		return gqlerrors.Success(ObjectOf(out...))
	default:
		return gqlerrors.Success(v)
	}
}

// Equal reports structural equality between two Values, order-sensitive for
// lists and name-order-sensitive for objects (matching how coercion
// preserves declaration order, so two coercions of the same input compare
// equal).
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindInt:
		return a.Int == b.Int
	case KindFloat:
		return a.Float == b.Float
	case KindString, KindID, KindEnum, KindVariableRef:
		return a.Str == b.Str
	case KindBoolean:
		return a.Bool == b.Bool
	case KindNull, KindAbsent:
		return true
	case KindList:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.Object) != len(b.Object) {
			return false
		}
		for i := range a.Object {
			if a.Object[i].Name != b.Object[i].Name || !Equal(a.Object[i].Value, b.Object[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// Render prints a Value as GraphQL SDL literal syntax, suitable for default
// values and round-trip testing.
func Render(v Value) string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return ensureFloatLiteral(strconv.FormatFloat(v.Float, 'g', -1, 64))
	case KindString, KindID:
		return strconv.Quote(v.Str)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindEnum:
		return v.Str
	case KindVariableRef:
		return "$" + v.Str
	case KindNull:
		return "null"
	case KindAbsent:
		return ""
	case KindList:
		parts := make([]string, len(v.List))
		for i, el := range v.List {
			parts[i] = Render(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		parts := make([]string, len(v.Object))
		for i, f := range v.Object {
			parts[i] = fmt.Sprintf("%s: %s", f.Name, Render(f.Value))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}

// ensureFloatLiteral guarantees s re-parses as a GraphQL FloatValue rather
// than an IntValue: strconv's shortest representation of a whole-number
// float (e.g. 3) omits both '.' and an exponent, which a GraphQL lexer
// reads back as an integer literal. Appending ".0" keeps the Kind stable
// across a render/parse round trip.
func ensureFloatLiteral(s string) string {
	if strings.ContainsAny(s, ".eE") {
		return s
	}
	return s + ".0"
}

// SortedObjectNames returns the field names of an Object value in
// lexicographic order, independent of declaration order.
func SortedObjectNames(v Value) []string {
	names := make([]string, 0, len(v.Object))
	for _, f := range v.Object {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}
