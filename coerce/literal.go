package coerce

import (
	"strconv"

	"github.com/shyptr/gqlschema"
	"github.com/shyptr/gqlschema/gqlerrors"
	"github.com/shyptr/gqlschema/value"
)

// CoerceLiteral validates and converts an AST literal value (already
// translated to value.Value by value.FromAST, or value.Absent if none was
// written) against iv, per the nine-clause resolution order. location is
// a human-readable site label used in diagnostics ("argument 'x' of field
// 'y'", "field 'n' of input object 'P'", ...).
func CoerceLiteral(iv *gqlschema.InputValue, v value.Value, location string) gqlerrors.Result[value.Value] {
	return coerceValue(iv, v, location, false)
}

// coerceValue implements the shared nine-clause resolution order for both
// the literal and JSON paths; jsonMode
// toggles the enum clause, where JSON's looser shape vocabulary (no native
// Enum value kind) lets a plain string name a declared member.
func coerceValue(iv *gqlschema.InputValue, v value.Value, location string, jsonMode bool) gqlerrors.Result[value.Value] {
	// Clause 1: no value supplied, but a default was declared.
	if (v.Kind == value.KindAbsent) && iv.DefaultValue.Kind != value.KindAbsent {
		return gqlerrors.Success(iv.DefaultValue)
	}

	nullable, inner := gqlschema.IsNullableType(iv.Type), gqlschema.NonNullOf(iv.Type)

	// Clause 2: nullable type, no value or explicit null.
	if nullable {
		switch v.Kind {
		case value.KindAbsent:
			return gqlerrors.Success(value.Absent)
		case value.KindNull:
			return gqlerrors.Success(value.Null)
		}
	}

	// Clause 3: nullable type, real value — recurse against the inner type.
	if nullable {
		recursed := *iv
		recursed.Type = inner
		recursed.DefaultValue = value.Absent
		return coerceValue(&recursed, v, location, jsonMode)
	}

	// Past this point iv.Type is non-null and v is neither Absent nor Null
	// (both were handled by clause 2 when the type was nullable; a
	// non-null type falling into either state fails at clause 9).
	if v.Kind == value.KindAbsent {
		return gqlerrors.FailWith[value.Value](required(iv, location))
	}
	if v.Kind == value.KindNull {
		return gqlerrors.FailWith[value.Value](typeMismatch(iv, "null", location))
	}

	switch t := gqlschema.Dealias(iv.Type).(type) {
	case *gqlschema.Scalar:
		return coerceScalar(iv, t, v, location, jsonMode)
	case *gqlschema.Enum:
		return coerceEnum(iv, t, v, location, jsonMode)
	case *gqlschema.List:
		return coerceList(iv, t, v, location, jsonMode)
	case *gqlschema.InputObject:
		return coerceInputObject(iv, t, v, location, jsonMode)
	default:
		return gqlerrors.FailWith[value.Value](typeMismatch(iv, value.Render(v), location))
	}
}

// Clause 4/5: built-in scalar match by variant, or custom-scalar
// pass-through.
func coerceScalar(iv *gqlschema.InputValue, s *gqlschema.Scalar, v value.Value, location string, jsonMode bool) gqlerrors.Result[value.Value] {
	switch s.Name {
	case "Int":
		if v.Kind == value.KindInt {
			return gqlerrors.Success(v)
		}
	case "Float":
		if v.Kind == value.KindFloat {
			return gqlerrors.Success(v)
		}
		if v.Kind == value.KindInt {
			return gqlerrors.Success(value.Float(float64(v.Int)))
		}
	case "String":
		if v.Kind == value.KindString {
			return gqlerrors.Success(v)
		}
	case "Boolean":
		if v.Kind == value.KindBoolean {
			return gqlerrors.Success(v)
		}
	case "ID":
		if v.Kind == value.KindID || v.Kind == value.KindString {
			return gqlerrors.Success(value.ID(v.Str))
		}
		if v.Kind == value.KindInt {
			return gqlerrors.Success(value.ID(strconv.FormatInt(v.Int, 10)))
		}
	default:
		// Clause 5: custom scalars accept any Int/Float/String/Boolean
		// shaped primitive and pass it through unchanged; deeper checks are
		// the server-side scalar codec's job, outside this core.
		switch v.Kind {
		case value.KindInt, value.KindFloat, value.KindString, value.KindBoolean:
			return gqlerrors.Success(v)
		}
	}
	return gqlerrors.FailWith[value.Value](typeMismatch(iv, value.Render(v), location))
}

// Clause 6: enum value match. JSON mode has no native enum literal, so a
// plain string naming a declared member is also accepted.
func coerceEnum(iv *gqlschema.InputValue, e *gqlschema.Enum, v value.Value, location string, jsonMode bool) gqlerrors.Result[value.Value] {
	name := ""
	switch {
	case v.Kind == value.KindEnum:
		name = v.Str
	case jsonMode && v.Kind == value.KindString:
		name = v.Str
	default:
		return gqlerrors.FailWith[value.Value](typeMismatch(iv, value.Render(v), location))
	}
	if !e.HasValue(name) {
		return gqlerrors.FailWith[value.Value](typeMismatch(iv, name, location))
	}
	return gqlerrors.Success(value.Enum(name))
}

// Clause 7: list recursion. Defaults never cascade into list elements.
func coerceList(iv *gqlschema.InputValue, l *gqlschema.List, v value.Value, location string, jsonMode bool) gqlerrors.Result[value.Value] {
	if v.Kind != value.KindList {
		return gqlerrors.FailWith[value.Value](typeMismatch(iv, value.Render(v), location))
	}
	elemIV := &gqlschema.InputValue{Name: iv.Name, Type: l.Of, DefaultValue: value.Absent}
	out := make([]value.Value, 0, len(v.List))
	var problems gqlerrors.Problems
	for _, el := range v.List {
		r := coerceValue(elemIV, el, location, jsonMode)
		problems = append(problems, r.Problems()...)
		if r.Ok() {
			out = append(out, r.Value())
		}
	}
	if len(problems) > 0 {
		return gqlerrors.Fail[value.Value](problems)
	}
	return gqlerrors.Success(value.ListOf(out...))
}

// Clause 8: input-object recursion. Every field name supplied but not
// declared on the input object is reported; every declared input field is
// then coerced (absent fields may still resolve via their own default).
func coerceInputObject(iv *gqlschema.InputValue, io *gqlschema.InputObject, v value.Value, location string, jsonMode bool) gqlerrors.Result[value.Value] {
	if v.Kind != value.KindObject {
		return gqlerrors.FailWith[value.Value](typeMismatch(iv, value.Render(v), location))
	}
	supplied := make(map[string]value.Value, len(v.Object))
	var problems gqlerrors.Problems
	for _, f := range v.Object {
		if io.InputField(f.Name) == nil {
			problems = append(problems, gqlerrors.New("Unknown field '%s' for input object '%s' in %s", f.Name, io.Name, location))
			continue
		}
		supplied[f.Name] = f.Value
	}

	out := make([]value.ObjectField, 0, len(io.InputFields))
	for _, fieldDef := range io.InputFields {
		fv, present := supplied[fieldDef.Name]
		if !present {
			fv = value.Absent
		}
		r := coerceValue(fieldDef, fv, location, jsonMode)
		problems = append(problems, r.Problems()...)
		if r.Ok() && r.Value().Kind != value.KindAbsent {
			out = append(out, value.ObjectField{Name: fieldDef.Name, Value: r.Value()})
		}
	}
	if len(problems) > 0 {
		return gqlerrors.Fail[value.Value](problems)
	}
	return gqlerrors.Success(value.ObjectOf(out...))
}
