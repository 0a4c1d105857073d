package coerce_test

import (
	"testing"

	"github.com/shyptr/gqlschema"
	"github.com/shyptr/gqlschema/coerce"
	"github.com/shyptr/gqlschema/value"
	"github.com/stretchr/testify/assert"
)

func TestCoerceLiteral_Defaulting(t *testing.T) {
	// input P { n: Int = 7, m: Int! }
	p := &gqlschema.InputObject{
		Name: "P",
		InputFields: []*gqlschema.InputValue{
			{Name: "n", Type: &gqlschema.Nullable{Of: gqlschema.IntScalar}, DefaultValue: value.Int(7)},
			{Name: "m", Type: gqlschema.IntScalar, DefaultValue: value.Absent},
		},
	}
	iv := &gqlschema.InputValue{Name: "p", Type: p}

	t.Run("missing optional field resolves via its default", func(t *testing.T) {
		in := value.ObjectOf(value.ObjectField{Name: "m", Value: value.Int(3)})
		r := coerce.CoerceLiteral(iv, in, "field 'f'")
		assert.True(t, r.Ok())
		assert.True(t, value.Equal(value.ObjectOf(
			value.ObjectField{Name: "n", Value: value.Int(7)},
			value.ObjectField{Name: "m", Value: value.Int(3)},
		), r.Value()))
	})

	t.Run("missing required field with no default fails", func(t *testing.T) {
		in := value.ObjectOf(value.ObjectField{Name: "n", Value: value.Int(1)})
		r := coerce.CoerceLiteral(iv, in, "field 'f'")
		assert.True(t, r.IsFailure())
		assert.Equal(t, "Value of type Int! required for 'm' in field 'f'", r.Problems()[0].Message)
	})

	t.Run("unknown field is reported", func(t *testing.T) {
		in := value.ObjectOf(value.ObjectField{Name: "bogus", Value: value.Int(1)}, value.ObjectField{Name: "m", Value: value.Int(1)})
		r := coerce.CoerceLiteral(iv, in, "field 'f'")
		assert.True(t, r.IsFailure())
	})
}

func TestCoerceLiteral_CustomScalarPassThrough(t *testing.T) {
	// scalar BigInt; IntValue(42) against InputValue(type = BigInt).
	bigInt := &gqlschema.Scalar{Name: "BigInt"}
	iv := &gqlschema.InputValue{Name: "v", Type: bigInt}
	r := coerce.CoerceLiteral(iv, value.Int(42), "argument 'v'")
	assert.True(t, r.Ok())
	assert.True(t, value.Equal(value.Int(42), r.Value()))
}

func TestCoerceLiteral_Nullability(t *testing.T) {
	iv := &gqlschema.InputValue{Name: "v", Type: &gqlschema.Nullable{Of: gqlschema.IntScalar}}

	t.Run("absent yields absent", func(t *testing.T) {
		r := coerce.CoerceLiteral(iv, value.Absent, "argument 'v'")
		assert.True(t, r.Ok())
		assert.Equal(t, value.KindAbsent, r.Value().Kind)
	})

	t.Run("explicit null yields null", func(t *testing.T) {
		r := coerce.CoerceLiteral(iv, value.Null, "argument 'v'")
		assert.True(t, r.Ok())
		assert.Equal(t, value.KindNull, r.Value().Kind)
	})

	t.Run("real value recurses against inner type", func(t *testing.T) {
		r := coerce.CoerceLiteral(iv, value.Int(5), "argument 'v'")
		assert.True(t, r.Ok())
		assert.True(t, value.Equal(value.Int(5), r.Value()))
	})
}

func TestCoerceLiteral_List(t *testing.T) {
	iv := &gqlschema.InputValue{Name: "v", Type: gqlschema.ListOf(gqlschema.IntScalar)}
	r := coerce.CoerceLiteral(iv, value.ListOf(value.Int(1), value.Int(2)), "argument 'v'")
	assert.True(t, r.Ok())
	assert.True(t, value.Equal(value.ListOf(value.Int(1), value.Int(2)), r.Value()))
}

func TestCoerceLiteral_Enum(t *testing.T) {
	e := &gqlschema.Enum{Name: "Color", Values: []*gqlschema.EnumValueDefinition{{Name: "RED"}, {Name: "BLUE"}}}
	iv := &gqlschema.InputValue{Name: "v", Type: e}

	t.Run("accepts a declared value", func(t *testing.T) {
		r := coerce.CoerceLiteral(iv, value.Enum("RED"), "argument 'v'")
		assert.True(t, r.Ok())
	})

	t.Run("rejects an undeclared value", func(t *testing.T) {
		r := coerce.CoerceLiteral(iv, value.Enum("GREEN"), "argument 'v'")
		assert.True(t, r.IsFailure())
	})
}

func TestCoerceVariable_JSONLeniency(t *testing.T) {
	iv := &gqlschema.InputValue{Name: "v", Type: gqlschema.IDScalar}

	t.Run("accepts a JSON string for ID", func(t *testing.T) {
		r := coerce.CoerceVariable(iv, "abc", true, "variable '$v'")
		assert.True(t, r.Ok())
		assert.Equal(t, value.KindID, r.Value().Kind)
	})

	t.Run("accepts a JSON integer for ID, stringified", func(t *testing.T) {
		r := coerce.CoerceVariable(iv, float64(42), true, "variable '$v'")
		assert.True(t, r.Ok())
		assert.Equal(t, "42", r.Value().Str)
	})

	t.Run("absent key yields absent", func(t *testing.T) {
		nullableIV := &gqlschema.InputValue{Name: "v", Type: &gqlschema.Nullable{Of: gqlschema.IDScalar}}
		r := coerce.CoerceVariable(nullableIV, nil, false, "variable '$v'")
		assert.True(t, r.Ok())
		assert.Equal(t, value.KindAbsent, r.Value().Kind)
	})
}
