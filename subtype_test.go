package gqlschema_test

import (
	"testing"

	"github.com/shyptr/gqlschema"
	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	t.Run("nullable list of non-null int renders [Int!]", func(t *testing.T) {
		ty := &gqlschema.Nullable{Of: &gqlschema.List{Of: gqlschema.IntScalar}}
		assert.Equal(t, "[Int!]", gqlschema.TypeString(ty))
	})

	t.Run("non-null list of nullable int renders [Int]!", func(t *testing.T) {
		ty := &gqlschema.List{Of: &gqlschema.Nullable{Of: gqlschema.IntScalar}}
		assert.Equal(t, "[Int]!", gqlschema.TypeString(ty))
	})

	t.Run("bare scalar is non-null", func(t *testing.T) {
		assert.Equal(t, "Int!", gqlschema.TypeString(gqlschema.IntScalar))
	})

	t.Run("nullable scalar has no suffix", func(t *testing.T) {
		assert.Equal(t, "Int", gqlschema.TypeString(&gqlschema.Nullable{Of: gqlschema.IntScalar}))
	})
}

func TestSubtype(t *testing.T) {
	node := &gqlschema.Interface{
		Name:   "Node",
		Fields: []*gqlschema.Field{{Name: "id", Type: gqlschema.IDScalar}},
	}
	user := &gqlschema.Object{
		Name:       "User",
		Fields:     []*gqlschema.Field{{Name: "id", Type: gqlschema.IDScalar}, {Name: "name", Type: &gqlschema.Nullable{Of: gqlschema.StringScalar}}},
		Interfaces: []*gqlschema.Interface{node},
	}

	t.Run("reflexive", func(t *testing.T) {
		assert.True(t, gqlschema.Subtype(user, user))
	})

	t.Run("object is a subtype of its interface", func(t *testing.T) {
		assert.True(t, gqlschema.Subtype(user, node))
	})

	t.Run("interface is not a subtype of its implementor", func(t *testing.T) {
		assert.False(t, gqlschema.Subtype(node, user))
	})

	t.Run("non-null is a subtype of nullable, never the reverse", func(t *testing.T) {
		nullableInt := &gqlschema.Nullable{Of: gqlschema.IntScalar}
		assert.True(t, gqlschema.Subtype(gqlschema.IntScalar, nullableInt))
		assert.False(t, gqlschema.Subtype(nullableInt, gqlschema.IntScalar))
	})

	t.Run("nullable idempotence", func(t *testing.T) {
		once := gqlschema.NullableOf(gqlschema.IntScalar)
		twice := gqlschema.NullableOf(once)
		assert.True(t, gqlschema.Equivalent(once, twice))
	})

	t.Run("union membership", func(t *testing.T) {
		dog := &gqlschema.Object{Name: "Dog", Fields: []*gqlschema.Field{{Name: "id", Type: gqlschema.IDScalar}}}
		pet := &gqlschema.Union{Name: "Pet", Members: []*gqlschema.Object{user, dog}}
		assert.True(t, gqlschema.Subtype(user, pet))
		assert.True(t, gqlschema.Subtype(dog, pet))
	})

	t.Run("list covariance", func(t *testing.T) {
		listOfNode := gqlschema.ListOf(node)
		listOfUser := gqlschema.ListOf(user)
		assert.True(t, gqlschema.Subtype(listOfUser, listOfNode))
	})
}

func TestExhaustive(t *testing.T) {
	node := &gqlschema.Interface{
		Name:   "Node",
		Fields: []*gqlschema.Field{{Name: "id", Type: gqlschema.IDScalar}},
	}
	user := &gqlschema.Object{
		Name:       "User",
		Fields:     []*gqlschema.Field{{Name: "id", Type: gqlschema.IDScalar}},
		Interfaces: []*gqlschema.Interface{node},
	}
	b := gqlschema.NewBuilder()
	b.AddType(node)
	b.AddType(user)
	schema := b.Seal()

	assert.True(t, schema.Exhaustive(node, []gqlschema.Type{user}))
	assert.False(t, schema.Exhaustive(node, nil))
}
