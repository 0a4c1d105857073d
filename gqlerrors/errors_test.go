package gqlerrors_test

import (
	"errors"
	"testing"

	"github.com/shyptr/gqlschema/gqlerrors"
	"github.com/stretchr/testify/assert"
)

func TestProblem(t *testing.T) {
	t.Run("formats message and location", func(t *testing.T) {
		p := gqlerrors.At(gqlerrors.Location{Line: 1, Column: 2}, "bad thing: %s", "oops")
		assert.Equal(t, "graphql: bad thing: oops (1:2)", p.Error())
	})

	t.Run("nil problem renders as <nil>", func(t *testing.T) {
		var p *gqlerrors.Problem
		assert.Equal(t, "<nil>", p.Error())
	})
}

func TestResult(t *testing.T) {
	t.Run("Success carries no problems", func(t *testing.T) {
		r := gqlerrors.Success(5)
		assert.True(t, r.IsSuccess())
		assert.True(t, r.Ok())
		assert.Empty(t, r.Problems())
		assert.Equal(t, 5, r.Value())
	})

	t.Run("WithWarnings degrades to Success when empty", func(t *testing.T) {
		r := gqlerrors.WithWarnings(5, nil)
		assert.True(t, r.IsSuccess())
	})

	t.Run("WithWarnings is still Ok", func(t *testing.T) {
		r := gqlerrors.WithWarnings(5, gqlerrors.Problems{gqlerrors.New("careful")})
		assert.True(t, r.IsWarning())
		assert.True(t, r.Ok())
		assert.Len(t, r.Problems(), 1)
	})

	t.Run("Fail is not Ok", func(t *testing.T) {
		r := gqlerrors.FailWith[int](gqlerrors.New("nope"))
		assert.True(t, r.IsFailure())
		assert.False(t, r.Ok())
		assert.Equal(t, 0, r.Value())
	})

	t.Run("InternalErr wraps a non-diagnostic error", func(t *testing.T) {
		r := gqlerrors.InternalErr[int](errors.New("boom"))
		assert.True(t, r.IsInternalErr())
		assert.False(t, r.Ok())
		assert.EqualError(t, r.Err(), "boom")
	})

	t.Run("MapResult transforms the success value", func(t *testing.T) {
		r := gqlerrors.MapResult(gqlerrors.Success(5), func(n int) int { return n * 2 })
		assert.Equal(t, 10, r.Value())
	})

	t.Run("MapResult passes a Failure through untouched", func(t *testing.T) {
		r := gqlerrors.MapResult(gqlerrors.FailWith[int](gqlerrors.New("nope")), func(n int) int { return n * 2 })
		assert.True(t, r.IsFailure())
	})
}

func TestProblemsAdd(t *testing.T) {
	t.Run("nil problem is not appended", func(t *testing.T) {
		var ps gqlerrors.Problems
		ps = ps.Add(nil)
		assert.Empty(t, ps)
	})

	t.Run("appends a non-nil problem", func(t *testing.T) {
		var ps gqlerrors.Problems
		ps = ps.Add(gqlerrors.New("x"))
		assert.Len(t, ps, 1)
	})
}
