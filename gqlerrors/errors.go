// Package gqlerrors carries the diagnostic and result-accumulation types
// shared across the schema model, coercion and validation packages.
package gqlerrors

import "fmt"

// Location mirrors a position in SDL or query source text.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// Problem is a single diagnostic produced by validation or coercion.
type Problem struct {
	Message    string                 `json:"message"`
	Locations  []Location             `json:"locations,omitempty"`
	Path       []interface{}          `json:"path,omitempty"`
	Rule       string                 `json:"-"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

func (p *Problem) Error() string {
	if p == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql: %s", p.Message)
	for _, loc := range p.Locations {
		str += fmt.Sprintf(" (%d:%d)", loc.Line, loc.Column)
	}
	if p.Path != nil {
		str += fmt.Sprintf(" path: %v", p.Path)
	}
	return str
}

var _ error = (*Problem)(nil)

// New builds a Problem from a message format, with no location attached.
func New(format string, arg ...interface{}) *Problem {
	return &Problem{Message: fmt.Sprintf(format, arg...)}
}

// At builds a Problem attached to a single source location.
func At(loc Location, format string, arg ...interface{}) *Problem {
	return &Problem{Message: fmt.Sprintf(format, arg...), Locations: []Location{loc}}
}

// Problems is an ordered collection of diagnostics, in traversal order.
type Problems []*Problem

func (ps Problems) Error() string {
	var res string
	for _, p := range ps {
		res += p.Error() + "\n"
	}
	return res
}

// Add appends a diagnostic and returns the updated slice; a nil Problem is
// ignored.
func (ps Problems) Add(p *Problem) Problems {
	if p == nil {
		return ps
	}
	return append(ps, p)
}

// Kind classifies a Result by the shape of its outcome.
type Kind int

const (
	KindSuccess Kind = iota
	KindWarning
	KindFailure
	KindInternalError
)

// Result is the accumulating outcome of a fallible core operation: either a
// value (optionally alongside non-fatal Problems), a hard Failure carrying
// only Problems, or an InternalError wrapping a Go error that is not itself
// a diagnostic (a panic recovered at a boundary, for instance).
type Result[T any] struct {
	kind     Kind
	value    T
	problems Problems
	err      error
}

// Success wraps a value with no accumulated Problems.
func Success[T any](v T) Result[T] {
	return Result[T]{kind: KindSuccess, value: v}
}

// WithWarnings wraps a value alongside non-fatal Problems. An empty Problems
// slice degrades to Success.
func WithWarnings[T any](v T, problems Problems) Result[T] {
	if len(problems) == 0 {
		return Success(v)
	}
	return Result[T]{kind: KindWarning, value: v, problems: problems}
}

// Fail produces a Failure carrying the given Problems. Calling Fail with no
// Problems is a programmer error; it still yields a Failure with an empty
// list rather than panicking.
func Fail[T any](problems Problems) Result[T] {
	return Result[T]{kind: KindFailure, problems: problems}
}

// FailWith is a convenience wrapper for a single-Problem Failure.
func FailWith[T any](p *Problem) Result[T] {
	return Fail[T](Problems{p})
}

// InternalErr wraps a non-diagnostic error (a bug, not a validation result).
func InternalErr[T any](err error) Result[T] {
	return Result[T]{kind: KindInternalError, err: err}
}

func (r Result[T]) Kind() Kind         { return r.kind }
func (r Result[T]) IsSuccess() bool    { return r.kind == KindSuccess }
func (r Result[T]) IsWarning() bool    { return r.kind == KindWarning }
func (r Result[T]) IsFailure() bool    { return r.kind == KindFailure }
func (r Result[T]) IsInternalErr() bool { return r.kind == KindInternalError }

// Ok reports whether the operation produced a usable value (Success or
// Warning) as opposed to a Failure or InternalError.
func (r Result[T]) Ok() bool { return r.kind == KindSuccess || r.kind == KindWarning }

// Value returns the wrapped value. Only meaningful when Ok() is true; for a
// Failure or InternalError it returns T's zero value.
func (r Result[T]) Value() T { return r.value }

// Problems returns the accumulated diagnostics, empty for Success and
// InternalError.
func (r Result[T]) Problems() Problems { return r.problems }

// Err returns the wrapped error for an InternalError result, nil otherwise.
func (r Result[T]) Err() error { return r.err }

// MapResult transforms the wrapped value of a Success or Warning result, leaving
// Failure and InternalError untouched.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	switch r.kind {
	case KindSuccess:
		return Success(f(r.value))
	case KindWarning:
		return WithWarnings(f(r.value), r.problems)
	case KindFailure:
		return Fail[U](r.problems)
	default:
		return InternalErr[U](r.err)
	}
}
