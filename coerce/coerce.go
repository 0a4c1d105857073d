// Package coerce implements input-value coercion: validating and
// converting both AST literal values and external JSON variable values
// against an InputValue definition (type, default, nullability), per the
// top-down nine-clause resolution order.
package coerce

import (
	"github.com/shyptr/gqlschema"
	"github.com/shyptr/gqlschema/gqlerrors"
)

func typeMismatch(iv *gqlschema.InputValue, rendered, location string) *gqlerrors.Problem {
	return gqlerrors.New("Expected %s found '%s' for '%s' in %s", gqlschema.TypeString(iv.Type), rendered, iv.Name, location)
}

func required(iv *gqlschema.InputValue, location string) *gqlerrors.Problem {
	return gqlerrors.New("Value of type %s required for '%s' in %s", gqlschema.TypeString(iv.Type), iv.Name, location)
}
