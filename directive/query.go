package directive

import (
	"github.com/shyptr/gqlschema"
	"github.com/shyptr/gqlschema/gqlerrors"
	"github.com/shyptr/gqlschema/value"
	"github.com/vektah/gqlparser/v2/ast"
)

// fromAST converts the query-side directive list gqlparser attaches to a
// node into this module's own applied-Directive shape.
func fromAST(dirs ast.DirectiveList) []*gqlschema.Directive {
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

func operationLocation(op ast.Operation) gqlschema.DirectiveLocation {
	switch op {
	case ast.Mutation:
		return gqlschema.LocationMutation
	case ast.Subscription:
		return gqlschema.LocationSubscription
	default:
		return gqlschema.LocationQuery
	}
}

// ValidateForQuery traverses every operation (its own directives, its
// variable definitions, then its selection set's fields, fragment spreads
// and inline fragments) and then every fragment definition, and validates
// the directives attached to each, choosing
// QUERY/MUTATION/SUBSCRIPTION for the operation-level location by the
// operation's own kind.
func ValidateForQuery(schema *gqlschema.Schema, doc *ast.QueryDocument, vars map[string]value.Value) gqlerrors.Result[struct{}] {
	var problems gqlerrors.Problems

	for _, op := range doc.Operations {
		opLoc := operationLocation(op.Operation)
		problems = append(problems, ValidateSite(schema, fromAST(op.Directives), opLoc, vars)...)
		for _, v := range op.VariableDefinitions {
			problems = append(problems, ValidateSite(schema, fromAST(v.Directives), gqlschema.LocationVariableDefinition, vars)...)
		}
		problems = append(problems, validateSelectionSet(schema, op.SelectionSet, vars)...)
	}
	for _, frag := range doc.Fragments {
		problems = append(problems, ValidateSite(schema, fromAST(frag.Directives), gqlschema.LocationFragmentDefinition, vars)...)
		problems = append(problems, validateSelectionSet(schema, frag.SelectionSet, vars)...)
	}

	if len(problems) > 0 {
		return gqlerrors.Fail[struct{}](problems)
	}
	return gqlerrors.Success(struct{}{})
}

func validateSelectionSet(schema *gqlschema.Schema, set ast.SelectionSet, vars map[string]value.Value) gqlerrors.Problems {
	var problems gqlerrors.Problems
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			problems = append(problems, ValidateSite(schema, fromAST(s.Directives), gqlschema.LocationField, vars)...)
			problems = append(problems, validateSelectionSet(schema, s.SelectionSet, vars)...)
		case *ast.FragmentSpread:
			problems = append(problems, ValidateSite(schema, fromAST(s.Directives), gqlschema.LocationFragmentSpread, vars)...)
		case *ast.InlineFragment:
			problems = append(problems, ValidateSite(schema, fromAST(s.Directives), gqlschema.LocationInlineFragment, vars)...)
			problems = append(problems, validateSelectionSet(schema, s.SelectionSet, vars)...)
		}
	}
	return problems
}
