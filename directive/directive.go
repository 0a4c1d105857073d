// Package directive implements directive validation: location legality,
// repeatability, unknown-argument and argument-coercion checks, run both
// over a built Schema's own components and over a parsed query document.
package directive

import (
	"github.com/shyptr/gqlschema"
	"github.com/shyptr/gqlschema/coerce"
	"github.com/shyptr/gqlschema/gqlerrors"
	"github.com/shyptr/gqlschema/value"
)

// Elaborated pairs a validated applied directive with its fully-resolved
// argument bindings, the result of ElaborateSite succeeding.
type Elaborated struct {
	Name     string
	Bindings []gqlschema.Binding
}

// validateSite runs the five per-site checks against one application
// site's directive list, in the required ordering: occurrence
// problems (undefined, location) before argument problems (unknown arg,
// coercion), and within occurrence, location before repetition.
func validateSite(schema *gqlschema.Schema, dirs []*gqlschema.Directive, loc gqlschema.DirectiveLocation, vars map[string]value.Value) ([]Elaborated, gqlerrors.Problems) {
	var problems gqlerrors.Problems
	defs := make([]*gqlschema.DirectiveDef, len(dirs))

	// 1/2: undefined directive, location illegality.
	for i, d := range dirs {
		def := schema.Directive(d.Name)
		defs[i] = def
		if def == nil {
			problems = problems.Add(gqlerrors.New("Undefined directive '%s'", d.Name))
			continue
		}
		if !def.HasLocation(loc) {
			problems = problems.Add(gqlerrors.New("Directive '%s' is not allowed on %s", d.Name, loc))
		}
	}

	// 3: repetition, deduplicated per name, only for directives that exist.
	seen := map[string]bool{}
	counts := map[string]int{}
	for i, d := range dirs {
		if defs[i] != nil {
			counts[d.Name]++
		}
	}
	for i, d := range dirs {
		def := defs[i]
		if def == nil || def.IsRepeatable || counts[d.Name] <= 1 {
			continue
		}
		if seen[d.Name] {
			continue
		}
		seen[d.Name] = true
		problems = problems.Add(gqlerrors.New("Directive '%s' may not be used more than once at this location", d.Name))
	}

	// 4/5: unknown arguments, argument coercion. Only attempted for
	// directives whose definition resolved and whose location was legal,
	// so an occurrence failure doesn't cascade into noisy argument errors.
	var elaborated []Elaborated
	for i, d := range dirs {
		def := defs[i]
		if def == nil || !def.HasLocation(loc) {
			continue
		}
		site := "directive '" + d.Name + "'"
		declared := map[string]*gqlschema.InputValue{}
		for _, a := range def.Args {
			declared[a.Name] = a
		}
		for _, arg := range d.Args {
			if _, ok := declared[arg.Name]; !ok {
				problems = problems.Add(gqlerrors.New("Unknown argument '%s' on directive '%s'", arg.Name, d.Name))
			}
		}
		supplied := map[string]value.Value{}
		for _, arg := range d.Args {
			if _, ok := declared[arg.Name]; !ok {
				continue
			}
			elabR := value.ElaborateValue(arg.Value, vars)
			if !elabR.Ok() {
				problems = append(problems, elabR.Problems()...)
				continue
			}
			supplied[arg.Name] = elabR.Value()
		}

		var bindings []gqlschema.Binding
		for _, argDef := range def.Args {
			v, present := supplied[argDef.Name]
			if !present {
				v = value.Absent
			}
			r := coerce.CoerceLiteral(argDef, v, site)
			problems = append(problems, r.Problems()...)
			if r.Ok() {
				bindings = append(bindings, gqlschema.Binding{Name: argDef.Name, Value: r.Value()})
			}
		}
		elaborated = append(elaborated, Elaborated{Name: d.Name, Bindings: bindings})
	}

	return elaborated, problems
}

// ValidateSite is the exported per-site entry point `validateDirectives`
// describes: validates one application site's directive list and returns
// any Problems found, discarding the elaborated bindings (callers that
// need them use ElaborateSite).
func ValidateSite(schema *gqlschema.Schema, dirs []*gqlschema.Directive, loc gqlschema.DirectiveLocation, vars map[string]value.Value) gqlerrors.Problems {
	_, problems := validateSite(schema, dirs, loc, vars)
	return problems
}

// ElaborateSite runs `elaborateDirectives`: validation plus full argument
// resolution, returning the rewritten directive list as Elaborated sites.
func ElaborateSite(schema *gqlschema.Schema, dirs []*gqlschema.Directive, loc gqlschema.DirectiveLocation, vars map[string]value.Value) gqlerrors.Result[[]Elaborated] {
	elaborated, problems := validateSite(schema, dirs, loc, vars)
	if len(problems) > 0 {
		return gqlerrors.Fail[[]Elaborated](problems)
	}
	return gqlerrors.Success(elaborated)
}
