package sdl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shyptr/gqlschema"
	"github.com/shyptr/gqlschema/value"
)

// Render deterministically prints a Schema to canonical SDL: two-space
// indentation, one field per line, interface lists joined by "&", union
// members by " | ", the three built-in directives never re-printed, and
// the `schema { ... }` block omitted when it would be redundant.
func Render(schema *gqlschema.Schema) string {
	var b strings.Builder

	for _, dd := range schema.Directives() {
		if isBuiltinDirective(dd.Name) {
			continue
		}
		renderDirectiveDef(&b, dd)
	}

	if !shouldOmitSchemaDef(schema) {
		renderSchemaDef(&b, schema)
	}

	for _, t := range schema.Types() {
		renderType(&b, t)
	}

	return b.String()
}

func isBuiltinDirective(name string) bool {
	switch name {
	case "skip", "include", "deprecated":
		return true
	default:
		return false
	}
}

// shouldOmitSchemaDef reports whether the `schema { ... }` block can be
// left implicit: the root has exactly one operation field, it is the query
// field and its type is named "Query", and the root carries no directives.
func shouldOmitSchemaDef(schema *gqlschema.Schema) bool {
	root := schema.SchemaType()
	if len(root.Directives) != 0 {
		return false
	}
	if len(root.Fields) != 1 {
		return false
	}
	f := root.Fields[0]
	if f.Name != "query" {
		return false
	}
	return typeNameOf(f.Type) == "Query"
}

func renderSchemaDef(b *strings.Builder, schema *gqlschema.Schema) {
	root := schema.SchemaType()
	renderDescription(b, "", root.Description)
	b.WriteString("schema")
	renderAppliedDirectives(b, root.Directives)
	b.WriteString(" {\n")
	for _, f := range root.Fields {
		name := typeNameOf(f.Type)
		fmt.Fprintf(b, "  %s: %s\n", f.Name, name)
	}
	b.WriteString("}\n")
}

func typeNameOf(t gqlschema.Type) string {
	if n, ok := t.(gqlschema.NamedType); ok {
		return n.TypeName()
	}
	if r, ok := t.(*gqlschema.TypeRef); ok {
		return r.Name
	}
	return gqlschema.TypeString(t)
}

func renderType(b *strings.Builder, t gqlschema.NamedType) {
	switch v := t.(type) {
	case *gqlschema.Scalar:
		if gqlschema.IsBuiltinScalarName(v.Name) {
			return
		}
		renderDescription(b, "", v.Description)
		b.WriteString("scalar " + v.Name)
		renderAppliedDirectives(b, v.Directives)
		b.WriteString("\n")

	case *gqlschema.Enum:
		renderDescription(b, "", v.Description)
		fmt.Fprintf(b, "enum %s", v.Name)
		renderAppliedDirectives(b, v.Directives)
		b.WriteString(" {\n")
		for _, ev := range v.Values {
			renderDescription(b, "  ", ev.Description)
			fmt.Fprintf(b, "  %s", ev.Name)
			renderAppliedDirectives(b, ev.Directives)
			b.WriteString("\n")
		}
		b.WriteString("}\n")

	case *gqlschema.Object:
		renderDescription(b, "", v.Description)
		fmt.Fprintf(b, "type %s", v.Name)
		renderInterfaceList(b, v.Interfaces)
		renderAppliedDirectives(b, v.Directives)
		renderFieldBlock(b, v.Fields)

	case *gqlschema.Interface:
		renderDescription(b, "", v.Description)
		fmt.Fprintf(b, "interface %s", v.Name)
		renderInterfaceList(b, v.Interfaces)
		renderAppliedDirectives(b, v.Directives)
		renderFieldBlock(b, v.Fields)

	case *gqlschema.Union:
		renderDescription(b, "", v.Description)
		names := make([]string, len(v.Members))
		for i, m := range v.Members {
			names[i] = m.Name
		}
		fmt.Fprintf(b, "union %s", v.Name)
		renderAppliedDirectives(b, v.Directives)
		fmt.Fprintf(b, " = %s\n", strings.Join(names, " | "))

	case *gqlschema.InputObject:
		renderDescription(b, "", v.Description)
		fmt.Fprintf(b, "input %s", v.Name)
		renderAppliedDirectives(b, v.Directives)
		b.WriteString(" {\n")
		for _, f := range v.InputFields {
			renderDescription(b, "  ", f.Description)
			fmt.Fprintf(b, "  %s: %s", f.Name, gqlschema.TypeString(f.Type))
			renderDefault(b, f)
			renderAppliedDirectives(b, f.Directives)
			b.WriteString("\n")
		}
		b.WriteString("}\n")
	}
}

func renderInterfaceList(b *strings.Builder, ifaces []*gqlschema.Interface) {
	if len(ifaces) == 0 {
		return
	}
	names := make([]string, len(ifaces))
	for i, iface := range ifaces {
		names[i] = iface.Name
	}
	fmt.Fprintf(b, " implements %s", strings.Join(names, " & "))
}

func renderFieldBlock(b *strings.Builder, fields []*gqlschema.Field) {
	b.WriteString(" {\n")
	for _, f := range fields {
		renderDescription(b, "  ", f.Description)
		fmt.Fprintf(b, "  %s", f.Name)
		renderArgs(b, f.Args)
		fmt.Fprintf(b, ": %s", gqlschema.TypeString(f.Type))
		renderAppliedDirectives(b, f.Directives)
		b.WriteString("\n")
	}
	b.WriteString("}\n")
}

func renderArgs(b *strings.Builder, args []*gqlschema.InputValue) {
	if len(args) == 0 {
		return
	}
	parts := make([]string, len(args))
	for i, a := range args {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s: %s", a.Name, gqlschema.TypeString(a.Type))
		renderDefault(&sb, a)
		parts[i] = sb.String()
	}
	fmt.Fprintf(b, "(%s)", strings.Join(parts, ", "))
}

func renderDefault(b *strings.Builder, iv *gqlschema.InputValue) {
	if iv.DefaultValue.Kind == value.KindAbsent {
		return
	}
	fmt.Fprintf(b, " = %s", value.Render(iv.DefaultValue))
}

func renderAppliedDirectives(b *strings.Builder, dirs []*gqlschema.Directive) {
	for _, d := range dirs {
		fmt.Fprintf(b, " @%s", d.Name)
		if len(d.Args) == 0 {
			continue
		}
		parts := make([]string, len(d.Args))
		for i, a := range d.Args {
			parts[i] = fmt.Sprintf("%s: %s", a.Name, value.Render(a.Value))
		}
		fmt.Fprintf(b, "(%s)", strings.Join(parts, ", "))
	}
}

func renderDirectiveDef(b *strings.Builder, dd *gqlschema.DirectiveDef) {
	renderDescription(b, "", dd.Description)
	fmt.Fprintf(b, "directive @%s", dd.Name)
	renderArgs(b, dd.Args)
	if dd.IsRepeatable {
		b.WriteString(" repeatable")
	}
	b.WriteString(" on ")
	locs := make([]string, 0, len(dd.Locations))
	for loc := range dd.Locations {
		locs = append(locs, string(loc))
	}
	sort.Strings(locs)
	b.WriteString(strings.Join(locs, " | "))
	b.WriteString("\n")
}

// renderDescription prints a block ("""...""") description for multi-line
// text and a double-quoted one-liner otherwise.
func renderDescription(b *strings.Builder, indent, desc string) {
	if desc == "" {
		return
	}
	if strings.Contains(desc, "\n") {
		fmt.Fprintf(b, "%s\"\"\"\n%s%s\n%s\"\"\"\n", indent, indent, desc, indent)
		return
	}
	fmt.Fprintf(b, "%s%s\n", indent, strconv.Quote(desc))
}
