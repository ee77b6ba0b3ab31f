// Package sdl renders schemas in the GraphQL schema definition language.
package sdl

import (
	"bytes"
	"io"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/ccbrown/schema-fu/graphql/schema"
	"github.com/ccbrown/schema-fu/graphql/schema/introspection"
	"github.com/ccbrown/schema-fu/sdl/scanner"
)

var json = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

const defaultDeprecationReason = "No longer supported"

type printer struct {
	buf            bytes.Buffer
	directiveNames map[*schema.DirectiveDefinition]string
	err            error
}

// Print renders the schema. Types, fields, arguments, and enum values are sorted by name, so the
// output is deterministic. Built-in scalars are omitted.
func Print(s *schema.Schema) (string, error) {
	var buf bytes.Buffer
	if err := Fprint(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fprint writes the rendered schema to w.
func Fprint(w io.Writer, s *schema.Schema) error {
	p := &printer{
		directiveNames: map[*schema.DirectiveDefinition]string{},
	}
	for name, d := range s.Directives() {
		p.directiveNames[d] = name
	}

	var blocks []string
	if def := p.schemaDefinition(s); def != "" {
		blocks = append(blocks, def)
	}
	for _, name := range sortedKeys(s.Directives()) {
		blocks = append(blocks, p.capture(func() { p.directiveDefinition(name, s.Directives()[name]) }))
	}
	for _, name := range s.TypeNames() {
		if _, ok := schema.BuiltInTypes[name]; ok || strings.HasPrefix(name, "__") {
			continue
		}
		t := s.NamedType(name)
		blocks = append(blocks, p.capture(func() { p.namedType(t) }))
	}
	if p.err != nil {
		return p.err
	}

	out := strings.Join(blocks, "\n")
	if err := Check([]byte(out)); err != nil {
		return errors.Wrap(err, "rendered document is malformed")
	}
	_, err := io.WriteString(w, out)
	return err
}

// Check tokenizes src and returns its first lexical error, if any.
func Check(src []byte) error {
	sc := scanner.New(src, 0)
	for sc.Scan() {
	}
	if errs := sc.Errors(); len(errs) > 0 {
		return errors.Errorf("%v:%v: %v", errs[0].Line, errs[0].Column, errs[0].Message)
	}
	return nil
}

func (p *printer) capture(f func()) string {
	p.buf.Reset()
	f()
	return p.buf.String()
}

func (p *printer) write(parts ...string) {
	for _, part := range parts {
		p.buf.WriteString(part)
	}
}

func (p *printer) fail(err error) {
	if err != nil && p.err == nil {
		p.err = err
	}
}

func (p *printer) schemaDefinition(s *schema.Schema) string {
	roots := []struct {
		operation string
		t         *schema.ObjectType
		canonical string
	}{
		{"query", s.QueryType(), "Query"},
		{"mutation", s.MutationType(), "Mutation"},
		{"subscription", s.SubscriptionType(), "Subscription"},
	}
	canonical := true
	for _, root := range roots {
		if root.t != nil && root.t.Name != root.canonical {
			canonical = false
		}
	}
	if canonical {
		return ""
	}
	return p.capture(func() {
		p.write("schema {\n")
		for _, root := range roots {
			if root.t != nil {
				p.write("  ", root.operation, ": ", root.t.Name, "\n")
			}
		}
		p.write("}\n")
	})
}

func (p *printer) description(description, indent string) {
	if description == "" {
		return
	}
	if !strings.ContainsAny(description, "\n\"\\") {
		b, err := json.Marshal(description)
		p.fail(err)
		p.write(indent, string(b), "\n")
		return
	}
	p.write(indent, `"""`, "\n")
	for _, line := range strings.Split(strings.ReplaceAll(description, `"""`, `\"""`), "\n") {
		if line == "" {
			p.write("\n")
		} else {
			p.write(indent, line, "\n")
		}
	}
	p.write(indent, `"""`, "\n")
}

func (p *printer) directiveDefinition(name string, d *schema.DirectiveDefinition) {
	p.description(d.Description, "")
	p.write("directive @", name)
	p.arguments(d.Arguments, "")
	locations := make([]string, len(d.Locations))
	for i, loc := range d.Locations {
		locations[i] = string(loc)
	}
	p.write(" on ", strings.Join(locations, " | "), "\n")
}

func (p *printer) namedType(t schema.NamedType) {
	switch t := t.(type) {
	case *schema.ScalarType:
		p.description(t.Description, "")
		p.write("scalar ", t.Name)
		p.directives(t.Directives, "")
		p.write("\n")
	case *schema.ObjectType:
		p.description(t.Description, "")
		p.write("type ", t.Name)
		if len(t.ImplementedInterfaces) > 0 {
			names := make([]string, len(t.ImplementedInterfaces))
			for i, iface := range t.ImplementedInterfaces {
				names[i] = iface.Name
			}
			p.write(" implements ", strings.Join(names, " & "))
		}
		p.directives(t.Directives, "")
		p.fields(t.Fields)
	case *schema.InterfaceType:
		p.description(t.Description, "")
		p.write("interface ", t.Name)
		if len(t.Interfaces) > 0 {
			names := make([]string, len(t.Interfaces))
			for i, iface := range t.Interfaces {
				names[i] = iface.Name
			}
			p.write(" implements ", strings.Join(names, " & "))
		}
		p.directives(t.Directives, "")
		p.fields(t.Fields)
	case *schema.UnionType:
		p.description(t.Description, "")
		p.write("union ", t.Name)
		p.directives(t.Directives, "")
		names := make([]string, len(t.MemberTypes))
		for i, member := range t.MemberTypes {
			names[i] = member.Name
		}
		p.write(" = ", strings.Join(names, " | "), "\n")
	case *schema.EnumType:
		p.description(t.Description, "")
		p.write("enum ", t.Name)
		p.directives(t.Directives, "")
		p.write(" {\n")
		for _, name := range sortedKeys(t.Values) {
			value := t.Values[name]
			p.description(value.Description, "  ")
			p.write("  ", name)
			p.directives(value.Directives, value.DeprecationReason)
			p.write("\n")
		}
		p.write("}\n")
	case *schema.InputObjectType:
		p.description(t.Description, "")
		p.write("input ", t.Name)
		p.directives(t.Directives, "")
		p.write(" {\n")
		for _, name := range sortedKeys(t.Fields) {
			field := t.Fields[name]
			p.description(field.Description, "  ")
			p.write("  ")
			p.inputValue(name, field)
			p.write("\n")
		}
		p.write("}\n")
	default:
		p.fail(errors.Errorf("unsupported type %T", t))
	}
}

func (p *printer) fields(fields map[string]*schema.FieldDefinition) {
	p.write(" {\n")
	for _, name := range sortedKeys(fields) {
		field := fields[name]
		p.description(field.Description, "  ")
		p.write("  ", name)
		p.arguments(field.Arguments, "  ")
		p.write(": ", field.Type.String())
		p.directives(field.Directives, field.DeprecationReason)
		p.write("\n")
	}
	p.write("}\n")
}

func (p *printer) arguments(args map[string]*schema.InputValueDefinition, indent string) {
	if len(args) == 0 {
		return
	}
	multiline := false
	for _, arg := range args {
		if arg.Description != "" {
			multiline = true
		}
	}

	p.write("(")
	for i, name := range sortedKeys(args) {
		if multiline {
			p.write("\n")
			p.description(args[name].Description, indent+"  ")
			p.write(indent, "  ")
		} else if i > 0 {
			p.write(", ")
		}
		p.inputValue(name, args[name])
	}
	if multiline {
		p.write("\n", indent)
	}
	p.write(")")
}

func (p *printer) inputValue(name string, v *schema.InputValueDefinition) {
	p.write(name, ": ", v.Type.String())
	if v.DefaultValue != nil {
		literal, err := introspection.MarshalValue(v.Type, v.DefaultValue)
		p.fail(errors.Wrapf(err, "unable to print default value of %v", name))
		p.write(" = ", literal)
	}
	p.directives(v.Directives, v.DeprecationReason)
}

func (p *printer) directives(directives []*schema.Directive, deprecationReason string) {
	for _, d := range directives {
		name, ok := p.directiveNames[d.Definition]
		if !ok {
			continue
		}
		p.write(" @", name)
		if len(d.Arguments) > 0 {
			args := make([]string, len(d.Arguments))
			for i, arg := range d.Arguments {
				b, err := json.Marshal(arg.Value)
				p.fail(err)
				args[i] = arg.Name + ": " + string(b)
			}
			p.write("(", strings.Join(args, ", "), ")")
		}
	}
	if deprecationReason == defaultDeprecationReason {
		p.write(" @deprecated")
	} else if deprecationReason != "" {
		b, err := json.Marshal(deprecationReason)
		p.fail(err)
		p.write(" @deprecated(reason: ", string(b), ")")
	}
}

func sortedKeys[T any](m map[string]T) []string {
	ret := make([]string, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
