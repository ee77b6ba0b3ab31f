package schema

import (
	"fmt"
	"strings"
)

type DirectiveLocation string

const (
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"

	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

type DirectiveDefinition struct {
	Description string
	Arguments   map[string]*InputValueDefinition
	Locations   []DirectiveLocation
}

func referencesDirective(node interface{}, directive *DirectiveDefinition) bool {
	visited := map[interface{}]struct{}{}
	foundReference := false

	Inspect(node, func(node interface{}) bool {
		if _, ok := visited[node]; ok {
			return false
		}
		visited[node] = struct{}{}
		if node == directive {
			foundReference = true
		}
		return !foundReference
	})

	return foundReference
}

func (d *DirectiveDefinition) shallowValidate() error {
	for name, arg := range d.Arguments {
		if !isName(name) || strings.HasPrefix(name, "__") {
			return fmt.Errorf("illegal directive argument name: %v", name)
		} else if referencesDirective(arg, d) {
			return fmt.Errorf("directive is self-referencing via %v argument", name)
		}
	}
	if len(d.Locations) == 0 {
		return fmt.Errorf("directives must have one or more locations")
	}
	return nil
}

// Directive is the application of a directive to a type system definition.
type Directive struct {
	Definition *DirectiveDefinition
	Arguments  []*Argument
}

// Argument returns the value given for the named argument, falling back to the argument's default.
func (d *Directive) Argument(name string) (interface{}, bool) {
	for _, arg := range d.Arguments {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	if def, ok := d.Definition.Arguments[name]; ok && def.DefaultValue != nil {
		return def.DefaultValue, true
	}
	return nil, false
}

func (d *Directive) shallowValidate() error {
	if d.Definition == nil {
		return fmt.Errorf("applied directive is missing its definition")
	}
	given := map[string]struct{}{}
	for _, arg := range d.Arguments {
		if _, ok := d.Definition.Arguments[arg.Name]; !ok {
			return fmt.Errorf("unknown directive argument: %v", arg.Name)
		} else if _, ok := given[arg.Name]; ok {
			return fmt.Errorf("duplicate directive argument: %v", arg.Name)
		}
		given[arg.Name] = struct{}{}
	}
	for name, def := range d.Definition.Arguments {
		if _, ok := given[name]; ok || def.DefaultValue != nil {
			continue
		}
		if _, ok := def.Type.(*NonNullType); ok {
			return fmt.Errorf("missing required directive argument: %v", name)
		}
	}
	return nil
}
