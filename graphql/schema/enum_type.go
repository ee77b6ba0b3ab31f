package schema

import (
	"fmt"
	"reflect"
	"sort"
)

type EnumType struct {
	Name        string
	Description string
	Directives  []*Directive
	Values      map[string]*EnumValueDefinition
	Extensions  map[string]interface{}
}

type EnumValueDefinition struct {
	Description       string
	Directives        []*Directive
	DeprecationReason string

	// The internal value the enum value represents. If nil, the name is used.
	Value interface{}
}

func (t *EnumType) String() string {
	return t.Name
}

func (t *EnumType) IsInputType() bool {
	return true
}

func (t *EnumType) IsOutputType() bool {
	return true
}

func (t *EnumType) IsSubTypeOf(other Type) bool {
	return t.IsSameType(other)
}

func (t *EnumType) IsSameType(other Type) bool {
	return t == other
}

func (t *EnumType) TypeName() string {
	return t.Name
}

// CoerceResult returns the name of the enum value that represents v.
func (t *EnumType) CoerceResult(v interface{}) (string, error) {
	names := make([]string, 0, len(t.Values))
	for name := range t.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		def := t.Values[name]
		if def.Value == nil {
			if s, ok := v.(string); ok && s == name {
				return name, nil
			}
		} else if reflect.DeepEqual(def.Value, v) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%v is not a valid %v value", v, t.Name)
}

func (d *EnumType) shallowValidate() error {
	if len(d.Values) == 0 {
		return fmt.Errorf("%v must have at least one value", d.Name)
	}
	for name := range d.Values {
		if !isName(name) || name == "true" || name == "false" || name == "null" {
			return fmt.Errorf("illegal enum value name: %v", name)
		}
	}
	return nil
}

func IsEnumType(t Type) bool {
	_, ok := t.(*EnumType)
	return ok
}
