package schema

import (
	"fmt"
	"strings"
)

type InputObjectType struct {
	Name        string
	Description string
	Directives  []*Directive
	Fields      map[string]*InputValueDefinition
	Extensions  map[string]interface{}

	// Normally input objects only need to be coerced from inputs. However, if an argument of this
	// type is given a default value, we need to be able to do the reverse in order to serialize it
	// for introspection.
	//
	// If nil, default values must already be maps.
	ResultCoercion func(interface{}) (map[string]interface{}, error)

	LazyFields func() (map[string]*InputValueDefinition, error)

	lazy lazyState
}

func (t *InputObjectType) String() string {
	return t.Name
}

func (t *InputObjectType) IsInputType() bool {
	return true
}

func (t *InputObjectType) IsOutputType() bool {
	return false
}

func (t *InputObjectType) IsSubTypeOf(other Type) bool {
	return t.IsSameType(other)
}

func (t *InputObjectType) IsSameType(other Type) bool {
	return t == other
}

func (t *InputObjectType) TypeName() string {
	return t.Name
}

func (t *InputObjectType) Finalize() error {
	return t.lazy.force(t.Name, func() error {
		if t.LazyFields != nil {
			fields, err := t.LazyFields()
			if err != nil {
				return err
			}
			t.Fields = fields
		}
		return nil
	})
}

func (t *InputObjectType) IsFinalized() bool {
	return t.lazy.done
}

// CoerceResult converts a default value of this type to a map for serialization.
func (t *InputObjectType) CoerceResult(v interface{}) (map[string]interface{}, error) {
	if t.ResultCoercion != nil {
		return t.ResultCoercion(v)
	} else if m, ok := v.(map[string]interface{}); ok {
		return m, nil
	}
	return nil, fmt.Errorf("%v values must be maps unless a result coercion function is given", t.Name)
}

func (t *InputObjectType) shallowValidate() error {
	if len(t.Fields) == 0 {
		return fmt.Errorf("%v must have at least one field", t.Name)
	}
	for name, field := range t.Fields {
		if !isName(name) || strings.HasPrefix(name, "__") {
			return fmt.Errorf("illegal field name: %v", name)
		} else if field.Type == nil || !field.Type.IsInputType() {
			return fmt.Errorf("%v field must be an input type", name)
		}
	}
	return nil
}

func IsInputObjectType(t Type) bool {
	_, ok := t.(*InputObjectType)
	return ok
}
