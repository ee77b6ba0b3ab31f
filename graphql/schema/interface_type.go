package schema

import (
	"fmt"
	"strings"
)

type InterfaceType struct {
	Name        string
	Description string
	Directives  []*Directive
	Fields      map[string]*FieldDefinition

	// Interfaces may implement other interfaces.
	Interfaces []*InterfaceType

	// If given, this returns the name of the concrete object type for a resolved value.
	ResolveType func(interface{}) string

	Extensions map[string]interface{}

	LazyInterfaces func() ([]*InterfaceType, error)
	LazyFields     func() (map[string]*FieldDefinition, error)

	lazy lazyState
}

func (t *InterfaceType) String() string {
	return t.Name
}

func (t *InterfaceType) IsInputType() bool {
	return false
}

func (t *InterfaceType) IsOutputType() bool {
	return true
}

func (t *InterfaceType) IsSubTypeOf(other Type) bool {
	if t.IsSameType(other) {
		return true
	}
	for _, iface := range t.Interfaces {
		if iface.IsSameType(other) {
			return true
		}
	}
	return false
}

func (t *InterfaceType) IsSameType(other Type) bool {
	return t == other
}

func (t *InterfaceType) TypeName() string {
	return t.Name
}

func (t *InterfaceType) Finalize() error {
	return t.lazy.force(t.Name, func() error {
		if t.LazyInterfaces != nil {
			ifaces, err := t.LazyInterfaces()
			if err != nil {
				return err
			}
			t.Interfaces = ifaces
		}
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

func (t *InterfaceType) IsFinalized() bool {
	return t.lazy.done
}

func (t *InterfaceType) shallowValidate() error {
	if len(t.Fields) == 0 {
		return fmt.Errorf("%v must have at least one field", t.Name)
	}
	for name, field := range t.Fields {
		if !isName(name) || strings.HasPrefix(name, "__") {
			return fmt.Errorf("illegal field name: %v", name)
		} else if field.Type == nil || !field.Type.IsOutputType() {
			return fmt.Errorf("%v field must be an output type", name)
		}
	}
	for _, iface := range t.Interfaces {
		if iface == t {
			return fmt.Errorf("%v cannot implement itself", t.Name)
		}
	}
	return nil
}

func IsInterfaceType(t Type) bool {
	_, ok := t.(*InterfaceType)
	return ok
}
