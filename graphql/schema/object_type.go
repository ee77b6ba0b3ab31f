package schema

import (
	"fmt"
	"strings"
)

type ObjectType struct {
	Name                  string
	Description           string
	ImplementedInterfaces []*InterfaceType
	Directives            []*Directive
	Fields                map[string]*FieldDefinition

	// If given, this is used to determine whether a value belongs to this type when it's resolved
	// through an interface or union.
	IsTypeOf func(interface{}) bool

	// Arbitrary metadata. This isn't exposed via introspection.
	Extensions map[string]interface{}

	// If given, these are invoked by Finalize to populate ImplementedInterfaces and Fields. This
	// allows types to reference each other before either is fully constructed.
	LazyInterfaces func() ([]*InterfaceType, error)
	LazyFields     func() (map[string]*FieldDefinition, error)

	lazy lazyState
}

func (d *ObjectType) String() string {
	return d.Name
}

func (d *ObjectType) IsInputType() bool {
	return false
}

func (d *ObjectType) IsOutputType() bool {
	return true
}

func (d *ObjectType) IsSubTypeOf(other Type) bool {
	if d.IsSameType(other) {
		return true
	} else if union, ok := other.(*UnionType); ok {
		for _, member := range union.MemberTypes {
			if d.IsSameType(member) {
				return true
			}
		}
	} else {
		for _, iface := range d.ImplementedInterfaces {
			if iface.IsSameType(other) {
				return true
			}
		}
	}
	return false
}

func (d *ObjectType) IsSameType(other Type) bool {
	return d == other
}

func (d *ObjectType) TypeName() string {
	return d.Name
}

func (d *ObjectType) Finalize() error {
	return d.lazy.force(d.Name, func() error {
		if d.LazyInterfaces != nil {
			ifaces, err := d.LazyInterfaces()
			if err != nil {
				return err
			}
			d.ImplementedInterfaces = ifaces
		}
		if d.LazyFields != nil {
			fields, err := d.LazyFields()
			if err != nil {
				return err
			}
			d.Fields = fields
		}
		return nil
	})
}

func (d *ObjectType) IsFinalized() bool {
	return d.lazy.done
}

func (d *ObjectType) SatisfyInterface(iface *InterfaceType) error {
	for name, ifaceField := range iface.Fields {
		field, ok := d.Fields[name]
		if !ok {
			return fmt.Errorf("object is missing field named %v", name)
		} else if !field.Type.IsSubTypeOf(ifaceField.Type) {
			return fmt.Errorf("object's %v field is not a subtype of the corresponding interface field", name)
		}
		for argName, ifaceArg := range ifaceField.Arguments {
			arg, ok := field.Arguments[argName]
			if !ok {
				return fmt.Errorf("object's %v field is missing argument named %v", name, argName)
			} else if !arg.Type.IsSameType(ifaceArg.Type) {
				return fmt.Errorf("object's %v field %v argument is not the same type as the corresponding interface argument", name, argName)
			}
		}
		for argName, arg := range field.Arguments {
			if _, ok := ifaceField.Arguments[argName]; !ok && IsNonNullType(arg.Type) {
				return fmt.Errorf("object's %v field %v argument cannot be non-null", name, argName)
			}
		}
	}
	return nil
}

func (d *ObjectType) shallowValidate() error {
	if len(d.Fields) == 0 {
		return fmt.Errorf("%v must have at least one field", d.Name)
	}
	for name, field := range d.Fields {
		if !isName(name) || strings.HasPrefix(name, "__") {
			return fmt.Errorf("illegal field name: %v", name)
		} else if field.Type == nil || !field.Type.IsOutputType() {
			return fmt.Errorf("%v field must be an output type", name)
		}
	}
	for _, iface := range d.ImplementedInterfaces {
		if err := iface.Finalize(); err != nil {
			return err
		} else if err := d.SatisfyInterface(iface); err != nil {
			return fmt.Errorf("%v does not satisfy %v: %w", d.Name, iface.Name, err)
		}
	}
	return nil
}

func IsObjectType(t Type) bool {
	_, ok := t.(*ObjectType)
	return ok
}
