package schema

import "fmt"

type UnionType struct {
	Name        string
	Description string
	Directives  []*Directive
	MemberTypes []*ObjectType

	// If given, this returns the name of the concrete object type for a resolved value.
	ResolveType func(interface{}) string

	Extensions map[string]interface{}

	LazyMemberTypes func() ([]*ObjectType, error)

	lazy lazyState
}

func (d *UnionType) String() string {
	return d.Name
}

func (d *UnionType) IsInputType() bool {
	return false
}

func (d *UnionType) IsOutputType() bool {
	return true
}

func (d *UnionType) IsSubTypeOf(other Type) bool {
	return d.IsSameType(other)
}

func (d *UnionType) IsSameType(other Type) bool {
	return d == other
}

func (d *UnionType) TypeName() string {
	return d.Name
}

func (d *UnionType) Finalize() error {
	return d.lazy.force(d.Name, func() error {
		if d.LazyMemberTypes != nil {
			members, err := d.LazyMemberTypes()
			if err != nil {
				return err
			}
			d.MemberTypes = members
		}
		return nil
	})
}

func (d *UnionType) IsFinalized() bool {
	return d.lazy.done
}

func (d *UnionType) shallowValidate() error {
	if len(d.MemberTypes) == 0 {
		return fmt.Errorf("%v must have at least one member type", d.Name)
	}
	objNames := map[string]struct{}{}
	for _, member := range d.MemberTypes {
		if _, ok := objNames[member.Name]; ok {
			return fmt.Errorf("union member types must be unique")
		}
		objNames[member.Name] = struct{}{}
	}
	return nil
}

func IsUnionType(t Type) bool {
	_, ok := t.(*UnionType)
	return ok
}
