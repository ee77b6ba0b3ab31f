package schema

import "fmt"

// TypeResolver looks up the named type that references to the given name should point to.
type TypeResolver func(name string) (NamedType, error)

// Rebind returns a shallow copy of t whose references to other named types are redirected through
// resolve. The references are resolved lazily, when the copy is finalized, so resolve may return
// types that don't exist yet at the time Rebind is called. Built-in scalars are never redirected.
//
// Enums and scalars don't reference other types and are returned as-is.
func Rebind(t NamedType, resolve TypeResolver) NamedType {
	switch t := t.(type) {
	case *ObjectType:
		copy := *t
		copy.lazy = lazyState{}
		copy.LazyInterfaces = func() ([]*InterfaceType, error) {
			if err := t.Finalize(); err != nil {
				return nil, err
			}
			return rebindInterfaces(t.ImplementedInterfaces, resolve)
		}
		copy.LazyFields = func() (map[string]*FieldDefinition, error) {
			if err := t.Finalize(); err != nil {
				return nil, err
			}
			return rebindFields(t.Fields, resolve)
		}
		return &copy
	case *InterfaceType:
		copy := *t
		copy.lazy = lazyState{}
		copy.LazyInterfaces = func() ([]*InterfaceType, error) {
			if err := t.Finalize(); err != nil {
				return nil, err
			}
			return rebindInterfaces(t.Interfaces, resolve)
		}
		copy.LazyFields = func() (map[string]*FieldDefinition, error) {
			if err := t.Finalize(); err != nil {
				return nil, err
			}
			return rebindFields(t.Fields, resolve)
		}
		return &copy
	case *UnionType:
		copy := *t
		copy.lazy = lazyState{}
		copy.LazyMemberTypes = func() ([]*ObjectType, error) {
			if err := t.Finalize(); err != nil {
				return nil, err
			}
			ret := make([]*ObjectType, len(t.MemberTypes))
			for i, member := range t.MemberTypes {
				resolved, err := resolve(member.Name)
				if err != nil {
					return nil, err
				}
				obj, ok := resolved.(*ObjectType)
				if !ok {
					return nil, fmt.Errorf("union member %v must be an object type", member.Name)
				}
				ret[i] = obj
			}
			return ret, nil
		}
		return &copy
	case *InputObjectType:
		copy := *t
		copy.lazy = lazyState{}
		copy.LazyFields = func() (map[string]*InputValueDefinition, error) {
			if err := t.Finalize(); err != nil {
				return nil, err
			}
			return rebindInputValues(t.Fields, resolve)
		}
		return &copy
	case *EnumType, *ScalarType:
		return t
	default:
		panic(fmt.Errorf("unknown named type type: %T", t))
	}
}

// RebindType rebuilds the wrapping of t around the named type resolve returns for its core.
func RebindType(t Type, resolve TypeResolver) (Type, error) {
	switch t := t.(type) {
	case *NonNullType:
		inner, err := RebindType(t.Unwrap(), resolve)
		if err != nil {
			return nil, err
		}
		return NewNonNullType(inner), nil
	case *ListType:
		inner, err := RebindType(t.Unwrap(), resolve)
		if err != nil {
			return nil, err
		}
		return NewListType(inner), nil
	case NamedType:
		if builtin, ok := BuiltInTypes[t.TypeName()]; ok && NamedType(builtin) == t {
			return t, nil
		}
		return resolve(t.TypeName())
	default:
		panic(fmt.Errorf("unknown type type: %T", t))
	}
}

func rebindInterfaces(ifaces []*InterfaceType, resolve TypeResolver) ([]*InterfaceType, error) {
	if ifaces == nil {
		return nil, nil
	}
	ret := make([]*InterfaceType, len(ifaces))
	for i, iface := range ifaces {
		resolved, err := resolve(iface.Name)
		if err != nil {
			return nil, err
		}
		newValue, ok := resolved.(*InterfaceType)
		if !ok {
			return nil, fmt.Errorf("%v must be an interface type", iface.Name)
		}
		ret[i] = newValue
	}
	return ret, nil
}

func rebindFields(fields map[string]*FieldDefinition, resolve TypeResolver) (map[string]*FieldDefinition, error) {
	ret := make(map[string]*FieldDefinition, len(fields))
	for name, field := range fields {
		newField := *field
		t, err := RebindType(field.Type, resolve)
		if err != nil {
			return nil, err
		}
		newField.Type = t
		if newField.Arguments, err = rebindInputValues(field.Arguments, resolve); err != nil {
			return nil, err
		}
		ret[name] = &newField
	}
	return ret, nil
}

func rebindInputValues(values map[string]*InputValueDefinition, resolve TypeResolver) (map[string]*InputValueDefinition, error) {
	if values == nil {
		return nil, nil
	}
	ret := make(map[string]*InputValueDefinition, len(values))
	for name, value := range values {
		newValue := *value
		t, err := RebindType(value.Type, resolve)
		if err != nil {
			return nil, err
		}
		newValue.Type = t
		ret[name] = &newValue
	}
	return ret, nil
}
