package plugins

import (
	"github.com/pkg/errors"

	schemafu "github.com/ccbrown/schema-fu"
)

// Extension keys read by DeclarativeWrapping. Their values must be booleans.
const (
	ListExtension     = "list"
	RequiredExtension = "required"
	NullableExtension = "nullable"
)

// DeclarativeWrapping lets fields and arguments declare their wrapping via their Extensions
// instead of wrapping their types. For example, a field with Extensions{"required": true} is
// non-null. List is applied first, so "list" and "required" together produce a non-null list.
func DeclarativeWrapping() *schemafu.Plugin {
	return &schemafu.Plugin{
		Name: "DeclarativeWrapping",
		OnAddOutputField: func(f *schemafu.OutputField) (*schemafu.OutputField, error) {
			t, changed, err := declaredWrapping(f.Type, f.Extensions)
			if err != nil || !changed {
				return nil, errors.Wrapf(err, "%v.%v", f.ParentType, f.Name)
			}
			ret := *f
			ret.Type = t
			return &ret, nil
		},
		OnAddInputField: func(f *schemafu.InputField) (*schemafu.InputField, error) {
			t, changed, err := declaredWrapping(f.Type, f.Extensions)
			if err != nil || !changed {
				return nil, errors.Wrapf(err, "%v.%v", f.ParentType, f.Name)
			}
			ret := *f
			ret.Type = t
			return &ret, nil
		},
		OnAddArg: func(arg *schemafu.FinalArgConfig) (*schemafu.FinalArgConfig, error) {
			t, changed, err := declaredWrapping(arg.Type, arg.Extensions)
			if err != nil || !changed {
				return nil, errors.Wrapf(err, "%v.%v(%v)", arg.ParentType, arg.FieldName, arg.ArgName)
			}
			ret := *arg
			ret.Type = t
			return &ret, nil
		},
	}
}

func declaredWrapping(t schemafu.TypeRef, extensions map[string]interface{}) (schemafu.TypeRef, bool, error) {
	list, err := boolExtension(extensions, ListExtension)
	if err != nil {
		return nil, false, err
	}
	required, err := boolExtension(extensions, RequiredExtension)
	if err != nil {
		return nil, false, err
	}
	nullable, err := boolExtension(extensions, NullableExtension)
	if err != nil {
		return nil, false, err
	}
	if required && nullable {
		return nil, false, errors.New("the required and nullable extensions are mutually exclusive")
	}
	if !list && !required && !nullable {
		return t, false, nil
	}
	if list {
		t = schemafu.List(t)
	}
	if required {
		t = schemafu.NonNull(t)
	} else if nullable {
		t = schemafu.Nullable(t)
	}
	return t, true, nil
}

func boolExtension(extensions map[string]interface{}, key string) (bool, error) {
	v, ok := extensions[key]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.Errorf("the %v extension must be a boolean, got %T", key, v)
	}
	return b, nil
}
