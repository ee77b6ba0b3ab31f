package schemafu

import (
	"reflect"
	"unicode"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

// FieldConfig configures an output field.
type FieldConfig struct {
	Type TypeRef

	// Argument types may be *ArgDef values or plain type references.
	Args map[string]TypeRef

	Description string
	Deprecation string

	// If nil, the field resolves to the same-named map key or struct field of the parent value.
	Resolve ResolverFunc

	// For subscription fields, this produces the event stream.
	Subscribe ResolverFunc

	// If given, this is consulted before the resolver is invoked. It's enforced by
	// FieldAuthorizePlugin.
	Authorize func(schema.FieldContext) (bool, error)

	Cost func(schema.FieldCostContext) schema.FieldCost

	Extensions map[string]interface{}
}

// OutputField is a field as declared in a definition block.
type OutputField struct {
	Name       string
	ParentType string
	FieldConfig

	// The wrapping applied by the block's chain methods, innermost first.
	Wrapping []WrapKind
}

// InputFieldConfig configures an input object field.
type InputFieldConfig struct {
	Type        TypeRef
	Default     interface{}
	Description string
	Deprecation string
	Extensions  map[string]interface{}
}

type InputField struct {
	Name       string
	ParentType string
	InputFieldConfig
	Wrapping []WrapKind
}

// FieldModification changes a field inherited from an interface. Zero values leave the inherited
// field's properties unchanged.
type FieldModification struct {
	// If the type isn't wrapped, the interface field's wrapping is kept.
	Type TypeRef

	// These are added to the interface field's arguments. They can't replace them.
	Args map[string]TypeRef

	Description string
	Deprecation string
	Resolve     ResolverFunc
	Extensions  map[string]interface{}
}

// DefaultFieldResolver resolves to the value of the parent's map key or struct field with the
// given name. Struct fields may also be named with the first letter capitalized.
func DefaultFieldResolver(name string) ResolverFunc {
	return func(ctx schema.FieldContext) (interface{}, error) {
		return fieldValue(ctx.Object, name), nil
	}
}

func fieldValue(object interface{}, name string) interface{} {
	if object == nil {
		return nil
	} else if m, ok := object.(map[string]interface{}); ok {
		return m[name]
	}

	v := reflect.ValueOf(object)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		key := reflect.ValueOf(name)
		if !key.Type().ConvertibleTo(v.Type().Key()) {
			return nil
		}
		if value := v.MapIndex(key.Convert(v.Type().Key())); value.IsValid() {
			return value.Interface()
		}
	case reflect.Struct:
		for _, name := range []string{name, capitalize(name)} {
			if field := v.FieldByName(name); field.IsValid() && field.CanInterface() {
				return field.Interface()
			}
		}
	}
	return nil
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

// NonEmptyString returns a nullable string field that resolves to nil if the parent's field of
// the given name is empty.
func NonEmptyString(fieldName string) FieldConfig {
	return FieldConfig{
		Type: Nullable(Ref("String")),
		Cost: schema.FieldResolverCost(0),
		Resolve: func(ctx schema.FieldContext) (interface{}, error) {
			if s, _ := fieldValue(ctx.Object, fieldName).(string); s != "" {
				return s, nil
			}
			return nil, nil
		},
	}
}
