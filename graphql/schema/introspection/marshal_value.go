package introspection

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalValue renders an input value of the given type as a GraphQL literal, as used for default
// values.
func MarshalValue(t schema.Type, v interface{}) (string, error) {
	if v == schema.Null || v == nil {
		return "null", nil
	}

	switch t := t.(type) {
	case *schema.ScalarType:
		if t.ResultCoercion != nil {
			if coerced := t.ResultCoercion(v); coerced != nil {
				v = coerced
			}
		}
		b, err := json.Marshal(v)
		return string(b), err
	case *schema.ListType:
		v := reflect.ValueOf(v)
		if v.Kind() != reflect.Slice {
			return "", fmt.Errorf("default value is not a slice")
		}
		parts := make([]string, v.Len())
		for i := range parts {
			s, err := MarshalValue(t.Type, v.Index(i).Interface())
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case *schema.InputObjectType:
		kv, err := t.CoerceResult(v)
		if err != nil {
			return "", err
		}
		keys := make([]string, 0, len(kv))
		for k := range kv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(kv))
		for _, k := range keys {
			field, ok := t.Fields[k]
			if !ok {
				return "", fmt.Errorf("%v has no field named %v", t.Name, k)
			}
			s, err := MarshalValue(field.Type, kv[k])
			if err != nil {
				return "", err
			}
			parts = append(parts, k+": "+s)
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	case *schema.EnumType:
		return t.CoerceResult(v)
	case *schema.NonNullType:
		return MarshalValue(t.Type, v)
	default:
		return "", fmt.Errorf("unsupported value type: %T", t)
	}
}
