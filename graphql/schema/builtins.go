package schema

import (
	"math"
	"strconv"
)

func coerceInt(v interface{}) interface{} {
	switch v := v.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case int8:
		return int(v)
	case uint8:
		return int(v)
	case int16:
		return int(v)
	case uint16:
		return int(v)
	case int32:
		return int(v)
	case uint32:
		if v <= math.MaxInt32 {
			return int(v)
		}
	case int64:
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return int(v)
		}
	case uint64:
		if v <= math.MaxInt32 {
			return int(v)
		}
	case int:
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return v
		}
	case uint:
		if v <= math.MaxInt32 {
			return int(v)
		}
	case float32:
		if v >= math.MinInt32 && v <= math.MaxInt32 && float32(int(v)) == v {
			return int(v)
		}
	case float64:
		if v >= math.MinInt32 && v <= math.MaxInt32 && float64(int(v)) == v {
			return int(v)
		}
	}
	return nil
}

func coerceFloat(v interface{}) interface{} {
	switch v := v.(type) {
	case bool:
		if v {
			return 1.0
		}
		return 0.0
	case int8:
		return float64(v)
	case uint8:
		return float64(v)
	case int16:
		return float64(v)
	case uint16:
		return float64(v)
	case int32:
		return float64(v)
	case uint32:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case int:
		return float64(v)
	case uint:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return nil
}

func coerceString(v interface{}) interface{} {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return nil
}

func coerceBoolean(v interface{}) interface{} {
	if b, ok := v.(bool); ok {
		return b
	}
	return nil
}

var IntType = &ScalarType{
	Name:        "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values. Int can represent values between -(2^31) and 2^31 - 1.",
	VariableValueCoercion: func(v interface{}) interface{} {
		if f, ok := v.(float64); ok {
			return coerceInt(f)
		}
		return coerceInt(v)
	},
	ResultCoercion: coerceInt,
}

var FloatType = &ScalarType{
	Name:                  "Float",
	Description:           "The `Float` scalar type represents signed double-precision fractional values as specified by [IEEE 754](https://en.wikipedia.org/wiki/IEEE_floating_point).",
	VariableValueCoercion: coerceFloat,
	ResultCoercion:        coerceFloat,
}

var StringType = &ScalarType{
	Name:                  "String",
	Description:           "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
	VariableValueCoercion: coerceString,
	ResultCoercion:        coerceString,
}

var BooleanType = &ScalarType{
	Name:                  "Boolean",
	Description:           "The `Boolean` scalar type represents `true` or `false`.",
	VariableValueCoercion: coerceBoolean,
	ResultCoercion:        coerceBoolean,
}

var IDType = &ScalarType{
	Name:        "ID",
	Description: "The `ID` scalar type represents a unique identifier.",
	VariableValueCoercion: func(v interface{}) interface{} {
		switch v := v.(type) {
		case string:
			return v
		case float64:
			return coerceInt(v)
		case int:
			return v
		}
		return nil
	},
	ResultCoercion: func(v interface{}) interface{} {
		switch v := v.(type) {
		case string:
			return v
		case int8, uint8, int16, uint16, int32, uint32, int64, int:
			return strconv.FormatInt(toInt64(v), 10)
		case uint64:
			return strconv.FormatUint(v, 10)
		case uint:
			return strconv.FormatUint(uint64(v), 10)
		}
		return nil
	},
}

func toInt64(v interface{}) int64 {
	switch v := v.(type) {
	case int8:
		return int64(v)
	case uint8:
		return int64(v)
	case int16:
		return int64(v)
	case uint16:
		return int64(v)
	case int32:
		return int64(v)
	case uint32:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

// BuiltInTypes contains the scalars that every schema may reference without defining them.
var BuiltInTypes = map[string]*ScalarType{
	"Int":     IntType,
	"Float":   FloatType,
	"String":  StringType,
	"Boolean": BooleanType,
	"ID":      IDType,
}
