package schemafu

import (
	"time"
)

func parseDateTime(v interface{}) interface{} {
	switch v := v.(type) {
	case []byte:
		t := time.Time{}
		if err := t.UnmarshalText(v); err == nil {
			return t
		}
		return nil
	case string:
		return parseDateTime([]byte(v))
	case time.Time:
		return v
	}
	return nil
}

func serializeDateTime(v interface{}) interface{} {
	switch v := v.(type) {
	case time.Time:
		if b, err := v.MarshalText(); err == nil {
			return string(b)
		}
	case *time.Time:
		if v != nil {
			return serializeDateTime(*v)
		}
	}
	return nil
}

// DateTime represents an RFC-3339 datetime. Definition blocks can declare fields of this type with
// t.Dynamic("dateTime", name).
var DateTime = ScalarType(ScalarConfig{
	Name:        "DateTime",
	Description: "DateTime represents an RFC-3339 datetime.",
	AsMethod:    "dateTime",
	ParseValue:  parseDateTime,
	Serialize:   serializeDateTime,
	SourceType:  "time.Time",
})
