package schemafu

import (
	"github.com/ccbrown/schema-fu/graphql/schema"
)

type ScalarConfig struct {
	Name        string
	Description string

	// If given, definition blocks can declare fields of this type with t.Dynamic(AsMethod, name).
	AsMethod string

	// Converts input values. Should return nil if coercion is impossible. If nil, values are
	// passed through.
	ParseValue func(interface{}) interface{}

	// Converts resolved values for output. Should return nil if coercion is impossible. If nil,
	// values are passed through.
	Serialize func(interface{}) interface{}

	SourceType string
	Extensions map[string]interface{}
}

type ScalarTypeDef struct {
	config ScalarConfig
}

func ScalarType(cfg ScalarConfig) *ScalarTypeDef {
	return &ScalarTypeDef{config: cfg}
}

func (d *ScalarTypeDef) Kind() Kind           { return KindScalar }
func (d *ScalarTypeDef) Name() string         { return d.config.Name }
func (d *ScalarTypeDef) Config() ScalarConfig { return d.config }

func identity(v interface{}) interface{} {
	return v
}

func (b *Builder) buildScalarType(def *ScalarTypeDef) *schema.ScalarType {
	cfg := def.config
	ret := &schema.ScalarType{
		Name:                  cfg.Name,
		Description:           cfg.Description,
		Extensions:            cfg.Extensions,
		VariableValueCoercion: cfg.ParseValue,
		ResultCoercion:        cfg.Serialize,
	}
	if ret.VariableValueCoercion == nil {
		ret.VariableValueCoercion = identity
	}
	if ret.ResultCoercion == nil {
		ret.ResultCoercion = identity
	}
	b.addSourceType(cfg.Name, cfg.SourceType)
	return ret
}

// UnknownTypeName is the name of the scalar that stands in for missing types.
const UnknownTypeName = "SCHEMAFU__UNKNOWN__TYPE"

// UnknownTypeScalar is used in place of types that are referenced but never defined. See
// Result.MissingTypes.
var UnknownTypeScalar = &schema.ScalarType{
	Name:                  UnknownTypeName,
	Description:           "This scalar should never make it into production. It is used as a placeholder for situations where GraphQL type definitions are missing.",
	VariableValueCoercion: identity,
	ResultCoercion:        identity,
}
