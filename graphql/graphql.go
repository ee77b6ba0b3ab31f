// Package graphql re-exports the type system so that schema authors rarely need to import
// graphql/schema directly.
package graphql

import (
	"github.com/ccbrown/schema-fu/graphql/schema"
)

type Type = schema.Type
type NamedType = schema.NamedType
type ObjectType = schema.ObjectType
type InterfaceType = schema.InterfaceType
type EnumType = schema.EnumType
type EnumValueDefinition = schema.EnumValueDefinition
type ScalarType = schema.ScalarType
type UnionType = schema.UnionType
type InputObjectType = schema.InputObjectType
type NonNullType = schema.NonNullType
type ListType = schema.ListType

type FieldContext = schema.FieldContext
type FieldCost = schema.FieldCost
type FieldCostContext = schema.FieldCostContext
type InputValueDefinition = schema.InputValueDefinition
type FieldDefinition = schema.FieldDefinition
type DirectiveDefinition = schema.DirectiveDefinition

var IntType = schema.IntType
var FloatType = schema.FloatType
var StringType = schema.StringType
var BooleanType = schema.BooleanType
var IDType = schema.IDType

// Null is used to specify an explicit null default for input values.
var Null = schema.Null

func NewNonNullType(t Type) *NonNullType {
	return schema.NewNonNullType(t)
}

func NewListType(t Type) *ListType {
	return schema.NewListType(t)
}

// Returns a cost function which returns a constant resolver cost with no multiplier.
func FieldResolverCost(n int) func(FieldCostContext) FieldCost {
	return schema.FieldResolverCost(n)
}

type Schema = schema.Schema
type SchemaDefinition = schema.SchemaDefinition

func NewSchema(def *SchemaDefinition) (*Schema, error) {
	return schema.New(def)
}
