package schemafu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

func TestNative(t *testing.T) {
	legacy := &schema.ObjectType{
		Name: "Legacy",
		Fields: map[string]*schema.FieldDefinition{
			"code": {Type: schema.IntType},
		},
	}
	nativeUser := &schema.ObjectType{
		Name: "User",
		Fields: map[string]*schema.FieldDefinition{
			"nativeOnly": {Type: schema.StringType},
		},
	}
	nativeQuery := &schema.ObjectType{
		Name: "Query",
		Fields: map[string]*schema.FieldDefinition{
			"user": {
				Type: nativeUser,
				Resolve: func(schema.FieldContext) (interface{}, error) {
					return map[string]interface{}{"name": "alice"}, nil
				},
			},
			"legacy": {Type: schema.NewListType(legacy)},
		},
	}

	var resolved []string
	result := build(t, Config{
		Plugins: []*Plugin{{
			OnCreateFieldResolver: func(info CreateFieldResolverInfo) Middleware {
				return func(ctx schema.FieldContext, next ResolverFunc) (interface{}, error) {
					resolved = append(resolved, info.TypeName+"."+info.FieldName)
					return next(ctx)
				}
			},
		}},
		Types: []interface{}{
			nativeQuery,
			ObjectType(ObjectConfig{
				Name: "User",
				Definition: func(t *ObjectDefinitionBlock) {
					t.String("name")
				},
			}),
		},
	})
	assert.Empty(t, result.MissingTypes)

	query := result.Schema.QueryType()
	assert.NotSame(t, nativeQuery, query)
	assert.Equal(t, "[Legacy]", query.Fields["legacy"].Type.String())
	assert.NotSame(t, legacy, result.Schema.NamedType("Legacy"))
	assert.Equal(t, "Int", fieldType(t, result.Schema, "Legacy", "code"))

	user := result.Schema.NamedType("User").(*schema.ObjectType)
	assert.Same(t, user, query.Fields["user"].Type)
	assert.Contains(t, user.Fields, "name")
	assert.NotContains(t, user.Fields, "nativeOnly")

	obj, err := query.Fields["user"].Resolve(schema.FieldContext{})
	require.NoError(t, err)
	name, err := user.Fields["name"].Resolve(schema.FieldContext{Object: obj})
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
	assert.Equal(t, []string{"Query.user", "User.name"}, resolved)

	// the original is left alone
	assert.Same(t, nativeUser, nativeQuery.Fields["user"].Type)
}
