package introspection_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/schema-fu/graphql/schema"
	"github.com/ccbrown/schema-fu/graphql/schema/introspection"
)

func testSchema(t *testing.T, extraField bool) *schema.Schema {
	node := &schema.InterfaceType{
		Name: "Node",
		Fields: map[string]*schema.FieldDefinition{
			"id": {Type: schema.NewNonNullType(schema.IDType)},
		},
	}
	status := &schema.EnumType{
		Name: "Status",
		Values: map[string]*schema.EnumValueDefinition{
			"DRAFT":     {},
			"PUBLISHED": {DeprecationReason: "use DRAFT"},
		},
	}
	post := &schema.ObjectType{
		Name:                  "Post",
		Description:           "A blog post.",
		ImplementedInterfaces: []*schema.InterfaceType{node},
		Fields: map[string]*schema.FieldDefinition{
			"id":     {Type: schema.NewNonNullType(schema.IDType)},
			"status": {Type: status},
			"tags":   {Type: schema.NewListType(schema.NewNonNullType(schema.StringType))},
		},
	}
	if extraField {
		post.Fields["title"] = &schema.FieldDefinition{Type: schema.StringType}
	}
	filter := &schema.InputObjectType{
		Name: "PostFilter",
		Fields: map[string]*schema.InputValueDefinition{
			"status": {Type: status},
		},
	}
	s, err := schema.New(&schema.SchemaDefinition{
		Query: &schema.ObjectType{
			Name: "Query",
			Fields: map[string]*schema.FieldDefinition{
				"node": {
					Type: node,
					Arguments: map[string]*schema.InputValueDefinition{
						"id": {Type: schema.NewNonNullType(schema.IDType)},
					},
				},
				"posts": {
					Type: schema.NewListType(&schema.UnionType{
						Name:        "SearchResult",
						MemberTypes: []*schema.ObjectType{post},
					}),
					Arguments: map[string]*schema.InputValueDefinition{
						"filter": {Type: filter},
					},
				},
			},
		},
	})
	require.NoError(t, err)
	return s
}

func TestSchemaData(t *testing.T) {
	original := testSchema(t, false)

	b, err := introspection.Marshal(original)
	require.NoError(t, err)

	var result struct {
		Schema introspection.SchemaData `json:"__schema"`
	}
	require.NoError(t, jsoniter.Unmarshal(b, &result))
	assert.Equal(t, "Query", result.Schema.QueryType.Name)
	assert.Nil(t, result.Schema.MutationType)

	def, err := result.Schema.GetSchemaDefinition()
	require.NoError(t, err)

	roundTripped, err := schema.New(def)
	require.NoError(t, err)

	expected, err := introspection.NewSchemaData(original)
	require.NoError(t, err)
	actual, err := introspection.NewSchemaData(roundTripped)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestFingerprint(t *testing.T) {
	a, err := introspection.Fingerprint(testSchema(t, false))
	require.NoError(t, err)
	b, err := introspection.Fingerprint(testSchema(t, false))
	require.NoError(t, err)
	c, err := introspection.Fingerprint(testSchema(t, true))
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
