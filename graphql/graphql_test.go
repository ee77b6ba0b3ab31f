package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchema(t *testing.T) {
	s, err := NewSchema(&SchemaDefinition{
		Query: &ObjectType{
			Name: "Query",
			Fields: map[string]*FieldDefinition{
				"ids": {
					Type: NewNonNullType(NewListType(IDType)),
					Cost: FieldResolverCost(1),
				},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "[ID]!", s.QueryType().Fields["ids"].Type.String())
	assert.Equal(t, 1, s.QueryType().Fields["ids"].Cost(FieldCostContext{}).Resolver)
}
