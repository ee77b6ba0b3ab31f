package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonNullType_IsSubTypeOf(t *testing.T) {
	iface := &InterfaceType{}
	obj := &ObjectType{
		ImplementedInterfaces: []*InterfaceType{iface},
	}
	assert.True(t, NewNonNullType(obj).IsSubTypeOf(NewNonNullType(iface)))
	assert.True(t, NewNonNullType(obj).IsSubTypeOf(iface))
	assert.False(t, obj.IsSubTypeOf(NewNonNullType(iface)))
}

func TestListType_IsSubTypeOf(t *testing.T) {
	iface := &InterfaceType{}
	obj := &ObjectType{
		ImplementedInterfaces: []*InterfaceType{iface},
	}
	assert.True(t, NewListType(obj).IsSubTypeOf(NewListType(iface)))
	assert.False(t, NewListType(obj).IsSubTypeOf(iface))
	assert.Equal(t, "[Foo!]!", NewNonNullType(NewListType(NewNonNullType(&ObjectType{Name: "Foo"}))).String())
}
