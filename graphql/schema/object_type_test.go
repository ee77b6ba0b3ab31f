package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSubTypeOf(t *testing.T) {
	node := &InterfaceType{
		Name: "Node",
		Fields: map[string]*FieldDefinition{
			"id": {Type: NewNonNullType(IDType)},
		},
	}
	content := &InterfaceType{
		Name:       "Content",
		Interfaces: []*InterfaceType{node},
		Fields: map[string]*FieldDefinition{
			"id":   {Type: NewNonNullType(IDType)},
			"body": {Type: StringType},
		},
	}
	post := &ObjectType{
		Name: "Post",
		Fields: map[string]*FieldDefinition{
			"id":   {Type: NewNonNullType(IDType)},
			"body": {Type: StringType},
		},
		ImplementedInterfaces: []*InterfaceType{node, content},
	}
	author := &ObjectType{
		Name: "Author",
		Fields: map[string]*FieldDefinition{
			"id": {Type: NewNonNullType(IDType)},
		},
	}
	union := &UnionType{
		Name:        "SearchResult",
		MemberTypes: []*ObjectType{post},
	}

	for name, tc := range map[string]struct {
		Type     Type
		Other    Type
		Expected bool
	}{
		"Self":               {post, post, true},
		"UnionMember":        {post, union, true},
		"NotUnionMember":     {author, union, false},
		"Interface":          {post, content, true},
		"InheritedInterface": {content, node, true},
		"NotInterface":       {node, content, false},
		"Scalar":             {post, IntType, false},
		"NonNullOfSubType":   {NewNonNullType(post), content, true},
		"NullableToNonNull":  {post, NewNonNullType(post), false},
		"ListOfSubType":      {NewListType(post), NewListType(node), true},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, tc.Type.IsSubTypeOf(tc.Other))
		})
	}
}
