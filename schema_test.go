package schemafu

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

func searchTypes(resolveType func(interface{}) string, isTypeOf func(interface{}) bool) []interface{} {
	return []interface{}{
		UnionType(UnionConfig{
			Name:        "SearchResult",
			ResolveType: resolveType,
			Definition: func(t *UnionDefinitionBlock) {
				t.Members(Ref("Author"), Ref("Book"))
			},
		}),
		ObjectType(ObjectConfig{
			Name:     "Author",
			IsTypeOf: isTypeOf,
			Definition: func(t *ObjectDefinitionBlock) {
				t.String("name")
			},
		}),
		ObjectType(ObjectConfig{
			Name:     "Book",
			IsTypeOf: isTypeOf,
			Definition: func(t *ObjectDefinitionBlock) {
				t.String("title")
			},
		}),
		QueryType(ObjectConfig{
			Definition: func(t *ObjectDefinitionBlock) {
				t.List().Field("search", FieldConfig{Type: Ref("SearchResult")})
			},
		}),
	}
}

func TestMakeSchema_AbstractTypes(t *testing.T) {
	isTypeOf := func(interface{}) bool { return true }

	for name, tc := range map[string]struct {
		ResolveType func(interface{}) string
		IsTypeOf    func(interface{}) bool
		Features    *Features
		ShouldFail  bool
	}{
		"ResolveType": {
			ResolveType: TypenameResolveType,
		},
		"NoStrategy": {
			ShouldFail: true,
		},
		"IsTypeOfDisabled": {
			IsTypeOf:   isTypeOf,
			ShouldFail: true,
		},
		"IsTypeOf": {
			IsTypeOf: isTypeOf,
			Features: &Features{
				AbstractTypeStrategies: &AbstractTypeStrategies{IsTypeOf: true},
			},
		},
		"ResolveTypeDisabled": {
			ResolveType: TypenameResolveType,
			Features: &Features{
				AbstractTypeStrategies: &AbstractTypeStrategies{IsTypeOf: true},
			},
			ShouldFail: true,
		},
		"ChecksDisabled": {
			Features: &Features{
				AbstractTypeRuntimeChecks: Bool(false),
			},
		},
		"Typename": {
			Features: &Features{
				AbstractTypeStrategies: &AbstractTypeStrategies{Typename: true},
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			s, err := MakeSchema(Config{
				Types:    searchTypes(tc.ResolveType, tc.IsTypeOf),
				Features: tc.Features,
			})
			if tc.ShouldFail {
				var configErr *ConfigError
				require.True(t, errors.As(err, &configErr), "%v", err)
				assert.Equal(t, "SearchResult", configErr.Type)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, s.NamedType("SearchResult"))
			}
		})
	}
}

func TestMakeSchema_Typename(t *testing.T) {
	s, err := MakeSchema(Config{
		Types: searchTypes(nil, nil),
		Features: &Features{
			AbstractTypeStrategies: &AbstractTypeStrategies{Typename: true},
		},
	})
	require.NoError(t, err)

	ext := GetSchemaExtension(s)
	assert.False(t, ext.Config.Features.RuntimeChecks())

	type book struct {
		Typename string
		Title    string
	}
	for name, tc := range map[string]struct {
		Value    interface{}
		Expected string
	}{
		"Map":     {map[string]interface{}{"__typename": "Author"}, "Author"},
		"Struct":  {&book{Typename: "Book"}, "Book"},
		"Unknown": {"foo", ""},
	} {
		t.Run(name, func(t *testing.T) {
			resolveType := s.NamedType("SearchResult").(*schema.UnionType).ResolveType
			require.NotNil(t, resolveType)
			assert.Equal(t, tc.Expected, resolveType(tc.Value))
		})
	}
}

func TestAssertNoMissingTypes(t *testing.T) {
	result := build(t, Config{
		Types: []interface{}{
			QueryType(ObjectConfig{
				Definition: func(t *ObjectDefinitionBlock) {
					t.Field("a", FieldConfig{Type: Ref("Autor")})
					t.Field("b", FieldConfig{
						Type: Ref("Int"),
						Args: map[string]TypeRef{"where": Ref("Zzyzx")},
					})
				},
			}),
			ObjectType(ObjectConfig{
				Name: "Author",
				Definition: func(t *ObjectDefinitionBlock) {
					t.String("name")
				},
			}),
		},
	})

	err := AssertNoMissingTypes(result.Schema, result.MissingTypes)
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)

	autor := merr.Errors[0].(*MissingTypeError)
	assert.Equal(t, "Autor", autor.Name)
	assert.Equal(t, []string{"Author"}, autor.Suggestions)
	assert.Equal(t, "missing type Autor, did you forget to import a type to the root query? did you mean Author?", autor.Error())

	zzyzx := merr.Errors[1].(*MissingTypeError)
	assert.Equal(t, "Zzyzx", zzyzx.Name)
	assert.False(t, zzyzx.FromObject)
	assert.Empty(t, zzyzx.Suggestions)
	assert.Equal(t, "missing type Zzyzx", zzyzx.Error())

	assert.NoError(t, AssertNoMissingTypes(result.Schema, nil))
}
