package schemafu

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/schema-fu/graphql/schema"
	"github.com/ccbrown/schema-fu/graphql/schema/introspection"
)

func build(t *testing.T, cfg Config) *Result {
	t.Helper()
	result, err := NewBuilder(cfg).Build()
	require.NoError(t, err)
	return result
}

func fieldType(t *testing.T, s *schema.Schema, typeName, fieldName string) string {
	t.Helper()
	var fields map[string]*schema.FieldDefinition
	switch named := s.NamedType(typeName).(type) {
	case *schema.ObjectType:
		fields = named.Fields
	case *schema.InterfaceType:
		fields = named.Fields
	default:
		t.Fatalf("%v is not an object or interface", typeName)
	}
	require.Contains(t, fields, fieldName)
	return fields[fieldName].Type.String()
}

func blogTypes() []Def {
	node := InterfaceType(InterfaceConfig{
		Name: "Node",
		Definition: func(t *InterfaceDefinitionBlock) {
			t.NonNull().ID("id")
		},
		ResolveType: TypenameResolveType,
	})
	user := ObjectType(ObjectConfig{
		Name: "User",
		Definition: func(t *ObjectDefinitionBlock) {
			t.Implements(Ref("Node"))
			t.String("name")
			t.List().NonNull().Field("posts", FieldConfig{Type: Ref("Post")})
		},
	})
	post := ObjectType(ObjectConfig{
		Name: "Post",
		Definition: func(t *ObjectDefinitionBlock) {
			t.Implements(node)
			t.String("title")
			t.Field("author", FieldConfig{Type: user})
		},
	})
	query := QueryType(ObjectConfig{
		Definition: func(t *ObjectDefinitionBlock) {
			t.Field("user", FieldConfig{
				Type: Ref("User"),
				Args: map[string]TypeRef{"id": NonNull(IDArg())},
			})
			t.Field("node", FieldConfig{Type: node})
		},
	})
	return []Def{node, user, post, query}
}

func permutations(defs []Def) [][]Def {
	if len(defs) <= 1 {
		return [][]Def{defs}
	}
	var ret [][]Def
	for i := range defs {
		rest := make([]Def, 0, len(defs)-1)
		rest = append(rest, defs[:i]...)
		rest = append(rest, defs[i+1:]...)
		for _, p := range permutations(rest) {
			ret = append(ret, append([]Def{defs[i]}, p...))
		}
	}
	return ret
}

func TestBuilder_OrderIndependence(t *testing.T) {
	var expected []byte
	for _, defs := range permutations(blogTypes()) {
		result := build(t, Config{Types: []interface{}{defs}})
		assert.Empty(t, result.MissingTypes)
		actual, err := introspection.Marshal(result.Schema)
		require.NoError(t, err)
		if expected == nil {
			expected = actual
		} else {
			assert.Equal(t, string(expected), string(actual))
		}
	}

	result := build(t, Config{Types: []interface{}{blogTypes()}})
	assert.Equal(t, "[Post!]", fieldType(t, result.Schema, "User", "posts"))
	assert.Equal(t, "ID!", fieldType(t, result.Schema, "User", "id"))
	assert.Equal(t, "ID!", result.Schema.QueryType().Fields["user"].Arguments["id"].Type.String())
}

func TestBuilder_AddType(t *testing.T) {
	user := ObjectType(ObjectConfig{
		Name: "User",
		Definition: func(t *ObjectDefinitionBlock) {
			t.ID("id")
		},
	})

	b := NewBuilder(Config{})
	require.NoError(t, b.AddType(user))
	require.NoError(t, b.AddType(user))
	assert.True(t, b.HasType("User"))
	assert.False(t, b.HasType("Post"))

	err := b.AddType(ObjectType(ObjectConfig{Name: "User"}))
	var duplicate *DuplicateTypeError
	require.True(t, errors.As(err, &duplicate))
	assert.Equal(t, "User", duplicate.Name)

	err = b.AddType(EnumType(EnumConfig{Name: "User", Members: []string{"A"}}))
	require.True(t, errors.As(err, &duplicate))
	assert.Equal(t, KindObject, duplicate.Existing)
	assert.Equal(t, KindEnum, duplicate.New)

	err = b.AddType(ScalarType(ScalarConfig{Name: "String"}))
	require.True(t, errors.As(err, &duplicate))

	// introspection types are ignored
	require.NoError(t, b.AddType(ObjectType(ObjectConfig{Name: "__Type"})))
	assert.False(t, b.HasType("__Type"))
}

func TestBuilder_DuplicateReference(t *testing.T) {
	_, err := NewBuilder(Config{
		Types: []interface{}{
			QueryType(ObjectConfig{
				Definition: func(t *ObjectDefinitionBlock) {
					t.Field("a", FieldConfig{Type: ObjectType(ObjectConfig{Name: "Thing"})})
					t.Field("b", FieldConfig{Type: ObjectType(ObjectConfig{Name: "Thing"})})
				},
			}),
		},
	}).Build()
	var duplicate *DuplicateTypeError
	assert.True(t, errors.As(err, &duplicate))
}

func TestBuilder_InterfaceInheritance(t *testing.T) {
	result := build(t, Config{
		Types: []interface{}{
			InterfaceType(InterfaceConfig{
				Name:        "Named",
				ResolveType: TypenameResolveType,
				Definition: func(t *InterfaceDefinitionBlock) {
					t.String("name", FieldConfig{Description: "inherited"})
					t.NonNull().String("handle", FieldConfig{Description: "inherited"})
				},
			}),
			InterfaceType(InterfaceConfig{
				Name:        "Entity",
				ResolveType: TypenameResolveType,
				Definition: func(t *InterfaceDefinitionBlock) {
					t.Implements(Ref("Named"))
					t.ID("id")
				},
			}),
			QueryType(ObjectConfig{
				Definition: func(t *ObjectDefinitionBlock) {
					t.Implements(Ref("Entity"))
					t.String("name", FieldConfig{Description: "own"})
				},
			}),
		},
	})

	query := result.Schema.QueryType()
	assert.Equal(t, "own", query.Fields["name"].Description)
	assert.Equal(t, "inherited", query.Fields["handle"].Description)
	assert.Equal(t, "String!", query.Fields["handle"].Type.String())
	assert.Contains(t, query.Fields, "id")

	var names []string
	for _, iface := range query.ImplementedInterfaces {
		names = append(names, iface.Name)
	}
	assert.Equal(t, []string{"Entity", "Named"}, names)
}

func TestBuilder_Modify(t *testing.T) {
	result := build(t, Config{
		Types: []interface{}{
			InterfaceType(InterfaceConfig{
				Name:        "Node",
				ResolveType: TypenameResolveType,
				Definition: func(t *InterfaceDefinitionBlock) {
					t.NonNull().ID("id")
					t.NonNull().Field("parent", FieldConfig{
						Type: Ref("Node"),
						Args: map[string]TypeRef{"depth": IntArg()},
					})
				},
			}),
			ObjectType(ObjectConfig{
				Name: "Folder",
				Definition: func(t *ObjectDefinitionBlock) {
					t.Implements(Ref("Node"))
					t.Modify("parent", FieldModification{
						Type:        Ref("Folder"),
						Args:        map[string]TypeRef{"extra": BooleanArg(), "depth": StringArg()},
						Description: "The containing folder.",
					})
					t.Modify("nonexistent", FieldModification{Description: "ignored"})
				},
			}),
			QueryType(ObjectConfig{
				Definition: func(t *ObjectDefinitionBlock) {
					t.Field("root", FieldConfig{Type: Ref("Folder")})
				},
			}),
		},
	})

	parent := result.Schema.NamedType("Folder").(*schema.ObjectType).Fields["parent"]
	assert.Equal(t, "Folder!", parent.Type.String())
	assert.Equal(t, "The containing folder.", parent.Description)
	require.Len(t, parent.Arguments, 2)
	assert.Equal(t, "Int", parent.Arguments["depth"].Type.String())
	assert.Equal(t, "Boolean", parent.Arguments["extra"].Type.String())
	assert.NotContains(t, result.Schema.NamedType("Folder").(*schema.ObjectType).Fields, "nonexistent")
}

func TestBuilder_ModifyWrapping(t *testing.T) {
	nullable := false
	node := InterfaceType(InterfaceConfig{
		Name:            "Node",
		ResolveType:     TypenameResolveType,
		NonNullDefaults: &TypeNonNullDefaults{Output: &nullable},
		Definition: func(t *InterfaceDefinitionBlock) {
			t.ID("id")
			t.List().Field("children", FieldConfig{Type: Ref("Node")})
		},
	})
	for name, tc := range map[string]struct {
		Type     TypeRef
		Expected string
	}{
		"Unwrapped":     {Ref("Folder"), "[Folder]"},
		"List":          {List(Ref("Folder")), "[Folder]"},
		"NonNullList":   {NonNull(List(Ref("Folder"))), "[Folder]!"},
		"NullableList":  {List(Nullable(Ref("Folder"))), "[Folder]"},
		"NonNullMember": {List(NonNull(Ref("Folder"))), "[Folder!]"},
	} {
		t.Run(name, func(t *testing.T) {
			result := build(t, Config{
				NonNullDefaults: NonNullConfig{Output: true},
				Types: []interface{}{
					node,
					ObjectType(ObjectConfig{
						Name: "Folder",
						Definition: func(t *ObjectDefinitionBlock) {
							t.Implements(Ref("Node"))
							t.Modify("children", FieldModification{Type: tc.Type})
						},
					}),
					QueryType(ObjectConfig{
						Definition: func(t *ObjectDefinitionBlock) {
							t.Field("root", FieldConfig{Type: Ref("Folder")})
						},
					}),
				},
			})
			assert.Equal(t, tc.Expected, fieldType(t, result.Schema, "Folder", "children"))
		})
	}
}

func TestBuilder_InterfaceCycles(t *testing.T) {
	t.Run("Cycle", func(t *testing.T) {
		definitions := 0
		_, err := NewBuilder(Config{
			Plugins: []*Plugin{{
				OnObjectDefinition: func(*ObjectDefinitionBlock) error {
					definitions++
					return nil
				},
			}},
			Types: []interface{}{
				InterfaceType(InterfaceConfig{
					Name: "A",
					Definition: func(t *InterfaceDefinitionBlock) {
						t.Implements(Ref("B"))
						t.String("a")
					},
				}),
				InterfaceType(InterfaceConfig{
					Name: "B",
					Definition: func(t *InterfaceDefinitionBlock) {
						t.Implements(Ref("A"))
						t.String("b")
					},
				}),
			},
		}).Build()
		var cycle *InterfaceCycleError
		require.True(t, errors.As(err, &cycle))
		assert.Equal(t, []string{"A", "B", "A"}, cycle.Path)
		assert.Equal(t, 0, definitions)
	})

	t.Run("SelfImplementation", func(t *testing.T) {
		_, err := NewBuilder(Config{
			Types: []interface{}{
				InterfaceType(InterfaceConfig{
					Name: "A",
					Definition: func(t *InterfaceDefinitionBlock) {
						t.Implements(Ref("A"))
						t.String("a")
					},
				}),
			},
		}).Build()
		var self *SelfImplementationError
		require.True(t, errors.As(err, &self))
		assert.Equal(t, "A", self.Interface)
		var cycle *InterfaceCycleError
		assert.False(t, errors.As(err, &cycle))
	})

	t.Run("Diamond", func(t *testing.T) {
		iface := func(name string, implements ...TypeRef) *InterfaceTypeDef {
			return InterfaceType(InterfaceConfig{
				Name:        name,
				ResolveType: TypenameResolveType,
				Definition: func(t *InterfaceDefinitionBlock) {
					t.Implements(implements...)
					t.String("name")
				},
			})
		}
		build(t, Config{
			Types: []interface{}{
				iface("A", Ref("B"), Ref("C")),
				iface("B", Ref("D")),
				iface("C", Ref("D")),
				iface("D"),
				QueryType(ObjectConfig{
					Definition: func(t *ObjectDefinitionBlock) {
						t.Implements(Ref("A"))
					},
				}),
			},
		})
	})
}

func TestBuilder_Wrapping(t *testing.T) {
	query := QueryType(ObjectConfig{
		Definition: func(t *ObjectDefinitionBlock) {
			t.String("a")
			t.Nullable().String("b")
			t.Field("c", FieldConfig{Type: Nullable(Ref("String"))})
			t.List().String("d")
			t.Field("e", FieldConfig{
				Type: Ref("Int"),
				Args: map[string]TypeRef{"x": IntArg(), "y": Nullable(IntArg())},
			})
		},
	})

	for name, tc := range map[string]struct {
		NonNullDefaults NonNullConfig
		Expected        map[string]string
		ExpectedArgs    map[string]string
	}{
		"NullableDefaults": {
			Expected:     map[string]string{"a": "String", "b": "String", "c": "String", "d": "[String]"},
			ExpectedArgs: map[string]string{"x": "Int", "y": "Int"},
		},
		"NonNullOutputs": {
			NonNullDefaults: NonNullConfig{Output: true},
			Expected:        map[string]string{"a": "String!", "b": "String", "c": "String", "d": "[String!]!"},
			ExpectedArgs:    map[string]string{"x": "Int", "y": "Int"},
		},
		"NonNullInputs": {
			NonNullDefaults: NonNullConfig{Input: true},
			Expected:        map[string]string{"a": "String", "b": "String", "c": "String", "d": "[String]"},
			ExpectedArgs:    map[string]string{"x": "Int!", "y": "Int"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			result := build(t, Config{
				Types:           []interface{}{query},
				NonNullDefaults: tc.NonNullDefaults,
			})
			for field, expected := range tc.Expected {
				assert.Equal(t, expected, fieldType(t, result.Schema, "Query", field), field)
			}
			args := result.Schema.QueryType().Fields["e"].Arguments
			for arg, expected := range tc.ExpectedArgs {
				assert.Equal(t, expected, args[arg].Type.String(), arg)
			}
		})
	}

	t.Run("PerType", func(t *testing.T) {
		result := build(t, Config{
			NonNullDefaults: NonNullConfig{Output: true},
			Types: []interface{}{
				QueryType(ObjectConfig{
					NonNullDefaults: &TypeNonNullDefaults{Output: Bool(false)},
					Definition: func(t *ObjectDefinitionBlock) {
						t.String("a")
						t.Field("b", FieldConfig{Type: Ref("Other")})
					},
				}),
				ObjectType(ObjectConfig{
					Name: "Other",
					Definition: func(t *ObjectDefinitionBlock) {
						t.String("a")
					},
				}),
			},
		})
		assert.Equal(t, "String", fieldType(t, result.Schema, "Query", "a"))
		assert.Equal(t, "Other", fieldType(t, result.Schema, "Query", "b"))
		assert.Equal(t, "String!", fieldType(t, result.Schema, "Other", "a"))
	})
}

func TestBuilder_MissingTypes(t *testing.T) {
	cfg := Config{
		Types: []interface{}{
			QueryType(ObjectConfig{
				Definition: func(t *ObjectDefinitionBlock) {
					t.Field("ghost", FieldConfig{Type: Ref("Ghost")})
					t.List().Field("ghosts", FieldConfig{Type: Ref("Ghost")})
					t.Field("host", FieldConfig{
						Type: Ref("Host"),
						Args: map[string]TypeRef{"filter": Ref("GhostFilter")},
					})
				},
			}),
			ObjectType(ObjectConfig{
				Name: "Host",
				Definition: func(t *ObjectDefinitionBlock) {
					t.String("name")
				},
			}),
		},
	}

	result := build(t, cfg)
	assert.Equal(t, map[string]MissingType{
		"Ghost":       {Name: "Ghost", FromObject: true},
		"GhostFilter": {Name: "GhostFilter", FromObject: false},
	}, result.MissingTypes)
	assert.Same(t, UnknownTypeScalar, result.Schema.QueryType().Fields["ghost"].Type)
	assert.Equal(t, "["+UnknownTypeName+"]", fieldType(t, result.Schema, "Query", "ghosts"))

	_, err := MakeSchema(cfg)
	require.Error(t, err)
	var missing *MissingTypeError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Ghost", missing.Name)
	assert.True(t, missing.FromObject)
	require.NotEmpty(t, missing.Suggestions)
	assert.Equal(t, "Host", missing.Suggestions[0])
	assert.NotContains(t, missing.Suggestions, UnknownTypeName)
}

func TestBuilder_OnMissingType(t *testing.T) {
	result := build(t, Config{
		Plugins: []*Plugin{{
			Name: "Ghosts",
			OnMissingType: func(name string, b Lens) (Def, error) {
				if name != "Ghost" {
					return nil, nil
				}
				return ObjectType(ObjectConfig{
					Name: name,
					Definition: func(t *ObjectDefinitionBlock) {
						t.Boolean("boo")
					},
				}), nil
			},
		}},
		Types: []interface{}{
			QueryType(ObjectConfig{
				Definition: func(t *ObjectDefinitionBlock) {
					t.Field("ghost", FieldConfig{Type: Ref("Ghost")})
				},
			}),
		},
	})
	assert.Empty(t, result.MissingTypes)
	assert.Equal(t, "Boolean", fieldType(t, result.Schema, "Ghost", "boo"))
}

func TestBuilder_QueryFallback(t *testing.T) {
	result := build(t, Config{
		Types: []interface{}{
			ObjectType(ObjectConfig{
				Name: "Orphan",
				Definition: func(t *ObjectDefinitionBlock) {
					t.String("name")
				},
			}),
		},
	})
	ok := result.Schema.QueryType().Fields["ok"]
	require.NotNil(t, ok)
	assert.Equal(t, "Boolean!", ok.Type.String())
	v, err := ok.Resolve(schema.FieldContext{})
	require.NoError(t, err)
	assert.Equal(t, true, v)
	assert.NotNil(t, result.Schema.NamedType("Orphan"))
}

func TestBuilder_Extensions(t *testing.T) {
	var declared []string
	plugin := &Plugin{
		OnAddOutputField: func(f *OutputField) (*OutputField, error) {
			if f.ParentType == "User" {
				declared = append(declared, f.Name)
			}
			return nil, nil
		},
	}
	user := ObjectType(ObjectConfig{
		Name: "User",
		Definition: func(t *ObjectDefinitionBlock) {
			t.ID("id")
		},
	})
	query := QueryType(ObjectConfig{
		Definition: func(t *ObjectDefinitionBlock) {
			t.Field("user", FieldConfig{Type: Ref("User")})
		},
	})

	extended := build(t, Config{
		Plugins: []*Plugin{plugin},
		Types: []interface{}{
			ExtendType(ExtendTypeConfig{
				Type: "User",
				Definition: func(t *ObjectDefinitionBlock) {
					t.String("a")
				},
			}),
			query,
			ExtendType(ExtendTypeConfig{
				Type: "User",
				Definition: func(t *ObjectDefinitionBlock) {
					t.String("b")
				},
			}),
			user,
		},
	})
	assert.Equal(t, []string{"id", "a", "b"}, declared)

	direct := build(t, Config{
		Types: []interface{}{
			query,
			ObjectType(ObjectConfig{
				Name: "User",
				Definition: func(t *ObjectDefinitionBlock) {
					t.ID("id")
					t.String("a")
					t.String("b")
				},
			}),
		},
	})

	expected, err := introspection.Marshal(direct.Schema)
	require.NoError(t, err)
	actual, err := introspection.Marshal(extended.Schema)
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(actual))

	t.Run("Undeclared", func(t *testing.T) {
		result := build(t, Config{
			Types: []interface{}{
				query,
				ExtendType(ExtendTypeConfig{
					Type: "User",
					Definition: func(t *ObjectDefinitionBlock) {
						t.String("name")
					},
				}),
				ExtendInputType(ExtendInputTypeConfig{
					Type: "UserFilter",
					Definition: func(t *InputDefinitionBlock) {
						t.String("name")
					},
				}),
			},
		})
		assert.Equal(t, "String", fieldType(t, result.Schema, "User", "name"))
		require.IsType(t, &schema.InputObjectType{}, result.Schema.NamedType("UserFilter"))
		assert.Contains(t, result.Schema.NamedType("UserFilter").(*schema.InputObjectType).Fields, "name")
	})

	t.Run("Query", func(t *testing.T) {
		result := build(t, Config{
			Types: []interface{}{
				ExtendType(ExtendTypeConfig{
					Type: "Query",
					Definition: func(t *ObjectDefinitionBlock) {
						t.Int("count")
					},
				}),
			},
		})
		assert.Equal(t, "Int", fieldType(t, result.Schema, "Query", "count"))
		assert.NotContains(t, result.Schema.QueryType().Fields, "ok")
	})

	t.Run("Native", func(t *testing.T) {
		_, err := NewBuilder(Config{
			Types: []interface{}{
				&schema.ObjectType{
					Name:   "Query",
					Fields: map[string]*schema.FieldDefinition{"a": {Type: schema.IntType}},
				},
				ExtendType(ExtendTypeConfig{
					Type: "Query",
					Definition: func(t *ObjectDefinitionBlock) {
						t.Int("b")
					},
				}),
			},
		}).Build()
		var configErr *ConfigError
		assert.True(t, errors.As(err, &configErr))
	})
}

func TestBuilder_ResolverComposition(t *testing.T) {
	var calls []string
	plugin := func(name string) *Plugin {
		return &Plugin{
			Name: name,
			OnCreateFieldResolver: func(info CreateFieldResolverInfo) Middleware {
				return func(ctx schema.FieldContext, next ResolverFunc) (interface{}, error) {
					calls = append(calls, name)
					return next(ctx)
				}
			},
		}
	}

	result := build(t, Config{
		Plugins: []*Plugin{
			plugin("first"),
			{Name: "inapplicable", OnCreateFieldResolver: func(CreateFieldResolverInfo) Middleware { return nil }},
			plugin("second"),
			plugin("third"),
		},
		Types: []interface{}{
			QueryType(ObjectConfig{
				Definition: func(t *ObjectDefinitionBlock) {
					t.String("a", FieldConfig{
						Resolve: func(schema.FieldContext) (interface{}, error) {
							calls = append(calls, "base")
							return "a", nil
						},
					})
				},
			}),
		},
	})

	v, err := result.Schema.QueryType().Fields["a"].Resolve(schema.FieldContext{})
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"first", "second", "third", "base"}, calls)
}

func TestBuilder_Subscribe(t *testing.T) {
	var calls []string
	result := build(t, Config{
		Plugins: []*Plugin{{
			OnCreateFieldSubscribe: func(info CreateFieldResolverInfo) Middleware {
				return func(ctx schema.FieldContext, next ResolverFunc) (interface{}, error) {
					calls = append(calls, "middleware")
					return next(ctx)
				}
			},
		}},
		Types: []interface{}{
			QueryType(ObjectConfig{
				Definition: func(t *ObjectDefinitionBlock) {
					t.Int("a")
				},
			}),
			SubscriptionType(ObjectConfig{
				Definition: func(t *ObjectDefinitionBlock) {
					t.Int("ticks", FieldConfig{
						Subscribe: func(schema.FieldContext) (interface{}, error) {
							calls = append(calls, "subscribe")
							return nil, nil
						},
					})
				},
			}),
		},
	})
	assert.Nil(t, result.Schema.QueryType().Fields["a"].Subscribe)
	_, err := result.Schema.SubscriptionType().Fields["ticks"].Subscribe(schema.FieldContext{})
	require.NoError(t, err)
	assert.Equal(t, []string{"middleware", "subscribe"}, calls)
}

func TestBuilder_Authorize(t *testing.T) {
	result := build(t, Config{
		Types: []interface{}{
			QueryType(ObjectConfig{
				Definition: func(t *ObjectDefinitionBlock) {
					t.String("secret", FieldConfig{
						Authorize: func(ctx schema.FieldContext) (bool, error) {
							return ctx.Object == "admin", nil
						},
					})
				},
			}),
		},
	})
	resolve := result.Schema.QueryType().Fields["secret"].Resolve

	_, err := resolve(schema.FieldContext{Object: "guest"})
	assert.Equal(t, ErrNotAuthorized, pkgerrors.Cause(err))
	assert.Contains(t, err.Error(), "Query.secret")

	_, err = resolve(schema.FieldContext{Object: "admin"})
	assert.NoError(t, err)
}

func TestBuilder_Errors(t *testing.T) {
	for name, tc := range map[string]struct {
		Types []interface{}
	}{
		"EmptyUnion": {
			Types: []interface{}{
				UnionType(UnionConfig{Name: "Empty"}),
			},
		},
		"EmptyEnum": {
			Types: []interface{}{
				EnumType(EnumConfig{Name: "Empty", Members: []string{}}),
			},
		},
		"BadEnumMembers": {
			Types: []interface{}{
				EnumType(EnumConfig{Name: "Bad", Members: 3}),
			},
		},
		"MissingFieldType": {
			Types: []interface{}{
				QueryType(ObjectConfig{
					Definition: func(t *ObjectDefinitionBlock) {
						t.Field("a", FieldConfig{})
					},
				}),
			},
		},
		"NonObjectUnionMember": {
			Types: []interface{}{
				UnionType(UnionConfig{
					Name: "Bad",
					Definition: func(t *UnionDefinitionBlock) {
						t.Members(Ref("String"))
					},
				}),
			},
		},
		"InputOutputField": {
			Types: []interface{}{
				QueryType(ObjectConfig{
					Definition: func(t *ObjectDefinitionBlock) {
						t.Field("a", FieldConfig{Type: Ref("Filter")})
					},
				}),
				InputObjectType(InputObjectConfig{
					Name: "Filter",
					Definition: func(t *InputDefinitionBlock) {
						t.String("name")
					},
				}),
			},
		},
		"UnknownDynamicMethod": {
			Types: []interface{}{
				QueryType(ObjectConfig{
					Definition: func(t *ObjectDefinitionBlock) {
						t.Dynamic("nope", "a")
					},
				}),
			},
		},
		"UnaddableValue": {
			Types: []interface{}{42},
		},
		"QueryNotAnObject": {
			Types: []interface{}{
				ScalarType(ScalarConfig{Name: "Query"}),
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewBuilder(Config{Types: tc.Types}).Build()
			var configErr *ConfigError
			assert.True(t, errors.As(err, &configErr), "%v", err)
		})
	}
}

func TestBuilder_CircularBuild(t *testing.T) {
	var b *Builder
	b = NewBuilder(Config{
		Plugins: []*Plugin{{
			Name: "Eager",
			OnObjectDefinition: func(t *ObjectDefinitionBlock) error {
				_, err := b.getOrBuildType(TypeName(t.TypeName()), false)
				return err
			},
		}},
		Types: []interface{}{
			QueryType(ObjectConfig{
				Definition: func(t *ObjectDefinitionBlock) {
					t.String("name")
				},
			}),
		},
	})
	_, err := b.Build()
	var circular *CircularBuildError
	require.True(t, errors.As(err, &circular), "%v", err)
	assert.Equal(t, "Query", circular.Building)
	assert.Contains(t, err.Error(), "Eager plugin")
}

func TestBuilder_BuildTwice(t *testing.T) {
	b := NewBuilder(Config{})
	_, err := b.Build()
	require.NoError(t, err)
	_, err = b.Build()
	assert.Error(t, err)
}
