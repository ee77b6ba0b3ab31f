package schema

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Schema is a validated, fully linked graph of named types.
type Schema struct {
	directives map[string]*DirectiveDefinition
	namedTypes map[string]NamedType
	extensions map[string]interface{}

	query        *ObjectType
	mutation     *ObjectType
	subscription *ObjectType
}

func (s *Schema) QueryType() *ObjectType {
	return s.query
}

func (s *Schema) MutationType() *ObjectType {
	return s.mutation
}

func (s *Schema) SubscriptionType() *ObjectType {
	return s.subscription
}

func (s *Schema) NamedType(name string) NamedType {
	return s.namedTypes[name]
}

// NamedTypes returns every named type reachable from the schema, including the built-in scalars
// that are referenced.
func (s *Schema) NamedTypes() map[string]NamedType {
	ret := make(map[string]NamedType, len(s.namedTypes))
	for k, v := range s.namedTypes {
		ret[k] = v
	}
	return ret
}

// TypeNames returns the sorted names of all named types in the schema.
func (s *Schema) TypeNames() []string {
	ret := make([]string, 0, len(s.namedTypes))
	for name := range s.namedTypes {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

func (s *Schema) Directives() map[string]*DirectiveDefinition {
	return s.directives
}

// Extension returns schema-level metadata attached by the schema's author.
func (s *Schema) Extension(key string) interface{} {
	return s.extensions[key]
}

var nameRegex = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

func isName(s string) bool {
	return nameRegex.MatchString(s)
}

// New validates and links the given definition. Any lazily defined types are finalized as they're
// encountered.
func New(def *SchemaDefinition) (*Schema, error) {
	var err error
	schema := &Schema{
		directives:   map[string]*DirectiveDefinition{},
		namedTypes:   map[string]NamedType{},
		extensions:   def.Extensions,
		query:        def.Query,
		mutation:     def.Mutation,
		subscription: def.Subscription,
	}

	if schema.query == nil {
		return nil, fmt.Errorf("schemas must define the query operation")
	}

	for name, d := range def.Directives {
		if !isName(name) {
			return nil, fmt.Errorf("illegal directive name: %v", name)
		}
		schema.directives[name] = d
	}

	Inspect(def, func(node interface{}) bool {
		if err != nil {
			return false
		}

		if namedType, ok := node.(NamedType); ok {
			name := namedType.TypeName()
			if existing, seen := schema.namedTypes[name]; seen {
				if existing != namedType {
					err = fmt.Errorf("multiple definitions for named type: %v", name)
				}
				// already visited
				return false
			}
			if !isName(name) || strings.HasPrefix(name, "__") {
				err = fmt.Errorf("illegal type name: %v", name)
			} else if builtin, ok := BuiltInTypes[name]; ok && namedType != NamedType(builtin) {
				err = fmt.Errorf("%v builtin may not be overridden", name)
			} else {
				schema.namedTypes[name] = namedType
				if lazy, ok := namedType.(LazyType); ok {
					if ferr := lazy.Finalize(); ferr != nil {
						err = fmt.Errorf("unable to finalize %v: %w", name, ferr)
					}
				}
			}
		}

		if err == nil {
			if n, ok := node.(interface {
				shallowValidate() error
			}); ok {
				err = n.shallowValidate()
			}
		}

		return err == nil
	})

	if err != nil {
		return nil, err
	}
	return schema, nil
}

type SchemaDefinition struct {
	Directives map[string]*DirectiveDefinition

	Query        *ObjectType
	Mutation     *ObjectType
	Subscription *ObjectType

	// Types that aren't reachable from the root operation types, such as interface implementations,
	// must be given here.
	AdditionalTypes []NamedType

	Extensions map[string]interface{}
}

type Argument struct {
	Name  string
	Value interface{}
}

type Type interface {
	String() string
	IsInputType() bool
	IsOutputType() bool
	IsSubTypeOf(Type) bool
	IsSameType(Type) bool
}

type NamedType interface {
	Type
	TypeName() string
}

// LazyType is implemented by named types whose members may be supplied by thunks.
type LazyType interface {
	NamedType

	// Finalize invokes the type's thunks exactly once. It is an error for a type's thunks to
	// finalize the type itself.
	Finalize() error

	IsFinalized() bool
}

type WrappedType interface {
	Type
	Unwrap() Type
}

func UnwrapType(t Type) Type {
	for {
		if wrapped, ok := t.(WrappedType); ok {
			t = wrapped.Unwrap()
		} else {
			break
		}
	}
	return t
}

// NamedTypeOf returns the named type at the core of the given type, or nil if there isn't one.
func NamedTypeOf(t Type) NamedType {
	named, _ := UnwrapType(t).(NamedType)
	return named
}
