package schema

import (
	"fmt"
	"reflect"
	"sort"
)

// Inspect traverses the type graph depth-first, invoking f for each node. If f returns false, the
// node's children are skipped. After a node's children are visited, f is invoked with nil.
//
// Inspect doesn't guard against cycles. Callers are expected to return false for nodes they've
// already seen.
func Inspect(node interface{}, f func(interface{}) bool) {
	if node == nil || reflect.ValueOf(node).IsNil() || !f(node) {
		return
	}

	switch n := node.(type) {
	case *SchemaDefinition:
		for _, name := range sortedKeys(n.Directives) {
			Inspect(n.Directives[name], f)
		}
		Inspect(n.Query, f)
		Inspect(n.Mutation, f)
		Inspect(n.Subscription, f)
		for _, node := range n.AdditionalTypes {
			Inspect(node, f)
		}
	case *UnionType:
		for _, node := range n.Directives {
			Inspect(node, f)
		}
		for _, node := range n.MemberTypes {
			Inspect(node, f)
		}
	case *InterfaceType:
		for _, node := range n.Directives {
			Inspect(node, f)
		}
		for _, name := range sortedKeys(n.Fields) {
			Inspect(n.Fields[name], f)
		}
		for _, node := range n.Interfaces {
			Inspect(node, f)
		}
	case *InputObjectType:
		for _, node := range n.Directives {
			Inspect(node, f)
		}
		for _, name := range sortedKeys(n.Fields) {
			Inspect(n.Fields[name], f)
		}
	case *ObjectType:
		for _, node := range n.Directives {
			Inspect(node, f)
		}
		for _, name := range sortedKeys(n.Fields) {
			Inspect(n.Fields[name], f)
		}
		for _, node := range n.ImplementedInterfaces {
			Inspect(node, f)
		}
	case *FieldDefinition:
		Inspect(n.Type, f)
		for _, name := range sortedKeys(n.Arguments) {
			Inspect(n.Arguments[name], f)
		}
		for _, node := range n.Directives {
			Inspect(node, f)
		}
	case *InputValueDefinition:
		Inspect(n.Type, f)
		for _, node := range n.Directives {
			Inspect(node, f)
		}
	case *DirectiveDefinition:
		for _, name := range sortedKeys(n.Arguments) {
			Inspect(n.Arguments[name], f)
		}
	case *Directive:
		Inspect(n.Definition, f)
	case *ListType:
		Inspect(n.Type, f)
	case *NonNullType:
		Inspect(n.Type, f)
	case *EnumType, *ScalarType:
	default:
		panic(fmt.Errorf("unknown node type: %T", n))
	}

	f(nil)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
