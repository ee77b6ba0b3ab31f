package schemafu

import (
	"fmt"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

// WrapKind is a single layer of type modification.
type WrapKind int

const (
	WrapList WrapKind = iota + 1
	WrapNonNull

	// WrapNull cancels a non-null default. It never appears in a finalized wrapping stack.
	WrapNull
)

func (k WrapKind) String() string {
	switch k {
	case WrapList:
		return "List"
	case WrapNonNull:
		return "NonNull"
	case WrapNull:
		return "Null"
	}
	return fmt.Sprintf("WrapKind(%d)", int(k))
}

// ListDef wraps a type reference in a list.
type ListDef struct {
	Of TypeRef
}

func (d *ListDef) Kind() Kind { return KindList }

// NonNullDef marks a type reference as non-null.
type NonNullDef struct {
	Of TypeRef
}

func (d *NonNullDef) Kind() Kind { return KindNonNull }

// NullDef marks a type reference as nullable, overriding any non-null default.
type NullDef struct {
	Of TypeRef
}

func (d *NullDef) Kind() Kind { return KindNull }

func List(of TypeRef) *ListDef {
	return &ListDef{Of: of}
}

func NonNull(of TypeRef) *NonNullDef {
	return &NonNullDef{Of: of}
}

func Nullable(of TypeRef) *NullDef {
	return &NullDef{Of: of}
}

// unwrapRef peels the wrapping layers off of ref. The returned stack is ordered innermost first.
func unwrapRef(ref TypeRef) (TypeRef, []WrapKind) {
	var wrapping []WrapKind
	for {
		switch r := ref.(type) {
		case *ListDef:
			wrapping = append([]WrapKind{WrapList}, wrapping...)
			ref = r.Of
		case *NonNullDef:
			wrapping = append([]WrapKind{WrapNonNull}, wrapping...)
			ref = r.Of
		case *NullDef:
			wrapping = append([]WrapKind{WrapNull}, wrapping...)
			ref = r.Of
		default:
			return ref, wrapping
		}
	}
}

// finalizeWrapping combines a type's own wrapping with the wrapping applied by a definition block's
// chain methods and resolves the non-null default. Both inputs and the result are ordered
// innermost first. The result only contains WrapList and WrapNonNull.
func finalizeWrapping(nonNullDefault bool, typeWrapping []WrapKind, chainWrapping []WrapKind) []WrapKind {
	all := make([]WrapKind, 0, len(typeWrapping)+len(chainWrapping)+1)
	all = append(all, typeWrapping...)
	all = append(all, chainWrapping...)
	if nonNullDefault && (len(all) == 0 || all[0] == WrapList) {
		all = append([]WrapKind{WrapNonNull}, all...)
	}

	var ret []WrapKind
	for i, current := range all {
		var next WrapKind
		if i+1 < len(all) {
			next = all[i+1]
		}
		switch current {
		case WrapNull:
			continue
		case WrapNonNull:
			if next == WrapNonNull {
				continue
			}
			ret = append(ret, WrapNonNull)
		case WrapList:
			ret = append(ret, WrapList)
			if nonNullDefault && (next == WrapList || next == 0) {
				ret = append(ret, WrapNonNull)
			}
		}
	}
	return ret
}

// rewrap applies the wrapping stack, innermost first, around t.
func rewrap(t schema.Type, wrapping []WrapKind) schema.Type {
	for _, w := range wrapping {
		switch w {
		case WrapList:
			t = schema.NewListType(t)
		case WrapNonNull:
			if !schema.IsNonNullType(t) {
				t = schema.NewNonNullType(t)
			}
		}
	}
	return t
}

// wrappingOf returns the stack of an already finalized type, innermost first.
func wrappingOf(t schema.Type) []WrapKind {
	var ret []WrapKind
	for {
		switch tt := t.(type) {
		case *schema.ListType:
			ret = append([]WrapKind{WrapList}, ret...)
			t = tt.Type
		case *schema.NonNullType:
			ret = append([]WrapKind{WrapNonNull}, ret...)
			t = tt.Type
		default:
			return ret
		}
	}
}

// normalizeArgWrapping moves wrapping applied around an argument definition into the argument's
// own type. References that aren't argument definitions become arguments of that type.
func normalizeArgWrapping(ref TypeRef) *ArgDef {
	core, wrapping := unwrapRef(ref)
	arg, ok := core.(*ArgDef)
	if !ok {
		return &ArgDef{config: ArgConfig{Type: ref}}
	}
	if len(wrapping) == 0 {
		return arg
	}
	t := arg.config.Type
	for _, w := range wrapping {
		switch w {
		case WrapList:
			t = List(t)
		case WrapNonNull:
			t = NonNull(t)
		case WrapNull:
			t = Nullable(t)
		}
	}
	cfg := arg.config
	cfg.Type = t
	return &ArgDef{config: cfg}
}
