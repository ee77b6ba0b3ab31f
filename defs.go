package schemafu

import "fmt"

// Kind identifies a definition. It is decided once, when the definition is constructed, and used
// by the builder to dispatch without inspecting the definition's shape.
type Kind int

const (
	KindObject Kind = iota + 1
	KindInterface
	KindUnion
	KindEnum
	KindScalar
	KindInputObject
	KindList
	KindNonNull
	KindNull
	KindArg
	KindExtendObject
	KindExtendInputObject
	KindDynamicInputMethod
	KindDynamicOutputMethod
	KindDynamicOutputProperty
	KindNative
)

var kindNames = map[Kind]string{
	KindObject:                "object",
	KindInterface:             "interface",
	KindUnion:                 "union",
	KindEnum:                  "enum",
	KindScalar:                "scalar",
	KindInputObject:           "input object",
	KindList:                  "list",
	KindNonNull:               "non-null",
	KindNull:                  "nullable",
	KindArg:                   "argument",
	KindExtendObject:          "type extension",
	KindExtendInputObject:     "input type extension",
	KindDynamicInputMethod:    "dynamic input method",
	KindDynamicOutputMethod:   "dynamic output method",
	KindDynamicOutputProperty: "dynamic output property",
	KindNative:                "pre-built type",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Def is anything that can be given to Builder.AddType.
type Def interface {
	Kind() Kind
}

// NamedDef is a definition of a named type.
type NamedDef interface {
	Def
	TypeRef
	Name() string
}

// TypeRef is anything that can be used as the type of a field or argument: a named definition, a
// wrapped definition, a pre-built type, an argument definition, or simply the name of a type.
type TypeRef interface {
	isTypeRef()
}

// TypeName refers to a named type by name. The type is looked up when the referencing field is
// finalized, so it may be registered after the reference is made.
type TypeName string

func (TypeName) isTypeRef() {}

// Ref is shorthand for TypeName(name).
func Ref(name string) TypeName {
	return TypeName(name)
}

func (d *ObjectTypeDef) isTypeRef()      {}
func (d *InterfaceTypeDef) isTypeRef()   {}
func (d *UnionTypeDef) isTypeRef()       {}
func (d *EnumTypeDef) isTypeRef()        {}
func (d *ScalarTypeDef) isTypeRef()      {}
func (d *InputObjectTypeDef) isTypeRef() {}
func (d *ListDef) isTypeRef()            {}
func (d *NonNullDef) isTypeRef()         {}
func (d *NullDef) isTypeRef()            {}
func (d *ArgDef) isTypeRef()             {}
func (d *NativeTypeDef) isTypeRef()      {}

// refName returns the name of a named reference.
func refName(ref TypeRef) (string, bool) {
	switch ref := ref.(type) {
	case TypeName:
		return string(ref), true
	case NamedDef:
		return ref.Name(), true
	}
	return "", false
}
