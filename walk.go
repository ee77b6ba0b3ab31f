package schemafu

import (
	"github.com/pkg/errors"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

type walkKind int

const (
	walkNamed walkKind = iota + 1
	walkInput
	walkObject
	walkInterface
	walkUnion
)

// walkItem is a definition whose references haven't been discovered yet.
type walkItem struct {
	kind     walkKind
	typeName string

	named            schema.NamedType
	objectDefinition func(*ObjectDefinitionBlock)
	inputDefinition  func(*InputDefinitionBlock)
	unionDefinition  func(*UnionDefinitionBlock)
}

func (b *Builder) enqueue(item walkItem) {
	b.walkQueue = append(b.walkQueue, item)
}

// walkTypes drains the walk queue, adding every definition referenced by the walked types.
// Walking may enqueue more items.
func (b *Builder) walkTypes() error {
	for len(b.walkQueue) > 0 {
		item := b.walkQueue[0]
		b.walkQueue = b.walkQueue[1:]

		var err error
		switch item.kind {
		case walkNamed:
			err = b.walkNamedType(item.named)
		case walkInput:
			err = b.walkInputType(item)
		case walkObject, walkInterface:
			err = b.walkOutputType(item)
		case walkUnion:
			err = b.walkUnionType(item)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) walkOutputType(item walkItem) error {
	if item.objectDefinition == nil {
		return nil
	}
	state := &blockState{
		builder:  b,
		typeName: item.typeName,
		stage:    StageWalk,
		hooks: &blockHooks{
			addField: func(f *OutputField) error {
				if err := b.addRef(f.Type); err != nil {
					return err
				}
				for _, name := range sortedKeys(f.Args) {
					if err := b.addRef(f.Args[name]); err != nil {
						return err
					}
				}
				return nil
			},
			addInterfaces: func(interfaces []TypeRef) error {
				for _, ref := range interfaces {
					if err := b.addRef(ref); err != nil {
						return err
					}
					if name, ok := refName(ref); ok {
						b.interfaceEdges[item.typeName] = append(b.interfaceEdges[item.typeName], name)
					}
				}
				return nil
			},
			addModification: func(field string, mod FieldModification) error {
				if mod.Type != nil {
					if err := b.addRef(mod.Type); err != nil {
						return err
					}
				}
				for _, name := range sortedKeys(mod.Args) {
					if err := b.addRef(mod.Args[name]); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
	item.objectDefinition(&ObjectDefinitionBlock{OutputDefinitionBlock{state: state}})
	return state.err
}

func (b *Builder) walkInputType(item walkItem) error {
	if item.inputDefinition == nil {
		return nil
	}
	state := &blockState{
		builder:  b,
		typeName: item.typeName,
		stage:    StageWalk,
		hooks: &blockHooks{
			addInputField: func(f *InputField) error {
				return b.addRef(f.Type)
			},
		},
	}
	item.inputDefinition(&InputDefinitionBlock{state: state})
	return state.err
}

func (b *Builder) walkUnionType(item walkItem) error {
	if item.unionDefinition == nil {
		return nil
	}
	state := &blockState{
		builder:  b,
		typeName: item.typeName,
		stage:    StageWalk,
		hooks: &blockHooks{
			addMembers: func(types []TypeRef) error {
				for _, ref := range types {
					if err := b.addRef(ref); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
	item.unionDefinition(&UnionDefinitionBlock{state: state})
	return state.err
}

// walkNamedType adds the pre-built types a pre-built type references. Names that are already
// taken are left alone, so definitions can stand in for pre-built types of the same name.
func (b *Builder) walkNamedType(t schema.NamedType) error {
	if lazy, ok := t.(schema.LazyType); ok {
		if err := lazy.Finalize(); err != nil {
			return errors.Wrapf(err, "unable to finalize %v", t.TypeName())
		}
	}
	for _, ref := range nativeReferences(t) {
		name := ref.TypeName()
		if builtin, ok := schema.BuiltInTypes[name]; ok && schema.NamedType(builtin) == ref {
			continue
		} else if _, ok := b.lookupDef(name); ok {
			continue
		}
		if err := b.AddType(Native(ref)); err != nil {
			return err
		}
	}
	return nil
}
