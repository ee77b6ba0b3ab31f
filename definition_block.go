package schemafu

import (
	"github.com/pkg/errors"
)

// blockHooks receive what definition blocks record. Which hooks are set depends on the kind of
// block and the stage.
type blockHooks struct {
	addField        func(*OutputField) error
	addInputField   func(*InputField) error
	addInterfaces   func([]TypeRef) error
	addModification func(field string, mod FieldModification) error
	addMembers      func([]TypeRef) error
}

// blockState is shared by a block and every copy made by its chain methods. Only the first error
// recorded is kept.
type blockState struct {
	builder  *Builder
	typeName string
	hooks    *blockHooks
	stage    Stage
	err      error
}

func (s *blockState) fail(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func prependWrapping(k WrapKind, wrapping []WrapKind) []WrapKind {
	return append([]WrapKind{k}, wrapping...)
}

// OutputDefinitionBlock records the fields of an object or interface.
type OutputDefinitionBlock struct {
	state    *blockState
	wrapping []WrapKind
}

func (t *OutputDefinitionBlock) TypeName() string {
	return t.state.typeName
}

func (t *OutputDefinitionBlock) Stage() Stage {
	return t.state.stage
}

// List returns a block whose fields are wrapped in a list. Chained wrapping applies to the type
// outside-in, so t.List().NonNull() declares fields of type [T!].
func (t *OutputDefinitionBlock) List() *OutputDefinitionBlock {
	return &OutputDefinitionBlock{state: t.state, wrapping: prependWrapping(WrapList, t.wrapping)}
}

func (t *OutputDefinitionBlock) NonNull() *OutputDefinitionBlock {
	return &OutputDefinitionBlock{state: t.state, wrapping: prependWrapping(WrapNonNull, t.wrapping)}
}

func (t *OutputDefinitionBlock) Nullable() *OutputDefinitionBlock {
	return &OutputDefinitionBlock{state: t.state, wrapping: prependWrapping(WrapNull, t.wrapping)}
}

func (t *OutputDefinitionBlock) Field(name string, cfg FieldConfig) {
	if cfg.Type == nil {
		t.state.fail(configErrorf(t.state.typeName, "missing type for field %v", name))
		return
	}
	f := &OutputField{
		Name:        name,
		ParentType:  t.state.typeName,
		FieldConfig: cfg,
		Wrapping:    append([]WrapKind(nil), t.wrapping...),
	}
	if t.state.hooks.addField != nil {
		t.state.fail(t.state.hooks.addField(f))
	}
}

func outputFieldOfType(name string, cfg []FieldConfig) FieldConfig {
	var ret FieldConfig
	if len(cfg) > 0 {
		ret = cfg[0]
	}
	ret.Type = Ref(name)
	return ret
}

func (t *OutputDefinitionBlock) String(name string, cfg ...FieldConfig) {
	t.Field(name, outputFieldOfType("String", cfg))
}

func (t *OutputDefinitionBlock) Int(name string, cfg ...FieldConfig) {
	t.Field(name, outputFieldOfType("Int", cfg))
}

func (t *OutputDefinitionBlock) Float(name string, cfg ...FieldConfig) {
	t.Field(name, outputFieldOfType("Float", cfg))
}

func (t *OutputDefinitionBlock) ID(name string, cfg ...FieldConfig) {
	t.Field(name, outputFieldOfType("ID", cfg))
}

func (t *OutputDefinitionBlock) Boolean(name string, cfg ...FieldConfig) {
	t.Field(name, outputFieldOfType("Boolean", cfg))
}

// Dynamic invokes a dynamic output method. Scalars registered with an AsMethod are invoked as
// t.Dynamic(method, fieldName) or t.Dynamic(method, fieldName, FieldConfig{...}).
func (t *OutputDefinitionBlock) Dynamic(method string, args ...interface{}) {
	entry, ok := t.state.builder.dynamicOutputMethods[method]
	if !ok {
		t.state.fail(configErrorf(t.state.typeName, "unknown dynamic output method %v", method))
		return
	}
	if entry.scalar != "" {
		name, cfg, err := scalarMethodArgs[FieldConfig](method, args)
		if err != nil {
			t.state.fail(configErrorf(t.state.typeName, "%v", err))
			return
		}
		cfg.Type = Ref(entry.scalar)
		t.Field(name, cfg)
		return
	}
	err := entry.def.config.Factory(DynamicOutputMethodContext{
		Block:    t,
		TypeName: t.state.typeName,
		Args:     args,
		Builder:  t.state.builder.lens,
		Stage:    t.state.stage,
	})
	t.state.fail(errors.Wrapf(err, "%v dynamic method", method))
}

// Property returns the value of a dynamic output property, or nil if it can't be produced.
func (t *OutputDefinitionBlock) Property(name string) interface{} {
	def, ok := t.state.builder.dynamicOutputProperties[name]
	if !ok {
		t.state.fail(configErrorf(t.state.typeName, "unknown dynamic output property %v", name))
		return nil
	}
	v, err := def.config.Factory(DynamicOutputPropertyContext{
		Block:    t,
		TypeName: t.state.typeName,
		Builder:  t.state.builder.lens,
		Stage:    t.state.stage,
	})
	if err != nil {
		t.state.fail(errors.Wrapf(err, "%v dynamic property", name))
		return nil
	}
	return v
}

func scalarMethodArgs[T any](method string, args []interface{}) (string, T, error) {
	var cfg T
	if len(args) == 0 || len(args) > 2 {
		return "", cfg, errors.Errorf("%v expects a field name and an optional config", method)
	}
	name, ok := args[0].(string)
	if !ok {
		return "", cfg, errors.Errorf("%v expects a field name, got %T", method, args[0])
	}
	if len(args) == 2 {
		switch v := args[1].(type) {
		case T:
			cfg = v
		case *T:
			cfg = *v
		default:
			return "", cfg, errors.Errorf("%v expects a %T, got %T", method, cfg, args[1])
		}
	}
	return name, cfg, nil
}

// ObjectDefinitionBlock records the fields and interfaces of an object or interface.
type ObjectDefinitionBlock struct {
	OutputDefinitionBlock
}

type InterfaceDefinitionBlock = ObjectDefinitionBlock

// Implements declares interfaces the type implements. Their fields are inherited.
func (t *ObjectDefinitionBlock) Implements(interfaces ...TypeRef) {
	if t.state.hooks.addInterfaces != nil {
		t.state.fail(t.state.hooks.addInterfaces(interfaces))
	}
}

// Modify changes a field inherited from one of the type's interfaces.
func (t *ObjectDefinitionBlock) Modify(field string, mod FieldModification) {
	if t.state.hooks.addModification != nil {
		t.state.fail(t.state.hooks.addModification(field, mod))
	}
}

// InputDefinitionBlock records the fields of an input object.
type InputDefinitionBlock struct {
	state    *blockState
	wrapping []WrapKind
}

func (t *InputDefinitionBlock) TypeName() string {
	return t.state.typeName
}

func (t *InputDefinitionBlock) Stage() Stage {
	return t.state.stage
}

func (t *InputDefinitionBlock) List() *InputDefinitionBlock {
	return &InputDefinitionBlock{state: t.state, wrapping: prependWrapping(WrapList, t.wrapping)}
}

func (t *InputDefinitionBlock) NonNull() *InputDefinitionBlock {
	return &InputDefinitionBlock{state: t.state, wrapping: prependWrapping(WrapNonNull, t.wrapping)}
}

func (t *InputDefinitionBlock) Nullable() *InputDefinitionBlock {
	return &InputDefinitionBlock{state: t.state, wrapping: prependWrapping(WrapNull, t.wrapping)}
}

func (t *InputDefinitionBlock) Field(name string, cfg InputFieldConfig) {
	if cfg.Type == nil {
		t.state.fail(configErrorf(t.state.typeName, "missing type for field %v", name))
		return
	}
	f := &InputField{
		Name:             name,
		ParentType:       t.state.typeName,
		InputFieldConfig: cfg,
		Wrapping:         append([]WrapKind(nil), t.wrapping...),
	}
	if t.state.hooks.addInputField != nil {
		t.state.fail(t.state.hooks.addInputField(f))
	}
}

func inputFieldOfType(name string, cfg []InputFieldConfig) InputFieldConfig {
	var ret InputFieldConfig
	if len(cfg) > 0 {
		ret = cfg[0]
	}
	ret.Type = Ref(name)
	return ret
}

func (t *InputDefinitionBlock) String(name string, cfg ...InputFieldConfig) {
	t.Field(name, inputFieldOfType("String", cfg))
}

func (t *InputDefinitionBlock) Int(name string, cfg ...InputFieldConfig) {
	t.Field(name, inputFieldOfType("Int", cfg))
}

func (t *InputDefinitionBlock) Float(name string, cfg ...InputFieldConfig) {
	t.Field(name, inputFieldOfType("Float", cfg))
}

func (t *InputDefinitionBlock) ID(name string, cfg ...InputFieldConfig) {
	t.Field(name, inputFieldOfType("ID", cfg))
}

func (t *InputDefinitionBlock) Boolean(name string, cfg ...InputFieldConfig) {
	t.Field(name, inputFieldOfType("Boolean", cfg))
}

func (t *InputDefinitionBlock) Dynamic(method string, args ...interface{}) {
	entry, ok := t.state.builder.dynamicInputMethods[method]
	if !ok {
		t.state.fail(configErrorf(t.state.typeName, "unknown dynamic input method %v", method))
		return
	}
	if entry.scalar != "" {
		name, cfg, err := scalarMethodArgs[InputFieldConfig](method, args)
		if err != nil {
			t.state.fail(configErrorf(t.state.typeName, "%v", err))
			return
		}
		cfg.Type = Ref(entry.scalar)
		t.Field(name, cfg)
		return
	}
	err := entry.def.config.Factory(DynamicInputMethodContext{
		Block:    t,
		TypeName: t.state.typeName,
		Args:     args,
		Builder:  t.state.builder.lens,
		Stage:    t.state.stage,
	})
	t.state.fail(errors.Wrapf(err, "%v dynamic method", method))
}

// UnionDefinitionBlock records the members of a union.
type UnionDefinitionBlock struct {
	state *blockState
}

func (t *UnionDefinitionBlock) TypeName() string {
	return t.state.typeName
}

// Members declares the union's object types, in order.
func (t *UnionDefinitionBlock) Members(types ...TypeRef) {
	if t.state.hooks.addMembers != nil {
		t.state.fail(t.state.hooks.addMembers(types))
	}
}
