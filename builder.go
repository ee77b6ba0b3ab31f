package schemafu

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

// ExtensionKey is the key the builder's SchemaExtension is stored under in the schema's
// extensions.
const ExtensionKey = "schemafu"

// SchemaExtension is attached to every schema the builder produces.
type SchemaExtension struct {
	Config FinalConfig

	DynamicInputMethods     []string
	DynamicOutputMethods    []string
	DynamicOutputProperties []string

	// Maps type names to the SourceType given in their config.
	SourceTypes map[string]string
}

// GetSchemaExtension returns the builder's extension of a schema, or nil if the schema wasn't
// created by a Builder.
func GetSchemaExtension(s *schema.Schema) *SchemaExtension {
	ext, _ := s.Extension(ExtensionKey).(*SchemaExtension)
	return ext
}

// MissingType records a type that was referenced but never defined.
type MissingType struct {
	Name string

	// Whether the type was referenced by an output field.
	FromObject bool
}

type Result struct {
	Schema *schema.Schema

	// Types that were referenced but never defined. They're represented by UnknownTypeScalar in
	// the schema.
	MissingTypes map[string]MissingType

	FinalConfig FinalConfig
}

// Builder assembles a schema from definitions. Definitions may reference each other by name or
// by value in any order. Builders aren't safe for concurrent use and can only be built once.
type Builder struct {
	config      Config
	logger      logrus.FieldLogger
	plugins     []*Plugin
	finalConfig FinalConfig
	lens        Lens
	extension   *SchemaExtension
	built       bool

	// Types that are ready to go into the schema.
	final map[string]schema.NamedType

	// The definitions of types that have been moved from pending to final.
	defined map[string]Def

	// Types that have been added but not built, in the order they were added.
	pending      map[string]NamedDef
	pendingOrder []string
	nextPending  int

	objectExtensions        map[string][]*ExtendTypeDef
	inputExtensions         map[string][]*ExtendInputTypeDef
	consumedExtensions      map[string]bool
	consumedInputExtensions map[string]bool

	dynamicInputMethods     map[string]dynamicInputMethod
	dynamicOutputMethods    map[string]dynamicOutputMethod
	dynamicOutputProperties map[string]*DynamicOutputPropertyDef

	walkQueue      []walkItem
	interfaceEdges map[string][]string
	building       map[string]bool
	missingTypes   map[string]MissingType
}

func NewBuilder(cfg Config) *Builder {
	b := &Builder{
		config:                  cfg,
		logger:                  cfg.Logger,
		plugins:                 cfg.Plugins,
		finalConfig:             newFinalConfig(&cfg),
		extension:               &SchemaExtension{SourceTypes: map[string]string{}},
		final:                   map[string]schema.NamedType{},
		defined:                 map[string]Def{},
		pending:                 map[string]NamedDef{},
		objectExtensions:        map[string][]*ExtendTypeDef{},
		inputExtensions:         map[string][]*ExtendInputTypeDef{},
		consumedExtensions:      map[string]bool{},
		consumedInputExtensions: map[string]bool{},
		dynamicInputMethods:     map[string]dynamicInputMethod{},
		dynamicOutputMethods:    map[string]dynamicOutputMethod{},
		dynamicOutputProperties: map[string]*DynamicOutputPropertyDef{},
		interfaceEdges:          map[string][]string{},
		building:                map[string]bool{},
		missingTypes:            map[string]MissingType{},
	}
	if b.logger == nil {
		b.logger = logrus.StandardLogger()
	}
	if len(b.plugins) == 0 {
		b.plugins = []*Plugin{FieldAuthorizePlugin()}
	}
	b.lens = b.newLens()
	return b
}

// HasType returns true if a type with the given name has been added.
func (b *Builder) HasType(name string) bool {
	_, isPending := b.pending[name]
	_, isFinal := b.final[name]
	return isPending || isFinal
}

func (b *Builder) lookupDef(name string) (Def, bool) {
	if def, ok := b.pending[name]; ok {
		return def, true
	}
	def, ok := b.defined[name]
	return def, ok
}

// AddType adds a definition to the builder. Adding the same definition more than once has no
// effect, but adding a different definition with the name of an existing one is an error.
func (b *Builder) AddType(def Def) error {
	if def == nil {
		return configErrorf("", "definitions may not be nil")
	}

	switch def.Kind() {
	case KindDynamicInputMethod:
		d := def.(*DynamicInputMethodDef)
		b.dynamicInputMethods[d.config.Name] = dynamicInputMethod{def: d}
		return nil
	case KindDynamicOutputMethod:
		d := def.(*DynamicOutputMethodDef)
		b.dynamicOutputMethods[d.config.Name] = dynamicOutputMethod{def: d}
		return nil
	case KindDynamicOutputProperty:
		d := def.(*DynamicOutputPropertyDef)
		b.dynamicOutputProperties[d.config.Name] = d
		return nil
	case KindList, KindNonNull, KindNull, KindArg:
		return b.addRef(def.(TypeRef))
	case KindExtendObject:
		d := def.(*ExtendTypeDef)
		name := d.config.Type
		if b.consumedExtensions[name] {
			return configErrorf(name, "%v was extended after it was built", name)
		}
		b.objectExtensions[name] = append(b.objectExtensions[name], d)
		b.enqueue(walkItem{
			kind:             walkObject,
			typeName:         name,
			objectDefinition: d.config.Definition,
		})
		return nil
	case KindExtendInputObject:
		d := def.(*ExtendInputTypeDef)
		name := d.config.Type
		if b.consumedInputExtensions[name] {
			return configErrorf(name, "%v was extended after it was built", name)
		}
		b.inputExtensions[name] = append(b.inputExtensions[name], d)
		b.enqueue(walkItem{
			kind:            walkInput,
			typeName:        name,
			inputDefinition: d.config.Definition,
		})
		return nil
	}

	named, ok := def.(NamedDef)
	if !ok {
		b.logger.WithField("kind", def.Kind()).Warn("unknown definition kind")
		return configErrorf("", "unknown definition kind: %v", def.Kind())
	}
	name := named.Name()
	if strings.HasPrefix(name, "__") {
		return nil
	}

	native, isNative := def.(*NativeTypeDef)
	if builtin, ok := schema.BuiltInTypes[name]; ok {
		if isNative && native.t == schema.NamedType(builtin) {
			return nil
		}
		return &DuplicateTypeError{Name: name, Existing: KindScalar, New: def.Kind()}
	}

	if existing, ok := b.lookupDef(name); ok {
		if existing == def {
			return nil
		} else if existingNative, ok := existing.(*NativeTypeDef); ok && isNative && existingNative.t == native.t {
			return nil
		}
		return &DuplicateTypeError{Name: name, Existing: existing.Kind(), New: def.Kind()}
	}

	switch d := def.(type) {
	case *NativeTypeDef:
		b.final[name] = b.rebindNative(d.t)
		b.defined[name] = d
		b.enqueue(walkItem{
			kind:     walkNamed,
			typeName: name,
			named:    d.t,
		})
		return nil
	case *ScalarTypeDef:
		if method := d.config.AsMethod; method != "" {
			b.dynamicInputMethods[method] = dynamicInputMethod{scalar: name}
			b.dynamicOutputMethods[method] = dynamicOutputMethod{scalar: name}
		}
	}

	b.pending[name] = named
	b.pendingOrder = append(b.pendingOrder, name)

	switch d := def.(type) {
	case *ObjectTypeDef:
		b.enqueue(walkItem{
			kind:             walkObject,
			typeName:         name,
			objectDefinition: d.config.Definition,
		})
	case *InterfaceTypeDef:
		b.enqueue(walkItem{
			kind:             walkInterface,
			typeName:         name,
			objectDefinition: d.config.Definition,
		})
	case *InputObjectTypeDef:
		b.enqueue(walkItem{
			kind:            walkInput,
			typeName:        name,
			inputDefinition: d.config.Definition,
		})
	case *UnionTypeDef:
		b.enqueue(walkItem{
			kind:            walkUnion,
			typeName:        name,
			unionDefinition: d.config.Definition,
		})
	}
	return nil
}

// addRef adds the named definition at the core of a type reference, if there is one.
func (b *Builder) addRef(ref TypeRef) error {
	core, _ := unwrapRef(ref)
	switch core := core.(type) {
	case *ArgDef:
		if core.config.Type == nil {
			return nil
		}
		return b.addRef(core.config.Type)
	case NamedDef:
		return b.AddType(core)
	}
	return nil
}

// AddTypes adds each of the given values. Values may be definitions, pre-built named types,
// schemas, or slices or maps of those. Maps are added in key order.
func (b *Builder) AddTypes(types ...interface{}) error {
	for _, t := range types {
		if err := b.addValue(t); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) addValue(v interface{}) error {
	switch v := v.(type) {
	case nil:
		return nil
	case *Plugin:
		if lo.Contains(b.plugins, v) {
			return nil
		}
		return configErrorf("", "plugins must be given via Config.Plugins")
	case Def:
		return b.AddType(v)
	case *schema.Schema:
		for _, name := range v.TypeNames() {
			if err := b.AddType(Native(v.NamedType(name))); err != nil {
				return err
			}
		}
		return nil
	case schema.NamedType:
		return b.AddType(Native(v))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := b.addValue(rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, key := range keys {
			if err := b.addValue(rv.MapIndex(key).Interface()); err != nil {
				return err
			}
		}
		return nil
	}
	return configErrorf("", "%T can't be added as a type", v)
}

// Build builds the schema. Missing types aren't errors here. They're reported in the result.
func (b *Builder) Build() (*Result, error) {
	if b.built {
		return nil, errors.New("builders can only be built once")
	}
	b.built = true

	if err := b.AddTypes(b.config.Types...); err != nil {
		return nil, err
	}

	for _, p := range b.plugins {
		if p.OnInstall == nil {
			continue
		}
		b.logger.WithFields(logrus.Fields{"phase": "install", "plugin": p.Name}).Debug("installing plugin")
		if err := p.OnInstall(b.lens); err != nil {
			return nil, errors.Wrapf(err, "%v plugin", p.Name)
		}
	}

	if err := b.walkTypes(); err != nil {
		return nil, err
	}
	b.logger.WithFields(logrus.Fields{"phase": "walk", "types": len(b.pendingOrder)}).Debug("types walked")

	for _, p := range b.plugins {
		if p.OnBeforeBuild == nil {
			continue
		}
		if err := p.OnBeforeBuild(b.lens); err != nil {
			return nil, errors.Wrapf(err, "%v plugin", p.Name)
		}
		if err := b.walkTypes(); err != nil {
			return nil, err
		}
	}

	if err := b.checkForInterfaceCycles(); err != nil {
		return nil, err
	}

	if !b.HasType("Query") {
		if len(b.objectExtensions["Query"]) > 0 {
			// an extended query type starts out empty rather than with the fallback field
			if err := b.AddType(ObjectType(ObjectConfig{Name: "Query"})); err != nil {
				return nil, err
			}
		} else {
			b.pendingOrder = append(b.pendingOrder, "Query")
		}
	}
	if err := b.buildPendingTypes(); err != nil {
		return nil, err
	}
	if err := b.buildExtendedTypes(); err != nil {
		return nil, err
	}
	b.logger.WithFields(logrus.Fields{"phase": "build", "types": len(b.final)}).Debug("types built")

	if err := b.finalizeTypes(); err != nil {
		return nil, err
	}

	s, err := b.assembleSchema()
	if err != nil {
		return nil, err
	}

	for _, p := range b.plugins {
		if p.OnAfterBuild == nil {
			continue
		}
		if err := p.OnAfterBuild(s); err != nil {
			return nil, errors.Wrapf(err, "%v plugin", p.Name)
		}
	}

	if len(b.missingTypes) > 0 {
		b.logger.WithFields(logrus.Fields{"phase": "build", "missing": len(b.missingTypes)}).Debug("schema has missing types")
	}

	return &Result{
		Schema:       s,
		MissingTypes: b.missingTypes,
		FinalConfig:  b.finalConfig,
	}, nil
}

// buildPendingTypes builds pending types in the order they were added, including any that are
// added along the way.
func (b *Builder) buildPendingTypes() error {
	for ; b.nextPending < len(b.pendingOrder); b.nextPending++ {
		if err := b.walkTypes(); err != nil {
			return err
		}
		name := b.pendingOrder[b.nextPending]
		if _, ok := b.final[name]; ok {
			continue
		}
		if _, err := b.getOrBuildType(TypeName(name), false); err != nil {
			return err
		}
	}
	return b.walkTypes()
}

// buildExtendedTypes creates empty types for extensions whose types were never defined.
func (b *Builder) buildExtendedTypes() error {
	for _, name := range sortedKeys(b.objectExtensions) {
		if _, ok := b.final[name]; ok {
			return configErrorf(name, "only objects and interfaces defined by the builder can be extended")
		}
		if err := b.AddType(ObjectType(ObjectConfig{Name: name})); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(b.inputExtensions) {
		if _, ok := b.final[name]; ok {
			return configErrorf(name, "only input objects defined by the builder can be extended")
		}
		if err := b.AddType(InputObjectType(InputObjectConfig{Name: name})); err != nil {
			return err
		}
	}
	return b.buildPendingTypes()
}

// finalizeTypes forces every lazy type. Doing so may add and build more types, so this repeats
// until nothing is left.
func (b *Builder) finalizeTypes() error {
	for {
		if err := b.buildPendingTypes(); err != nil {
			return err
		}
		var names []string
		for _, name := range sortedKeys(b.final) {
			if lazy, ok := b.final[name].(schema.LazyType); ok && !lazy.IsFinalized() {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			return nil
		}
		for _, name := range names {
			if err := b.final[name].(schema.LazyType).Finalize(); err != nil {
				return errors.Wrapf(err, "unable to finalize %v", name)
			}
		}
	}
}

func (b *Builder) assembleSchema() (*schema.Schema, error) {
	query, ok := b.final["Query"].(*schema.ObjectType)
	if !ok {
		return nil, configErrorf("Query", "the query type must be an object")
	}
	def := &schema.SchemaDefinition{
		Directives: map[string]*schema.DirectiveDefinition{},
		Query:      query,
		Extensions: map[string]interface{}{},
	}
	if t, ok := b.final["Mutation"]; ok {
		if def.Mutation, ok = t.(*schema.ObjectType); !ok {
			return nil, configErrorf("Mutation", "the mutation type must be an object")
		}
	}
	if t, ok := b.final["Subscription"]; ok {
		if def.Subscription, ok = t.(*schema.ObjectType); !ok {
			return nil, configErrorf("Subscription", "the subscription type must be an object")
		}
	}
	for _, name := range sortedKeys(b.final) {
		def.AdditionalTypes = append(def.AdditionalTypes, b.final[name])
	}

	b.extension.Config = b.finalConfig
	b.extension.DynamicInputMethods = sortedKeys(b.dynamicInputMethods)
	b.extension.DynamicOutputMethods = sortedKeys(b.dynamicOutputMethods)
	b.extension.DynamicOutputProperties = sortedKeys(b.dynamicOutputProperties)
	for k, v := range b.config.Extensions {
		def.Extensions[k] = v
	}
	def.Extensions[ExtensionKey] = b.extension

	s, err := schema.New(def)
	if err != nil {
		return nil, errors.Wrap(err, "invalid schema")
	}
	return s, nil
}

// getOrBuildType resolves a reference to a named type, building it if necessary. fromObject
// indicates whether the reference is the type of an output field.
func (b *Builder) getOrBuildType(ref TypeRef, fromObject bool) (schema.NamedType, error) {
	var name string
	switch ref := ref.(type) {
	case TypeName:
		name = string(ref)
	case NamedDef:
		name = ref.Name()
		if _, ok := b.lookupDef(name); !ok {
			if err := b.AddType(ref); err != nil {
				return nil, err
			}
		}
	default:
		return nil, configErrorf("", "%T can't be used as a named type", ref)
	}

	if t, ok := schema.BuiltInTypes[name]; ok {
		return t, nil
	} else if t, ok := b.final[name]; ok {
		return t, nil
	} else if b.building[name] {
		return nil, &CircularBuildError{Building: name}
	} else if def, ok := b.pending[name]; ok {
		return b.buildPendingType(def)
	}
	return b.missingType(name, fromObject)
}

func (b *Builder) buildPendingType(def NamedDef) (schema.NamedType, error) {
	name := def.Name()
	b.building[name] = true
	defer delete(b.building, name)

	var t schema.NamedType
	var err error
	switch def := def.(type) {
	case *ObjectTypeDef:
		t, err = b.buildObjectType(def)
	case *InterfaceTypeDef:
		t, err = b.buildInterfaceType(def)
	case *UnionTypeDef:
		t, err = b.buildUnionType(def)
	case *EnumTypeDef:
		t, err = b.buildEnumType(def)
	case *ScalarTypeDef:
		t = b.buildScalarType(def)
	case *InputObjectTypeDef:
		t, err = b.buildInputObjectType(def)
	default:
		b.logger.WithFields(logrus.Fields{"type": name, "kind": def.Kind()}).Warn("unknown definition kind")
		return nil, configErrorf(name, "unable to build definition of kind %v", def.Kind())
	}
	if err != nil {
		return nil, err
	}

	delete(b.pending, name)
	b.defined[name] = def
	b.final[name] = t
	return t, nil
}

func (b *Builder) missingType(name string, fromObject bool) (schema.NamedType, error) {
	for _, p := range b.plugins {
		if p.OnMissingType == nil {
			continue
		}
		def, err := p.OnMissingType(name, b.lens)
		if err != nil {
			return nil, errors.Wrapf(err, "%v plugin", p.Name)
		} else if def == nil {
			continue
		}
		named, ok := def.(NamedDef)
		if !ok {
			return nil, configErrorf(name, "%v plugin provided a %v in place of a missing type", p.Name, def.Kind())
		}
		if err := b.AddType(def); err != nil {
			return nil, err
		}
		return b.getOrBuildType(TypeName(named.Name()), fromObject)
	}

	if name == "Query" {
		err := b.AddType(QueryType(ObjectConfig{
			Definition: func(t *ObjectDefinitionBlock) {
				t.Field("ok", FieldConfig{
					Type: NonNull(Ref("Boolean")),
					Resolve: func(schema.FieldContext) (interface{}, error) {
						return true, nil
					},
				})
			},
		}))
		if err != nil {
			return nil, err
		}
		return b.getOrBuildType(TypeName("Query"), fromObject)
	}

	if _, ok := b.missingTypes[name]; !ok {
		b.missingTypes[name] = MissingType{
			Name:       name,
			FromObject: fromObject,
		}
	}
	return UnknownTypeScalar, nil
}

func (b *Builder) addSourceType(typeName, sourceType string) {
	if sourceType != "" {
		b.extension.SourceTypes[typeName] = sourceType
	}
}

func sortedKeys[T any](m map[string]T) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
