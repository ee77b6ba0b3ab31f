package schemafu

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

type ObjectConfig struct {
	Name        string
	Description string
	Definition  func(t *ObjectDefinitionBlock)

	// If given, this is used to determine whether a value belongs to this type when it's resolved
	// through an interface or union.
	IsTypeOf func(interface{}) bool

	// The name of the Go type values of this type are represented by. This is only used by code
	// generators.
	SourceType string

	NonNullDefaults *TypeNonNullDefaults
	Extensions      map[string]interface{}
}

type ObjectTypeDef struct {
	config ObjectConfig
}

func ObjectType(cfg ObjectConfig) *ObjectTypeDef {
	return &ObjectTypeDef{config: cfg}
}

func (d *ObjectTypeDef) Kind() Kind           { return KindObject }
func (d *ObjectTypeDef) Name() string         { return d.config.Name }
func (d *ObjectTypeDef) Config() ObjectConfig { return d.config }

// QueryType defines the root query type.
func QueryType(cfg ObjectConfig) *ObjectTypeDef {
	cfg.Name = "Query"
	return ObjectType(cfg)
}

// MutationType defines the root mutation type.
func MutationType(cfg ObjectConfig) *ObjectTypeDef {
	cfg.Name = "Mutation"
	return ObjectType(cfg)
}

// SubscriptionType defines the root subscription type.
func SubscriptionType(cfg ObjectConfig) *ObjectTypeDef {
	cfg.Name = "Subscription"
	return ObjectType(cfg)
}

// outputDeclarations is everything an object or interface's definition and extensions declared.
type outputDeclarations struct {
	typeName      string
	fields        []*OutputField
	interfaces    []TypeRef
	modifications map[string]FieldModification
}

func (d *outputDeclarations) addField(logger logrus.FieldLogger, f *OutputField) {
	for i, existing := range d.fields {
		if existing.Name == f.Name {
			logger.WithFields(logrus.Fields{
				"type":  d.typeName,
				"field": f.Name,
			}).Warn("field redefined")
			d.fields[i] = f
			return
		}
	}
	d.fields = append(d.fields, f)
}

// declareOutputType runs an object or interface's definition, the object definition hooks, and
// its extensions, in that order. The hooks only run for objects.
func (b *Builder) declareOutputType(kind Kind, typeName string, definition func(*ObjectDefinitionBlock)) (*outputDeclarations, error) {
	decl := &outputDeclarations{
		typeName:      typeName,
		modifications: map[string]FieldModification{},
	}
	state := &blockState{
		builder:  b,
		typeName: typeName,
		stage:    StageBuild,
		hooks: &blockHooks{
			addField: func(f *OutputField) error {
				for _, p := range b.plugins {
					if p.OnAddOutputField == nil {
						continue
					}
					replacement, err := p.OnAddOutputField(f)
					if err != nil {
						return errors.Wrapf(err, "%v plugin", p.Name)
					} else if replacement != nil {
						f = replacement
					}
				}
				decl.addField(b.logger, f)
				return nil
			},
			addInterfaces: func(interfaces []TypeRef) error {
				decl.interfaces = append(decl.interfaces, interfaces...)
				return nil
			},
			addModification: func(field string, mod FieldModification) error {
				decl.modifications[field] = mod
				return nil
			},
		},
	}
	block := &ObjectDefinitionBlock{OutputDefinitionBlock{state: state}}
	if definition != nil {
		definition(block)
	}
	if state.err != nil {
		return nil, state.err
	}
	for _, p := range b.plugins {
		if p.OnObjectDefinition == nil || kind != KindObject {
			continue
		}
		if err := p.OnObjectDefinition(block); err != nil {
			return nil, errors.Wrapf(err, "%v plugin", p.Name)
		}
	}
	for _, ext := range b.objectExtensions[typeName] {
		if ext.config.Definition != nil {
			ext.config.Definition(block)
		}
	}
	delete(b.objectExtensions, typeName)
	b.consumedExtensions[typeName] = true
	return decl, state.err
}

func (b *Builder) buildObjectType(def *ObjectTypeDef) (*schema.ObjectType, error) {
	cfg := def.config
	decl, err := b.declareOutputType(KindObject, cfg.Name, cfg.Definition)
	if err != nil {
		return nil, err
	}
	ret := &schema.ObjectType{
		Name:        cfg.Name,
		Description: cfg.Description,
		IsTypeOf:    cfg.IsTypeOf,
		Extensions:  cfg.Extensions,
	}
	ret.LazyInterfaces = func() ([]*schema.InterfaceType, error) {
		return b.buildInterfaceList(cfg.Name, decl.interfaces)
	}
	ret.LazyFields = func() (map[string]*schema.FieldDefinition, error) {
		return b.buildOutputFields(ret.ImplementedInterfaces, decl, cfg.NonNullDefaults)
	}
	b.addSourceType(cfg.Name, cfg.SourceType)
	return ret, nil
}

// buildInterfaceList resolves the declared interfaces along with the interfaces they implement.
// Each interface appears once, in the order it's first seen.
func (b *Builder) buildInterfaceList(typeName string, refs []TypeRef) ([]*schema.InterfaceType, error) {
	var ret []*schema.InterfaceType
	for _, ref := range refs {
		t, err := b.getOrBuildType(ref, false)
		if err != nil {
			return nil, err
		}
		iface, ok := t.(*schema.InterfaceType)
		if !ok {
			return nil, configErrorf(typeName, "%v is not an interface", t.TypeName())
		}
		if err := iface.Finalize(); err != nil {
			return nil, err
		}
		ret = append(ret, iface)
		ret = append(ret, iface.Interfaces...)
	}
	return lo.UniqBy(ret, func(iface *schema.InterfaceType) string {
		return iface.Name
	}), nil
}

// buildOutputFields builds the fields inherited from the given interfaces, applies the
// declared modifications to them, then layers the declared fields on top.
func (b *Builder) buildOutputFields(interfaces []*schema.InterfaceType, decl *outputDeclarations, perType *TypeNonNullDefaults) (map[string]*schema.FieldDefinition, error) {
	ret := map[string]*schema.FieldDefinition{}
	inherited := map[string]bool{}
	for _, iface := range interfaces {
		if err := iface.Finalize(); err != nil {
			return nil, err
		}
		for _, name := range sortedKeys(iface.Fields) {
			field := iface.Fields[name]
			inherited[name] = true
			mod, ok := decl.modifications[name]
			if !ok {
				copy := *field
				ret[name] = &copy
				continue
			}
			modified, err := b.modifyField(decl.typeName, name, field, mod, perType)
			if err != nil {
				return nil, err
			}
			ret[name] = modified
		}
	}
	for _, name := range sortedKeys(decl.modifications) {
		if !inherited[name] {
			b.logger.WithFields(logrus.Fields{
				"type":  decl.typeName,
				"field": name,
			}).Warn("modification of a field that isn't inherited from an interface")
		}
	}
	for _, f := range decl.fields {
		field, err := b.buildOutputField(f, perType)
		if err != nil {
			return nil, err
		}
		ret[f.Name] = field
	}
	return ret, nil
}

func (b *Builder) modifyField(typeName, fieldName string, field *schema.FieldDefinition, mod FieldModification, perType *TypeNonNullDefaults) (*schema.FieldDefinition, error) {
	ret := *field
	if mod.Type != nil {
		core, wrapping := unwrapRef(mod.Type)
		t, err := b.getOrBuildType(core, true)
		if err != nil {
			return nil, err
		}
		if len(wrapping) == 0 {
			ret.Type = rewrap(t, wrappingOf(field.Type))
		} else {
			// an explicitly wrapped replacement is taken as written, without non-null defaults
			ret.Type = rewrap(t, wrapping)
		}
	}
	if mod.Args != nil {
		args, err := b.buildArgs(typeName, fieldName, mod.Args, perType)
		if err != nil {
			return nil, err
		}
		for name, arg := range field.Arguments {
			args[name] = arg
		}
		ret.Arguments = args
	}
	if mod.Description != "" {
		ret.Description = mod.Description
	}
	if mod.Deprecation != "" {
		ret.DeprecationReason = mod.Deprecation
	}
	if mod.Extensions != nil {
		ret.Extensions = mod.Extensions
	}
	if mod.Resolve != nil {
		ret.Resolve = b.makeFinalResolver(&OutputField{
			Name:       fieldName,
			ParentType: typeName,
			FieldConfig: FieldConfig{
				Resolve:     mod.Resolve,
				Description: ret.Description,
				Extensions:  ret.Extensions,
			},
		})
	}
	return &ret, nil
}

func (b *Builder) buildOutputField(f *OutputField, perType *TypeNonNullDefaults) (*schema.FieldDefinition, error) {
	core, wrapping := unwrapRef(f.Type)
	t, err := b.getOrBuildType(core, true)
	if err != nil {
		return nil, err
	} else if !t.IsOutputType() {
		return nil, configErrorf(f.ParentType, "%v is not an output type and can't be used for the %v field", t.TypeName(), f.Name)
	}
	args, err := b.buildArgs(f.ParentType, f.Name, f.Args, perType)
	if err != nil {
		return nil, err
	}
	ret := &schema.FieldDefinition{
		Description:       f.Description,
		Arguments:         args,
		Type:              rewrap(t, finalizeWrapping(b.finalConfig.nonNullDefault(perType, false), wrapping, f.Wrapping)),
		DeprecationReason: f.Deprecation,
		Cost:              f.Cost,
		Resolve:           b.makeFinalResolver(f),
		Extensions:        f.Extensions,
	}
	if f.Subscribe != nil {
		ret.Subscribe = b.makeFinalSubscribe(f)
	}
	return ret, nil
}

func (b *Builder) buildArgs(typeName, fieldName string, args map[string]TypeRef, perType *TypeNonNullDefaults) (map[string]*schema.InputValueDefinition, error) {
	ret := make(map[string]*schema.InputValueDefinition, len(args))
	for _, name := range sortedKeys(args) {
		arg := &FinalArgConfig{
			ParentType: typeName,
			FieldName:  fieldName,
			ArgName:    name,
			ArgConfig:  normalizeArgWrapping(args[name]).config,
		}
		for _, p := range b.plugins {
			if p.OnAddArg == nil {
				continue
			}
			replacement, err := p.OnAddArg(arg)
			if err != nil {
				return nil, errors.Wrapf(err, "%v plugin", p.Name)
			} else if replacement != nil {
				arg = replacement
			}
		}
		if arg.Type == nil {
			return nil, configErrorf(typeName, "missing type for %v argument of the %v field", name, fieldName)
		}
		core, wrapping := unwrapRef(arg.Type)
		t, err := b.getOrBuildType(core, false)
		if err != nil {
			return nil, err
		} else if !t.IsInputType() {
			return nil, configErrorf(typeName, "%v is not an input type and can't be used for the %v argument of the %v field", t.TypeName(), name, fieldName)
		}
		ret[name] = &schema.InputValueDefinition{
			Description:       arg.Description,
			Type:              rewrap(t, finalizeWrapping(b.finalConfig.nonNullDefault(perType, true), wrapping, nil)),
			DeprecationReason: arg.Deprecation,
			DefaultValue:      arg.Default,
			Extensions:        arg.Extensions,
		}
	}
	return ret, nil
}

func (b *Builder) createResolverInfo(f *OutputField) CreateFieldResolverInfo {
	return CreateFieldResolverInfo{
		TypeName:  f.ParentType,
		FieldName: f.Name,
		Field:     f,
		Config:    b.finalConfig,
	}
}

// makeFinalResolver wraps the field's resolver with the middleware of every plugin that applies
// to it.
func (b *Builder) makeFinalResolver(f *OutputField) ResolverFunc {
	base := f.Resolve
	if base == nil {
		base = DefaultFieldResolver(f.Name)
	}
	info := b.createResolverInfo(f)
	var middleware []Middleware
	for _, p := range b.plugins {
		if p.OnCreateFieldResolver != nil {
			middleware = append(middleware, p.OnCreateFieldResolver(info))
		}
	}
	return composeMiddleware(base, middleware)
}

func (b *Builder) makeFinalSubscribe(f *OutputField) ResolverFunc {
	info := b.createResolverInfo(f)
	var middleware []Middleware
	for _, p := range b.plugins {
		if p.OnCreateFieldSubscribe != nil {
			middleware = append(middleware, p.OnCreateFieldSubscribe(info))
		}
	}
	return composeMiddleware(f.Subscribe, middleware)
}
