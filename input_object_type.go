package schemafu

import (
	"github.com/pkg/errors"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

type InputObjectConfig struct {
	Name        string
	Description string
	Definition  func(t *InputDefinitionBlock)

	// Converts default values of this type to maps for introspection. If nil, default values
	// must already be maps.
	ResultCoercion func(interface{}) (map[string]interface{}, error)

	SourceType      string
	NonNullDefaults *TypeNonNullDefaults
	Extensions      map[string]interface{}
}

type InputObjectTypeDef struct {
	config InputObjectConfig
}

func InputObjectType(cfg InputObjectConfig) *InputObjectTypeDef {
	return &InputObjectTypeDef{config: cfg}
}

func (d *InputObjectTypeDef) Kind() Kind                { return KindInputObject }
func (d *InputObjectTypeDef) Name() string              { return d.config.Name }
func (d *InputObjectTypeDef) Config() InputObjectConfig { return d.config }

func (b *Builder) buildInputObjectType(def *InputObjectTypeDef) (*schema.InputObjectType, error) {
	cfg := def.config
	var fields []*InputField
	state := &blockState{
		builder:  b,
		typeName: cfg.Name,
		stage:    StageBuild,
		hooks: &blockHooks{
			addInputField: func(f *InputField) error {
				for _, p := range b.plugins {
					if p.OnAddInputField == nil {
						continue
					}
					replacement, err := p.OnAddInputField(f)
					if err != nil {
						return errors.Wrapf(err, "%v plugin", p.Name)
					} else if replacement != nil {
						f = replacement
					}
				}
				for i, existing := range fields {
					if existing.Name == f.Name {
						fields[i] = f
						return nil
					}
				}
				fields = append(fields, f)
				return nil
			},
		},
	}
	block := &InputDefinitionBlock{state: state}
	if cfg.Definition != nil {
		cfg.Definition(block)
	}
	if state.err != nil {
		return nil, state.err
	}
	for _, p := range b.plugins {
		if p.OnInputObjectDefinition == nil {
			continue
		}
		if err := p.OnInputObjectDefinition(block); err != nil {
			return nil, errors.Wrapf(err, "%v plugin", p.Name)
		}
	}
	for _, ext := range b.inputExtensions[cfg.Name] {
		if ext.config.Definition != nil {
			ext.config.Definition(block)
		}
	}
	delete(b.inputExtensions, cfg.Name)
	b.consumedInputExtensions[cfg.Name] = true
	if state.err != nil {
		return nil, state.err
	}

	ret := &schema.InputObjectType{
		Name:           cfg.Name,
		Description:    cfg.Description,
		ResultCoercion: cfg.ResultCoercion,
		Extensions:     cfg.Extensions,
	}
	ret.LazyFields = func() (map[string]*schema.InputValueDefinition, error) {
		nonNull := b.finalConfig.nonNullDefault(cfg.NonNullDefaults, true)
		values := make(map[string]*schema.InputValueDefinition, len(fields))
		for _, f := range fields {
			core, wrapping := unwrapRef(f.Type)
			t, err := b.getOrBuildType(core, false)
			if err != nil {
				return nil, err
			} else if !t.IsInputType() {
				return nil, configErrorf(cfg.Name, "%v is not an input type and can't be used for the %v field", t.TypeName(), f.Name)
			}
			values[f.Name] = &schema.InputValueDefinition{
				Description:       f.Description,
				Type:              rewrap(t, finalizeWrapping(nonNull, wrapping, f.Wrapping)),
				DeprecationReason: f.Deprecation,
				DefaultValue:      f.Default,
				Extensions:        f.Extensions,
			}
		}
		return values, nil
	}
	b.addSourceType(cfg.Name, cfg.SourceType)
	return ret, nil
}
