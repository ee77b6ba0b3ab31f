package schemafu

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config defines the types and plugins a schema is built from.
type Config struct {
	// If not given, logrus.StandardLogger() is used.
	Logger logrus.FieldLogger

	// The types to build the schema from. Each element may be a definition, a pre-built
	// schema.NamedType, a *schema.Schema, or a slice or map of any of those. Types referenced by
	// these don't need to be listed.
	Types []interface{}

	// Plugins are invoked in order. If empty, FieldAuthorizePlugin is used.
	Plugins []*Plugin

	// Whether fields and arguments are non-null unless stated otherwise. Individual types can
	// override these.
	NonNullDefaults NonNullConfig

	// If nil, only the resolve type strategy is enabled and runtime checks are performed.
	Features *Features

	// Arbitrary options that plugins can read and write via their Lens.
	Options map[string]interface{}

	// Arbitrary metadata attached to the built schema.
	Extensions map[string]interface{}
}

// NonNullConfig holds the schema-wide nullability defaults.
type NonNullConfig struct {
	Input  bool
	Output bool
}

// TypeNonNullDefaults overrides the schema-wide nullability defaults for the fields of a single
// type. Nil values fall back to the schema-wide default.
type TypeNonNullDefaults struct {
	Input  *bool
	Output *bool
}

// AbstractTypeStrategies determine how values are discriminated when resolved through unions and
// interfaces.
type AbstractTypeStrategies struct {
	// Every possible object type defines IsTypeOf.
	IsTypeOf bool

	// The abstract type defines ResolveType.
	ResolveType bool

	// Values carry their type name. Abstract types without a ResolveType function get one that
	// reads the value's "__typename" key or GraphQLTypeName method. Enabling this disables
	// runtime checks.
	Typename bool
}

type Features struct {
	AbstractTypeStrategies *AbstractTypeStrategies

	// Whether MakeSchema verifies that every abstract type can be discriminated according to the
	// enabled strategies. Defaults to true.
	AbstractTypeRuntimeChecks *bool
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

const (
	OptionNonNullDefaults = "nonNullDefaults"
	OptionFeatures        = "features"
)

// FinalConfig is the resolved configuration of a build. Values are immutable: WithOption returns a
// new value with an incremented Version.
type FinalConfig struct {
	Version         int
	NonNullDefaults NonNullConfig
	Features        Features
	Options         map[string]interface{}
}

func newFinalConfig(cfg *Config) FinalConfig {
	ret := FinalConfig{
		NonNullDefaults: cfg.NonNullDefaults,
		Features:        resolveFeatures(cfg.Features),
		Options:         map[string]interface{}{},
	}
	for k, v := range cfg.Options {
		ret.Options[k] = v
	}
	return ret
}

func resolveFeatures(f *Features) Features {
	ret := Features{
		AbstractTypeStrategies:    &AbstractTypeStrategies{ResolveType: true},
		AbstractTypeRuntimeChecks: Bool(true),
	}
	if f == nil {
		return ret
	}
	if f.AbstractTypeStrategies != nil {
		strategies := *f.AbstractTypeStrategies
		ret.AbstractTypeStrategies = &strategies
	}
	if f.AbstractTypeRuntimeChecks != nil {
		ret.AbstractTypeRuntimeChecks = Bool(*f.AbstractTypeRuntimeChecks)
	}
	if ret.AbstractTypeStrategies.Typename {
		ret.AbstractTypeRuntimeChecks = Bool(false)
	}
	return ret
}

// RuntimeChecks reports whether abstract type checks are enabled.
func (f Features) RuntimeChecks() bool {
	return f.AbstractTypeRuntimeChecks == nil || *f.AbstractTypeRuntimeChecks
}

func (f Features) strategies() AbstractTypeStrategies {
	if f.AbstractTypeStrategies == nil {
		return AbstractTypeStrategies{ResolveType: true}
	}
	return *f.AbstractTypeStrategies
}

// Option returns the value of a config option. The known options are OptionNonNullDefaults and
// OptionFeatures. Any other key is looked up in Options.
func (c FinalConfig) Option(key string) (interface{}, bool) {
	switch key {
	case OptionNonNullDefaults:
		return c.NonNullDefaults, true
	case OptionFeatures:
		return c.Features, true
	}
	v, ok := c.Options[key]
	return v, ok
}

// WithOption returns a copy of the config with the given option set.
func (c FinalConfig) WithOption(key string, value interface{}) (FinalConfig, error) {
	ret := c
	ret.Version++
	switch key {
	case OptionNonNullDefaults:
		switch v := value.(type) {
		case NonNullConfig:
			ret.NonNullDefaults = v
		case *NonNullConfig:
			ret.NonNullDefaults = *v
		default:
			return c, errors.Errorf("%v must be a NonNullConfig, got %T", key, value)
		}
	case OptionFeatures:
		switch v := value.(type) {
		case Features:
			ret.Features = resolveFeatures(&v)
		case *Features:
			ret.Features = resolveFeatures(v)
		default:
			return c, errors.Errorf("%v must be Features, got %T", key, value)
		}
	default:
		ret.Options = make(map[string]interface{}, len(c.Options)+1)
		for k, v := range c.Options {
			ret.Options[k] = v
		}
		ret.Options[key] = value
	}
	return ret, nil
}

func (c FinalConfig) nonNullDefault(perType *TypeNonNullDefaults, input bool) bool {
	if perType != nil {
		if input && perType.Input != nil {
			return *perType.Input
		} else if !input && perType.Output != nil {
			return *perType.Output
		}
	}
	if input {
		return c.NonNullDefaults.Input
	}
	return c.NonNullDefaults.Output
}
