package schemafu

import (
	"reflect"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

type InterfaceConfig struct {
	Name        string
	Description string
	Definition  func(t *InterfaceDefinitionBlock)

	// Returns the name of the object type of a resolved value.
	ResolveType func(interface{}) string

	SourceType      string
	NonNullDefaults *TypeNonNullDefaults
	Extensions      map[string]interface{}
}

type InterfaceTypeDef struct {
	config InterfaceConfig
}

func InterfaceType(cfg InterfaceConfig) *InterfaceTypeDef {
	return &InterfaceTypeDef{config: cfg}
}

func (d *InterfaceTypeDef) Kind() Kind              { return KindInterface }
func (d *InterfaceTypeDef) Name() string            { return d.config.Name }
func (d *InterfaceTypeDef) Config() InterfaceConfig { return d.config }

func (b *Builder) buildInterfaceType(def *InterfaceTypeDef) (*schema.InterfaceType, error) {
	cfg := def.config
	decl, err := b.declareOutputType(KindInterface, cfg.Name, cfg.Definition)
	if err != nil {
		return nil, err
	}
	ret := &schema.InterfaceType{
		Name:        cfg.Name,
		Description: cfg.Description,
		ResolveType: b.abstractResolveType(cfg.ResolveType),
		Extensions:  cfg.Extensions,
	}
	ret.LazyInterfaces = func() ([]*schema.InterfaceType, error) {
		return b.buildInterfaceList(cfg.Name, decl.interfaces)
	}
	ret.LazyFields = func() (map[string]*schema.FieldDefinition, error) {
		return b.buildOutputFields(ret.Interfaces, decl, cfg.NonNullDefaults)
	}
	b.addSourceType(cfg.Name, cfg.SourceType)
	return ret, nil
}

// abstractResolveType returns the resolve type function for a union or interface. If none is given
// and the typename strategy is enabled, values are asked for their type name.
func (b *Builder) abstractResolveType(f func(interface{}) string) func(interface{}) string {
	if f == nil && b.finalConfig.Features.strategies().Typename {
		return TypenameResolveType
	}
	return f
}

// TypenameResolveType returns the value of the "__typename" key of a map, the result of a
// GraphQLTypeName method, or the value of a Typename struct field.
func TypenameResolveType(v interface{}) string {
	switch v := v.(type) {
	case interface{ GraphQLTypeName() string }:
		return v.GraphQLTypeName()
	case map[string]interface{}:
		name, _ := v["__typename"].(string)
		return name
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		if f := rv.FieldByName("Typename"); f.IsValid() && f.Kind() == reflect.String {
			return f.String()
		}
	}
	return ""
}
