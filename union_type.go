package schemafu

import (
	"github.com/ccbrown/schema-fu/graphql/schema"
)

type UnionConfig struct {
	Name        string
	Description string

	// The definition must declare at least one member.
	Definition func(t *UnionDefinitionBlock)

	ResolveType func(interface{}) string
	SourceType  string
	Extensions  map[string]interface{}
}

type UnionTypeDef struct {
	config UnionConfig
}

func UnionType(cfg UnionConfig) *UnionTypeDef {
	return &UnionTypeDef{config: cfg}
}

func (d *UnionTypeDef) Kind() Kind          { return KindUnion }
func (d *UnionTypeDef) Name() string        { return d.config.Name }
func (d *UnionTypeDef) Config() UnionConfig { return d.config }

func (b *Builder) buildUnionType(def *UnionTypeDef) (*schema.UnionType, error) {
	cfg := def.config
	var members []TypeRef
	state := &blockState{
		builder:  b,
		typeName: cfg.Name,
		stage:    StageBuild,
		hooks: &blockHooks{
			addMembers: func(types []TypeRef) error {
				members = append(members, types...)
				return nil
			},
		},
	}
	if cfg.Definition != nil {
		cfg.Definition(&UnionDefinitionBlock{state: state})
	}
	if state.err != nil {
		return nil, state.err
	} else if len(members) == 0 {
		return nil, configErrorf(cfg.Name, "unions must declare at least one member")
	}
	ret := &schema.UnionType{
		Name:        cfg.Name,
		Description: cfg.Description,
		ResolveType: b.abstractResolveType(cfg.ResolveType),
		Extensions:  cfg.Extensions,
	}
	ret.LazyMemberTypes = func() ([]*schema.ObjectType, error) {
		objects := make([]*schema.ObjectType, 0, len(members))
		for _, ref := range members {
			t, err := b.getOrBuildType(ref, false)
			if err != nil {
				return nil, err
			}
			obj, ok := t.(*schema.ObjectType)
			if !ok {
				return nil, configErrorf(cfg.Name, "union members must be object types, but %v is not", t.TypeName())
			}
			objects = append(objects, obj)
		}
		return objects, nil
	}
	b.addSourceType(cfg.Name, cfg.SourceType)
	return ret, nil
}
