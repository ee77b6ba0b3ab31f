package schemafu

import (
	"sort"
	"strconv"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

type EnumMember struct {
	Name string

	// If nil, the member's name is used as its value.
	Value interface{}

	Description string
	Deprecation string
}

type EnumConfig struct {
	Name        string
	Description string

	// Members may be given as a []string, a []EnumMember, a []interface{} containing strings and
	// EnumMembers, or a map[string]interface{} of names to values. Map keys that are integers are
	// ignored.
	Members interface{}

	SourceType string
	Extensions map[string]interface{}
}

type EnumTypeDef struct {
	config EnumConfig
}

func EnumType(cfg EnumConfig) *EnumTypeDef {
	return &EnumTypeDef{config: cfg}
}

func (d *EnumTypeDef) Kind() Kind         { return KindEnum }
func (d *EnumTypeDef) Name() string       { return d.config.Name }
func (d *EnumTypeDef) Config() EnumConfig { return d.config }

func enumMembers(typeName string, members interface{}) ([]EnumMember, error) {
	var ret []EnumMember
	switch members := members.(type) {
	case nil:
	case []string:
		for _, name := range members {
			ret = append(ret, EnumMember{Name: name})
		}
	case []EnumMember:
		ret = append(ret, members...)
	case []interface{}:
		for _, member := range members {
			switch member := member.(type) {
			case string:
				ret = append(ret, EnumMember{Name: member})
			case EnumMember:
				ret = append(ret, member)
			case *EnumMember:
				ret = append(ret, *member)
			default:
				return nil, configErrorf(typeName, "enum members must be strings or EnumMembers, got %T", member)
			}
		}
	case map[string]interface{}:
		names := make([]string, 0, len(members))
		for name := range members {
			if _, err := strconv.Atoi(name); err == nil {
				continue
			}
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			ret = append(ret, EnumMember{Name: name, Value: members[name]})
		}
	default:
		return nil, configErrorf(typeName, "unsupported enum members type %T", members)
	}
	return ret, nil
}

func (b *Builder) buildEnumType(def *EnumTypeDef) (*schema.EnumType, error) {
	cfg := def.config
	members, err := enumMembers(cfg.Name, cfg.Members)
	if err != nil {
		return nil, err
	} else if len(members) == 0 {
		return nil, configErrorf(cfg.Name, "enums must have at least one member")
	}
	ret := &schema.EnumType{
		Name:        cfg.Name,
		Description: cfg.Description,
		Values:      make(map[string]*schema.EnumValueDefinition, len(members)),
		Extensions:  cfg.Extensions,
	}
	for _, member := range members {
		ret.Values[member.Name] = &schema.EnumValueDefinition{
			Description:       member.Description,
			DeprecationReason: member.Deprecation,
			Value:             member.Value,
		}
	}
	b.addSourceType(cfg.Name, cfg.SourceType)
	return ret, nil
}
