package plugins

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"

	schemafu "github.com/ccbrown/schema-fu"
	"github.com/ccbrown/schema-fu/graphql/schema"
)

// NodeType describes a type whose values can be fetched by global id.
type NodeType struct {
	Name string

	// GetByIds accepts local ids and returns the values that exist, in any order.
	GetByIds func(ctx context.Context, ids []string) ([]interface{}, error)
}

// NodePluginConfig configures the Node plugin.
type NodePluginConfig struct {
	// Invoked to get nodes by their global ids. If nil, ids are decoded with ParseGlobalId and
	// dispatched to the matching entry of Types.
	ResolveNodes func(ctx context.Context, ids []string) ([]interface{}, error)

	Types []NodeType

	// Returns the name of the object type of a resolved node.
	ResolveType func(interface{}) string

	// Declares fields shared by every node in addition to id.
	AdditionalFields func(t *schemafu.InterfaceDefinitionBlock)
}

// GlobalId returns an opaque id for the given type and local id.
func GlobalId(typeName, id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(typeName + ":" + id))
}

// ParseGlobalId reverses GlobalId.
func ParseGlobalId(globalId string) (typeName, id string, err error) {
	b, err := base64.RawURLEncoding.DecodeString(globalId)
	if err != nil {
		return "", "", errors.Wrap(err, "malformed global id")
	}
	typeName, id, ok := strings.Cut(string(b), ":")
	if !ok || typeName == "" {
		return "", "", errors.New("malformed global id")
	}
	return typeName, id, nil
}

// Node adds the Node interface and the node and nodes query fields.
func Node(cfg NodePluginConfig) *schemafu.Plugin {
	resolveNodes := cfg.ResolveNodes
	if resolveNodes == nil {
		resolveNodes = cfg.resolveNodesByType
	}

	return &schemafu.Plugin{
		Name: "Node",
		OnInstall: func(b schemafu.Lens) error {
			if err := b.AddType(schemafu.InterfaceType(schemafu.InterfaceConfig{
				Name:        "Node",
				Description: "An object with a globally unique id.",
				ResolveType: cfg.ResolveType,
				Definition: func(t *schemafu.InterfaceDefinitionBlock) {
					t.NonNull().ID("id")
					if cfg.AdditionalFields != nil {
						cfg.AdditionalFields(t)
					}
				},
			})); err != nil {
				return err
			}
			return b.AddType(schemafu.ExtendType(schemafu.ExtendTypeConfig{
				Type: "Query",
				Definition: func(t *schemafu.ObjectDefinitionBlock) {
					t.Nullable().Field("node", schemafu.FieldConfig{
						Type: schemafu.Ref("Node"),
						Args: map[string]schemafu.TypeRef{
							"id": schemafu.NonNull(schemafu.IDArg()),
						},
						Cost: schema.FieldResolverCost(1),
						Resolve: func(ctx schema.FieldContext) (interface{}, error) {
							nodes, err := resolveNodes(ctx.Context, []string{ctx.Arguments["id"].(string)})
							if err != nil || len(nodes) == 0 {
								return nil, err
							}
							return nodes[0], nil
						},
					})
					t.Nullable().List().Nullable().Field("nodes", schemafu.FieldConfig{
						Type:        schemafu.Ref("Node"),
						Description: "Gets nodes for multiple ids. Non-existent nodes are not returned and the order of the returned nodes is arbitrary, so clients should check their ids.",
						Args: map[string]schemafu.TypeRef{
							"ids": schemafu.NonNull(schemafu.List(schemafu.NonNull(schemafu.IDArg()))),
						},
						Cost: func(ctx schema.FieldCostContext) schema.FieldCost {
							ids, _ := ctx.Arguments["ids"].([]interface{})
							return schema.FieldCost{
								Resolver:   1,
								Multiplier: len(ids),
							}
						},
						Resolve: func(ctx schema.FieldContext) (interface{}, error) {
							var ids []string
							for _, id := range ctx.Arguments["ids"].([]interface{}) {
								ids = append(ids, id.(string))
							}
							return resolveNodes(ctx.Context, ids)
						},
					})
				},
			}))
		},
	}
}

func (cfg *NodePluginConfig) resolveNodesByType(ctx context.Context, ids []string) ([]interface{}, error) {
	idsByType := map[string][]string{}
	var typeNames []string
	for _, globalId := range ids {
		typeName, id, err := ParseGlobalId(globalId)
		if err != nil {
			continue
		}
		if _, ok := idsByType[typeName]; !ok {
			typeNames = append(typeNames, typeName)
		}
		idsByType[typeName] = append(idsByType[typeName], id)
	}

	var ret []interface{}
	for _, typeName := range typeNames {
		for _, nodeType := range cfg.Types {
			if nodeType.Name != typeName {
				continue
			}
			nodes, err := nodeType.GetByIds(ctx, idsByType[typeName])
			if err != nil {
				return nil, errors.Wrapf(err, "error getting %v nodes", typeName)
			}
			ret = append(ret, nodes...)
		}
	}
	return ret, nil
}
