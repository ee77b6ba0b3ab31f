package plugins

import (
	"reflect"
	"unicode"

	"github.com/pkg/errors"

	schemafu "github.com/ccbrown/schema-fu"
	"github.com/ccbrown/schema-fu/graphql/schema"
	"github.com/ccbrown/schema-fu/pagination"
)

// ConnectionPluginConfig configures the Connection plugin.
type ConnectionPluginConfig struct {
	// The name of the dynamic output method. Defaults to "connectionField".
	MethodName string

	// If true, connection types get a "nodes" field that lists the nodes of the page's edges
	// directly.
	IncludeNodesField bool

	// Arguments added to every connection field.
	AdditionalArgs map[string]schemafu.TypeRef
}

// ConnectionFieldConfig defines a connection field that adheres to the GraphQL Cursor
// Connections Specification. It's given to the connection method as the second argument after
// the field name:
//
//	t.Dynamic("connectionField", "friends", plugins.ConnectionFieldConfig{...})
type ConnectionFieldConfig struct {
	// The type of the connection's nodes.
	Type schemafu.TypeRef

	// A prefix to use for the connection and edge type names. For example, if you provide
	// "UserFriends", the connection type will be named "UserFriendsConnection" and the edge type
	// will be "UserFriendsEdge". Defaults to the parent type name followed by the capitalized
	// field name.
	TypePrefix string

	Description string

	// Additional arguments for this field.
	Args map[string]schemafu.TypeRef

	// If getting all nodes for the connection is cheap, you can just provide ResolveAllNodes. It
	// should return a slice.
	ResolveAllNodes func(ctx schema.FieldContext) (interface{}, error)

	// Otherwise, ResolveNodes is only required to return the nodes within the range defined by
	// the given cursors, and only up to limit of them. If limit is negative, the last nodes
	// within the range should be returned instead of the first. Extra or out-of-order nodes are
	// fine. They're sorted and filtered automatically.
	ResolveNodes func(ctx schema.FieldContext, after, before interface{}, limit int) (interface{}, error)

	// If you use ResolveNodes, you can optionally provide ResolveTotalCount to add a totalCount
	// field to the connection. If you use ResolveAllNodes, totalCount is always available.
	ResolveTotalCount func(ctx schema.FieldContext) (interface{}, error)

	// Cursors are deserialized into values of this type.
	CursorType reflect.Type

	// Returns the cursor of a node. Its value must be of type CursorType and serializable via
	// msgpack.
	NodeCursor func(node interface{}) interface{}

	// Orders the cursors produced by NodeCursor.
	CursorLess func(a, b interface{}) bool

	// Declares additional fields on the edge type. Edge fields resolve against the node.
	EdgeFields func(t *schemafu.ObjectDefinitionBlock)
}

type cursor struct {
	value interface{}
	less  func(a, b interface{}) bool
}

func (c cursor) LessThan(other cursor) bool {
	return c.less(c.value, other.value)
}

type edge struct {
	Node   interface{}
	cursor cursor
}

func (e edge) Cursor() cursor {
	return e.cursor
}

type connection struct {
	Edges      []edge
	PageInfo   *pageInfo
	totalCount func() (interface{}, error)
}

type pageInfo struct {
	HasPreviousPage bool
	HasNextPage     bool
	StartCursor     *string
	EndCursor       *string
}

// Connection installs a dynamic output method that declares connection fields. The connection,
// edge, and PageInfo types are added to the schema as they're needed.
func Connection(cfg ConnectionPluginConfig) *schemafu.Plugin {
	if cfg.MethodName == "" {
		cfg.MethodName = "connectionField"
	}
	return &schemafu.Plugin{
		Name: "Connection",
		OnInstall: func(b schemafu.Lens) error {
			return b.AddType(schemafu.DynamicOutputMethod(schemafu.DynamicOutputMethodConfig{
				Name: cfg.MethodName,
				Factory: func(ctx schemafu.DynamicOutputMethodContext) error {
					return cfg.declareField(ctx)
				},
			}))
		},
	}
}

func (cfg *ConnectionPluginConfig) declareField(ctx schemafu.DynamicOutputMethodContext) error {
	if len(ctx.Args) != 2 {
		return errors.Errorf("expected a field name and a ConnectionFieldConfig")
	}
	fieldName, ok := ctx.Args[0].(string)
	if !ok {
		return errors.Errorf("expected a field name, got %T", ctx.Args[0])
	}
	var field ConnectionFieldConfig
	switch v := ctx.Args[1].(type) {
	case ConnectionFieldConfig:
		field = v
	case *ConnectionFieldConfig:
		field = *v
	default:
		return errors.Errorf("expected a ConnectionFieldConfig, got %T", ctx.Args[1])
	}

	if field.Type == nil {
		return errors.Errorf("%v: connections must have a node type", fieldName)
	} else if (field.ResolveAllNodes == nil) == (field.ResolveNodes == nil) {
		return errors.Errorf("%v: exactly one of ResolveAllNodes or ResolveNodes must be given", fieldName)
	} else if field.CursorType == nil || field.NodeCursor == nil || field.CursorLess == nil {
		return errors.Errorf("%v: CursorType, NodeCursor, and CursorLess are required", fieldName)
	}

	prefix := field.TypePrefix
	if prefix == "" {
		prefix = ctx.TypeName + upperFirst(fieldName)
	}
	if err := cfg.addTypes(ctx.Builder, prefix, &field); err != nil {
		return err
	}

	args := map[string]schemafu.TypeRef{
		"first":  schemafu.Nullable(schemafu.IntArg()),
		"last":   schemafu.Nullable(schemafu.IntArg()),
		"after":  schemafu.Nullable(schemafu.StringArg()),
		"before": schemafu.Nullable(schemafu.StringArg()),
	}
	for name, arg := range cfg.AdditionalArgs {
		args[name] = arg
	}
	for name, arg := range field.Args {
		args[name] = arg
	}

	ctx.Block.NonNull().Field(fieldName, schemafu.FieldConfig{
		Type:        schemafu.Ref(prefix + "Connection"),
		Description: field.Description,
		Args:        args,
		Cost: func(ctx schema.FieldCostContext) schema.FieldCost {
			args, _ := pagination.ParseArguments(ctx.Arguments)
			return schema.FieldCost{
				Resolver:   1,
				Multiplier: args.MaxCount(),
			}
		},
		Resolve: field.resolve,
	})
	return nil
}

func (cfg *ConnectionPluginConfig) addTypes(b schemafu.Lens, prefix string, field *ConnectionFieldConfig) error {
	if !b.HasType("PageInfo") {
		if err := b.AddType(pageInfoType); err != nil {
			return err
		}
	}

	edgeName := prefix + "Edge"
	if !b.HasType(edgeName) {
		err := b.AddType(schemafu.ObjectType(schemafu.ObjectConfig{
			Name: edgeName,
			Definition: func(t *schemafu.ObjectDefinitionBlock) {
				t.NonNull().String("cursor", schemafu.FieldConfig{
					Cost: schema.FieldResolverCost(0),
					Resolve: func(ctx schema.FieldContext) (interface{}, error) {
						return pagination.EncodeCursor(ctx.Object.(edge).cursor.value)
					},
				})
				t.NonNull().Field("node", schemafu.FieldConfig{
					Type: field.Type,
					Cost: schema.FieldResolverCost(0),
					Resolve: func(ctx schema.FieldContext) (interface{}, error) {
						return ctx.Object.(edge).Node, nil
					},
				})
				if field.EdgeFields != nil {
					field.EdgeFields(t)
				}
			},
		}))
		if err != nil {
			return err
		}
	}

	connectionName := prefix + "Connection"
	if !b.HasType(connectionName) {
		hasTotalCount := field.ResolveAllNodes != nil || field.ResolveTotalCount != nil
		err := b.AddType(schemafu.ObjectType(schemafu.ObjectConfig{
			Name: connectionName,
			Definition: func(t *schemafu.ObjectDefinitionBlock) {
				t.NonNull().List().NonNull().Field("edges", schemafu.FieldConfig{
					Type: schemafu.Ref(edgeName),
					Cost: schema.FieldResolverCost(0),
				})
				t.NonNull().Field("pageInfo", schemafu.FieldConfig{
					Type: schemafu.Ref("PageInfo"),
					Cost: schema.FieldResolverCost(0),
				})
				if cfg.IncludeNodesField {
					t.NonNull().List().NonNull().Field("nodes", schemafu.FieldConfig{
						Type: field.Type,
						Cost: schema.FieldResolverCost(0),
						Resolve: func(ctx schema.FieldContext) (interface{}, error) {
							edges := ctx.Object.(*connection).Edges
							nodes := make([]interface{}, len(edges))
							for i, e := range edges {
								nodes[i] = e.Node
							}
							return nodes, nil
						},
					})
				}
				if hasTotalCount {
					t.NonNull().Int("totalCount", schemafu.FieldConfig{
						Resolve: func(ctx schema.FieldContext) (interface{}, error) {
							return ctx.Object.(*connection).totalCount()
						},
					})
				}
			},
		}))
		if err != nil {
			return err
		}
	}
	return nil
}

var pageInfoType = schemafu.ObjectType(schemafu.ObjectConfig{
	Name:        "PageInfo",
	Description: "PageInfo describes the page of a connection.",
	Definition: func(t *schemafu.ObjectDefinitionBlock) {
		t.NonNull().Boolean("hasPreviousPage")
		t.NonNull().Boolean("hasNextPage")
		t.Nullable().String("startCursor")
		t.Nullable().String("endCursor")
	},
})

func (field *ConnectionFieldConfig) resolve(ctx schema.FieldContext) (interface{}, error) {
	args, err := pagination.ParseArguments(ctx.Arguments)
	if err != nil {
		return nil, err
	}

	var after, before *cursor
	if args.After != "" {
		v, err := pagination.DecodeCursor(field.CursorType, args.After)
		if err != nil {
			return nil, errors.New("Invalid after cursor.")
		}
		after = &cursor{value: v, less: field.CursorLess}
	}
	if args.Before != "" {
		v, err := pagination.DecodeCursor(field.CursorType, args.Before)
		if err != nil {
			return nil, errors.New("Invalid before cursor.")
		}
		before = &cursor{value: v, less: field.CursorLess}
	}

	var nodes interface{}
	if field.ResolveAllNodes != nil {
		nodes, err = field.ResolveAllNodes(ctx)
	} else {
		var afterValue, beforeValue interface{}
		if after != nil {
			afterValue = after.value
		}
		if before != nil {
			beforeValue = before.value
		}
		nodes, err = field.ResolveNodes(ctx, afterValue, beforeValue, args.Limit())
	}
	if err != nil {
		return nil, err
	}

	nodesValue := reflect.ValueOf(nodes)
	if nodes != nil && nodesValue.Kind() != reflect.Slice {
		return nil, errors.Errorf("unexpected non-slice type %T for nodes", nodes)
	}
	var edges []edge
	if nodes != nil {
		edges = make([]edge, nodesValue.Len())
		for i := range edges {
			node := nodesValue.Index(i).Interface()
			edges[i] = edge{
				Node:   node,
				cursor: cursor{value: field.NodeCursor(node), less: field.CursorLess},
			}
		}
	}

	page, info := pagination.EdgesToReturn(edges, after, before, args.First, args.Last)
	conn := &connection{
		Edges: append([]edge{}, page...),
		PageInfo: &pageInfo{
			HasPreviousPage: info.HasPreviousPage,
			HasNextPage:     info.HasNextPage,
		},
		totalCount: func() (interface{}, error) {
			return len(edges), nil
		},
	}
	if field.ResolveTotalCount != nil {
		conn.totalCount = func() (interface{}, error) {
			return field.ResolveTotalCount(ctx)
		}
	}
	if info.StartCursor != nil {
		s, err := pagination.EncodeCursor(info.StartCursor.value)
		if err != nil {
			return nil, err
		}
		conn.PageInfo.StartCursor = &s
	}
	if info.EndCursor != nil {
		s, err := pagination.EncodeCursor(info.EndCursor.value)
		if err != nil {
			return nil, err
		}
		conn.PageInfo.EndCursor = &s
	}
	return conn, nil
}

func upperFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
