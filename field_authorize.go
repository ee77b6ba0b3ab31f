package schemafu

import (
	"github.com/pkg/errors"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

// FieldAuthorizePlugin enforces FieldConfig.Authorize. It's used by default when no plugins are
// configured. If other plugins are configured, it must be listed explicitly.
func FieldAuthorizePlugin() *Plugin {
	return &Plugin{
		Name: "FieldAuthorize",
		OnCreateFieldResolver: func(info CreateFieldResolverInfo) Middleware {
			if info.Field == nil || info.Field.Authorize == nil {
				return nil
			}
			authorize := info.Field.Authorize
			return func(ctx schema.FieldContext, next ResolverFunc) (interface{}, error) {
				ok, err := authorize(ctx)
				if err != nil {
					return nil, err
				} else if !ok {
					return nil, errors.Wrapf(ErrNotAuthorized, "%v.%v", info.TypeName, info.FieldName)
				}
				return next(ctx)
			}
		},
	}
}
