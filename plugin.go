package schemafu

import (
	"github.com/ccbrown/schema-fu/graphql/schema"
)

// ResolverFunc resolves a field's value.
type ResolverFunc func(schema.FieldContext) (interface{}, error)

// Middleware wraps a resolver. It should invoke next to continue resolution.
type Middleware func(ctx schema.FieldContext, next ResolverFunc) (interface{}, error)

// CreateFieldResolverInfo describes a field whose resolver is being created.
type CreateFieldResolverInfo struct {
	TypeName  string
	FieldName string
	Field     *OutputField
	Config    FinalConfig
}

// Plugin is a set of hooks into the build. Every hook is optional. Hooks are invoked in the order
// plugins are given in Config.Plugins.
type Plugin struct {
	Name string

	// Invoked before any types are walked.
	OnInstall func(Lens) error

	// Invoked after all known types are walked and before any are built.
	OnBeforeBuild func(Lens) error

	// Invoked when a referenced type can't be found. If a definition is returned, it's added and
	// used in place of the missing type.
	OnMissingType func(name string, b Lens) (Def, error)

	// Return nil if the plugin doesn't apply to the field.
	OnCreateFieldResolver  func(CreateFieldResolverInfo) Middleware
	OnCreateFieldSubscribe func(CreateFieldResolverInfo) Middleware

	// Invoked with the live definition block of each object after its definition runs and before
	// its extensions are applied. Interfaces don't trigger it.
	OnObjectDefinition      func(*ObjectDefinitionBlock) error
	OnInputObjectDefinition func(*InputDefinitionBlock) error

	// These may return a replacement for the given value.
	OnAddOutputField func(*OutputField) (*OutputField, error)
	OnAddInputField  func(*InputField) (*InputField, error)
	OnAddArg         func(*FinalArgConfig) (*FinalArgConfig, error)

	OnAfterBuild func(*schema.Schema) error
}

// composeMiddleware wraps base with the given middlewares. The first middleware is outermost. Nil
// middlewares are skipped.
func composeMiddleware(base ResolverFunc, middlewares []Middleware) ResolverFunc {
	ret := base
	for i := len(middlewares) - 1; i >= 0; i-- {
		mw := middlewares[i]
		if mw == nil {
			continue
		}
		next := ret
		ret = func(ctx schema.FieldContext) (interface{}, error) {
			return mw(ctx, next)
		}
	}
	return ret
}
