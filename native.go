package schemafu

import (
	"github.com/ccbrown/schema-fu/graphql/schema"
)

// NativeTypeDef is a pre-built type. Its references to other named types are redirected through
// the builder when it's added, so they may point at definitions, other native types, or types that
// are added later.
type NativeTypeDef struct {
	t schema.NamedType
}

func Native(t schema.NamedType) *NativeTypeDef {
	return &NativeTypeDef{t: t}
}

func (d *NativeTypeDef) Kind() Kind             { return KindNative }
func (d *NativeTypeDef) Name() string           { return d.t.TypeName() }
func (d *NativeTypeDef) Type() schema.NamedType { return d.t }

// rebindNative creates the copy of a native type that goes into the schema. Resolvers of the
// copy's fields are composed with plugin middleware like those of any other field.
func (b *Builder) rebindNative(t schema.NamedType) schema.NamedType {
	rebound := schema.Rebind(t, func(name string) (schema.NamedType, error) {
		return b.getOrBuildType(TypeName(name), false)
	})
	switch rebound := rebound.(type) {
	case *schema.ObjectType:
		lazyFields := rebound.LazyFields
		rebound.LazyFields = func() (map[string]*schema.FieldDefinition, error) {
			fields, err := lazyFields()
			if err != nil {
				return nil, err
			}
			b.composeNativeResolvers(rebound.Name, fields)
			return fields, nil
		}
	case *schema.InterfaceType:
		lazyFields := rebound.LazyFields
		rebound.LazyFields = func() (map[string]*schema.FieldDefinition, error) {
			fields, err := lazyFields()
			if err != nil {
				return nil, err
			}
			b.composeNativeResolvers(rebound.Name, fields)
			return fields, nil
		}
	}
	return rebound
}

func (b *Builder) composeNativeResolvers(typeName string, fields map[string]*schema.FieldDefinition) {
	for name, field := range fields {
		f := &OutputField{
			Name:       name,
			ParentType: typeName,
			FieldConfig: FieldConfig{
				Description: field.Description,
				Deprecation: field.DeprecationReason,
				Resolve:     field.Resolve,
				Subscribe:   field.Subscribe,
				Cost:        field.Cost,
				Extensions:  field.Extensions,
			},
		}
		field.Resolve = b.makeFinalResolver(f)
		if field.Subscribe != nil {
			field.Subscribe = b.makeFinalSubscribe(f)
		}
	}
}

// nativeReferences returns the named types a native type references directly.
func nativeReferences(t schema.NamedType) []schema.NamedType {
	var ret []schema.NamedType
	addFields := func(fields map[string]*schema.FieldDefinition) {
		for _, name := range sortedKeys(fields) {
			field := fields[name]
			ret = append(ret, schema.NamedTypeOf(field.Type))
			for _, argName := range sortedKeys(field.Arguments) {
				ret = append(ret, schema.NamedTypeOf(field.Arguments[argName].Type))
			}
		}
	}
	switch t := t.(type) {
	case *schema.ObjectType:
		for _, iface := range t.ImplementedInterfaces {
			ret = append(ret, iface)
		}
		addFields(t.Fields)
	case *schema.InterfaceType:
		for _, iface := range t.Interfaces {
			ret = append(ret, iface)
		}
		addFields(t.Fields)
	case *schema.UnionType:
		for _, member := range t.MemberTypes {
			ret = append(ret, member)
		}
	case *schema.InputObjectType:
		for _, name := range sortedKeys(t.Fields) {
			ret = append(ret, schema.NamedTypeOf(t.Fields[name].Type))
		}
	}
	return ret
}
