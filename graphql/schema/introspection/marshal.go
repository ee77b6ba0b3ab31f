package introspection

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

// NewSchemaData describes the given schema. Types, fields, arguments and enum values are sorted by
// name so that equivalent schemas always produce identical data.
func NewSchemaData(s *schema.Schema) (*SchemaData, error) {
	ret := &SchemaData{
		QueryType:  namedTypeRef(s.QueryType()),
		Types:      []TypeData{},
		Directives: []DirectiveData{},
	}
	if t := s.MutationType(); t != nil {
		ref := namedTypeRef(t)
		ret.MutationType = &ref
	}
	if t := s.SubscriptionType(); t != nil {
		ref := namedTypeRef(t)
		ret.SubscriptionType = &ref
	}

	for _, name := range s.TypeNames() {
		t, err := newTypeData(s.NamedType(name))
		if err != nil {
			return nil, err
		}
		ret.Types = append(ret.Types, t)
	}

	directives := s.Directives()
	for _, name := range sortedKeys(directives) {
		def := directives[name]
		d := DirectiveData{
			Name:        name,
			Description: def.Description,
			Locations:   make([]string, len(def.Locations)),
		}
		for i, l := range def.Locations {
			d.Locations[i] = string(l)
		}
		args, err := newInputValues(def.Arguments)
		if err != nil {
			return nil, err
		}
		d.Args = args
		ret.Directives = append(ret.Directives, d)
	}
	return ret, nil
}

// Marshal renders the schema as indented JSON.
func Marshal(s *schema.Schema) ([]byte, error) {
	data, err := NewSchemaData(s)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(struct {
		Schema *SchemaData `json:"__schema"`
	}{data}, "", "  ")
}

// Fingerprint returns a hex-encoded digest of the schema's structure. Two schemas have the same
// fingerprint if and only if they describe the same types.
func Fingerprint(s *schema.Schema) (string, error) {
	data, err := NewSchemaData(s)
	if err != nil {
		return "", err
	}
	b, err := msgpack.Marshal(data)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

func namedTypeRef(t schema.NamedType) TypeData {
	return TypeData{
		Kind: kindOf(t),
		Name: t.TypeName(),
	}
}

func typeRef(t schema.Type) TypeData {
	switch t := t.(type) {
	case *schema.NonNullType:
		inner := typeRef(t.Type)
		return TypeData{Kind: "NON_NULL", OfType: &inner}
	case *schema.ListType:
		inner := typeRef(t.Type)
		return TypeData{Kind: "LIST", OfType: &inner}
	case schema.NamedType:
		return namedTypeRef(t)
	}
	panic(fmt.Errorf("unknown type type: %T", t))
}

func kindOf(t schema.NamedType) string {
	switch t.(type) {
	case *schema.ScalarType:
		return "SCALAR"
	case *schema.ObjectType:
		return "OBJECT"
	case *schema.InterfaceType:
		return "INTERFACE"
	case *schema.UnionType:
		return "UNION"
	case *schema.EnumType:
		return "ENUM"
	case *schema.InputObjectType:
		return "INPUT_OBJECT"
	}
	panic(fmt.Errorf("unknown named type type: %T", t))
}

func newTypeData(t schema.NamedType) (TypeData, error) {
	ret := namedTypeRef(t)
	var err error
	switch t := t.(type) {
	case *schema.ScalarType:
		ret.Description = t.Description
	case *schema.ObjectType:
		ret.Description = t.Description
		if ret.Fields, err = newFields(t.Fields); err != nil {
			return ret, err
		}
		ret.Interfaces = interfaceRefs(t.ImplementedInterfaces)
	case *schema.InterfaceType:
		ret.Description = t.Description
		if ret.Fields, err = newFields(t.Fields); err != nil {
			return ret, err
		}
		ret.Interfaces = interfaceRefs(t.Interfaces)
	case *schema.UnionType:
		ret.Description = t.Description
		names := make([]string, len(t.MemberTypes))
		members := map[string]*schema.ObjectType{}
		for i, member := range t.MemberTypes {
			names[i] = member.Name
			members[member.Name] = member
		}
		sort.Strings(names)
		for _, name := range names {
			ret.PossibleTypes = append(ret.PossibleTypes, namedTypeRef(members[name]))
		}
	case *schema.EnumType:
		ret.Description = t.Description
		for _, name := range sortedKeys(t.Values) {
			v := t.Values[name]
			ret.EnumValues = append(ret.EnumValues, EnumValueData{
				Name:              name,
				Description:       v.Description,
				IsDeprecated:      v.DeprecationReason != "",
				DeprecationReason: v.DeprecationReason,
			})
		}
	case *schema.InputObjectType:
		ret.Description = t.Description
		if ret.InputFields, err = newInputValues(t.Fields); err != nil {
			return ret, err
		}
	}
	return ret, nil
}

func interfaceRefs(ifaces []*schema.InterfaceType) []TypeData {
	names := make([]string, len(ifaces))
	byName := map[string]*schema.InterfaceType{}
	for i, iface := range ifaces {
		names[i] = iface.Name
		byName[iface.Name] = iface
	}
	sort.Strings(names)
	var ret []TypeData
	for _, name := range names {
		ret = append(ret, namedTypeRef(byName[name]))
	}
	return ret
}

func newFields(fields map[string]*schema.FieldDefinition) ([]FieldData, error) {
	var ret []FieldData
	for _, name := range sortedKeys(fields) {
		field := fields[name]
		args, err := newInputValues(field.Arguments)
		if err != nil {
			return nil, err
		}
		ret = append(ret, FieldData{
			Name:              name,
			Description:       field.Description,
			Args:              args,
			Type:              typeRef(field.Type),
			IsDeprecated:      field.DeprecationReason != "",
			DeprecationReason: field.DeprecationReason,
		})
	}
	return ret, nil
}

func newInputValues(values map[string]*schema.InputValueDefinition) ([]InputValueData, error) {
	ret := []InputValueData{}
	for _, name := range sortedKeys(values) {
		value := values[name]
		data := InputValueData{
			Name:        name,
			Description: value.Description,
			Type:        typeRef(value.Type),
		}
		if value.DefaultValue != nil {
			s, err := MarshalValue(value.Type, value.DefaultValue)
			if err != nil {
				return nil, fmt.Errorf("unable to marshal default value for %v: %w", name, err)
			}
			data.DefaultValue = &s
		}
		ret = append(ret, data)
	}
	return ret, nil
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
