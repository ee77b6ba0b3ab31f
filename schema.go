package schemafu

import (
	"math"
	"sort"

	"github.com/agext/levenshtein"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/ccbrown/schema-fu/graphql/schema"
)

// MakeSchema builds a schema and fails if any types are missing or if any abstract types can't be
// discriminated using the configured strategies.
func MakeSchema(cfg Config) (*schema.Schema, error) {
	b := NewBuilder(cfg)
	result, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := AssertNoMissingTypes(result.Schema, result.MissingTypes); err != nil {
		for _, name := range sortedKeys(result.MissingTypes) {
			b.logger.WithField("type", name).Warn("missing type")
		}
		return nil, err
	}
	if features := result.FinalConfig.Features; features.RuntimeChecks() {
		if err := CheckAbstractTypes(result.Schema, features.strategies()); err != nil {
			return nil, err
		}
	}
	return result.Schema, nil
}

// AssertNoMissingTypes returns an error for each missing type, with suggestions for similarly
// named types that do exist.
func AssertNoMissingTypes(s *schema.Schema, missing map[string]MissingType) error {
	var result *multierror.Error
	for _, name := range sortedKeys(missing) {
		result = multierror.Append(result, &MissingTypeError{
			Name:        name,
			FromObject:  missing[name].FromObject,
			Suggestions: suggestTypeNames(s, name),
		})
	}
	return result.ErrorOrNil()
}

// suggestTypeNames returns the names of types whose edit distance from name is small relative
// to its length, closest first.
func suggestTypeNames(s *schema.Schema, name string) []string {
	threshold := int(math.Floor(float64(len(name))*0.4)) + 1
	distances := map[string]int{}
	var ret []string
	for _, candidate := range s.TypeNames() {
		if candidate == UnknownTypeName {
			continue
		}
		if d := levenshtein.Distance(name, candidate, nil); d <= threshold {
			distances[candidate] = d
			ret = append(ret, candidate)
		}
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return distances[ret[i]] < distances[ret[j]]
	})
	return ret
}

// CheckAbstractTypes verifies that every union and interface with possible types can determine
// the object type of a resolved value using one of the given strategies.
func CheckAbstractTypes(s *schema.Schema, strategies AbstractTypeStrategies) error {
	var result *multierror.Error
	check := func(name string, resolveType func(interface{}) string, possible []*schema.ObjectType) {
		if len(possible) == 0 {
			return
		} else if strategies.ResolveType && resolveType != nil {
			return
		} else if strategies.IsTypeOf {
			ok := true
			for _, obj := range possible {
				if obj.IsTypeOf == nil {
					ok = false
					break
				}
			}
			if ok {
				return
			}
		}
		var msg string
		switch {
		case strategies.ResolveType && strategies.IsTypeOf:
			msg = "must define ResolveType, or every possible type must define IsTypeOf"
		case strategies.IsTypeOf:
			msg = "every possible type must define IsTypeOf"
		case strategies.ResolveType:
			msg = "must define ResolveType"
		default:
			msg = "can't be resolved because no abstract type strategy is enabled"
		}
		result = multierror.Append(result, configErrorf(name, "%v", msg))
	}

	names := s.TypeNames()
	for _, name := range names {
		switch t := s.NamedType(name).(type) {
		case *schema.UnionType:
			check(name, t.ResolveType, t.MemberTypes)
		case *schema.InterfaceType:
			var possible []*schema.ObjectType
			for _, other := range names {
				if obj, ok := s.NamedType(other).(*schema.ObjectType); ok && obj.IsSubTypeOf(t) {
					possible = append(possible, obj)
				}
			}
			check(name, t.ResolveType, possible)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return errors.Wrap(err, "abstract types can't be resolved")
	}
	return nil
}
