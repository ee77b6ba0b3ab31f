// Package pagination implements the paging rules of the GraphQL Cursor Connections Specification
// independently of any particular schema.
package pagination

import (
	"encoding/base64"
	"reflect"
	"sort"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

// PageInfo represents the information for the current page of results.
type PageInfo[C Cursor[C]] struct {
	HasPreviousPage bool
	HasNextPage     bool
	StartCursor     *C
	EndCursor       *C
}

type Cursor[T any] interface {
	LessThan(T) bool
}

type Edge[C Cursor[C]] interface {
	Cursor() C
}

// Arguments are the standard arguments of a connection field.
type Arguments struct {
	First  *int
	Last   *int
	After  string
	Before string
}

// ParseArguments reads and validates the standard arguments from a field's coerced arguments.
// Exactly one of first or last must be given.
func ParseArguments(args map[string]interface{}) (Arguments, error) {
	var ret Arguments
	if first, ok := args["first"].(int); ok {
		if first < 0 {
			return ret, errors.New("The `first` argument cannot be negative.")
		}
		ret.First = &first
	}
	if last, ok := args["last"].(int); ok {
		if last < 0 {
			return ret, errors.New("The `last` argument cannot be negative.")
		} else if ret.First != nil {
			return ret, errors.New("You cannot provide both `first` and `last` arguments.")
		}
		ret.Last = &last
	}
	if ret.First == nil && ret.Last == nil {
		return ret, errors.New("You must provide either the `first` or `last` argument.")
	}
	ret.After, _ = args["after"].(string)
	ret.Before, _ = args["before"].(string)
	return ret, nil
}

// Limit returns the number of edges a resolver should fetch to be able to tell whether there's
// another page. If it's negative, the edges should be taken from the end of the range.
func (a Arguments) Limit() int {
	if a.First != nil {
		return *a.First + 1
	}
	return -(*a.Last + 1)
}

// MaxCount returns the maximum number of edges the page may contain.
func (a Arguments) MaxCount() int {
	if a.First != nil {
		return *a.First
	} else if a.Last != nil {
		return *a.Last
	}
	return 0
}

// EncodeCursor serializes a cursor value as an opaque string.
func EncodeCursor(v interface{}) (string, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "error serializing cursor")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DecodeCursor deserializes a cursor produced by EncodeCursor into a new value of type t.
func DecodeCursor(t reflect.Type, s string) (interface{}, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "malformed cursor")
	}
	ret := reflect.New(t)
	if err := msgpack.Unmarshal(b, ret.Interface()); err != nil {
		return nil, errors.Wrap(err, "malformed cursor")
	}
	return ret.Elem().Interface(), nil
}

// ApplyCursorsToEdges returns a new slice containing only the edges that are within the range
// specified by the given cursors.
func ApplyCursorsToEdges[E Edge[C], C Cursor[C]](edges []E, after, before *C) (filtered []E, hadEdgesBeforeAfter, hadEdgesAfterBefore bool) {
	if after == nil && before == nil {
		return append([]E(nil), edges...), false, false
	}
	for _, edge := range edges {
		c := edge.Cursor()
		if before != nil && !c.LessThan(*before) {
			hadEdgesAfterBefore = true
			continue
		}
		if after != nil && !(*after).LessThan(c) {
			hadEdgesBeforeAfter = true
			continue
		}
		filtered = append(filtered, edge)
	}
	return filtered, hadEdgesBeforeAfter, hadEdgesAfterBefore
}

// EdgesToReturn returns the page of edges that should be returned for the given pagination
// parameters. The edges may be given in any order.
func EdgesToReturn[E Edge[C], C Cursor[C]](edges []E, after, before *C, first, last *int) ([]E, PageInfo[C]) {
	var pageInfo PageInfo[C]
	edges, pageInfo.HasPreviousPage, pageInfo.HasNextPage = ApplyCursorsToEdges(edges, after, before)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Cursor().LessThan(edges[j].Cursor())
	})

	if first != nil {
		if len(edges) > *first {
			edges = edges[:*first]
			pageInfo.HasNextPage = true
		} else {
			pageInfo.HasNextPage = false
		}
	}

	if last != nil {
		if len(edges) > *last {
			edges = edges[len(edges)-*last:]
			pageInfo.HasPreviousPage = true
		} else {
			pageInfo.HasPreviousPage = false
		}
	}

	if len(edges) > 0 {
		startCursor := edges[0].Cursor()
		pageInfo.StartCursor = &startCursor
		endCursor := edges[len(edges)-1].Cursor()
		pageInfo.EndCursor = &endCursor
	}

	return edges, pageInfo
}
