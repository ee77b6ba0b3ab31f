package pagination

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intCursor int

func (c intCursor) LessThan(other intCursor) bool {
	return c < other
}

type intEdge int

func (e intEdge) Cursor() intCursor {
	return intCursor(e)
}

func intPtr(n int) *int {
	return &n
}

func cursorPtr(n int) *intCursor {
	c := intCursor(n)
	return &c
}

func TestEdgesToReturn(t *testing.T) {
	edges := []intEdge{4, 2, 0, 3, 1}

	for name, tc := range map[string]struct {
		After, Before   *intCursor
		First, Last     *int
		Expected        []intEdge
		HasPreviousPage bool
		HasNextPage     bool
	}{
		"First": {
			First:       intPtr(2),
			Expected:    []intEdge{0, 1},
			HasNextPage: true,
		},
		"FirstAfter": {
			After:           cursorPtr(1),
			First:           intPtr(10),
			Expected:        []intEdge{2, 3, 4},
			HasPreviousPage: true,
		},
		"Last": {
			Last:            intPtr(2),
			Expected:        []intEdge{3, 4},
			HasPreviousPage: true,
		},
		"LastBefore": {
			Before:          cursorPtr(2),
			Last:            intPtr(1),
			Expected:        []intEdge{1},
			HasPreviousPage: true,
			HasNextPage:     true,
		},
		"Range": {
			After:           cursorPtr(0),
			Before:          cursorPtr(4),
			First:           intPtr(3),
			Expected:        []intEdge{1, 2, 3},
			HasPreviousPage: true,
		},
		"Empty": {
			After:           cursorPtr(4),
			First:           intPtr(3),
			HasPreviousPage: true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			page, info := EdgesToReturn(edges, tc.After, tc.Before, tc.First, tc.Last)
			assert.Equal(t, tc.Expected, page)
			assert.Equal(t, tc.HasPreviousPage, info.HasPreviousPage)
			assert.Equal(t, tc.HasNextPage, info.HasNextPage)
			if len(tc.Expected) > 0 {
				require.NotNil(t, info.StartCursor)
				require.NotNil(t, info.EndCursor)
				assert.Equal(t, tc.Expected[0].Cursor(), *info.StartCursor)
				assert.Equal(t, tc.Expected[len(tc.Expected)-1].Cursor(), *info.EndCursor)
			} else {
				assert.Nil(t, info.StartCursor)
				assert.Nil(t, info.EndCursor)
			}
		})
	}

	// the input isn't reordered
	assert.Equal(t, []intEdge{4, 2, 0, 3, 1}, edges)
}

func TestParseArguments(t *testing.T) {
	for name, tc := range map[string]struct {
		Arguments map[string]interface{}
		Expected  Arguments
		Limit     int
		Error     string
	}{
		"First": {
			Arguments: map[string]interface{}{"first": 10, "after": "abc"},
			Expected:  Arguments{First: intPtr(10), After: "abc"},
			Limit:     11,
		},
		"Last": {
			Arguments: map[string]interface{}{"last": 5, "before": "abc"},
			Expected:  Arguments{Last: intPtr(5), Before: "abc"},
			Limit:     -6,
		},
		"Neither": {
			Arguments: map[string]interface{}{},
			Error:     "You must provide either the `first` or `last` argument.",
		},
		"Both": {
			Arguments: map[string]interface{}{"first": 1, "last": 1},
			Error:     "You cannot provide both `first` and `last` arguments.",
		},
		"NegativeFirst": {
			Arguments: map[string]interface{}{"first": -1},
			Error:     "The `first` argument cannot be negative.",
		},
		"NegativeLast": {
			Arguments: map[string]interface{}{"last": -1},
			Error:     "The `last` argument cannot be negative.",
		},
	} {
		t.Run(name, func(t *testing.T) {
			args, err := ParseArguments(tc.Arguments)
			if tc.Error != "" {
				assert.EqualError(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, args)
			assert.Equal(t, tc.Limit, args.Limit())
		})
	}
}

func TestCursorEncoding(t *testing.T) {
	s, err := EncodeCursor("0")
	require.NoError(t, err)
	assert.Equal(t, "oTA", s)

	v, err := DecodeCursor(reflect.TypeOf(""), s)
	require.NoError(t, err)
	assert.Equal(t, "0", v)

	type compound struct {
		Name string
		Id   int
	}
	s, err = EncodeCursor(compound{"foo", 7})
	require.NoError(t, err)
	v, err = DecodeCursor(reflect.TypeOf(compound{}), s)
	require.NoError(t, err)
	assert.Equal(t, compound{"foo", 7}, v)

	_, err = DecodeCursor(reflect.TypeOf(""), "!!!")
	assert.Error(t, err)
}
