package schemafu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalConfig(t *testing.T) {
	cfg := newFinalConfig(&Config{
		NonNullDefaults: NonNullConfig{Input: true},
		Options:         map[string]interface{}{"a": 1},
	})
	assert.Equal(t, 0, cfg.Version)
	assert.True(t, cfg.Features.RuntimeChecks())
	assert.Equal(t, AbstractTypeStrategies{ResolveType: true}, cfg.Features.strategies())

	t.Run("WithOption", func(t *testing.T) {
		next, err := cfg.WithOption("b", 2)
		require.NoError(t, err)
		assert.Equal(t, 1, next.Version)
		assert.Equal(t, map[string]interface{}{"a": 1, "b": 2}, next.Options)
		assert.Equal(t, map[string]interface{}{"a": 1}, cfg.Options)

		next, err = next.WithOption(OptionNonNullDefaults, &NonNullConfig{Output: true})
		require.NoError(t, err)
		assert.Equal(t, 2, next.Version)
		v, ok := next.Option(OptionNonNullDefaults)
		assert.True(t, ok)
		assert.Equal(t, NonNullConfig{Output: true}, v)

		_, err = next.WithOption(OptionNonNullDefaults, true)
		assert.Error(t, err)
	})

	t.Run("Typename", func(t *testing.T) {
		next, err := cfg.WithOption(OptionFeatures, Features{
			AbstractTypeStrategies:    &AbstractTypeStrategies{Typename: true},
			AbstractTypeRuntimeChecks: Bool(true),
		})
		require.NoError(t, err)
		assert.False(t, next.Features.RuntimeChecks())
		assert.True(t, cfg.Features.RuntimeChecks())
	})

	t.Run("NonNullDefault", func(t *testing.T) {
		for name, tc := range map[string]struct {
			PerType  *TypeNonNullDefaults
			Input    bool
			Expected bool
		}{
			"InputGlobal":       {nil, true, true},
			"OutputGlobal":      {nil, false, false},
			"InputOverride":     {&TypeNonNullDefaults{Input: Bool(false)}, true, false},
			"OutputOverride":    {&TypeNonNullDefaults{Output: Bool(true)}, false, true},
			"UnrelatedOverride": {&TypeNonNullDefaults{Output: Bool(false)}, true, true},
		} {
			t.Run(name, func(t *testing.T) {
				assert.Equal(t, tc.Expected, cfg.nonNullDefault(tc.PerType, tc.Input))
			})
		}
	})
}
