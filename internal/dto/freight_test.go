package dto

import (
	"testing"

	gerr "github.com/jekabolt/sales-panel/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFreightOverride(t *testing.T) {
	u, err := ParseFreightOverride([]byte(`{"manualFreightOverride": 12.5}`))
	require.NoError(t, err)
	assert.False(t, u.Remove)
	assert.Equal(t, "12.5", u.Value.String())

	u, err = ParseFreightOverride([]byte(`{"manualFreightOverride": 0}`))
	require.NoError(t, err)
	assert.False(t, u.Remove)
	assert.True(t, u.Value.IsZero())

	u, err = ParseFreightOverride([]byte(`{"manualFreightOverride": 9999999999.99}`))
	require.NoError(t, err)
	assert.Equal(t, "9999999999.99", u.Value.String())

	u, err = ParseFreightOverride([]byte(`{"manualFreightOverride": null}`))
	require.NoError(t, err)
	assert.True(t, u.Remove)
}

func TestParseFreightOverrideRejects(t *testing.T) {
	bodies := map[string]string{
		"negative":      `{"manualFreightOverride": -1}`,
		"sub-cent":      `{"manualFreightOverride": 12.345}`,
		"exponent":      `{"manualFreightOverride": 1e20}`,
		"over column":   `{"manualFreightOverride": 10000000000}`,
		"string":        `{"manualFreightOverride": "10"}`,
		"bool":          `{"manualFreightOverride": true}`,
		"object":        `{"manualFreightOverride": {"v": 1}}`,
		"array":         `{"manualFreightOverride": [1]}`,
		"missing":       `{}`,
		"unknown field": `{"manualFreightOverride": 1, "other": 2}`,
		"not json":      `manualFreightOverride=1`,
		"empty":         ``,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFreightOverride([]byte(body))
			assert.ErrorIs(t, err, gerr.InvalidFreight)
		})
	}
}
