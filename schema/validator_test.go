package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "deck": {"type": "string"},
    "server": {
      "type": "object",
      "properties": {"addr": {"type": "string"}},
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`

func TestValidator(t *testing.T) {
	v, err := NewValidator([]byte(testSchema))
	require.NoError(t, err)

	assert.NoError(t, v.Validate(map[string]interface{}{
		"deck":   "talk.md",
		"server": map[string]interface{}{"addr": ":8080"},
	}))

	err = v.Validate(map[string]interface{}{"deck": 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/deck")

	err = v.Validate(map[string]interface{}{"server": map[string]interface{}{"port": 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestNewValidatorRejectsBrokenSchema(t *testing.T) {
	_, err := NewValidator([]byte(`{"type": 12}`))
	assert.Error(t, err)
}
