package validation_test

import (
	"testing"

	"github.com/caspersuite/jss-object-sdk/catalog"
	"github.com/caspersuite/jss-object-sdk/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validation.SchemaValidator {
	t.Helper()
	v, err := validation.NewSchemaValidator()
	require.NoError(t, err)
	return v
}

func TestSchemaValidator_ValidateYAML(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	t.Run("valid document", func(t *testing.T) {
		res, err := v.ValidateYAML([]byte(`
version: 1
generated: "2026-08-01T12:00:00Z"
objects:
  kiosk:
    path: /kiosks
    can_list: true
    can_get: true
    data_keys:
      priority: 5
      general:
        enabled: true
`))
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("entries without a generated timestamp are invalid", func(t *testing.T) {
		res, err := v.ValidateYAML([]byte(`
version: 1
objects:
  kiosk:
    path: /kiosks
    can_list: true
`))
		require.NoError(t, err)
		assert.False(t, res.Valid)
		require.NotEmpty(t, res.Errors)
		assert.Contains(t, res.Errors[0], "generated timestamp")
	})

	t.Run("wrong version type fails the schema pass", func(t *testing.T) {
		res, err := v.ValidateYAML([]byte(`
version: one
objects: {}
`))
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.NotEmpty(t, res.Errors)
	})

	t.Run("unknown field fails the schema pass", func(t *testing.T) {
		res, err := v.ValidateYAML([]byte(`
version: 1
objects:
  kiosk:
    path: /kiosks
    can_fly: true
`))
		require.NoError(t, err)
		assert.False(t, res.Valid)
	})

	t.Run("semantic invariant failures surface", func(t *testing.T) {
		res, err := v.ValidateYAML([]byte(`
version: 1
generated: "2026-08-01T12:00:00Z"
objects:
  kiosk:
    path: /kiosks
    can_list: true
    default_search: hostname
    search_types:
      name: /name/
`))
		require.NoError(t, err)
		assert.False(t, res.Valid)
		require.NotEmpty(t, res.Errors)
		assert.Contains(t, res.Errors[0], "not a registered search type")
	})

	t.Run("unparseable yaml", func(t *testing.T) {
		res, err := v.ValidateYAML([]byte("objects: ["))
		require.NoError(t, err)
		assert.False(t, res.Valid)
	})
}

func TestSchemaValidator_ValidateJSON(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	t.Run("valid document", func(t *testing.T) {
		res, err := v.ValidateJSON([]byte(`{
			"version": 1,
			"generated": "2026-08-01T12:00:00Z",
			"objects": {
				"kiosk": {"path": "/kiosks", "can_list": true}
			}
		}`))
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("unparseable json", func(t *testing.T) {
		res, err := v.ValidateJSON([]byte(`{"version":`))
		require.NoError(t, err)
		assert.False(t, res.Valid)
		require.NotEmpty(t, res.Errors)
		assert.Contains(t, res.Errors[0], "invalid JSON")
	})
}

func TestSchemaValidator_ValidateDocument(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	t.Run("nil document", func(t *testing.T) {
		res := v.ValidateDocument(nil)
		assert.False(t, res.Valid)
	})

	t.Run("collects errors per entry", func(t *testing.T) {
		res := v.ValidateDocument(&catalog.Document{
			Version:   1,
			Generated: "2026-08-01T12:00:00Z",
			Objects: map[string]catalog.ObjectEntry{
				"bad_path":   {Path: "kiosks", CanList: true},
				"bad_search": {Path: "/kiosks", CanList: true, DefaultSearch: "x", SearchTypes: map[string]string{"name": "/name/"}},
			},
		})
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 2)
	})
}

func TestSchemaValidator_Schema(t *testing.T) {
	t.Parallel()

	v := newValidator(t)
	schema, err := v.Schema()
	require.NoError(t, err)
	assert.Contains(t, schema, `"can_list"`)
	assert.Contains(t, schema, `"search_types"`)
	assert.Contains(t, schema, `"data_keys"`)
}
