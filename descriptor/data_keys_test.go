package descriptor_test

import (
	"testing"

	"github.com/caspersuite/jss-object-sdk/descriptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataKeys_Validate(t *testing.T) {
	t.Parallel()

	t.Run("permitted kinds", func(t *testing.T) {
		dk := descriptor.DataKeys{
			"notes":           "",
			"priority":        10,
			"reboot_required": false,
			"general": descriptor.DataKeys{
				"enabled":   true,
				"frequency": "Once per computer",
			},
			"scope": map[string]any{
				"all_computers": false,
			},
		}
		assert.NoError(t, dk.Validate())
	})

	t.Run("rejects empty key", func(t *testing.T) {
		dk := descriptor.DataKeys{"": "x"}
		assert.ErrorContains(t, dk.Validate(), "cannot be empty")
	})

	t.Run("rejects nil value", func(t *testing.T) {
		dk := descriptor.DataKeys{"notes": nil}
		assert.ErrorContains(t, dk.Validate(), "unsupported default value type")
	})

	t.Run("rejects floats and slices", func(t *testing.T) {
		assert.Error(t, descriptor.DataKeys{"ratio": 1.5}.Validate())
		assert.Error(t, descriptor.DataKeys{"tags": []string{"a"}}.Validate())
	})

	t.Run("reports nested path", func(t *testing.T) {
		dk := descriptor.DataKeys{
			"general": descriptor.DataKeys{
				"category": descriptor.DataKeys{
					"weird": 3.14,
				},
			},
		}
		err := dk.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "general")
		assert.ErrorContains(t, err, "category")
		assert.ErrorContains(t, err, "weird")
	})
}

func TestDataKeys_Clone(t *testing.T) {
	t.Parallel()

	original := descriptor.DataKeys{
		"priority": 10,
		"general": descriptor.DataKeys{
			"enabled": true,
		},
	}

	clone := original.Clone()
	clone["priority"] = 20
	clone["general"].(descriptor.DataKeys)["enabled"] = false

	assert.Equal(t, 10, original["priority"])
	assert.Equal(t, true, original["general"].(descriptor.DataKeys)["enabled"])
}

func TestDataKeys_Keys(t *testing.T) {
	t.Parallel()

	dk := descriptor.DataKeys{"scope": descriptor.DataKeys{}, "general": "x", "notes": ""}
	assert.Equal(t, []string{"general", "notes", "scope"}, dk.Keys())

	assert.Nil(t, descriptor.DataKeys(nil).Clone())
}

func TestDescriptor_AvailableOn(t *testing.T) {
	t.Parallel()

	t.Run("no constraint", func(t *testing.T) {
		d := &descriptor.Descriptor{Kind: "building", Path: "/buildings"}
		ok, err := d.AvailableOn("9.0.0")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("satisfied constraint", func(t *testing.T) {
		d := &descriptor.Descriptor{Kind: "ibeacon", Path: "/ibeacons", MinVersion: ">= 9.3"}
		ok, err := d.AvailableOn("9.81.0")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unsatisfied constraint", func(t *testing.T) {
		d := &descriptor.Descriptor{Kind: "ibeacon", Path: "/ibeacons", MinVersion: ">= 9.3"}
		ok, err := d.AvailableOn("9.2.1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unparseable server version", func(t *testing.T) {
		d := &descriptor.Descriptor{Kind: "ibeacon", Path: "/ibeacons", MinVersion: ">= 9.3"}
		_, err := d.AvailableOn("casper")
		assert.ErrorContains(t, err, "invalid server version")
	})
}
