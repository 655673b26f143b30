package values_test

import (
	"encoding/json"
	"testing"

	"github.com/caspersuite/jss-object-sdk/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectTag(t *testing.T) {
	t.Parallel()

	t.Run("valid tags", func(t *testing.T) {
		for _, tag := range []string{"computer", "computer_group", "os_x_configuration_profile", "ibeacon", "policy2"} {
			ot, err := values.NewObjectTag(tag)
			require.NoError(t, err, tag)
			assert.Equal(t, tag, ot.String())
			assert.False(t, ot.IsEmpty())
		}
	})

	t.Run("trims whitespace", func(t *testing.T) {
		ot, err := values.NewObjectTag("  computer  ")
		require.NoError(t, err)
		assert.Equal(t, "computer", ot.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := values.NewObjectTag("")
		assert.ErrorContains(t, err, "cannot be empty")
	})

	t.Run("rejects uppercase", func(t *testing.T) {
		_, err := values.NewObjectTag("Computer")
		assert.Error(t, err)
	})

	t.Run("rejects leading digit", func(t *testing.T) {
		_, err := values.NewObjectTag("2computers")
		assert.ErrorContains(t, err, "lowercase letter")
	})

	t.Run("rejects special characters", func(t *testing.T) {
		for _, tag := range []string{"comp uter", "computer-group", "computer/group", "computer.group"} {
			_, err := values.NewObjectTag(tag)
			assert.Error(t, err, tag)
		}
	})

	t.Run("rejects overlong", func(t *testing.T) {
		long := make([]byte, 65)
		for i := range long {
			long[i] = 'a'
		}
		_, err := values.NewObjectTag(string(long))
		assert.ErrorContains(t, err, "too long")
	})
}

func TestObjectTag_JSON(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		ot := values.MustNewObjectTag("mobile_device")
		data, err := json.Marshal(ot)
		require.NoError(t, err)
		assert.Equal(t, `"mobile_device"`, string(data))

		var decoded values.ObjectTag
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, ot.Equals(decoded))
	})

	t.Run("unmarshal rejects invalid", func(t *testing.T) {
		var decoded values.ObjectTag
		err := json.Unmarshal([]byte(`"Not A Tag"`), &decoded)
		assert.Error(t, err)
	})
}

func TestNewSearchKey(t *testing.T) {
	t.Parallel()

	t.Run("valid keys", func(t *testing.T) {
		for _, key := range []string{"name", "serial_number", "udid", "macaddress", "match", "bundle-id"} {
			sk, err := values.NewSearchKey(key)
			require.NoError(t, err, key)
			assert.Equal(t, key, sk.String())
		}
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := values.NewSearchKey("  ")
		assert.ErrorContains(t, err, "cannot be empty")
	})

	t.Run("rejects path characters", func(t *testing.T) {
		_, err := values.NewSearchKey("name/id")
		assert.Error(t, err)
	})
}
