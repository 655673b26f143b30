package registry_test

import (
	"testing"

	"github.com/caspersuite/jss-object-sdk/descriptor"
	"github.com/caspersuite/jss-object-sdk/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("register and lookup", func(t *testing.T) {
		r := registry.New()
		err := r.Register(&descriptor.Descriptor{
			Kind: "building", Path: "/buildings",
			CanList: true, CanGet: true, CanPut: true, CanPost: true, CanDelete: true,
		})
		require.NoError(t, err)

		d, err := r.Lookup("building")
		require.NoError(t, err)
		assert.Equal(t, "/buildings", d.Path)
		// Registration normalizes conventional defaults.
		assert.Equal(t, "/id/", d.IDURL)
		assert.Equal(t, "name", d.DefaultSearch)
	})

	t.Run("rejects nil", func(t *testing.T) {
		r := registry.New()
		assert.ErrorContains(t, r.Register(nil), "cannot be nil")
	})

	t.Run("rejects duplicate kind", func(t *testing.T) {
		r := registry.New()
		require.NoError(t, r.Register(&descriptor.Descriptor{Kind: "site", Path: "/sites", CanList: true}))
		err := r.Register(&descriptor.Descriptor{Kind: "site", Path: "/sites", CanList: true})
		assert.ErrorContains(t, err, "already registered")
	})

	t.Run("strict mode validates", func(t *testing.T) {
		r := registry.New()
		err := r.Register(&descriptor.Descriptor{Kind: "Bad Kind", Path: "/bad"})
		assert.Error(t, err)
	})

	t.Run("lenient mode defers validation", func(t *testing.T) {
		r := registry.New(registry.WithStrictMode(false))
		err := r.Register(&descriptor.Descriptor{Kind: "draft", Path: "no-leading-slash"})
		assert.NoError(t, err)
	})
}

func TestRegistry_Replace(t *testing.T) {
	t.Parallel()

	t.Run("overwrites an existing kind", func(t *testing.T) {
		r := registry.New()
		require.NoError(t, r.Register(&descriptor.Descriptor{Kind: "printer", Path: "/printers", CanList: true}))
		require.NoError(t, r.Replace(&descriptor.Descriptor{Kind: "printer", Path: "/printers", CanList: true, CanGet: true, CanSubset: true}))

		d, err := r.Lookup("printer")
		require.NoError(t, err)
		assert.True(t, d.CanSubset)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("path ownership follows the replacement", func(t *testing.T) {
		r := registry.New()
		require.NoError(t, r.Register(&descriptor.Descriptor{Kind: "printer", Path: "/printers", CanList: true}))
		require.NoError(t, r.Replace(&descriptor.Descriptor{Kind: "printer", Path: "/devices", CanList: true}))

		d, err := r.LookupByPath("/devices")
		require.NoError(t, err)
		assert.Equal(t, "printer", d.Kind)

		_, err = r.LookupByPath("/printers")
		assert.ErrorIs(t, err, descriptor.ErrNotRegistered)
	})

	t.Run("registers new kinds", func(t *testing.T) {
		r := registry.New()
		require.NoError(t, r.Replace(&descriptor.Descriptor{Kind: "printer", Path: "/printers", CanList: true}))
		assert.True(t, r.Has("printer"))
	})

	t.Run("strict mode still validates", func(t *testing.T) {
		r := registry.New()
		assert.Error(t, r.Replace(&descriptor.Descriptor{Kind: "Bad Kind", Path: "/bad"}))
	})
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := registry.New()
	require.NoError(t, r.Register(&descriptor.Descriptor{Kind: "printer", Path: "/printers", CanList: true, CanGet: true}))

	t.Run("unknown kind", func(t *testing.T) {
		_, err := r.Lookup("toaster")
		assert.ErrorIs(t, err, descriptor.ErrNotRegistered)

		var notRegistered *descriptor.NotRegisteredError
		require.ErrorAs(t, err, &notRegistered)
		assert.Equal(t, "toaster", notRegistered.Kind)
	})

	t.Run("by path", func(t *testing.T) {
		d, err := r.LookupByPath("/printers")
		require.NoError(t, err)
		assert.Equal(t, "printer", d.Kind)

		_, err = r.LookupByPath("/toasters")
		assert.ErrorIs(t, err, descriptor.ErrNotRegistered)
	})

	t.Run("shared endpoint resolves to first registration", func(t *testing.T) {
		shared := registry.New()
		require.NoError(t, shared.Register(&descriptor.Descriptor{
			Kind: "account", Path: "/accounts", CanList: true,
			DefaultSearch: "username",
			SearchTypes:   map[string]string{"username": "/username/"},
		}))
		require.NoError(t, shared.Register(&descriptor.Descriptor{
			Kind: "group", Path: "/accounts", CanList: true,
			DefaultSearch: "groupname",
			SearchTypes:   map[string]string{"groupname": "/groupname/"},
		}))

		d, err := shared.LookupByPath("/accounts")
		require.NoError(t, err)
		assert.Equal(t, "account", d.Kind)
	})

	t.Run("has", func(t *testing.T) {
		assert.True(t, r.Has("printer"))
		assert.False(t, r.Has("toaster"))
	})
}

func TestRegistry_Kinds(t *testing.T) {
	t.Parallel()

	r := registry.New()
	require.NoError(t, r.Register(&descriptor.Descriptor{Kind: "script", Path: "/scripts", CanList: true, CanPut: true}))
	require.NoError(t, r.Register(&descriptor.Descriptor{Kind: "building", Path: "/buildings", CanList: true}))

	assert.Equal(t, []string{"building", "script"}, r.Kinds())
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"script"}, r.Mutating())
}
