package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nicolagi/todoist-launcher/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViperStoreMissingFile(t *testing.T) {
	store, err := newViperStore(filepath.Join(t.TempDir(), "settings.yaml"))
	require.Nil(t, err)

	_, ok := store.Get(plugin.KeyAPIToken)
	assert.False(t, ok, "no token in an empty store")

	// Preferences have defaults even without a file.
	value, ok := store.Get(plugin.KeyMaxTasks)
	assert.True(t, ok)
	assert.Equal(t, "10", value)
}

func TestViperStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	store, err := newViperStore(path)
	require.Nil(t, err)
	require.Nil(t, store.Set(plugin.KeyAPIToken, "sekrit"))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.Nil(t, err)
		assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
	}

	reopened, err := newViperStore(path)
	require.Nil(t, err)
	value, ok := reopened.Get(plugin.KeyAPIToken)
	assert.True(t, ok)
	assert.Equal(t, "sekrit", value)
}
