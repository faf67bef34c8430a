package testutils

import (
	"os"
	"testing"

	"github.com/mitchellh/go-homedir"
)

// NewTempDir creates a temporary directory that is removed once the test completes
func NewTempDir(t *testing.T, name string) string {
	t.Helper()

	dir, err := os.MkdirTemp("", name)
	if err != nil {
		t.Fatalf("failed to create temporary directory: %s", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// SetupHomeDir points $HOME at dir until the test completes
// $XDG_CONFIG_HOME is unset and go-homedir caching disabled for the same duration
func SetupHomeDir(t *testing.T, dir string) {
	t.Helper()

	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", "")
}
