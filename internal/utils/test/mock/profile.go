package mock

import (
	"path/filepath"
	"testing"

	"github.com/deomiarn/securevault/internal/auth"
	"github.com/deomiarn/securevault/internal/cli"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// NewProfile returns a new CLI profile with a random name
// stored under a temporary directory
func NewProfile(t *testing.T) *cli.Profile {
	t.Helper()
	dir := t.TempDir()
	return cli.NewProfileWithFs(uuid.NewString(), filepath.Join(dir, ".config"), dir, afero.NewOsFs())
}

// NewProfileWithFs returns a new CLI profile with a random name
// stored on the provided filesystem
func NewProfileWithFs(t *testing.T, fs afero.Fs) *cli.Profile {
	t.Helper()
	return cli.NewProfileWithFs(uuid.NewString(), "/home/vault/.config/vault-cli", "/work", fs)
}

// NewProfileWithSession returns a new CLI profile pointed at the
// provided server url and holding the provided session
func NewProfileWithSession(t *testing.T, baseURL string, session auth.Session) *cli.Profile {
	t.Helper()
	profile := NewProfile(t)
	profile.SetBaseURL(baseURL)
	profile.SetSession(session)
	return profile
}
