package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deomiarn/securevault/internal/auth"
	"github.com/deomiarn/securevault/internal/utils/test/assert"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var _ auth.Service = (*Profile)(nil)

func newTestProfile(t *testing.T, name string) *Profile {
	t.Helper()
	if name == "" {
		name = uuid.NewString()
	}
	wd := t.TempDir()
	return NewProfileWithFs(name, filepath.Join(wd, profileDir), wd, afero.NewOsFs())
}

func TestProfileSession(t *testing.T) {
	t.Run("Should save the session and load it back into a fresh profile", func(t *testing.T) {
		profile := newTestProfile(t, "")
		profile.SetSession(auth.Session{AccessToken: "access", RefreshToken: "refresh"})
		profile.SetEmail("ada@example.com")
		assert.Nil(t, profile.Save())

		_, err := os.Stat(profile.Path())
		assert.Nil(t, err)

		viper.Reset()

		loaded := NewProfileWithFs(profile.Name, profile.Dir(), profile.WorkingDirectory, afero.NewOsFs())
		assert.Nil(t, loaded.Load())
		assert.Equal(t, auth.Session{AccessToken: "access", RefreshToken: "refresh"}, loaded.Session())
		assert.Equal(t, "ada@example.com", loaded.Email())
	})

	t.Run("Should clear the session", func(t *testing.T) {
		profile := newTestProfile(t, "")
		profile.SetSession(auth.Session{AccessToken: "access", RefreshToken: "refresh"})

		profile.ClearSession()

		assert.Equal(t, auth.Session{}, profile.Session())
		assert.False(t, profile.Session().LoggedIn(), "expected the session to be logged out")
	})

	t.Run("Should load without error when the profile file does not exist", func(t *testing.T) {
		profile := newTestProfile(t, "")
		assert.Nil(t, profile.Load())
		assert.Equal(t, auth.Session{}, profile.Session())
	})
}

func TestProfileEnvFile(t *testing.T) {
	profile := newTestProfile(t, "envtest")

	t.Setenv("VAULT_ENVTEST_EMAIL", "shell@example.com")
	defer os.Unsetenv("VAULT_ENVTEST_BASE_URL")

	assert.Nil(t, afero.WriteFile(afero.NewOsFs(), filepath.Join(profile.WorkingDirectory, ".env"), []byte(`
VAULT_ENVTEST_BASE_URL=http://vault.internal:9000/api
VAULT_ENVTEST_EMAIL=dotenv@example.com
`), 0600))

	assert.Nil(t, profile.Load())

	t.Run("Should apply variables from the .env file", func(t *testing.T) {
		assert.Equal(t, "http://vault.internal:9000/api", profile.BaseURL())
	})

	t.Run("Should keep variables already set in the environment", func(t *testing.T) {
		assert.Equal(t, "shell@example.com", profile.Email())
	})
}

func TestProfileRefreshTimeout(t *testing.T) {
	profile := newTestProfile(t, "")

	t.Run("Should be zero when unset", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), profile.RefreshTimeout())
	})

	t.Run("Should round trip a duration", func(t *testing.T) {
		profile.SetRefreshTimeout(45 * time.Second)
		assert.Equal(t, 45*time.Second, profile.RefreshTimeout())
	})

	t.Run("Should be zero when malformed", func(t *testing.T) {
		profile.SetString(keyRefreshTimeout, "soon")
		assert.Equal(t, time.Duration(0), profile.RefreshTimeout())
	})

	t.Run("Should clear the value with a non-positive duration", func(t *testing.T) {
		profile.SetRefreshTimeout(10 * time.Second)
		profile.SetRefreshTimeout(0)
		assert.Equal(t, "", profile.GetString(keyRefreshTimeout))
	})
}

func TestProfileResolveFlags(t *testing.T) {
	for _, tc := range []struct {
		description     string
		storedBaseURL   string
		flagBaseURL     string
		expectedBaseURL string
	}{
		{
			description:     "Should fall back to the default base url",
			expectedBaseURL: DefaultBaseURL,
		},
		{
			description:     "Should keep the stored base url",
			storedBaseURL:   "https://vault.example.com/api",
			expectedBaseURL: "https://vault.example.com/api",
		},
		{
			description:     "Should prefer the flag over the stored base url",
			storedBaseURL:   "https://vault.example.com/api",
			flagBaseURL:     "https://staging.example.com/api/",
			expectedBaseURL: "https://staging.example.com/api",
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			profile := newTestProfile(t, "")
			profile.SetBaseURL(tc.storedBaseURL)
			profile.baseURL = tc.flagBaseURL
			profile.refreshTimeout = 5 * time.Second

			assert.Nil(t, profile.resolveFlags())

			assert.Equal(t, tc.expectedBaseURL, profile.BaseURL())
			assert.Equal(t, 5*time.Second, profile.RefreshTimeout())

			_, err := os.Stat(profile.Path())
			assert.Nil(t, err)
		})
	}
}

func TestProfileListProfiles(t *testing.T) {
	t.Run("Should list the profiles saved in the profile directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		dir := "/home/vault/.config/vault-cli"

		assert.Nil(t, afero.WriteFile(fs, filepath.Join(dir, "default.yaml"), []byte(`default:
  email: ada@example.com
  base_url: http://localhost:8080/api
  access_token: access
  refresh_token: refresh
`), 0600))
		assert.Nil(t, afero.WriteFile(fs, filepath.Join(dir, "work.yaml"), []byte(`work:
  base_url: https://vault.example.com/api
`), 0600))
		assert.Nil(t, afero.WriteFile(fs, filepath.Join(dir, "stale.yaml"), []byte(`stale:
  email: grace@example.com
  refresh_token: refresh
`), 0600))
		assert.Nil(t, afero.WriteFile(fs, filepath.Join(dir, "notes.txt"), []byte("ignored"), 0600))

		profile := NewProfileWithFs(DefaultProfile, dir, "/", fs)

		summaries, err := profile.ListProfiles()
		assert.Nil(t, err)
		assert.Equal(t, []ProfileSummary{
			{Name: "default", Email: "ada@example.com", BaseURL: "http://localhost:8080/api", LoggedIn: true},
			{Name: "stale", Email: "grace@example.com"},
			{Name: "work", BaseURL: "https://vault.example.com/api"},
		}, summaries)
	})

	t.Run("Should list nothing when the profile directory does not exist", func(t *testing.T) {
		profile := NewProfileWithFs(DefaultProfile, "/nowhere", "/", afero.NewMemMapFs())

		summaries, err := profile.ListProfiles()
		assert.Nil(t, err)
		assert.Equal(t, 0, len(summaries))
	})
}
