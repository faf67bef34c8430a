package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/deomiarn/securevault/internal/auth"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// DefaultBaseURL is the default SecureVault server url
	DefaultBaseURL = "http://localhost:8080/api"

	// ProfileType is the file type for profiles
	ProfileType = "yaml"

	envPrefix = "vault"
	envFile   = ".env"
)

// set of supported CLI profile flags
const (
	flagProfile      = "profile"
	flagProfileUsage = `Specify your profile (Default value: "default")`

	flagBaseURL      = "base-url"
	flagBaseURLUsage = "Specify the base SecureVault server URL"

	flagRefreshTimeout      = "refresh-timeout"
	flagRefreshTimeoutUsage = "Specify how long requests wait on a session refresh"
)

// set of supported CLI profile keys
const (
	keyAccessToken    = "access_token"
	keyRefreshToken   = "refresh_token"
	keyEmail          = "email"
	keyBaseURL        = "base_url"
	keyRefreshTimeout = "refresh_timeout"
)

// Profile is the CLI profile
type Profile struct {
	Name             string
	WorkingDirectory string

	baseURL        string
	refreshTimeout time.Duration

	dir string
	fs  afero.Fs
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := homeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", dirErr)
	}

	wd, wdErr := os.Getwd()
	if wdErr != nil {
		return nil, fmt.Errorf("failed to get current working directory: %w", wdErr)
	}

	return NewProfileWithFs(name, dir, wd, afero.NewOsFs()), nil
}

// NewProfileWithFs creates a new CLI profile stored in dir on the provided filesystem
func NewProfileWithFs(name, dir, wd string, fs afero.Fs) *Profile {
	return &Profile{
		Name:             name,
		WorkingDirectory: wd,
		dir:              dir,
		fs:               fs,
	}
}

// Load loads the CLI profile
// A .env file found in the working directory is applied to the
// environment first so its VAULT_ variables override the stored profile
func (p *Profile) Load() error {
	if err := p.loadEnvFile(); err != nil {
		return err
	}

	viper.SetFs(p.fs)
	viper.SetConfigName(p.Name)
	viper.AddConfigPath(p.dir)
	viper.SetConfigPermissions(0600)
	viper.SetConfigType(ProfileType)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %s", err)
	}
	return nil
}

func (p *Profile) loadEnvFile() error {
	path := filepath.Join(p.WorkingDirectory, envFile)

	exists, err := afero.Exists(p.fs, path)
	if err != nil || !exists {
		return nil
	}

	f, err := p.fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read %s file: %s", envFile, err)
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to read %s file: %s", envFile, err)
	}

	for key, value := range env {
		if _, ok := os.LookupEnv(key); ok {
			continue // the shell environment wins
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %s", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %s", err)
		}
	}

	if err := viper.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %s", err)
	}
	return nil
}

// Dir returns the CLI profile directory
func (p Profile) Dir() string {
	return p.dir
}

// Path returns the CLI profile filepath
func (p Profile) Path() string {
	return filepath.Join(p.dir, p.Name+"."+ProfileType)
}

// ProfileSummary describes a CLI profile saved on disk
type ProfileSummary struct {
	Name     string
	Email    string
	BaseURL  string
	LoggedIn bool
}

// ListProfiles reads every CLI profile saved alongside this one
func (p Profile) ListProfiles() ([]ProfileSummary, error) {
	infos, err := afero.ReadDir(p.fs, p.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read CLI profiles: %w", err)
	}

	var summaries []ProfileSummary
	for _, info := range infos {
		if info.IsDir() || filepath.Ext(info.Name()) != "."+ProfileType {
			continue
		}
		name := strings.TrimSuffix(info.Name(), "."+ProfileType)

		v := viper.New()
		v.SetFs(p.fs)
		v.SetConfigFile(filepath.Join(p.dir, info.Name()))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read CLI profile %s: %w", name, err)
		}

		session := auth.Session{
			AccessToken:  v.GetString(name + "." + keyAccessToken),
			RefreshToken: v.GetString(name + "." + keyRefreshToken),
		}

		summaries = append(summaries, ProfileSummary{
			Name:     name,
			Email:    v.GetString(name + "." + keyEmail),
			BaseURL:  v.GetString(name + "." + keyBaseURL),
			LoggedIn: session.LoggedIn(),
		})
	}
	return summaries, nil
}

// Clear clears the specified CLI profile property
func (p Profile) Clear(name string) {
	p.SetString(name, "")
}

// SetString sets the specified CLI profile property
func (p Profile) SetString(name, value string) {
	viper.Set(p.propertyKey(name), value)
}

// GetString gets the specified CLI profile property
func (p Profile) GetString(name string) string {
	return viper.GetString(p.propertyKey(name))
}

func (p Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Session gets the CLI profile session
func (p Profile) Session() auth.Session {
	return auth.Session{
		AccessToken:  p.GetString(keyAccessToken),
		RefreshToken: p.GetString(keyRefreshToken),
	}
}

// SetSession sets the CLI profile session
func (p Profile) SetSession(session auth.Session) {
	p.SetString(keyAccessToken, session.AccessToken)
	p.SetString(keyRefreshToken, session.RefreshToken)
}

// ClearSession clears the CLI profile session
func (p Profile) ClearSession() {
	p.Clear(keyAccessToken)
	p.Clear(keyRefreshToken)
}

// Email gets the email of the CLI profile's last login
func (p Profile) Email() string {
	return p.GetString(keyEmail)
}

// SetEmail sets the email of the CLI profile's last login
func (p Profile) SetEmail(email string) {
	p.SetString(keyEmail, email)
}

// BaseURL gets the CLI profile SecureVault server url
func (p Profile) BaseURL() string {
	return p.GetString(keyBaseURL)
}

// SetBaseURL sets the CLI profile SecureVault server url
func (p Profile) SetBaseURL(baseURL string) {
	p.SetString(keyBaseURL, strings.TrimSuffix(baseURL, "/"))
}

// RefreshTimeout gets the CLI profile session refresh timeout
// A missing or malformed value yields zero, which leaves the client default in place
func (p Profile) RefreshTimeout() time.Duration {
	d, err := time.ParseDuration(p.GetString(keyRefreshTimeout))
	if err != nil {
		return 0
	}
	return d
}

// SetRefreshTimeout sets the CLI profile session refresh timeout
func (p Profile) SetRefreshTimeout(timeout time.Duration) {
	if timeout <= 0 {
		p.Clear(keyRefreshTimeout)
		return
	}
	p.SetString(keyRefreshTimeout, timeout.String())
}

func (p *Profile) resolveFlags() error {
	if p.baseURL == "" {
		p.baseURL = p.BaseURL()
		if p.baseURL == "" {
			p.baseURL = DefaultBaseURL
		}
	}
	p.SetBaseURL(p.baseURL)

	if p.refreshTimeout > 0 {
		p.SetRefreshTimeout(p.refreshTimeout)
	}

	return p.Save()
}
