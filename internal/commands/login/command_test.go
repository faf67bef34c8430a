package login

import (
	"errors"
	"testing"

	"github.com/deomiarn/securevault/internal/auth"
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/utils/test/assert"
	"github.com/deomiarn/securevault/internal/utils/test/mock"

	"github.com/spf13/viper"
)

func TestLoginHandler(t *testing.T) {
	newToken := func(t *testing.T, email string) string {
		return mock.NewAccessToken(t, "user-"+email, email, "USER")
	}

	t.Run("With no existing session should save the new session", func(t *testing.T) {
		profile := mock.NewProfile(t)
		accessToken := newToken(t, "ada@example.com")

		var capturedEmail, capturedPassword string
		client := mock.VaultClient{}
		client.LoginFn = func(email, password string) (vault.AuthResponse, error) {
			capturedEmail, capturedPassword = email, password
			return vault.AuthResponse{
				Email:        "ada@example.com",
				FirstName:    "Ada",
				LastName:     "Lovelace",
				AccessToken:  accessToken,
				RefreshToken: "refresh",
			}, nil
		}

		out, ui := mock.NewUI()

		cmd := &Command{inputs{Email: "ada@example.com", Password: "s3cret"}}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{Vault: client}))

		assert.Equal(t, "ada@example.com", capturedEmail)
		assert.Equal(t, "s3cret", capturedPassword)
		assert.Equal(t, auth.Session{AccessToken: accessToken, RefreshToken: "refresh"}, profile.Session())
		assert.Equal(t, "ada@example.com", profile.Email())
		assert.Equal(t, "Successfully logged in as Ada Lovelace\n", out.String())

		ensureProfileSession(t, profile, auth.Session{AccessToken: accessToken, RefreshToken: "refresh"})
	})

	t.Run("Should verify the login with the provided code when two-factor authentication is required", func(t *testing.T) {
		profile := mock.NewProfile(t)

		var capturedCode string
		client := mock.VaultClient{}
		client.LoginFn = func(email, password string) (vault.AuthResponse, error) {
			return vault.AuthResponse{Email: email, TOTPRequired: true}, nil
		}
		client.VerifyLoginFn = func(email, code string) (vault.AuthResponse, error) {
			capturedCode = code
			return vault.AuthResponse{Email: email, AccessToken: "access", RefreshToken: "refresh"}, nil
		}

		out, ui := mock.NewUI()

		cmd := &Command{inputs{Email: "ada@example.com", Password: "s3cret", Code: "123456"}}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{Vault: client}))

		assert.Equal(t, "123456", capturedCode)
		assert.Equal(t, auth.Session{AccessToken: "access", RefreshToken: "refresh"}, profile.Session())
		assert.Equal(t, "Successfully logged in as ada@example.com\n", out.String())
	})

	t.Run("Should prompt for the code when two-factor authentication is required", func(t *testing.T) {
		profile := mock.NewProfile(t)

		var capturedCode string
		client := mock.VaultClient{}
		client.LoginFn = func(email, password string) (vault.AuthResponse, error) {
			return vault.AuthResponse{TOTPRequired: true}, nil
		}
		client.VerifyLoginFn = func(email, code string) (vault.AuthResponse, error) {
			capturedCode = code
			return vault.AuthResponse{AccessToken: "access", RefreshToken: "refresh"}, nil
		}

		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			console.ExpectString("Authentication Code")
			console.SendLine("654321")
			console.ExpectEOF()
		}()

		cmd := &Command{inputs{Email: "ada@example.com", Password: "s3cret"}}
		err := cmd.Handler(profile, ui, cli.Clients{Vault: client})

		console.Tty().Close() // flush the writers
		<-doneCh              // wait for procedure to complete

		assert.Nil(t, err)
		assert.Equal(t, "654321", capturedCode)
	})

	t.Run("Should return the error and leave the session untouched when the login fails", func(t *testing.T) {
		profile := mock.NewProfile(t)

		client := mock.VaultClient{}
		client.LoginFn = func(email, password string) (vault.AuthResponse, error) {
			return vault.AuthResponse{}, vault.ServerError{StatusCode: 401, Message: "Invalid email or password"}
		}

		_, ui := mock.NewUI()

		cmd := &Command{inputs{Email: "ada@example.com", Password: "wrong"}}
		err := cmd.Handler(profile, ui, cli.Clients{Vault: client})

		assert.Equal(t, "Invalid email or password", err.Error())
		assert.Equal(t, auth.Session{}, profile.Session())
	})

	t.Run("With an existing session", func(t *testing.T) {
		setup := func(t *testing.T) (*cli.Profile, string, mock.VaultClient) {
			profile := mock.NewProfile(t)
			existing := auth.Session{AccessToken: newToken(t, "grace@example.com"), RefreshToken: "existing-refresh"}
			profile.SetSession(existing)
			assert.Nil(t, profile.Save())

			client := mock.VaultClient{}
			client.LoginFn = func(email, password string) (vault.AuthResponse, error) {
				return vault.AuthResponse{Email: email, AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
			}
			return profile, existing.AccessToken, client
		}

		t.Run("For the same user should not prompt and refresh the session", func(t *testing.T) {
			profile, _, client := setup(t)
			_, ui := mock.NewUI()

			cmd := &Command{inputs{Email: "grace@example.com", Password: "s3cret"}}
			assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{Vault: client}))

			assert.Equal(t, auth.Session{AccessToken: "new-access", RefreshToken: "new-refresh"}, profile.Session())
		})

		for _, tc := range []struct {
			description     string
			confirmAnswer   string
			expectedSession func(existingToken string) auth.Session
		}{
			{
				description:   "For another user should do nothing if the user does not want to proceed",
				confirmAnswer: "n",
				expectedSession: func(existingToken string) auth.Session {
					return auth.Session{AccessToken: existingToken, RefreshToken: "existing-refresh"}
				},
			},
			{
				description:   "For another user should save a new session if the user does want to proceed",
				confirmAnswer: "y",
				expectedSession: func(existingToken string) auth.Session {
					return auth.Session{AccessToken: "new-access", RefreshToken: "new-refresh"}
				},
			},
		} {
			t.Run(tc.description, func(t *testing.T) {
				profile, existingToken, client := setup(t)

				_, console, _, ui, consoleErr := mock.NewVT10XConsole()
				assert.Nil(t, consoleErr)
				defer console.Close()

				doneCh := make(chan struct{})
				go func() {
					defer close(doneCh)
					console.ExpectString("This action will terminate the existing session for user: grace@example.com")
					console.SendLine(tc.confirmAnswer)
					console.ExpectEOF()
				}()

				cmd := &Command{inputs{Email: "ada@example.com", Password: "s3cret"}}
				err := cmd.Handler(profile, ui, cli.Clients{Vault: client})

				console.Tty().Close() // flush the writers
				<-doneCh              // wait for procedure to complete

				assert.Nil(t, err)
				assert.Equal(t, tc.expectedSession(existingToken), profile.Session())
			})
		}
	})

	t.Run("Should clear a malformed stored session and log in without prompting", func(t *testing.T) {
		profile := mock.NewProfile(t)
		profile.SetSession(auth.Session{AccessToken: "not-a-jwt", RefreshToken: "refresh"})

		client := mock.VaultClient{}
		client.LoginFn = func(email, password string) (vault.AuthResponse, error) {
			return vault.AuthResponse{}, errors.New("server unavailable")
		}

		_, ui := mock.NewUI()

		cmd := &Command{inputs{Email: "ada@example.com", Password: "s3cret"}}
		assert.Equal(t, errors.New("server unavailable"), cmd.Handler(profile, ui, cli.Clients{Vault: client}))
		assert.Equal(t, auth.Session{}, profile.Session())
	})
}

func ensureProfileSession(t *testing.T, profile *cli.Profile, expected auth.Session) {
	t.Helper()

	v := viper.New()
	v.SetConfigFile(profile.Path())
	assert.Nil(t, v.ReadInConfig())

	assert.Equal(t, expected.AccessToken, v.GetString(profile.Name+".access_token"))
	assert.Equal(t, expected.RefreshToken, v.GetString(profile.Name+".refresh_token"))
}
