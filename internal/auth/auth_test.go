package auth

import (
	"testing"

	"github.com/deomiarn/securevault/internal/utils/test/assert"
)

func TestSession(t *testing.T) {
	t.Run("Session should redact its access token by displaying only the tail of the signature", func(t *testing.T) {
		for _, tc := range []struct {
			description string
			accessToken string
			display     string
		}{
			{
				description: "With an empty token",
				accessToken: "",
				display:     "",
			},
			{
				description: "With a token that has no dots",
				accessToken: "opaque",
				display:     "******",
			},
			{
				description: "With a token that has a long last segment",
				accessToken: "head.body.signature",
				display:     "****.****.***nature",
			},
		} {
			t.Run(tc.description, func(t *testing.T) {
				session := Session{AccessToken: tc.accessToken}
				assert.Equal(t, tc.display, session.RedactedAccessToken())
			})
		}
	})

	t.Run("Session should only be logged in with both tokens present", func(t *testing.T) {
		assert.False(t, Session{AccessToken: "access"}.LoggedIn(), "expected session without refresh token to be logged out")
		assert.False(t, Session{RefreshToken: "refresh"}.LoggedIn(), "expected session without access token to be logged out")
		assert.True(t, Session{"access", "refresh"}.LoggedIn(), "expected session with both tokens to be logged in")
	})
}
