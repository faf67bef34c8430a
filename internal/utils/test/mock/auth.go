package mock

import (
	"testing"
	"time"

	"github.com/deomiarn/securevault/internal/utils/test/assert"

	"github.com/golang-jwt/jwt/v5"
)

var signingKey = []byte("vault-cli-test-signing-key")

// NewAccessToken returns a signed access token carrying the provided identity claims
func NewAccessToken(t *testing.T, subject, email, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"role":  role,
		"iat":   StaticTime.Unix(),
		"exp":   StaticTime.Add(15 * time.Minute).Unix(),
	})

	signed, err := token.SignedString(signingKey)
	assert.Nil(t, err)
	return signed
}
