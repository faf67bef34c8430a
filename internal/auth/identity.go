package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var errMissingSubject = errors.New("token has no subject")

// Identity is the minimal user identity projected from an access token
// It is a display convenience only: the server stays authoritative on the token's validity
type Identity struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Role      string
}

// DisplayName returns the identity's full name if known, otherwise its email
func (i Identity) DisplayName() string {
	switch {
	case i.FirstName != "" && i.LastName != "":
		return fmt.Sprintf("%s %s", i.FirstName, i.LastName)
	case i.FirstName != "":
		return i.FirstName
	}
	return i.Email
}

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// DecodeIdentity reads the identity claims embedded in the access token
// The token signature is not verified and no network call is made
func DecodeIdentity(accessToken string) (Identity, error) {
	var claims accessClaims
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil {
		return Identity{}, err
	}

	if claims.Subject == "" {
		return Identity{}, errMissingSubject
	}

	return Identity{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// Bootstrap reconstructs the identity of the stored session
// A malformed access token is treated as absent: the stored session is cleared
// and an unauthenticated result is returned
// The error is only set when the cleared session fails to persist,
// the result is unauthenticated either way
func Bootstrap(service Service) (Identity, bool, error) {
	session := service.Session()
	if session.AccessToken == "" {
		return Identity{}, false, nil
	}

	identity, err := DecodeIdentity(session.AccessToken)
	if err != nil {
		service.ClearSession()
		return Identity{}, false, service.Save()
	}
	return identity, true, nil
}
