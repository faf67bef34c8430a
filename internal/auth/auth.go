package auth

import (
	"strings"
)

// Service is an auth service
type Service interface {
	ClearSession()
	Save() error
	Session() Session
	SetSession(session Session)
}

// Session is the credential pair issued by the auth service
type Session struct {
	AccessToken  string
	RefreshToken string
}

// LoggedIn reports whether the session holds both of its tokens
func (s Session) LoggedIn() bool {
	return s.AccessToken != "" && s.RefreshToken != ""
}

// RedactedAccessToken returns the session's access token with all
// but the last segment of its signature hidden
func (s Session) RedactedAccessToken() string {
	return redactToken(s.AccessToken)
}

const visibleTokenChars = 6

func redactToken(token string) string {
	if token == "" {
		return ""
	}

	parts := strings.Split(token, ".")
	lastIdx := len(parts) - 1

	out := make([]string, len(parts))
	for i := 0; i < lastIdx; i++ {
		out[i] = strings.Repeat("*", len(parts[i]))
	}

	last := parts[lastIdx]
	if len(last) <= visibleTokenChars {
		out[lastIdx] = strings.Repeat("*", len(last))
	} else {
		out[lastIdx] = strings.Repeat("*", len(last)-visibleTokenChars) + last[len(last)-visibleTokenChars:]
	}

	return strings.Join(out, ".")
}
