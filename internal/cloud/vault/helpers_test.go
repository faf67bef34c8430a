package vault

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deomiarn/securevault/internal/auth"
	"github.com/deomiarn/securevault/internal/utils/api"
)

const (
	staleAccessToken  = "stale-access"
	staleRefreshToken = "stale-refresh"
	freshAccessToken  = "fresh-access"
	freshRefreshToken = "fresh-refresh"
)

var (
	staleSession = auth.Session{AccessToken: staleAccessToken, RefreshToken: staleRefreshToken}
	freshSession = auth.Session{AccessToken: freshAccessToken, RefreshToken: freshRefreshToken}
)

type testAuth struct {
	session auth.Session
	saves   int
}

func (a *testAuth) ClearSession() { a.session = auth.Session{} }

func (a *testAuth) Save() error {
	a.saves++
	return nil
}

func (a *testAuth) Session() auth.Session { return a.session }

func (a *testAuth) SetSession(session auth.Session) { a.session = session }

func newTestClient(t *testing.T, handler http.Handler, session auth.Session, options ...Option) (*client, *testAuth) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	authService := &testAuth{session: session}
	return NewAuthClient(server.URL, authService, options...).(*client), authService
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set(api.HeaderContentType, api.MediaTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, ServerError{
		StatusCode: http.StatusUnauthorized,
		Code:       "Unauthorized",
		Message:    "Invalid or expired token",
	})
}

// requireToken serves the handler only when the request carries the provided access token
func requireToken(token string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(api.HeaderAuthorization) != api.BearerToken(token) {
			writeUnauthorized(w)
			return
		}
		handler(w, r)
	}
}

// eventually polls the condition until it holds or a few seconds pass
func eventually(condition func() bool) bool {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}
