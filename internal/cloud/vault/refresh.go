package vault

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/deomiarn/securevault/internal/auth"
	"github.com/deomiarn/securevault/internal/utils/api"
)

var errRefreshInterrupted = errors.New("session refresh was interrupted")

// sessionStore serializes access to the stored credential pair,
// which may be read by many in-flight requests at once
type sessionStore struct {
	mu      sync.Mutex
	service auth.Service
}

func (s *sessionStore) accessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.service.Session().AccessToken
}

func (s *sessionStore) refreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.service.Session().RefreshToken
}

func (s *sessionStore) set(session auth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.service.SetSession(session)
	return s.service.Save()
}

// clear empties the stored credential pair and reports whether it held any credential
func (s *sessionStore) clear() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.service.Session()
	if session.AccessToken == "" && session.RefreshToken == "" {
		return false, nil
	}
	s.service.ClearSession()
	return true, s.service.Save()
}

type refreshResult struct {
	accessToken string
	err         error
}

type pendingRequest struct {
	label  string
	result chan refreshResult
}

// refreshCoordinator is either idle or refreshing; while refreshing it
// holds the requests waiting on the outcome in arrival order
type refreshCoordinator struct {
	mu         sync.Mutex
	refreshing bool
	pending    []pendingRequest
}

// join registers a request that failed authentication while carrying sentToken
// Exactly one of the following is returned:
//   - a token to replay with right away, when the session changed since the request was sent
//   - a channel that receives the outcome of the in-flight refresh
//   - lead set to true, when the caller must perform the refresh and then settle it
func (rc *refreshCoordinator) join(label, sentToken string, currentToken func() string) (string, <-chan refreshResult, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.refreshing {
		result := make(chan refreshResult, 1)
		rc.pending = append(rc.pending, pendingRequest{label, result})
		return "", result, false
	}

	if token := currentToken(); token != "" && token != sentToken {
		return token, nil, false
	}

	rc.refreshing = true
	return "", nil, true
}

// settle resolves or rejects every waiting request with the same result
// and returns the coordinator to idle in a single step
func (rc *refreshCoordinator) settle(result refreshResult) {
	rc.mu.Lock()
	pending := rc.pending
	rc.pending = nil
	rc.refreshing = false
	rc.mu.Unlock()

	for _, p := range pending {
		p.result <- result
	}
}

// snapshot returns the labels of the waiting requests in arrival order
func (rc *refreshCoordinator) snapshot() []string {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	labels := make([]string, 0, len(rc.pending))
	for _, p := range rc.pending {
		labels = append(labels, p.label)
	}
	return labels
}

func (c *client) awaitAccessToken(req *request, failure error) (string, error) {
	token, wait, lead := c.refresh.join(req.String(), req.accessToken, c.session.accessToken)
	switch {
	case lead:
		return c.refreshAccessToken(req, failure)
	case wait != nil:
		c.logger.Debugw("request queued until session refresh settles", "request", req.String())
		result := <-wait
		return result.accessToken, result.err
	default:
		c.logger.Debugw("session was refreshed since request was sent", "request", req.String())
		return token, nil
	}
}

// refreshAccessToken performs the single in-flight refresh on behalf of every waiting request
// The deferred settle guarantees the coordinator returns to idle however this exits
func (c *client) refreshAccessToken(req *request, failure error) (string, error) {
	result := refreshResult{err: errRefreshInterrupted}
	defer func() { c.refresh.settle(result) }()

	refreshToken := c.session.refreshToken()
	if refreshToken == "" {
		c.logger.Debugw("no refresh token stored", "request", req.String())
		result.err = c.endSession(failure)
		return "", result.err
	}

	c.logger.Debugw("refreshing session", "request", req.String())

	ctx, cancel := context.WithTimeout(context.Background(), c.refreshTimeout)
	defer cancel()

	res, err := c.refreshSession(ctx, refreshToken)
	if err != nil {
		c.logger.Debugw("session refresh failed", "error", err)
		result.err = c.endSession(err)
		return "", result.err
	}

	if err := c.session.set(res.Session()); err != nil {
		c.logger.Warnw("failed to persist refreshed session", "error", err)
	}

	result = refreshResult{accessToken: res.AccessToken}
	return result.accessToken, nil
}

// endSession clears the stored credentials and rejects the request
// The login required hook only fires for the request that ends a stored session
func (c *client) endSession(cause error) error {
	cleared, err := c.session.clear()
	if err != nil {
		c.logger.Warnw("failed to persist cleared session", "error", err)
	}
	if cleared && c.onLoginRequired != nil {
		c.onLoginRequired()
	}
	return ErrLoginRequired{cause}
}

// refreshSession exchanges the refresh token for a new credential pair
// It bypasses the response interceptor: a failed refresh is always terminal
func (c *client) refreshSession(ctx context.Context, refreshToken string) (AuthResponse, error) {
	body, err := json.Marshal(refreshPayload{refreshToken})
	if err != nil {
		return AuthResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, bytes.NewReader(body))
	if err != nil {
		return AuthResponse{}, err
	}
	req.Header.Set(api.HeaderContentType, api.MediaTypeJSON)
	req.Header.Set(api.HeaderRequestOrigin, requestOriginValue)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return AuthResponse{}, err
	}

	if res.StatusCode != http.StatusOK {
		defer res.Body.Close()
		return AuthResponse{}, parseResponseError(res)
	}

	var authRes AuthResponse
	if err := decodeJSON(res, &authRes); err != nil {
		return AuthResponse{}, err
	}

	if authRes.AccessToken == "" || authRes.RefreshToken == "" {
		return AuthResponse{}, errIncompleteSession
	}
	return authRes, nil
}
