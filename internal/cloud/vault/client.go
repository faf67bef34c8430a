package vault

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/deomiarn/securevault/internal/auth"
	"github.com/deomiarn/securevault/internal/utils/api"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestOriginValue = "vault-cli"

	// DefaultRefreshTimeout is the default upper bound on a session refresh call
	DefaultRefreshTimeout = 30 * time.Second
)

// Client is a SecureVault client
type Client interface {
	Login(email, password string) (AuthResponse, error)
	Register(payload RegisterRequest) (AuthResponse, error)
	VerifyLogin(email, code string) (AuthResponse, error)
	Logout(refreshToken string) error

	SetupTwoFactor() (TwoFactorSetup, error)
	EnableTwoFactor(code string) error
	DisableTwoFactor(code string) error

	Secrets() ([]SecretSummary, error)
	Secret(secretID string) (Secret, error)
	CreateSecret(payload CreateSecretRequest) (Secret, error)
	UpdateSecret(secretID string, payload UpdateSecretRequest) (Secret, error)
	DeleteSecret(secretID string) error

	Folders() ([]Folder, error)
	Folder(folderID string) (Folder, error)
	CreateFolder(payload CreateFolderRequest) (Folder, error)
	UpdateFolder(folderID string, payload UpdateFolderRequest) (Folder, error)
	DeleteFolder(folderID string) error

	ShareSecret(secretID string, payload ShareRequest) (Share, error)
	Shares(secretID string) ([]Share, error)
	UpdateSharePermission(secretID, shareID string, permission Permission) (Share, error)
	RevokeShare(secretID, shareID string) error
	SharedWithMe() ([]Share, error)

	AuditEvents(filter AuditFilter) (AuditEventsPage, error)
	ExportAuditEvents(filter AuditFilter) (io.ReadCloser, error)
}

// Option configures a SecureVault client
type Option func(c *client)

// WithHTTPClient sets the *http.Client used to send requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) { c.httpClient = httpClient }
}

// WithRefreshTimeout bounds how long a session refresh may take
// before every request waiting on it is rejected
func WithRefreshTimeout(timeout time.Duration) Option {
	return func(c *client) {
		if timeout > 0 {
			c.refreshTimeout = timeout
		}
	}
}

// WithLogger sets the logger used to trace requests
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLoginRequiredHandler sets the hook invoked once the session
// is found to be unrecoverable and the user must log in again
func WithLoginRequiredHandler(fn func()) Option {
	return func(c *client) { c.onLoginRequired = fn }
}

// NewAuthClient creates a new SecureVault client capable of managing the user's session
func NewAuthClient(baseURL string, authService auth.Service, options ...Option) Client {
	c := &client{
		baseURL:        baseURL,
		httpClient:     http.DefaultClient,
		refreshTimeout: DefaultRefreshTimeout,
		logger:         zap.NewNop().Sugar(),
		session:        &sessionStore{service: authService},
		refresh:        &refreshCoordinator{},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

type client struct {
	baseURL         string
	httpClient      *http.Client
	refreshTimeout  time.Duration
	logger          *zap.SugaredLogger
	onLoginRequired func()

	session *sessionStore
	refresh *refreshCoordinator
}

func (c *client) doJSON(method, path string, payload interface{}, options api.RequestOptions) (*http.Response, error) {
	jsonOptions, err := api.JSONRequestOptions(payload)
	if err != nil {
		return nil, err
	}
	jsonOptions.Query = options.Query

	return c.do(method, path, jsonOptions)
}

func (c *client) do(method, path string, options api.RequestOptions) (*http.Response, error) {
	req, err := newRequest(method, path, options)
	if err != nil {
		return nil, err
	}
	req.accessToken = c.session.accessToken()

	return c.send(req)
}

// request wraps an outgoing call so that it can be replayed
// without mutating the caller's RequestOptions
type request struct {
	method      string
	path        string
	query       map[string]string
	contentType string
	body        []byte

	// accessToken is the token attached to the latest attempt
	accessToken    string
	alreadyRetried bool
}

func newRequest(method, path string, options api.RequestOptions) (*request, error) {
	var body []byte
	if options.Body != nil {
		b, err := ioutil.ReadAll(options.Body)
		if err != nil {
			return nil, err
		}
		body = b
	}

	return &request{
		method:      method,
		path:        path,
		query:       options.Query,
		contentType: options.ContentType,
		body:        body,
	}, nil
}

func (r *request) String() string { return r.method + " " + r.path }

// isLoginCall reports whether the request itself obtains a session,
// in which case an authentication failure must never trigger a refresh
func (r *request) isLoginCall() bool {
	switch r.path {
	case loginPath, verifyLoginPath, refreshPath:
		return true
	}
	return false
}

func (c *client) send(req *request) (*http.Response, error) {
	httpReq, err := http.NewRequest(req.method, c.baseURL+req.path, bytes.NewReader(req.body))
	if err != nil {
		return nil, err
	}

	api.IncludeQuery(httpReq, req.query)

	requestID := uuid.NewString()
	httpReq.Header.Set(api.HeaderRequestOrigin, requestOriginValue)
	httpReq.Header.Set(api.HeaderRequestID, requestID)

	if req.contentType != "" {
		httpReq.Header.Set(api.HeaderContentType, req.contentType)
	}

	if req.accessToken != "" {
		httpReq.Header.Set(api.HeaderAuthorization, api.BearerToken(req.accessToken))
	}

	res, resErr := c.httpClient.Do(httpReq)
	if resErr != nil {
		c.logger.Debugw("request failed", "request_id", requestID, "request", req.String(), "error", resErr)
		return nil, resErr
	}

	c.logger.Debugw("request completed", "request_id", requestID, "request", req.String(), "status", res.StatusCode, "retried", req.alreadyRetried)

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return res, nil
	}
	defer res.Body.Close()

	failure := parseResponseError(res)
	if !IsUnauthorized(failure) || req.isLoginCall() || req.alreadyRetried {
		return nil, failure
	}

	req.alreadyRetried = true

	token, tokenErr := c.awaitAccessToken(req, failure)
	if tokenErr != nil {
		return nil, tokenErr
	}
	req.accessToken = token

	return c.send(req)
}

func decodeJSON(res *http.Response, out interface{}) error {
	defer res.Body.Close()
	return json.NewDecoder(res.Body).Decode(out)
}
