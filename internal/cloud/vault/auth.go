package vault

import (
	"net/http"

	"github.com/deomiarn/securevault/internal/auth"
	"github.com/deomiarn/securevault/internal/utils/api"
)

const (
	authPath = "/auth"

	loginPath    = authPath + "/login"
	registerPath = authPath + "/register"
	refreshPath  = authPath + "/refresh"
	logoutPath   = authPath + "/logout"

	twoFactorPath        = authPath + "/2fa"
	twoFactorSetupPath   = twoFactorPath + "/setup"
	twoFactorVerifyPath  = twoFactorPath + "/verify"
	twoFactorDisablePath = twoFactorPath + "/disable"
	verifyLoginPath      = twoFactorPath + "/verify-login"
)

// AuthResponse is the SecureVault response to any call that opens a session
type AuthResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         string `json:"role"`
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TOTPRequired bool   `json:"totpRequired"`
}

// Session returns the credential pair issued with the response
func (res AuthResponse) Session() auth.Session {
	return auth.Session{AccessToken: res.AccessToken, RefreshToken: res.RefreshToken}
}

// Identity returns the user the response was issued for
func (res AuthResponse) Identity() auth.Identity {
	return auth.Identity{
		ID:        res.ID,
		Email:     res.Email,
		FirstName: res.FirstName,
		LastName:  res.LastName,
		Role:      res.Role,
	}
}

// RegisterRequest is the payload to create a SecureVault account
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// TwoFactorSetup is the TOTP secret issued while enabling two-factor authentication
type TwoFactorSetup struct {
	Secret    string `json:"secret"`
	QRCodeURI string `json:"qrCodeUri"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyLoginPayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type refreshPayload struct {
	RefreshToken string `json:"refreshToken"`
}

type codePayload struct {
	Code string `json:"code"`
}

func (c *client) Login(email, password string) (AuthResponse, error) {
	return c.authenticate(loginPath, loginPayload{email, password})
}

func (c *client) Register(payload RegisterRequest) (AuthResponse, error) {
	return c.authenticate(registerPath, payload)
}

func (c *client) VerifyLogin(email, code string) (AuthResponse, error) {
	return c.authenticate(verifyLoginPath, verifyLoginPayload{email, code})
}

func (c *client) authenticate(path string, payload interface{}) (AuthResponse, error) {
	res, err := c.doJSON(http.MethodPost, path, payload, api.RequestOptions{})
	if err != nil {
		return AuthResponse{}, err
	}

	var authRes AuthResponse
	if err := decodeJSON(res, &authRes); err != nil {
		return AuthResponse{}, err
	}
	return authRes, nil
}

func (c *client) Logout(refreshToken string) error {
	res, err := c.doJSON(http.MethodPost, logoutPath, refreshPayload{refreshToken}, api.RequestOptions{})
	if err != nil {
		return err
	}
	return res.Body.Close()
}

func (c *client) SetupTwoFactor() (TwoFactorSetup, error) {
	res, err := c.do(http.MethodPost, twoFactorSetupPath, api.RequestOptions{})
	if err != nil {
		return TwoFactorSetup{}, err
	}

	var setup TwoFactorSetup
	if err := decodeJSON(res, &setup); err != nil {
		return TwoFactorSetup{}, err
	}
	return setup, nil
}

func (c *client) EnableTwoFactor(code string) error {
	res, err := c.doJSON(http.MethodPost, twoFactorVerifyPath, codePayload{code}, api.RequestOptions{})
	if err != nil {
		return err
	}
	return res.Body.Close()
}

func (c *client) DisableTwoFactor(code string) error {
	res, err := c.doJSON(http.MethodPost, twoFactorDisablePath, codePayload{code}, api.RequestOptions{})
	if err != nil {
		return err
	}
	return res.Body.Close()
}
