package mock

import (
	"io"

	"github.com/deomiarn/securevault/internal/cloud/vault"
)

// VaultClient is a mocked SecureVault client
// Any method without its Fn set falls through to the embedded vault.Client,
// which panics when left nil
type VaultClient struct {
	vault.Client

	LoginFn                 func(email, password string) (vault.AuthResponse, error)
	RegisterFn              func(payload vault.RegisterRequest) (vault.AuthResponse, error)
	VerifyLoginFn           func(email, code string) (vault.AuthResponse, error)
	LogoutFn                func(refreshToken string) error
	SetupTwoFactorFn        func() (vault.TwoFactorSetup, error)
	EnableTwoFactorFn       func(code string) error
	DisableTwoFactorFn      func(code string) error
	SecretsFn               func() ([]vault.SecretSummary, error)
	SecretFn                func(secretID string) (vault.Secret, error)
	CreateSecretFn          func(payload vault.CreateSecretRequest) (vault.Secret, error)
	UpdateSecretFn          func(secretID string, payload vault.UpdateSecretRequest) (vault.Secret, error)
	DeleteSecretFn          func(secretID string) error
	FoldersFn               func() ([]vault.Folder, error)
	FolderFn                func(folderID string) (vault.Folder, error)
	CreateFolderFn          func(payload vault.CreateFolderRequest) (vault.Folder, error)
	UpdateFolderFn          func(folderID string, payload vault.UpdateFolderRequest) (vault.Folder, error)
	DeleteFolderFn          func(folderID string) error
	ShareSecretFn           func(secretID string, payload vault.ShareRequest) (vault.Share, error)
	SharesFn                func(secretID string) ([]vault.Share, error)
	UpdateSharePermissionFn func(secretID, shareID string, permission vault.Permission) (vault.Share, error)
	RevokeShareFn           func(secretID, shareID string) error
	SharedWithMeFn          func() ([]vault.Share, error)
	AuditEventsFn           func(filter vault.AuditFilter) (vault.AuditEventsPage, error)
	ExportAuditEventsFn     func(filter vault.AuditFilter) (io.ReadCloser, error)
}

// Login calls the mocked Login implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) Login(email, password string) (vault.AuthResponse, error) {
	if vc.LoginFn != nil {
		return vc.LoginFn(email, password)
	}
	return vc.Client.Login(email, password)
}

// Register calls the mocked Register implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) Register(payload vault.RegisterRequest) (vault.AuthResponse, error) {
	if vc.RegisterFn != nil {
		return vc.RegisterFn(payload)
	}
	return vc.Client.Register(payload)
}

// VerifyLogin calls the mocked VerifyLogin implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) VerifyLogin(email, code string) (vault.AuthResponse, error) {
	if vc.VerifyLoginFn != nil {
		return vc.VerifyLoginFn(email, code)
	}
	return vc.Client.VerifyLogin(email, code)
}

// Logout calls the mocked Logout implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) Logout(refreshToken string) error {
	if vc.LogoutFn != nil {
		return vc.LogoutFn(refreshToken)
	}
	return vc.Client.Logout(refreshToken)
}

// SetupTwoFactor calls the mocked SetupTwoFactor implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) SetupTwoFactor() (vault.TwoFactorSetup, error) {
	if vc.SetupTwoFactorFn != nil {
		return vc.SetupTwoFactorFn()
	}
	return vc.Client.SetupTwoFactor()
}

// EnableTwoFactor calls the mocked EnableTwoFactor implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) EnableTwoFactor(code string) error {
	if vc.EnableTwoFactorFn != nil {
		return vc.EnableTwoFactorFn(code)
	}
	return vc.Client.EnableTwoFactor(code)
}

// DisableTwoFactor calls the mocked DisableTwoFactor implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) DisableTwoFactor(code string) error {
	if vc.DisableTwoFactorFn != nil {
		return vc.DisableTwoFactorFn(code)
	}
	return vc.Client.DisableTwoFactor(code)
}

// Secrets calls the mocked Secrets implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) Secrets() ([]vault.SecretSummary, error) {
	if vc.SecretsFn != nil {
		return vc.SecretsFn()
	}
	return vc.Client.Secrets()
}

// Secret calls the mocked Secret implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) Secret(secretID string) (vault.Secret, error) {
	if vc.SecretFn != nil {
		return vc.SecretFn(secretID)
	}
	return vc.Client.Secret(secretID)
}

// CreateSecret calls the mocked CreateSecret implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) CreateSecret(payload vault.CreateSecretRequest) (vault.Secret, error) {
	if vc.CreateSecretFn != nil {
		return vc.CreateSecretFn(payload)
	}
	return vc.Client.CreateSecret(payload)
}

// UpdateSecret calls the mocked UpdateSecret implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) UpdateSecret(secretID string, payload vault.UpdateSecretRequest) (vault.Secret, error) {
	if vc.UpdateSecretFn != nil {
		return vc.UpdateSecretFn(secretID, payload)
	}
	return vc.Client.UpdateSecret(secretID, payload)
}

// DeleteSecret calls the mocked DeleteSecret implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) DeleteSecret(secretID string) error {
	if vc.DeleteSecretFn != nil {
		return vc.DeleteSecretFn(secretID)
	}
	return vc.Client.DeleteSecret(secretID)
}

// Folders calls the mocked Folders implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) Folders() ([]vault.Folder, error) {
	if vc.FoldersFn != nil {
		return vc.FoldersFn()
	}
	return vc.Client.Folders()
}

// Folder calls the mocked Folder implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) Folder(folderID string) (vault.Folder, error) {
	if vc.FolderFn != nil {
		return vc.FolderFn(folderID)
	}
	return vc.Client.Folder(folderID)
}

// CreateFolder calls the mocked CreateFolder implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) CreateFolder(payload vault.CreateFolderRequest) (vault.Folder, error) {
	if vc.CreateFolderFn != nil {
		return vc.CreateFolderFn(payload)
	}
	return vc.Client.CreateFolder(payload)
}

// UpdateFolder calls the mocked UpdateFolder implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) UpdateFolder(folderID string, payload vault.UpdateFolderRequest) (vault.Folder, error) {
	if vc.UpdateFolderFn != nil {
		return vc.UpdateFolderFn(folderID, payload)
	}
	return vc.Client.UpdateFolder(folderID, payload)
}

// DeleteFolder calls the mocked DeleteFolder implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) DeleteFolder(folderID string) error {
	if vc.DeleteFolderFn != nil {
		return vc.DeleteFolderFn(folderID)
	}
	return vc.Client.DeleteFolder(folderID)
}

// ShareSecret calls the mocked ShareSecret implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) ShareSecret(secretID string, payload vault.ShareRequest) (vault.Share, error) {
	if vc.ShareSecretFn != nil {
		return vc.ShareSecretFn(secretID, payload)
	}
	return vc.Client.ShareSecret(secretID, payload)
}

// Shares calls the mocked Shares implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) Shares(secretID string) ([]vault.Share, error) {
	if vc.SharesFn != nil {
		return vc.SharesFn(secretID)
	}
	return vc.Client.Shares(secretID)
}

// UpdateSharePermission calls the mocked UpdateSharePermission implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) UpdateSharePermission(secretID, shareID string, permission vault.Permission) (vault.Share, error) {
	if vc.UpdateSharePermissionFn != nil {
		return vc.UpdateSharePermissionFn(secretID, shareID, permission)
	}
	return vc.Client.UpdateSharePermission(secretID, shareID, permission)
}

// RevokeShare calls the mocked RevokeShare implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) RevokeShare(secretID, shareID string) error {
	if vc.RevokeShareFn != nil {
		return vc.RevokeShareFn(secretID, shareID)
	}
	return vc.Client.RevokeShare(secretID, shareID)
}

// SharedWithMe calls the mocked SharedWithMe implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) SharedWithMe() ([]vault.Share, error) {
	if vc.SharedWithMeFn != nil {
		return vc.SharedWithMeFn()
	}
	return vc.Client.SharedWithMe()
}

// AuditEvents calls the mocked AuditEvents implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) AuditEvents(filter vault.AuditFilter) (vault.AuditEventsPage, error) {
	if vc.AuditEventsFn != nil {
		return vc.AuditEventsFn(filter)
	}
	return vc.Client.AuditEvents(filter)
}

// ExportAuditEvents calls the mocked ExportAuditEvents implementation if provided,
// otherwise the call falls back to the underlying vault.Client implementation.
// NOTE: this may panic if the underlying vault.Client is left undefined
func (vc VaultClient) ExportAuditEvents(filter vault.AuditFilter) (io.ReadCloser, error) {
	if vc.ExportAuditEventsFn != nil {
		return vc.ExportAuditEventsFn(filter)
	}
	return vc.Client.ExportAuditEvents(filter)
}
