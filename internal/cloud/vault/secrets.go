package vault

import (
	"net/http"

	"github.com/deomiarn/securevault/internal/utils/api"
)

const (
	secretsPath       = "/secrets"
	secretPathPattern = secretsPath + "/%s"
)

// SecretSummary is a SecureVault secret without its value
type SecretSummary struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	SecretType SecretType `json:"secretType"`
	FolderName string     `json:"folderName,omitempty"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
}

// Secret is a SecureVault secret
type Secret struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Value       string     `json:"value"`
	SecretType  SecretType `json:"secretType"`
	FolderID    string     `json:"folderId,omitempty"`
	FolderName  string     `json:"folderName,omitempty"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
	Shared      bool       `json:"shared"`
}

// CreateSecretRequest is the payload to create a secret
type CreateSecretRequest struct {
	Name        string     `json:"name"`
	Value       string     `json:"value"`
	Description string     `json:"description,omitempty"`
	SecretType  SecretType `json:"secretType,omitempty"`
	FolderID    string     `json:"folderId,omitempty"`
}

// UpdateSecretRequest is the payload to update a secret, where omitted fields are left unchanged
type UpdateSecretRequest struct {
	Name        string     `json:"name,omitempty"`
	Value       string     `json:"value,omitempty"`
	Description string     `json:"description,omitempty"`
	SecretType  SecretType `json:"secretType,omitempty"`
	FolderID    string     `json:"folderId,omitempty"`
}

func (c *client) Secrets() ([]SecretSummary, error) {
	res, err := c.do(http.MethodGet, secretsPath, api.RequestOptions{})
	if err != nil {
		return nil, err
	}

	var secrets []SecretSummary
	if err := decodeJSON(res, &secrets); err != nil {
		return nil, err
	}
	return secrets, nil
}

func (c *client) Secret(secretID string) (Secret, error) {
	res, err := c.do(http.MethodGet, api.PathEscape(secretPathPattern, secretID), api.RequestOptions{})
	if err != nil {
		return Secret{}, err
	}

	var secret Secret
	if err := decodeJSON(res, &secret); err != nil {
		return Secret{}, err
	}
	return secret, nil
}

func (c *client) CreateSecret(payload CreateSecretRequest) (Secret, error) {
	res, err := c.doJSON(http.MethodPost, secretsPath, payload, api.RequestOptions{})
	if err != nil {
		return Secret{}, err
	}

	var secret Secret
	if err := decodeJSON(res, &secret); err != nil {
		return Secret{}, err
	}
	return secret, nil
}

func (c *client) UpdateSecret(secretID string, payload UpdateSecretRequest) (Secret, error) {
	res, err := c.doJSON(http.MethodPut, api.PathEscape(secretPathPattern, secretID), payload, api.RequestOptions{})
	if err != nil {
		return Secret{}, err
	}

	var secret Secret
	if err := decodeJSON(res, &secret); err != nil {
		return Secret{}, err
	}
	return secret, nil
}

func (c *client) DeleteSecret(secretID string) error {
	res, err := c.do(http.MethodDelete, api.PathEscape(secretPathPattern, secretID), api.RequestOptions{})
	if err != nil {
		return err
	}
	return res.Body.Close()
}
