package secrets

import (
	"testing"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/utils/test/assert"
	"github.com/deomiarn/securevault/internal/utils/test/mock"
)

func TestSecretsDescribeHandler(t *testing.T) {
	testSecret := vault.Secret{
		ID:          "s1",
		Name:        "db-password",
		Description: "primary database",
		Value:       "hunter2",
		SecretType:  vault.SecretTypePassword,
		FolderName:  "infra",
		CreatedAt:   "2024-03-01T10:00:00",
		UpdatedAt:   "2024-03-01T10:00:00",
	}

	newClient := func(capturedID *string) mock.VaultClient {
		client := newSecretsClient()
		client.SecretFn = func(secretID string) (vault.Secret, error) {
			*capturedID = secretID
			return testSecret, nil
		}
		return client
	}

	t.Run("Should describe the secret with its value redacted", func(t *testing.T) {
		var capturedID string
		out, ui := mock.NewUI()

		cmd := &CommandDescribe{describeInputs{secretInputs: secretInputs{"db-password"}}}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Vault: newClient(&capturedID)}))

		assert.Equal(t, "s1", capturedID)
		assert.Equal(t, `Secret db-password
---
{
  "id": "s1",
  "name": "db-password",
  "type": "PASSWORD",
  "value": "********",
  "description": "primary database",
  "folder": "infra",
  "shared": false,
  "createdAt": "2024-03-01T10:00:00",
  "updatedAt": "2024-03-01T10:00:00"
}
`, out.String())
	})

	t.Run("Should reveal the value when asked to", func(t *testing.T) {
		var capturedID string
		out, ui := mock.NewUI()

		cmd := &CommandDescribe{describeInputs{secretInputs: secretInputs{"s1"}, showValue: true}}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Vault: newClient(&capturedID)}))

		assert.Contains(t, out.String(), `"value": "hunter2"`)
	})

	t.Run("Should fail to describe an unknown secret", func(t *testing.T) {
		var capturedID string
		_, ui := mock.NewUI()

		cmd := &CommandDescribe{describeInputs{secretInputs: secretInputs{"nope"}}}
		err := cmd.Handler(nil, ui, cli.Clients{Vault: newClient(&capturedID)})

		assert.Equal(t, cli.ErrSecretNotFound{Secret: "nope"}, err)
		assert.Equal(t, "", capturedID)
	})
}
