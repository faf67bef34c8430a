package secrets

import (
	"errors"
	"testing"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/utils/test/assert"
	"github.com/deomiarn/securevault/internal/utils/test/mock"
)

var testSecrets = []vault.SecretSummary{
	{ID: "s1", Name: "db-password", SecretType: vault.SecretTypePassword, FolderName: "infra", UpdatedAt: "2024-03-01T10:00:00"},
	{ID: "s2", Name: "stripe", SecretType: vault.SecretTypeAPIKey, UpdatedAt: "2024-03-02T11:30:00"},
	{ID: "s3", Name: "wifi", SecretType: vault.SecretTypeNote, FolderName: "Personal", UpdatedAt: "2024-03-03T09:15:00"},
}

func newSecretsClient() mock.VaultClient {
	client := mock.VaultClient{}
	client.SecretsFn = func() ([]vault.SecretSummary, error) {
		return testSecrets, nil
	}
	return client
}

func TestSecretsListHandler(t *testing.T) {
	t.Run("Should print a table of the secrets", func(t *testing.T) {
		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Vault: newSecretsClient()}))

		assert.Equal(t, `Found 3 secrets
  ID  Name         Type      Folder    Updated
  --  -----------  --------  --------  -------------------
  s1  db-password  PASSWORD  infra     2024-03-01T10:00:00
  s2  stripe       API_KEY   -         2024-03-02T11:30:00
  s3  wifi         NOTE      Personal  2024-03-03T09:15:00
`, out.String())
	})

	for _, tc := range []struct {
		description string
		inputs      listInputs
		expectedIDs []string
	}{
		{"Should filter the secrets by type", listInputs{types: []string{"API_KEY", "NOTE"}}, []string{"s2", "s3"}},
		{"Should filter the secrets by folder ignoring case", listInputs{folder: "personal"}, []string{"s3"}},
		{"Should filter the secrets by type and folder", listInputs{types: []string{"PASSWORD"}, folder: "infra"}, []string{"s1"}},
		{"Should keep every secret without filters", listInputs{}, []string{"s1", "s2", "s3"}},
	} {
		t.Run(tc.description, func(t *testing.T) {
			var ids []string
			for _, secret := range tc.inputs.filter(testSecrets) {
				ids = append(ids, secret.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}

	t.Run("Should report when no secrets match", func(t *testing.T) {
		out, ui := mock.NewUI()

		cmd := &CommandList{listInputs{types: []string{"CERTIFICATE"}}}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Vault: newSecretsClient()}))

		assert.Equal(t, "No available secrets to show\n", out.String())
	})

	t.Run("Should return the client error", func(t *testing.T) {
		client := mock.VaultClient{}
		client.SecretsFn = func() ([]vault.SecretSummary, error) {
			return nil, errors.New("something bad happened")
		}

		cmd := &CommandList{}
		assert.Equal(t, errors.New("something bad happened"), cmd.Handler(nil, nil, cli.Clients{Vault: client}))
	})
}
