package secrets

import (
	"errors"
	"testing"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/utils/test/assert"
	"github.com/deomiarn/securevault/internal/utils/test/mock"
)

var testShares = []vault.Share{
	{ID: "sh1", SecretID: "s2", SharedWithUserID: "u-alice", Permission: vault.PermissionRead, CreatedAt: "2024-03-04T08:00:00"},
	{ID: "sh2", SecretID: "s2", SharedWithUserID: "u-bob", Permission: vault.PermissionWrite, CreatedAt: "2024-03-05T12:45:00"},
}

func newSharesClient() mock.VaultClient {
	client := newSecretsClient()
	client.SharesFn = func(secretID string) ([]vault.Share, error) {
		if secretID != "s2" {
			return nil, nil
		}
		return testShares, nil
	}
	return client
}

func TestSecretsSharesHandler(t *testing.T) {
	t.Run("Should print a table of the shares of the secret", func(t *testing.T) {
		out, ui := mock.NewUI()

		cmd := &CommandShares{secretInputs{"stripe"}}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Vault: newSharesClient()}))

		assert.Equal(t, `Secret stripe is shared with 2 users
  ID   Shared With  Permission  Shared At
  ---  -----------  ----------  -------------------
  sh1  u-alice      READ        2024-03-04T08:00:00
  sh2  u-bob        WRITE       2024-03-05T12:45:00
`, out.String())
	})

	t.Run("Should report a secret that is not shared", func(t *testing.T) {
		out, ui := mock.NewUI()

		cmd := &CommandShares{secretInputs{"wifi"}}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Vault: newSharesClient()}))

		assert.Equal(t, "Secret wifi is not shared with anyone\n", out.String())
	})

	t.Run("Should return the client error", func(t *testing.T) {
		_, ui := mock.NewUI()

		client := newSecretsClient()
		client.SharesFn = func(secretID string) ([]vault.Share, error) {
			return nil, errors.New("something bad happened")
		}

		cmd := &CommandShares{secretInputs{"wifi"}}
		assert.Equal(t, errors.New("something bad happened"), cmd.Handler(nil, ui, cli.Clients{Vault: client}))
	})
}

func TestFindShare(t *testing.T) {
	for _, tc := range []struct {
		description   string
		share         string
		expectedShare vault.Share
		expectedOK    bool
	}{
		{"Should find a share by id", "sh2", testShares[1], true},
		{"Should find a share by user id", "u-alice", testShares[0], true},
		{"Should not find an unknown share", "u-carol", vault.Share{}, false},
	} {
		t.Run(tc.description, func(t *testing.T) {
			share, ok := findShare(testShares, tc.share)
			assert.Equal(t, tc.expectedShare, share)
			assert.Equal(t, tc.expectedOK, ok)
		})
	}
}
