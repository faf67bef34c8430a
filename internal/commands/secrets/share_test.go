package secrets

import (
	"testing"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/utils/test/assert"
	"github.com/deomiarn/securevault/internal/utils/test/mock"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func TestSecretsShareHandler(t *testing.T) {
	t.Run("Should share the secret with the user", func(t *testing.T) {
		out, ui := mock.NewUI()

		var capturedID string
		var capturedRequest vault.ShareRequest
		client := newSecretsClient()
		client.ShareSecretFn = func(secretID string, payload vault.ShareRequest) (vault.Share, error) {
			capturedID, capturedRequest = secretID, payload
			return vault.Share{ID: "sh3", SecretID: secretID, SharedWithUserID: payload.SharedWithUserID, Permission: payload.Permission}, nil
		}

		cmd := &CommandShare{shareInputs{secretInputs{"db-password"}, "u-alice", vault.PermissionWrite}}
		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Vault: client}))

		assert.Equal(t, "s1", capturedID)
		assert.Equal(t, vault.ShareRequest{SharedWithUserID: "u-alice", Permission: vault.PermissionWrite}, capturedRequest)
		assert.Equal(t, "Successfully shared secret db-password with user u-alice (WRITE), share id: sh3\n", out.String())
	})
}

func TestSecretsShareInputs(t *testing.T) {
	t.Run("Should not prompt when every input is provided", func(t *testing.T) {
		_, ui := mock.NewUI()

		inputs := shareInputs{User: "u-alice", Permission: vault.PermissionRead}
		assert.Nil(t, inputs.Resolve(nil, ui))
	})

	t.Run("Should prompt for the user and permission", func(t *testing.T) {
		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			console.ExpectString("User ID")
			console.SendLine("u-bob")
			console.ExpectString("Permission")
			console.Send(string(terminal.KeyArrowDown))
			console.SendLine("")
			console.ExpectEOF()
		}()

		var inputs shareInputs
		err := inputs.Resolve(nil, ui)

		console.Tty().Close() // flush the writers
		<-doneCh              // wait for procedure to complete

		assert.Nil(t, err)
		assert.Equal(t, "u-bob", inputs.User)
		assert.Equal(t, vault.PermissionWrite, inputs.Permission)
	})
}
