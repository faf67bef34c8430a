package secrets

import (
	"fmt"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"
)

// CommandSharedWithMe is the `secrets shared-with-me` command
type CommandSharedWithMe struct{}

// Handler is the command handler
func (cmd *CommandSharedWithMe) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	shares, err := clients.Vault.SharedWithMe()
	if err != nil {
		return err
	}

	if len(shares) == 0 {
		ui.Print(terminal.NewTextLog("No secrets are shared with you"))
		return nil
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d secrets shared with you", len(shares)),
		tableHeadersSharedWithMe,
		tableRowsSharedWithMe(shares)...,
	))
	return nil
}

var (
	tableHeadersSharedWithMe = []string{headerSecretID, headerSecret, headerSharedBy, headerPermission, headerSharedAt}
)

func tableRowsSharedWithMe(shares []vault.Share) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(shares))
	for _, share := range shares {
		rows = append(rows, map[string]interface{}{
			headerSecretID:   share.SecretID,
			headerSecret:     share.SecretName,
			headerSharedBy:   share.SharedByUserID,
			headerPermission: share.Permission,
			headerSharedAt:   share.CreatedAt,
		})
	}
	return rows
}
