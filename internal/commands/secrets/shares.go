package secrets

import (
	"fmt"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandShares is the `secrets shares` command
type CommandShares struct {
	inputs secretInputs
}

// Flags is the command flags
func (cmd *CommandShares) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Handler is the command handler
func (cmd *CommandShares) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	secret, err := cmd.inputs.resolveSecret(ui, clients.Vault, "Which secret would you like to see the shares of?")
	if err != nil {
		return err
	}

	shares, err := clients.Vault.Shares(secret.ID)
	if err != nil {
		return err
	}

	if len(shares) == 0 {
		ui.Print(terminal.NewTextLog("Secret %s is not shared with anyone", secret.Name))
		return nil
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Secret %s is shared with %d users", secret.Name, len(shares)),
		tableHeadersShares,
		tableRowsShares(shares)...,
	))
	return nil
}

var (
	tableHeadersShares = []string{headerID, headerSharedWith, headerPermission, headerSharedAt}
)

func tableRowsShares(shares []vault.Share) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(shares))
	for _, share := range shares {
		rows = append(rows, map[string]interface{}{
			headerID:         share.ID,
			headerSharedWith: share.SharedWithUserID,
			headerPermission: share.Permission,
			headerSharedAt:   share.CreatedAt,
		})
	}
	return rows
}

// findShare returns the share matching either the share id or the id of the user it was granted to
func findShare(shares []vault.Share, share string) (vault.Share, bool) {
	for _, s := range shares {
		if s.ID == share || s.SharedWithUserID == share {
			return s, true
		}
	}
	return vault.Share{}, false
}
