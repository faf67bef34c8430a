package folders

import (
	"fmt"
	"strings"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"
)

// CommandList is the `folders list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	folders, err := clients.Vault.Folders()
	if err != nil {
		return err
	}

	entries := vault.FlattenFolders(folders)
	if len(entries) == 0 {
		ui.Print(terminal.NewTextLog("No available folders to show"))
		return nil
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d folders", len(entries)),
		tableHeaders,
		tableRows(entries)...,
	))
	return nil
}

var (
	tableHeaders = []string{headerID, headerName, headerSecrets, headerUpdatedAt}
)

func tableRows(entries []vault.FolderEntry) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, map[string]interface{}{
			headerID:        entry.ID,
			headerName:      strings.Repeat("  ", entry.Depth) + entry.Name,
			headerSecrets:   entry.SecretCount,
			headerUpdatedAt: entry.UpdatedAt,
		})
	}
	return rows
}
