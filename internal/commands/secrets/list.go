package secrets

import (
	"fmt"
	"strings"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"
	"github.com/deomiarn/securevault/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	flagTypeListUsage   = "Filter the secrets by type, available options: [PASSWORD, API_KEY, NOTE, CERTIFICATE, OTHER]"
	flagFolderListUsage = "Filter the secrets by folder name"
)

// CommandList is the `secrets list` command
type CommandList struct {
	inputs listInputs
}

type listInputs struct {
	types  []string
	folder string
}

// Flags is the command flags
func (cmd *CommandList) Flags(fs *pflag.FlagSet) {
	fs.VarP(flags.NewEnumSet(&cmd.inputs.types, vault.SecretTypeValues), flagType, flagTypeShort, flagTypeListUsage)
	fs.StringVar(&cmd.inputs.folder, flagFolder, "", flagFolderListUsage)
}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	secrets, err := clients.Vault.Secrets()
	if err != nil {
		return err
	}

	secrets = cmd.inputs.filter(secrets)
	if len(secrets) == 0 {
		ui.Print(terminal.NewTextLog("No available secrets to show"))
		return nil
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d secrets", len(secrets)),
		tableHeadersList,
		tableRowsList(secrets)...,
	))
	return nil
}

func (i listInputs) filter(secrets []vault.SecretSummary) []vault.SecretSummary {
	if len(i.types) == 0 && i.folder == "" {
		return secrets
	}

	types := make(map[vault.SecretType]struct{}, len(i.types))
	for _, t := range i.types {
		types[vault.SecretType(t)] = struct{}{}
	}

	filtered := make([]vault.SecretSummary, 0, len(secrets))
	for _, secret := range secrets {
		if len(types) > 0 {
			if _, ok := types[secret.SecretType]; !ok {
				continue
			}
		}
		if i.folder != "" && !strings.EqualFold(secret.FolderName, i.folder) {
			continue
		}
		filtered = append(filtered, secret)
	}
	return filtered
}

var (
	tableHeadersList = []string{headerID, headerName, headerType, headerFolder, headerUpdatedAt}
)

func tableRowsList(secrets []vault.SecretSummary) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(secrets))
	for _, secret := range secrets {
		rows = append(rows, map[string]interface{}{
			headerID:        secret.ID,
			headerName:      secret.Name,
			headerType:      secret.SecretType,
			headerFolder:    folderDisplay(secret.FolderName),
			headerUpdatedAt: secret.UpdatedAt,
		})
	}
	return rows
}
