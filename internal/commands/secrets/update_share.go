package secrets

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

// CommandUpdateShare is the `secrets update-share` command
type CommandUpdateShare struct {
	inputs updateShareInputs
}

type updateShareInputs struct {
	shareRefInputs
	permission vault.Permission
}

// Flags is the command flags
func (cmd *CommandUpdateShare) Flags(fs *pflag.FlagSet) {
	cmd.inputs.shareRefInputs.Flags(fs)
	fs.Var(&cmd.inputs.permission, flagPermission, flagPermissionUsage)
}

// Inputs is the command inputs
func (cmd *CommandUpdateShare) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandUpdateShare) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	secret, share, err := cmd.inputs.resolveShare(ui, clients.Vault, "Which secret's share would you like to update?")
	if err != nil {
		return err
	}

	updated, err := clients.Vault.UpdateSharePermission(secret.ID, share.ID, cmd.inputs.permission)
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog(
		"Successfully changed the permission of user %s on secret %s to %s",
		updated.SharedWithUserID,
		secret.Name,
		updated.Permission,
	))
	return nil
}

func (i *updateShareInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.permission != vault.PermissionEmpty {
		return nil
	}
	return ui.AskOne(&i.permission, &survey.Select{
		Message: "Permission",
		Options: vault.PermissionValues,
	})
}
