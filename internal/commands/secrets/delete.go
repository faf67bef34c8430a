package secrets

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDelete is the `secrets delete` command
type CommandDelete struct {
	inputs secretInputs
}

// Flags is the command flags
func (cmd *CommandDelete) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Handler is the command handler
func (cmd *CommandDelete) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	secret, err := cmd.inputs.resolveSecret(ui, clients.Vault, "Which secret would you like to delete?")
	if err != nil {
		return err
	}

	proceed, err := ui.Confirm("Are you sure you want to delete secret %s? This cannot be undone", secret.Name)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if err := clients.Vault.DeleteSecret(secret.ID); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully deleted secret %s", secret.Name))
	return nil
}
