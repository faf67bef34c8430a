package twofactor

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandEnable is the `2fa enable` command
type CommandEnable struct {
	inputs codeInputs
}

// Flags is the command flags
func (cmd *CommandEnable) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Inputs is the command inputs
func (cmd *CommandEnable) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandEnable) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := clients.Vault.EnableTwoFactor(cmd.inputs.code); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully enabled two-factor authentication"))
	return nil
}

// CommandDisable is the `2fa disable` command
type CommandDisable struct {
	inputs codeInputs
}

// Flags is the command flags
func (cmd *CommandDisable) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Inputs is the command inputs
func (cmd *CommandDisable) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDisable) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	proceed, err := ui.Confirm("Are you sure you want to disable two-factor authentication?")
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if err := clients.Vault.DisableTwoFactor(cmd.inputs.code); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully disabled two-factor authentication"))
	return nil
}
