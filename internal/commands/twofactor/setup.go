package twofactor

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/terminal"
)

// CommandSetup is the `2fa setup` command
type CommandSetup struct{}

// Handler is the command handler
func (cmd *CommandSetup) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	setup, err := clients.Vault.SetupTwoFactor()
	if err != nil {
		return err
	}

	ui.Print(
		terminal.NewTextLog("Add this secret to your authenticator app: %s", setup.Secret),
		terminal.NewListLog("Or scan a QR code generated from the URI", setup.QRCodeURI),
		terminal.NewFollowupLog("Then enable two-factor authentication with a code from the app", cli.CommandUse("2fa enable")),
	)
	return nil
}
