package login

import (
	"github.com/deomiarn/securevault/internal/auth"
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagEmail      = "email"
	flagEmailShort = "e"
	flagEmailUsage = "Specify the email of your SecureVault account"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "Specify the password of your SecureVault account"

	flagCode      = "code"
	flagCodeUsage = "Specify the authentication code from your authenticator app, when two-factor authentication is enabled"
)

// Command is the `login` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Email, flagEmail, flagEmailShort, "", flagEmailUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
	fs.StringVar(&cmd.inputs.Code, flagCode, "", flagCodeUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	existing, ok, err := auth.Bootstrap(profile)
	if err != nil {
		ui.Print(terminal.NewWarningLog("Failed to clear the stored session: %s", err))
	}
	if ok && existing.Email != cmd.inputs.Email {
		proceed, err := ui.Confirm(
			"This action will terminate the existing session for user: %s (%s), would you like to proceed?",
			existing.Email,
			profile.Session().RedactedAccessToken(),
		)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	res, err := clients.Vault.Login(cmd.inputs.Email, cmd.inputs.Password)
	if err != nil {
		return err
	}

	if res.TOTPRequired {
		if res, err = cmd.verifyLogin(ui, clients.Vault); err != nil {
			return err
		}
	}

	profile.SetSession(res.Session())
	profile.SetEmail(cmd.inputs.Email)
	if err := profile.Save(); err != nil {
		return err
	}

	identity := res.Identity()
	if identity.Email == "" {
		identity.Email = cmd.inputs.Email
	}
	ui.Print(terminal.NewTextLog("Successfully logged in as %s", identity.DisplayName()))
	return nil
}

func (cmd *Command) verifyLogin(ui terminal.UI, client vault.Client) (vault.AuthResponse, error) {
	if cmd.inputs.Code == "" {
		if err := ui.AskOne(&cmd.inputs.Code, &survey.Input{Message: "Authentication Code"}, survey.WithValidator(cli.ValidateTOTPCode)); err != nil {
			return vault.AuthResponse{}, err
		}
	}
	return client.VerifyLogin(cmd.inputs.Email, cmd.inputs.Code)
}
