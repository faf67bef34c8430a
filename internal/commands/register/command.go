package register

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagEmail      = "email"
	flagEmailShort = "e"
	flagEmailUsage = "Specify the email for your new SecureVault account"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "Specify the password for your new SecureVault account"

	flagFirstName      = "first-name"
	flagFirstNameUsage = "Specify your first name"

	flagLastName      = "last-name"
	flagLastNameUsage = "Specify your last name"
)

// Command is the `register` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Email, flagEmail, flagEmailShort, "", flagEmailUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
	fs.StringVar(&cmd.inputs.FirstName, flagFirstName, "", flagFirstNameUsage)
	fs.StringVar(&cmd.inputs.LastName, flagLastName, "", flagLastNameUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	res, err := clients.Vault.Register(vault.RegisterRequest{
		Email:     cmd.inputs.Email,
		Password:  cmd.inputs.Password,
		FirstName: cmd.inputs.FirstName,
		LastName:  cmd.inputs.LastName,
	})
	if err != nil {
		return err
	}

	profile.SetEmail(cmd.inputs.Email)

	session := res.Session()
	if !session.LoggedIn() {
		if err := profile.Save(); err != nil {
			return err
		}
		ui.Print(
			terminal.NewTextLog("Successfully registered %s", cmd.inputs.Email),
			terminal.NewFollowupLog(terminal.MsgSuggestedCommands, cli.CommandUse("login")),
		)
		return nil
	}

	profile.SetSession(session)
	if err := profile.Save(); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully registered and logged in as %s", cmd.inputs.Email))
	return nil
}
