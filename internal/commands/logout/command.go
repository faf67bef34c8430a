package logout

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/terminal"
)

// Command is the `logout` command
type Command struct{}

// Handler is the command handler
// The server side revocation is best effort: the local session is cleared
// even when the server cannot be reached
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	session := profile.Session()
	if session.AccessToken == "" && session.RefreshToken == "" {
		ui.Print(terminal.NewTextLog("No user is currently logged in"))
		return nil
	}

	if session.RefreshToken != "" {
		if err := clients.Vault.Logout(session.RefreshToken); err != nil {
			ui.Print(terminal.NewWarningLog("Failed to revoke the session on the server: %s", err))
		}
	}

	profile.ClearSession()
	if err := profile.Save(); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully logged out"))
	return nil
}
