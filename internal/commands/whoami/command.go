package whoami

import (
	"github.com/deomiarn/securevault/internal/auth"
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/terminal"
)

// Command is the `whoami` command
type Command struct{}

const (
	headerID    = "ID"
	headerEmail = "Email"
	headerRole  = "Role"
	headerToken = "Access Token"
)

// Handler is the command handler
// The identity is read from the stored access token without a server call
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	identity, ok, err := auth.Bootstrap(profile)
	if err != nil {
		ui.Print(terminal.NewWarningLog("Failed to clear the stored session: %s", err))
	}
	if !ok {
		ui.Print(terminal.NewTextLog("No user is currently logged in"))
		return nil
	}

	ui.Print(terminal.NewTableLog(
		"Currently logged in user",
		[]string{headerID, headerEmail, headerRole, headerToken},
		map[string]interface{}{
			headerID:    identity.ID,
			headerEmail: identity.Email,
			headerRole:  identity.Role,
			headerToken: profile.Session().RedactedAccessToken(),
		},
	))
	return nil
}
