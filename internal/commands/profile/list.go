package profile

import (
	"fmt"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/terminal"
)

const (
	headerName    = "Profile"
	headerEmail   = "Email"
	headerBaseURL = "Base URL"
	headerSession = "Session"

	sessionLoggedIn  = "logged in"
	sessionLoggedOut = "logged out"
)

// CommandList is the `profiles list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	profiles, err := profile.ListProfiles()
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		ui.Print(terminal.NewTextLog("No profiles have been saved"))
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(profiles))
	for _, p := range profiles {
		session := sessionLoggedOut
		if p.LoggedIn {
			session = sessionLoggedIn
		}
		rows = append(rows, map[string]interface{}{
			headerName:    p.Name,
			headerEmail:   p.Email,
			headerBaseURL: p.BaseURL,
			headerSession: session,
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d profile(s)", len(profiles)),
		[]string{headerName, headerEmail, headerBaseURL, headerSession},
		rows...,
	))
	return nil
}
