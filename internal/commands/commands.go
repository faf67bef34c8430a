package commands

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/commands/audit"
	"github.com/deomiarn/securevault/internal/commands/folders"
	"github.com/deomiarn/securevault/internal/commands/login"
	"github.com/deomiarn/securevault/internal/commands/logout"
	"github.com/deomiarn/securevault/internal/commands/profile"
	"github.com/deomiarn/securevault/internal/commands/register"
	"github.com/deomiarn/securevault/internal/commands/secrets"
	"github.com/deomiarn/securevault/internal/commands/twofactor"
	"github.com/deomiarn/securevault/internal/commands/whoami"
)

// set of commands
var (
	Login = cli.CommandDefinition{
		Command:     &login.Command{},
		Use:         "login",
		Description: "Log in to SecureVault with your email and password",
		Help: `Log in to SecureVault with your email and password

	Accounts with two-factor authentication enabled are asked for the code shown
	by their authenticator app. The session is saved to the current profile and
	refreshed automatically while it remains valid.`,
	}
	Register = cli.CommandDefinition{
		Command:     &register.Command{},
		Use:         "register",
		Aliases:     []string{"signup"},
		Description: "Create a new SecureVault account",
	}
	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Description: "Terminate the current user's session",
	}
	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display the current user's details",
	}

	Secrets = cli.CommandDefinition{
		Use:         "secrets",
		Aliases:     []string{"secret"},
		Description: "Manage your secrets and who they are shared with",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "secrets list",
				Description: "List your secrets",
				Command:     &secrets.CommandList{},
			},
			{
				Use:         "describe",
				Aliases:     []string{"get"},
				Display:     "secrets describe",
				Description: "Display the details of a secret",
				Help: `Display the details of a secret

	The value of the secret is redacted unless --show-value is provided.`,
				Command: &secrets.CommandDescribe{},
			},
			{
				Use:         "create",
				Display:     "secrets create",
				Description: "Create a secret",
				Command:     &secrets.CommandCreate{},
			},
			{
				Use:         "update",
				Display:     "secrets update",
				Description: "Update the name, value, type, description or folder of a secret",
				Command:     &secrets.CommandUpdate{},
			},
			{
				Use:         "delete",
				Aliases:     []string{"rm"},
				Display:     "secrets delete",
				Description: "Delete a secret",
				Command:     &secrets.CommandDelete{},
			},
			{
				Use:         "share",
				Display:     "secrets share",
				Description: "Share a secret with another user",
				Command:     &secrets.CommandShare{},
			},
			{
				Use:         "shares",
				Display:     "secrets shares",
				Description: "List the users a secret is shared with",
				Command:     &secrets.CommandShares{},
			},
			{
				Use:         "update-share",
				Display:     "secrets update-share",
				Description: "Change the permission granted by a share",
				Command:     &secrets.CommandUpdateShare{},
			},
			{
				Use:         "unshare",
				Display:     "secrets unshare",
				Description: "Revoke a user's access to a secret",
				Command:     &secrets.CommandUnshare{},
			},
			{
				Use:         "shared-with-me",
				Display:     "secrets shared-with-me",
				Description: "List the secrets other users have shared with you",
				Command:     &secrets.CommandSharedWithMe{},
			},
		},
	}

	Folders = cli.CommandDefinition{
		Use:         "folders",
		Aliases:     []string{"folder"},
		Description: "Organize your secrets into folders",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "folders list",
				Description: "List your folders as a tree",
				Command:     &folders.CommandList{},
			},
			{
				Use:         "create",
				Display:     "folders create",
				Description: "Create a folder, optionally nested under another",
				Command:     &folders.CommandCreate{},
			},
			{
				Use:         "update",
				Display:     "folders update",
				Description: "Rename a folder or move it under another",
				Command:     &folders.CommandUpdate{},
			},
			{
				Use:         "delete",
				Aliases:     []string{"rm"},
				Display:     "folders delete",
				Description: "Delete a folder",
				Command:     &folders.CommandDelete{},
			},
		},
	}

	Audit = cli.CommandDefinition{
		Use:         "audit",
		Description: "Review the audit trail of your account",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "audit list",
				Description: "List audit events one page at a time",
				Command:     &audit.CommandList{},
			},
			{
				Use:         "export",
				Display:     "audit export",
				Description: "Export the audit events as CSV",
				Command:     &audit.CommandExport{},
			},
		},
	}

	TwoFactor = cli.CommandDefinition{
		Use:         "2fa",
		Description: "Manage two-factor authentication for your account",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "setup",
				Display:     "2fa setup",
				Description: "Generate the secret to add to your authenticator app",
				Command:     &twofactor.CommandSetup{},
			},
			{
				Use:         "enable",
				Display:     "2fa enable",
				Description: "Enable two-factor authentication with a code from your authenticator app",
				Command:     &twofactor.CommandEnable{},
			},
			{
				Use:         "disable",
				Display:     "2fa disable",
				Description: "Disable two-factor authentication",
				Command:     &twofactor.CommandDisable{},
			},
		},
	}

	Profiles = cli.CommandDefinition{
		Use:         "profiles",
		Aliases:     []string{"profile"},
		Description: "Manage the profiles of your local CLI environment",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "profiles list",
				Description: "List the profiles of your local CLI environment",
				Command:     &profile.CommandList{},
			},
		},
	}
)
