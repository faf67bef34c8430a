package secrets

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	shareInputFieldUser       = "user"
	shareInputFieldPermission = "permission"
)

// CommandShare is the `secrets share` command
type CommandShare struct {
	inputs shareInputs
}

type shareInputs struct {
	secretInputs
	User       string
	Permission vault.Permission
}

// Flags is the command flags
func (cmd *CommandShare) Flags(fs *pflag.FlagSet) {
	cmd.inputs.secretInputs.Flags(fs)
	fs.StringVarP(&cmd.inputs.User, flagUser, flagUserShort, "", flagUserUsage)
	fs.Var(&cmd.inputs.Permission, flagPermission, flagPermissionUsage)
}

// Inputs is the command inputs
func (cmd *CommandShare) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandShare) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	secret, err := cmd.inputs.resolveSecret(ui, clients.Vault, "Which secret would you like to share?")
	if err != nil {
		return err
	}

	share, err := clients.Vault.ShareSecret(secret.ID, vault.ShareRequest{
		SharedWithUserID: cmd.inputs.User,
		Permission:       cmd.inputs.Permission,
	})
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog(
		"Successfully shared secret %s with user %s (%s), share id: %s",
		secret.Name,
		share.SharedWithUserID,
		share.Permission,
		share.ID,
	))
	return nil
}

func (i *shareInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.User == "" {
		questions = append(questions, &survey.Question{
			Name:     shareInputFieldUser,
			Prompt:   &survey.Input{Message: "User ID"},
			Validate: survey.Required,
		})
	}

	if i.Permission == vault.PermissionEmpty {
		questions = append(questions, &survey.Question{
			Name: shareInputFieldPermission,
			Prompt: &survey.Select{
				Message: "Permission",
				Options: vault.PermissionValues,
				Default: vault.PermissionRead.String(),
			},
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
