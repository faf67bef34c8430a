package secrets

import (
	"errors"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagNameUpdateUsage        = "Rename the secret"
	flagValueUpdateUsage       = "Replace the value of the secret"
	flagDescriptionUpdateUsage = "Replace the description of the secret"
	flagTypeUpdateUsage        = "Change the type of the secret, available options: [PASSWORD, API_KEY, NOTE, CERTIFICATE, OTHER]"
	flagFolderUpdateUsage      = "Move the secret into the folder with the path or ID provided"
)

var (
	errNoSecretChanges = errors.New("must provide at least one change to the secret")
)

// CommandUpdate is the `secrets update` command
type CommandUpdate struct {
	inputs updateInputs
}

type updateInputs struct {
	secretInputs
	name        string
	value       string
	description string
	secretType  vault.SecretType
	folder      string
}

// Flags is the command flags
func (cmd *CommandUpdate) Flags(fs *pflag.FlagSet) {
	cmd.inputs.secretInputs.Flags(fs)
	fs.StringVarP(&cmd.inputs.name, flagName, flagNameShort, "", flagNameUpdateUsage)
	fs.StringVarP(&cmd.inputs.value, flagValue, flagValueShort, "", flagValueUpdateUsage)
	fs.StringVarP(&cmd.inputs.description, flagDescription, flagDescriptionShort, "", flagDescriptionUpdateUsage)
	fs.VarP(&cmd.inputs.secretType, flagType, flagTypeShort, flagTypeUpdateUsage)
	fs.StringVar(&cmd.inputs.folder, flagFolder, "", flagFolderUpdateUsage)
}

// Inputs is the command inputs
func (cmd *CommandUpdate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandUpdate) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	summary, err := cmd.inputs.resolveSecret(ui, clients.Vault, "Which secret would you like to update?")
	if err != nil {
		return err
	}

	folderID, err := resolveFolderID(ui, clients.Vault, cmd.inputs.folder)
	if err != nil {
		return err
	}

	secret, err := clients.Vault.UpdateSecret(summary.ID, vault.UpdateSecretRequest{
		Name:        cmd.inputs.name,
		Value:       cmd.inputs.value,
		Description: cmd.inputs.description,
		SecretType:  cmd.inputs.secretType,
		FolderID:    folderID,
	})
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully updated secret %s", secret.Name))
	return nil
}

func (i *updateInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.name == "" &&
		i.value == "" &&
		i.description == "" &&
		i.secretType == vault.SecretTypeEmpty &&
		i.folder == "" {
		return errNoSecretChanges
	}
	return nil
}
