package secrets

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagNameCreateUsage        = "Name the secret"
	flagValueCreateUsage       = "Specify the value of the secret"
	flagDescriptionCreateUsage = "Describe the secret"
	flagTypeCreateUsage        = "Specify the type of the secret, available options: [PASSWORD, API_KEY, NOTE, CERTIFICATE, OTHER]"

	createInputFieldName  = "name"
	createInputFieldValue = "value"
	createInputFieldType  = "secretType"
)

// CommandCreate is the `secrets create` command
type CommandCreate struct {
	inputs createInputs
}

type createInputs struct {
	Name        string
	Value       string
	Description string
	SecretType  vault.SecretType
	Folder      string
}

// Flags is the command flags
func (cmd *CommandCreate) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Name, flagName, flagNameShort, "", flagNameCreateUsage)
	fs.StringVarP(&cmd.inputs.Value, flagValue, flagValueShort, "", flagValueCreateUsage)
	fs.StringVarP(&cmd.inputs.Description, flagDescription, flagDescriptionShort, "", flagDescriptionCreateUsage)
	fs.VarP(&cmd.inputs.SecretType, flagType, flagTypeShort, flagTypeCreateUsage)
	fs.StringVar(&cmd.inputs.Folder, flagFolder, "", flagFolderUsage)
}

// Inputs is the command inputs
func (cmd *CommandCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandCreate) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	folderID, err := resolveFolderID(ui, clients.Vault, cmd.inputs.Folder)
	if err != nil {
		return err
	}

	secret, err := clients.Vault.CreateSecret(vault.CreateSecretRequest{
		Name:        cmd.inputs.Name,
		Value:       cmd.inputs.Value,
		Description: cmd.inputs.Description,
		SecretType:  cmd.inputs.SecretType,
		FolderID:    folderID,
	})
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully created secret %s, id: %s", secret.Name, secret.ID))
	return nil
}

func (i *createInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Name == "" {
		questions = append(questions, &survey.Question{
			Name:     createInputFieldName,
			Prompt:   &survey.Input{Message: "Secret Name"},
			Validate: survey.Required,
		})
	}

	if i.Value == "" {
		questions = append(questions, &survey.Question{
			Name:     createInputFieldValue,
			Prompt:   &survey.Password{Message: "Secret Value"},
			Validate: survey.Required,
		})
	}

	if i.SecretType == vault.SecretTypeEmpty {
		questions = append(questions, &survey.Question{
			Name: createInputFieldType,
			Prompt: &survey.Select{
				Message: "Secret Type",
				Options: vault.SecretTypeValues,
				Default: vault.SecretTypePassword.String(),
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
