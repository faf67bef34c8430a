package secrets

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagShowValue      = "show-value"
	flagShowValueUsage = "Reveal the value of the secret in the output"
)

// CommandDescribe is the `secrets describe` command
type CommandDescribe struct {
	inputs describeInputs
}

type describeInputs struct {
	secretInputs
	showValue bool
}

// Flags is the command flags
func (cmd *CommandDescribe) Flags(fs *pflag.FlagSet) {
	cmd.inputs.secretInputs.Flags(fs)
	fs.BoolVar(&cmd.inputs.showValue, flagShowValue, false, flagShowValueUsage)
}

// Handler is the command handler
func (cmd *CommandDescribe) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	summary, err := cmd.inputs.resolveSecret(ui, clients.Vault, "Which secret would you like to describe?")
	if err != nil {
		return err
	}

	secret, err := clients.Vault.Secret(summary.ID)
	if err != nil {
		return err
	}

	if !cmd.inputs.showValue {
		secret.Value = redactedValue
	}

	ui.Print(terminal.NewTitledJSONLog("Secret "+secret.Name, secretOutput(secret)))
	return nil
}

type secretDescription struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        vault.SecretType `json:"type"`
	Value       string           `json:"value"`
	Description string           `json:"description,omitempty"`
	Folder      string           `json:"folder,omitempty"`
	Shared      bool             `json:"shared"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
}

func secretOutput(secret vault.Secret) secretDescription {
	return secretDescription{
		ID:          secret.ID,
		Name:        secret.Name,
		Type:        secret.SecretType,
		Value:       secret.Value,
		Description: secret.Description,
		Folder:      secret.FolderName,
		Shared:      secret.Shared,
		CreatedAt:   secret.CreatedAt,
		UpdatedAt:   secret.UpdatedAt,
	}
}
