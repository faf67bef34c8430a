package folders

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagNameCreateUsage   = "Name the folder"
	flagParentCreateUsage = "Specify the path or ID of the folder to nest the new folder under"
)

// CommandCreate is the `folders create` command
type CommandCreate struct {
	inputs createInputs
}

type createInputs struct {
	name   string
	parent string
}

// Flags is the command flags
func (cmd *CommandCreate) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.name, flagName, flagNameShort, "", flagNameCreateUsage)
	fs.StringVar(&cmd.inputs.parent, flagParent, "", flagParentCreateUsage)
}

// Inputs is the command inputs
func (cmd *CommandCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandCreate) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	parentID, err := resolveParentID(ui, clients.Vault, cmd.inputs.parent)
	if err != nil {
		return err
	}

	folder, err := clients.Vault.CreateFolder(vault.CreateFolderRequest{
		Name:           cmd.inputs.name,
		ParentFolderID: parentID,
	})
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully created folder %s, id: %s", folder.Name, folder.ID))
	return nil
}

func (i *createInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.name != "" {
		return nil
	}
	return ui.AskOne(&i.name, &survey.Input{Message: "Folder Name"}, survey.WithValidator(survey.Required))
}
