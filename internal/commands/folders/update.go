package folders

import (
	"errors"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagNameUpdateUsage   = "Rename the folder"
	flagParentUpdateUsage = "Move the folder under the folder with the path or ID provided"
)

var (
	errNoFolderChanges = errors.New("must provide at least one change to the folder")
	errFolderCycle     = errors.New("cannot move a folder within itself")
)

// CommandUpdate is the `folders update` command
type CommandUpdate struct {
	inputs updateInputs
}

type updateInputs struct {
	folderInputs
	name   string
	parent string
}

// Flags is the command flags
func (cmd *CommandUpdate) Flags(fs *pflag.FlagSet) {
	cmd.inputs.folderInputs.Flags(fs)
	fs.StringVarP(&cmd.inputs.name, flagName, flagNameShort, "", flagNameUpdateUsage)
	fs.StringVar(&cmd.inputs.parent, flagParent, "", flagParentUpdateUsage)
}

// Inputs is the command inputs
func (cmd *CommandUpdate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandUpdate) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	folder, err := cmd.inputs.resolveFolder(ui, clients.Vault, "Which folder would you like to update?")
	if err != nil {
		return err
	}

	var parentID string
	if cmd.inputs.parent != "" {
		parent, err := cli.ResolveFolder(ui, clients.Vault, cmd.inputs.parent, "")
		if err != nil {
			return err
		}
		if parent.ID == folder.ID || isWithin(parent.Path, folder.Path) {
			return errFolderCycle
		}
		parentID = parent.ID
	}

	updated, err := clients.Vault.UpdateFolder(folder.ID, vault.UpdateFolderRequest{
		Name:           cmd.inputs.name,
		ParentFolderID: parentID,
	})
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully updated folder %s", updated.Name))
	return nil
}

func (i *updateInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.name == "" && i.parent == "" {
		return errNoFolderChanges
	}
	return nil
}

func isWithin(path, ancestor string) bool {
	return len(path) > len(ancestor) && path[:len(ancestor)+1] == ancestor+"/"
}
