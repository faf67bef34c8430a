package folders

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDelete is the `folders delete` command
type CommandDelete struct {
	inputs folderInputs
}

// Flags is the command flags
func (cmd *CommandDelete) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Handler is the command handler
func (cmd *CommandDelete) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	folder, err := cmd.inputs.resolveFolder(ui, clients.Vault, "Which folder would you like to delete?")
	if err != nil {
		return err
	}

	message := "Are you sure you want to delete folder %s?"
	if folder.SecretCount > 0 || len(folder.ChildFolders) > 0 {
		message = "Folder %s is not empty, are you sure you want to delete it?"
	}

	proceed, err := ui.Confirm(message, folder.Path)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if err := clients.Vault.DeleteFolder(folder.ID); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully deleted folder %s", folder.Path))
	return nil
}
