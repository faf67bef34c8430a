package folders

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagFolder      = "folder"
	flagFolderUsage = "Specify the path or ID of the folder"

	flagName      = "name"
	flagNameShort = "n"

	flagParent = "parent"
)

const (
	headerID        = "ID"
	headerName      = "Name"
	headerSecrets   = "Secrets"
	headerUpdatedAt = "Updated"
)

type folderInputs struct {
	folder string
}

func (i *folderInputs) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&i.folder, flagFolder, "", flagFolderUsage)
}

func (i *folderInputs) resolveFolder(ui terminal.UI, client vault.Client, message string) (vault.FolderEntry, error) {
	return cli.ResolveFolder(ui, client, i.folder, message)
}

// resolveParentID returns the ID of the folder matching the path or ID provided,
// or an empty ID when no parent is provided
func resolveParentID(ui terminal.UI, client vault.Client, parent string) (string, error) {
	if parent == "" {
		return "", nil
	}
	entry, err := cli.ResolveFolder(ui, client, parent, "")
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}
