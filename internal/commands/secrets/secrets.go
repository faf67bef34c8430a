package secrets

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagSecret      = "secret"
	flagSecretShort = "s"
	flagSecretUsage = "Specify the name or ID of the secret"

	flagName      = "name"
	flagNameShort = "n"

	flagValue      = "value"
	flagValueShort = "v"

	flagDescription      = "description"
	flagDescriptionShort = "d"

	flagType      = "type"
	flagTypeShort = "t"

	flagFolder      = "folder"
	flagFolderUsage = "Specify the path or ID of the folder holding the secret"

	flagUser      = "user"
	flagUserShort = "u"
	flagUserUsage = "Specify the ID of the user to share the secret with"

	flagPermission      = "permission"
	flagPermissionUsage = "Specify the permission granted by the share, available options: [READ, WRITE]"

	flagShare      = "share"
	flagShareUsage = "Specify the share ID or the ID of the user it was granted to"
)

const (
	headerID          = "ID"
	headerName        = "Name"
	headerType        = "Type"
	headerFolder      = "Folder"
	headerUpdatedAt   = "Updated"
	headerSecret      = "Secret"
	headerSecretID    = "Secret ID"
	headerSharedWith  = "Shared With"
	headerSharedBy    = "Shared By"
	headerPermission  = "Permission"
	headerSharedAt    = "Shared At"
	redactedValue     = "********"
	noFolderPlacement = "-"
)

// secretInputs resolves the secret a command acts upon
type secretInputs struct {
	Secret string
}

func (i *secretInputs) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&i.Secret, flagSecret, flagSecretShort, "", flagSecretUsage)
}

func (i *secretInputs) resolveSecret(ui terminal.UI, client vault.Client, message string) (vault.SecretSummary, error) {
	return cli.ResolveSecret(ui, client, i.Secret, message)
}

// resolveFolderID returns the ID of the folder matching the path or ID provided,
// or an empty ID when no folder is provided
func resolveFolderID(ui terminal.UI, client vault.Client, folder string) (string, error) {
	if folder == "" {
		return "", nil
	}
	entry, err := cli.ResolveFolder(ui, client, folder, "")
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

func folderDisplay(folderName string) string {
	if folderName == "" {
		return noFolderPlacement
	}
	return folderName
}
