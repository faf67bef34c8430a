package cli

import (
	"fmt"

	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

// ErrSecretNotFound is a secret not found error
type ErrSecretNotFound struct {
	Secret string
}

func (err ErrSecretNotFound) Error() string {
	if err.Secret == "" {
		return "no secrets are available"
	}
	return fmt.Sprintf("unable to find secret: %s", err.Secret)
}

// ErrFolderNotFound is a folder not found error
type ErrFolderNotFound struct {
	Folder string
}

func (err ErrFolderNotFound) Error() string {
	if err.Folder == "" {
		return "no folders are available"
	}
	return fmt.Sprintf("unable to find folder: %s", err.Folder)
}

// ResolveSecret finds the secret matching the id or name provided,
// or prompts for one of the available secrets when none is provided
func ResolveSecret(ui terminal.UI, client vault.Client, secret, message string) (vault.SecretSummary, error) {
	secrets, err := client.Secrets()
	if err != nil {
		return vault.SecretSummary{}, err
	}

	if secret != "" {
		for _, s := range secrets {
			if s.ID == secret || s.Name == secret {
				return s, nil
			}
		}
		return vault.SecretSummary{}, ErrSecretNotFound{secret}
	}

	if len(secrets) == 0 {
		return vault.SecretSummary{}, ErrSecretNotFound{}
	}

	selectableSecrets := make(map[string]vault.SecretSummary, len(secrets))
	options := make([]string, len(secrets))
	for i, s := range secrets {
		option := DisplaySecret(s)
		options[i] = option
		selectableSecrets[option] = s
	}

	var selected string
	if err := ui.AskOne(&selected, &survey.Select{Message: message, Options: options}); err != nil {
		return vault.SecretSummary{}, err
	}
	return selectableSecrets[selected], nil
}

// ResolveFolder finds the folder matching the id or path provided,
// or prompts for one of the available folders when none is provided
func ResolveFolder(ui terminal.UI, client vault.Client, folder, message string) (vault.FolderEntry, error) {
	folders, err := client.Folders()
	if err != nil {
		return vault.FolderEntry{}, err
	}
	entries := vault.FlattenFolders(folders)

	if folder != "" {
		for _, entry := range entries {
			if entry.ID == folder || entry.Path == folder {
				return entry, nil
			}
		}
		return vault.FolderEntry{}, ErrFolderNotFound{folder}
	}

	if len(entries) == 0 {
		return vault.FolderEntry{}, ErrFolderNotFound{}
	}

	selectableFolders := make(map[string]vault.FolderEntry, len(entries))
	options := make([]string, len(entries))
	for i, entry := range entries {
		options[i] = entry.Path
		selectableFolders[entry.Path] = entry
	}

	var selected string
	if err := ui.AskOne(&selected, &survey.Select{Message: message, Options: options}); err != nil {
		return vault.FolderEntry{}, err
	}
	return selectableFolders[selected], nil
}

// DisplaySecret returns the name and type of a secret
func DisplaySecret(secret vault.SecretSummary) string {
	if secret.SecretType == vault.SecretTypeEmpty {
		return secret.Name
	}
	return fmt.Sprintf("%s (%s)", secret.Name, secret.SecretType)
}
