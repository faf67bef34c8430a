package secrets

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

// CommandUnshare is the `secrets unshare` command
type CommandUnshare struct {
	inputs shareRefInputs
}

// shareRefInputs resolves an existing share of a secret
type shareRefInputs struct {
	secretInputs
	share string
}

func (i *shareRefInputs) Flags(fs *pflag.FlagSet) {
	i.secretInputs.Flags(fs)
	fs.StringVar(&i.share, flagShare, "", flagShareUsage)
}

func (i *shareRefInputs) resolveShare(ui terminal.UI, client vault.Client, message string) (vault.SecretSummary, vault.Share, error) {
	secret, err := i.resolveSecret(ui, client, message)
	if err != nil {
		return vault.SecretSummary{}, vault.Share{}, err
	}

	shares, err := client.Shares(secret.ID)
	if err != nil {
		return vault.SecretSummary{}, vault.Share{}, err
	}

	if i.share != "" {
		share, ok := findShare(shares, i.share)
		if !ok {
			return vault.SecretSummary{}, vault.Share{}, errShareNotFound{secret.Name, i.share}
		}
		return secret, share, nil
	}

	if len(shares) == 0 {
		return vault.SecretSummary{}, vault.Share{}, errShareNotFound{secret: secret.Name}
	}

	options := make([]string, len(shares))
	for idx, share := range shares {
		options[idx] = share.SharedWithUserID
	}

	var selected string
	if err := ui.AskOne(&selected, &survey.Select{Message: "Which user's share would you like to select?", Options: options}); err != nil {
		return vault.SecretSummary{}, vault.Share{}, err
	}

	share, _ := findShare(shares, selected)
	return secret, share, nil
}

// Flags is the command flags
func (cmd *CommandUnshare) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Handler is the command handler
func (cmd *CommandUnshare) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	secret, share, err := cmd.inputs.resolveShare(ui, clients.Vault, "Which secret would you like to stop sharing?")
	if err != nil {
		return err
	}

	proceed, err := ui.Confirm("Are you sure you want to revoke access to secret %s for user %s?", secret.Name, share.SharedWithUserID)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if err := clients.Vault.RevokeShare(secret.ID, share.ID); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully revoked access to secret %s for user %s", secret.Name, share.SharedWithUserID))
	return nil
}

type errShareNotFound struct {
	secret string
	share  string
}

func (err errShareNotFound) Error() string {
	if err.share == "" {
		return "secret " + err.secret + " is not shared with anyone"
	}
	return "unable to find share " + err.share + " of secret " + err.secret
}
