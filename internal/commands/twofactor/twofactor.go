package twofactor

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagCode      = "code"
	flagCodeShort = "c"
	flagCodeUsage = "Specify the 6-digit code shown by your authenticator app"
)

type codeInputs struct {
	code string
}

func (i *codeInputs) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&i.code, flagCode, flagCodeShort, "", flagCodeUsage)
}

func (i *codeInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.code != "" {
		return cli.ValidateTOTPCode(i.code)
	}
	return ui.AskOne(
		&i.code,
		&survey.Input{Message: "Authentication Code"},
		survey.WithValidator(cli.ValidateTOTPCode),
	)
}
