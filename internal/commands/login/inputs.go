package login

import (
	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldEmail    = "email"
	inputFieldPassword = "password"
)

type inputs struct {
	Email    string
	Password string
	Code     string
}

func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Email == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldEmail,
			Prompt:   &survey.Input{Message: "Email", Default: profile.Email()},
			Validate: survey.Required,
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldPassword,
			Prompt:   &survey.Password{Message: "Password"},
			Validate: survey.Required,
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}

	if i.Code != "" {
		return cli.ValidateTOTPCode(i.Code)
	}
	return nil
}
