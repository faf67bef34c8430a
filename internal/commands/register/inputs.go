package register

import (
	"errors"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	minPasswordLength = 8
)

var (
	errPasswordTooShort = errors.New("password must be at least 8 characters")
)

type inputs struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Email == "" {
		questions = append(questions, &survey.Question{
			Name:     "email",
			Prompt:   &survey.Input{Message: "Email"},
			Validate: survey.Required,
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     "password",
			Prompt:   &survey.Password{Message: "Password"},
			Validate: survey.ComposeValidators(survey.Required, validatePassword),
		})
	}

	if i.FirstName == "" {
		questions = append(questions, &survey.Question{
			Name:     "firstName",
			Prompt:   &survey.Input{Message: "First Name"},
			Validate: survey.Required,
		})
	}

	if i.LastName == "" {
		questions = append(questions, &survey.Question{
			Name:     "lastName",
			Prompt:   &survey.Input{Message: "Last Name"},
			Validate: survey.Required,
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}

	return validatePassword(i.Password)
}

func validatePassword(ans interface{}) error {
	if password, ok := ans.(string); ok && len(password) < minPasswordLength {
		return errPasswordTooShort
	}
	return nil
}
