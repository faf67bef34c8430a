package cli

import (
	"errors"
	"fmt"
)

// NewErr creates a new CLI error
func NewErr(message string) Err {
	return Err{message: message}
}

// NewWrapped creates a new CLI error with the wrapped cause's details
// hidden from the resulting error message
func NewWrapped(message string, err error) Err {
	return Err{message: message, cause: err}
}

// Err is a CLI error
type Err struct {
	message string
	cause   error
}

func (err Err) Error() string { return err.message }

// Unwrap unwraps the first non-CLI error as the root cause
func (err Err) Unwrap() error { return findRootCause(err.cause) }

func (err Err) String() string {
	if err.cause == nil {
		return err.message
	}

	var cause string
	switch c := err.cause.(type) {
	case Err:
		cause = c.String()
	default:
		cause = c.Error()
	}
	return fmt.Sprintf("%s: %s", err.message, cause)
}

func findRootCause(err error) error {
	if cause := errors.Unwrap(err); cause != nil {
		return findRootCause(cause)
	}
	return err
}

// DisableUsage disables the usage printing when an error occurs
type DisableUsage interface {
	DisableUsage() struct{}
}

type errDisableUsage struct {
	error
}

func (err errDisableUsage) DisableUsage() struct{} { return struct{}{} }

func (err errDisableUsage) Unwrap() error { return err.error }

// CommandSuggester handles any suggestions to run if the current command isn't working
type CommandSuggester interface {
	SuggestedCommands() []interface{}
}

// ErrLoginRequired is the CLI error returned once the stored session is gone
type ErrLoginRequired struct {
	Cause error
}

func (err ErrLoginRequired) Error() string {
	if err.Cause == nil {
		return "you must log in to run this command"
	}
	return "you must log in to run this command, " + err.Cause.Error()
}

func (err ErrLoginRequired) Unwrap() error { return err.Cause }

// SuggestedCommands returns the login command
func (err ErrLoginRequired) SuggestedCommands() []interface{} {
	return []interface{}{CommandUse("login")}
}

// suggestedCommands returns the follow up commands carried by the error chain
func suggestedCommands(err error) []interface{} {
	var suggester CommandSuggester
	if errors.As(err, &suggester) {
		return suggester.SuggestedCommands()
	}
	return nil
}
