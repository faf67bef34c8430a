package terminal

import (
	"strings"

	"github.com/fatih/color"
)

const (
	logFieldErr = "error"

	errorPrefix = "error: "
)

var (
	errorMessageFields = []string{logFieldErr}
)

// errorMessage prints an error with any continuation lines
// indented beneath the first one
type errorMessage struct {
	error
}

func (e errorMessage) Message() (string, error) {
	lines := strings.Split(strings.TrimRight(e.Error(), "\n"), "\n")
	return color.New(color.FgRed).Sprint(errorPrefix) + strings.Join(lines, "\n"+Indent), nil
}

func (e errorMessage) Payload() ([]string, map[string]interface{}, error) {
	return errorMessageFields, map[string]interface{}{
		logFieldErr: e.Error(),
	}, nil
}
