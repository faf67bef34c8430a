package terminal

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
)

// UI is a terminal UI
type UI interface {
	AutoConfirm() bool
	AskOne(answer interface{}, prompt survey.Prompt, opts ...survey.AskOpt) error
	Ask(answer interface{}, questions ...*survey.Question) error
	Confirm(format string, args ...interface{}) (bool, error)
	Print(logs ...Log)
	Spinner(message string, opts SpinnerOptions) Spinner
}

// UIConfig holds the global config for the CLI ui
type UIConfig struct {
	AutoConfirm   bool
	DisableColors bool
	OutputFormat  OutputFormat
	OutputTarget  string
}

// NewUI creates a new terminal UI
func NewUI(config UIConfig, in io.Reader, out, err io.Writer) UI {
	noColor := config.DisableColors
	if config.OutputFormat != OutputFormatText || config.OutputTarget != "" {
		noColor = true
	}
	color.NoColor = noColor

	return &ui{
		config: config,
		err:    err,
		in:     in,
		out:    out,
	}
}

type ui struct {
	config UIConfig
	err    io.Writer
	in     io.Reader
	out    io.Writer
}

func (ui *ui) AutoConfirm() bool {
	return ui.config.AutoConfirm
}

func (ui *ui) AskOne(answer interface{}, prompt survey.Prompt, opts ...survey.AskOpt) error {
	return survey.AskOne(prompt, answer, append(opts, ui.withStdio())...)
}

func (ui *ui) Ask(answer interface{}, questions ...*survey.Question) error {
	return survey.Ask(questions, answer, ui.withStdio())
}

func (ui *ui) Confirm(format string, args ...interface{}) (bool, error) {
	if ui.config.AutoConfirm {
		return true, nil
	}

	var confirmed bool
	if err := ui.AskOne(&confirmed, &survey.Confirm{Message: fmt.Sprintf(format, args...)}); err != nil {
		return false, err
	}
	return confirmed, nil
}

func (ui *ui) Print(logs ...Log) {
	for _, log := range logs {
		var writer io.Writer
		switch log.Level {
		case LogLevelError, LogLevelWarn:
			writer = ui.err
		default:
			writer = ui.out
		}

		output, err := log.Print(ui.config.OutputFormat)
		if err != nil {
			writer = ui.err
			output = err.Error()
		}

		fmt.Fprintln(writer, output)
	}
}

// Spinner returns a spinner that writes to the error writer,
// or a spinner that does nothing when output is not meant for a person to read
func (ui *ui) Spinner(message string, opts SpinnerOptions) Spinner {
	if ui.config.OutputFormat != OutputFormatText {
		return noopSpinner{}
	}
	if _, ok := ui.err.(terminal.FileWriter); !ok {
		return noopSpinner{}
	}
	return newUISpinner(message, ui.err, opts)
}

func (ui *ui) withStdio() survey.AskOpt {
	in, inOK := ui.in.(terminal.FileReader)
	if !inOK {
		in = noopFdReader{ui.in}
	}
	out, outOK := ui.out.(terminal.FileWriter)
	if !outOK {
		out = noopFdWriter{ui.out}
	}
	return survey.WithStdio(in, out, ui.err)
}

type noopFdReader struct {
	io.Reader
}

func (r noopFdReader) Fd() uintptr {
	return 0
}

type noopFdWriter struct {
	io.Writer
}

func (r noopFdWriter) Fd() uintptr {
	return 0
}
