package audit

import (
	"io"
	"strings"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/terminal"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

const (
	flagFile      = "file"
	flagFileUsage = "Specify the file to write the CSV export to, defaults to the command output"
)

// CommandExport is the `audit export` command
type CommandExport struct {
	inputs exportInputs
	fs     afero.Fs
}

type exportInputs struct {
	filterInputs
	file string
}

// Flags is the command flags
func (cmd *CommandExport) Flags(fs *pflag.FlagSet) {
	cmd.inputs.filterInputs.Flags(fs)
	fs.StringVar(&cmd.inputs.file, flagFile, "", flagFileUsage)
}

// Inputs is the command inputs
func (cmd *CommandExport) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandExport) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	if cmd.inputs.file != "" {
		exists, err := afero.Exists(cmd.filesystem(), cmd.inputs.file)
		if err != nil {
			return err
		}
		if exists {
			proceed, err := ui.Confirm("File %s already exists, would you like to overwrite it?", cmd.inputs.file)
			if err != nil {
				return err
			}
			if !proceed {
				return nil
			}
		}
	}

	s := ui.Spinner("Exporting audit events...", terminal.SpinnerOptions{})
	s.Start()
	defer s.Stop()

	body, err := clients.Vault.ExportAuditEvents(cmd.inputs.filter())
	if err != nil {
		return err
	}
	defer body.Close()

	if cmd.inputs.file == "" {
		data, err := io.ReadAll(body)
		if err != nil {
			return err
		}
		s.Stop()
		ui.Print(terminal.NewTextLog("%s", strings.TrimRight(string(data), "\n")))
		return nil
	}

	if err := cmd.writeFile(body); err != nil {
		return err
	}
	s.Stop()

	ui.Print(terminal.NewTextLog("Successfully exported audit events to %s", cmd.inputs.file))
	return nil
}

func (cmd *CommandExport) writeFile(r io.Reader) error {
	f, err := cmd.filesystem().Create(cmd.inputs.file)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (cmd *CommandExport) filesystem() afero.Fs {
	if cmd.fs == nil {
		cmd.fs = afero.NewOsFs()
	}
	return cmd.fs
}

func (i *exportInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	return i.filterInputs.validate()
}
