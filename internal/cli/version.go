package cli

import (
	"strings"

	"github.com/deomiarn/securevault/internal/utils/flags"
)

var (
	// Name represents the CLI name; used for invoking the CLI commands
	Name = "vault-cli"

	// Version represents the CLI version
	Version = "0.0.0" // value will be injected at build-time
)

// CommandUse returns the full invocation of the CLI command
func CommandUse(use string) string {
	return Name + " " + use
}

// CommandDisplay returns the full invocation of the CLI command along with its flag args
func CommandDisplay(use string, args []flags.Arg) string {
	var sb strings.Builder
	sb.WriteString(CommandUse(use))
	for _, arg := range args {
		sb.WriteString(arg.String())
	}
	return sb.String()
}
