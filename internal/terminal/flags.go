package terminal

import (
	"fmt"
	"strings"
)

// OutputFormat is the format logs are printed in
type OutputFormat string

// set of supported terminal output formats
const (
	OutputFormatText OutputFormat = "" // zero-valued to be flag's default
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"

	outputFormatTextName = "text"
)

// OutputFormatValues lists every output format accepted by the --output-format flag
var OutputFormatValues = []OutputFormat{OutputFormatText, OutputFormatJSON, OutputFormatYAML}

func (of OutputFormat) String() string {
	if of == OutputFormatText {
		return outputFormatTextName
	}
	return string(of)
}

// Type returns the OutputFormat type
func (of OutputFormat) Type() string { return "OutputFormat" }

// Set parses the output format, case insensitive
// "text" and the empty string both select plain text output
func (of *OutputFormat) Set(val string) error {
	val = strings.ToLower(strings.TrimSpace(val))
	if val == outputFormatTextName {
		val = ""
	}

	outputFormat := OutputFormat(val)
	if !isValidOutputFormat(outputFormat) {
		names := make([]string, len(OutputFormatValues))
		for i, value := range OutputFormatValues {
			names[i] = value.String()
		}
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(names, ", "))
	}

	*of = outputFormat
	return nil
}

func isValidOutputFormat(outputFormat OutputFormat) bool {
	for _, value := range OutputFormatValues {
		if value == outputFormat {
			return true
		}
	}
	return false
}
