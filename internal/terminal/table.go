package terminal

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	logFieldHeaders = "headers"
	logFieldData    = "data"
)

// set of exported spacing options
const (
	Indent = "  "
	Gutter = "  "
)

var (
	tableFields = []string{logFieldMessage, logFieldHeaders, logFieldData}

	errTableWithoutHeaders = errors.New("cannot create a table without headers")
)

type table struct {
	message      string
	headers      []string
	data         []map[string]string
	columnWidths map[string]int
}

func newTable(message string, headers []string, data []map[string]interface{}) table {
	if len(headers) == 0 {
		return table{}
	}

	t := table{
		message:      message,
		headers:      headers,
		data:         make([]map[string]string, 0, len(data)),
		columnWidths: make(map[string]int, len(headers)),
	}

	for _, header := range headers {
		t.columnWidths[header] = utf8.RuneCountInString(header)
	}

	for _, row := range data {
		if len(row) == 0 {
			continue
		}
		r := make(map[string]string, len(headers))
		for _, header := range headers {
			value := parseValue(row[header])
			if width := utf8.RuneCountInString(value); width > t.columnWidths[header] {
				t.columnWidths[header] = width
			}
			r[header] = value
		}
		t.data = append(t.data, r)
	}
	return t
}

func (t table) Message() (string, error) {
	if len(t.headers) == 0 {
		return "", errTableWithoutHeaders
	}

	lines := []string{t.message, t.headerString(), t.dividerString()}
	for _, row := range t.data {
		lines = append(lines, t.rowString(row))
	}
	return strings.Join(lines, "\n"), nil
}

func (t table) Payload() ([]string, map[string]interface{}, error) {
	if len(t.headers) == 0 {
		return nil, nil, errTableWithoutHeaders
	}
	return tableFields, map[string]interface{}{
		logFieldMessage: t.message,
		logFieldHeaders: t.headers,
		logFieldData:    t.data,
	}, nil
}

func (t table) headerString() string {
	bold := color.New(color.Bold).SprintFunc()

	cells := make([]string, len(t.headers))
	for i, header := range t.headers {
		cells[i] = bold(header) + t.padding(header, header)
	}
	return Indent + strings.TrimRight(strings.Join(cells, Gutter), " ")
}

func (t table) rowString(row map[string]string) string {
	cells := make([]string, len(t.headers))
	for i, header := range t.headers {
		cells[i] = row[header] + t.padding(header, row[header])
	}
	return Indent + strings.TrimRight(strings.Join(cells, Gutter), " ")
}

func (t table) dividerString() string {
	dashes := make([]string, len(t.headers))
	for i, header := range t.headers {
		dashes[i] = strings.Repeat("-", t.columnWidths[header])
	}
	return Indent + strings.Join(dashes, Gutter)
}

func (t table) padding(header, value string) string {
	return strings.Repeat(" ", t.columnWidths[header]-utf8.RuneCountInString(value))
}

func parseValue(value interface{}) string {
	parsed := ""
	switch v := value.(type) {
	case nil: // leave zero-value
	case string:
		parsed = v
	case fmt.Stringer:
		parsed = v.String()
	case error:
		parsed = v.Error()
	default:
		parsed = fmt.Sprintf("%+v", v)
	}
	return parsed
}
