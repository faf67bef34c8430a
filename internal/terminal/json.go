package terminal

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/fatih/color"
)

const (
	logFieldTitle = "title"
	logFieldDoc   = "doc"

	documentTitleDivider = "---"
)

var (
	documentFields       = []string{logFieldDoc}
	titledDocumentFields = []string{logFieldTitle, logFieldDoc}
)

// document prints its data as indented JSON, under a bold title when one is set
type document struct {
	title string
	data  interface{}
}

func (d document) Message() (string, error) {
	// print &, < and > as typed
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(d.data); err != nil {
		return "", err
	}
	body := strings.TrimSuffix(buf.String(), "\n")

	if d.title == "" {
		return body, nil
	}
	return strings.Join([]string{color.New(color.Bold).Sprint(d.title), documentTitleDivider, body}, "\n"), nil
}

func (d document) Payload() ([]string, map[string]interface{}, error) {
	if d.title == "" {
		return documentFields, map[string]interface{}{logFieldDoc: d.data}, nil
	}
	return titledDocumentFields, map[string]interface{}{
		logFieldTitle: d.title,
		logFieldDoc:   d.data,
	}, nil
}
