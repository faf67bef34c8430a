package terminal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v2"
)

// LogLevel is the level of a terminal log
type LogLevel string

// set of supported log levels
const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogData produces the log data
type LogData interface {
	Message() (string, error)
	Payload() ([]string, map[string]interface{}, error)
}

// Log is a terminal log
type Log struct {
	Level LogLevel
	Time  time.Time
	Data  LogData
}

// NewTextLog creates a new log with a text message
func NewTextLog(format string, args ...interface{}) Log {
	return newLog(LogLevelInfo, newTextMessage(format, args...))
}

// NewWarningLog creates a new warning log with a text message
func NewWarningLog(format string, args ...interface{}) Log {
	return newLog(LogLevelWarn, newTextMessage(format, args...))
}

// NewJSONLog creates a new log with a JSON document
func NewJSONLog(data interface{}) Log {
	return newLog(LogLevelInfo, document{data: data})
}

// NewTitledJSONLog creates a new log with a titled JSON document
func NewTitledJSONLog(title string, data interface{}) Log {
	return newLog(LogLevelInfo, document{title: title, data: data})
}

// NewTableLog creates a new log with a table
func NewTableLog(message string, headers []string, data ...map[string]interface{}) Log {
	return newLog(LogLevelInfo, newTable(message, headers, data))
}

// NewListLog creates a new log with a list
func NewListLog(message string, data ...interface{}) Log {
	return newLog(LogLevelInfo, newList(message, data))
}

// NewErrorLog creates a new error log
func NewErrorLog(err error) Log {
	return newLog(LogLevelError, errorMessage{err})
}

// NewFollowupLog creates a new log with a follow up message
// and the list of suggested commands or links
func NewFollowupLog(message string, items ...interface{}) Log {
	return newLog(LogLevelInfo, newFollowup(message, items))
}

func newLog(level LogLevel, data LogData) Log {
	return Log{level, time.Now(), data}
}

// Print produces the log output based on the specified format
func (l Log) Print(outputFormat OutputFormat) (string, error) {
	switch outputFormat {
	case OutputFormatText:
		return l.Data.Message()
	case OutputFormatJSON:
		return l.jsonOutput()
	case OutputFormatYAML:
		return l.yamlOutput()
	default:
		return "", fmt.Errorf("unsupported output format type: %s", outputFormat)
	}
}

const (
	logFieldLevel = "level"
	logFieldTime  = "time"
)

func (l Log) jsonOutput() (string, error) {
	out := orderedmap.New()
	out.Set(logFieldTime, l.Time)
	out.Set(logFieldLevel, l.Level)

	keys, payload, err := l.Data.Payload()
	if err != nil {
		return "", err
	}
	for _, key := range keys {
		out.Set(key, payload[key])
	}

	output, outputErr := json.Marshal(out)
	return string(output), outputErr
}

func (l Log) yamlOutput() (string, error) {
	out := yaml.MapSlice{
		{Key: logFieldTime, Value: l.Time.Format(time.RFC3339Nano)},
		{Key: logFieldLevel, Value: string(l.Level)},
	}

	keys, payload, err := l.Data.Payload()
	if err != nil {
		return "", err
	}
	for _, key := range keys {
		value, err := yamlValue(payload[key])
		if err != nil {
			return "", err
		}
		out = append(out, yaml.MapItem{Key: key, Value: value})
	}

	output, outputErr := yaml.Marshal(out)
	return strings.TrimSuffix(string(output), "\n"), outputErr
}

const yamlValueKey = "value"

// yamlValue converts the value into its JSON shape so that
// the json field names and ordering carry over to the yaml document
func yamlValue(value interface{}) (interface{}, error) {
	data, err := json.Marshal(map[string]interface{}{yamlValueKey: value})
	if err != nil {
		return nil, err
	}

	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return nil, nil
	}
	return doc[0].Value, nil
}
