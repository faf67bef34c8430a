package vault

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/deomiarn/securevault/internal/utils/api"
)

var (
	errIncompleteSession = errors.New("session refresh returned an incomplete credential pair")
)

// ServerError is a SecureVault server error
type ServerError struct {
	StatusCode int               `json:"status"`
	Code       string            `json:"error"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func (se ServerError) Error() string {
	message := se.Message
	if message == "" {
		message = se.Code
	}
	if len(se.Errors) == 0 {
		return message
	}

	fields := make([]string, 0, len(se.Errors))
	for field := range se.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, se.Errors[field]))
	}
	return fmt.Sprintf("%s (%s)", message, strings.Join(details, ", "))
}

// parseResponseError attempts to read and unmarshal a server error
// from the provided *http.Response
func parseResponseError(res *http.Response) error {
	if !api.IsMediaType(res, api.MediaTypeJSON) {
		return ServerError{StatusCode: res.StatusCode, Message: res.Status}
	}
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return err
	}

	payload := buf.String()
	if payload == "" {
		return ServerError{StatusCode: res.StatusCode, Message: res.Status}
	}

	var serverError ServerError
	if err := json.NewDecoder(buf).Decode(&serverError); err != nil {
		serverError.Message = payload
	}
	if serverError.StatusCode == 0 {
		serverError.StatusCode = res.StatusCode
	}
	if serverError.Message == "" && serverError.Code == "" {
		serverError.Message = res.Status
	}
	return serverError
}

// ErrLoginRequired is returned once the session can no longer be recovered
// and the user must log in again
type ErrLoginRequired struct {
	Cause error
}

func (err ErrLoginRequired) Error() string {
	if err.Cause == nil {
		return "session is no longer valid"
	}
	return "session is no longer valid: " + err.Cause.Error()
}

func (err ErrLoginRequired) Unwrap() error { return err.Cause }

// IsUnauthorized reports whether the error is a server rejection of the request's credentials
func IsUnauthorized(err error) bool {
	var serverErr ServerError
	if errors.As(err, &serverErr) {
		return serverErr.StatusCode == http.StatusUnauthorized
	}
	return false
}
