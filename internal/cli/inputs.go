package cli

import (
	"errors"
	"unicode"
)

const (
	totpCodeLength = 6
)

var (
	errInvalidTOTPCode = errors.New("authentication code must be 6 digits")
)

// ValidateTOTPCode is a survey validator for the 6-digit authentication code
// issued by an authenticator app
func ValidateTOTPCode(ans interface{}) error {
	code, ok := ans.(string)
	if !ok || len(code) != totpCodeLength {
		return errInvalidTOTPCode
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return errInvalidTOTPCode
		}
	}
	return nil
}
