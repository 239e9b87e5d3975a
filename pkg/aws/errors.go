package aws

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// ErrCredentials is returned when AWS rejects or cannot find credentials
var ErrCredentials = errors.New("credential invalid or not found")

// authErrorCodes are API error codes meaning the caller is not authenticated
// or not allowed to make the call
var authErrorCodes = map[string]bool{
	"AuthFailure":                 true,
	"UnauthorizedOperation":       true,
	"InvalidClientTokenId":        true,
	"SignatureDoesNotMatch":       true,
	"ExpiredToken":                true,
	"ExpiredTokenException":       true,
	"AccessDenied":                true,
	"AccessDeniedException":       true,
	"UnrecognizedClientException": true,
	"InvalidAccessKeyId":          true,
	"InvalidToken":                true,
}

// IsAuthError reports whether err is an authentication or authorization failure
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return authErrorCodes[apiErr.ErrorCode()]
	}

	// The SDK fails before sending the request when no provider in the
	// chain yields credentials.
	return strings.Contains(err.Error(), "failed to retrieve credentials")
}

// wrapAPIError adds context to err, marking auth failures with ErrCredentials
func wrapAPIError(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if IsAuthError(err) {
		return fmt.Errorf("%s: %w: %w", msg, ErrCredentials, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
