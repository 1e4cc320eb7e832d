package types

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidOption means missing or unusable credentials or settings.
	ErrInvalidOption = errors.New("invalid option")

	// ErrValidationFailed means malformed input from the caller.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotFound means the hosting API answered 404 for the resource.
	ErrNotFound = errors.New("not found")

	// ErrHostingAPI means the hosting API rejected the request or could not be reached.
	ErrHostingAPI = errors.New("hosting API request failed")

	// ErrMalformedResponse means a required field is missing or has a wrong type.
	ErrMalformedResponse = errors.New("malformed hosting API response")

	// ErrExternalTool means the version control subprocess exited with failure.
	ErrExternalTool = errors.New("external tool failed")
)

// ErrorKind classifies broker errors so that callers can switch on the outcome instead of
// matching error chains themselves.
type ErrorKind string

const (
	ErrorKindNone              ErrorKind = ""
	ErrorKindConfiguration     ErrorKind = "configuration"
	ErrorKindValidation        ErrorKind = "validation"
	ErrorKindNotFound          ErrorKind = "not_found"
	ErrorKindHostingAPI        ErrorKind = "hosting_api"
	ErrorKindMalformedResponse ErrorKind = "malformed_response"
	ErrorKindExternalTool      ErrorKind = "external_tool"
	ErrorKindUnknown           ErrorKind = "unknown"
)

// KindOf returns the kind of err. NotFound takes precedence over HostingAPI because a 404
// response carries both.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrInvalidOption):
		return ErrorKindConfiguration
	case errors.Is(err, ErrValidationFailed):
		return ErrorKindValidation
	case errors.Is(err, ErrNotFound):
		return ErrorKindNotFound
	case errors.Is(err, ErrMalformedResponse):
		return ErrorKindMalformedResponse
	case errors.Is(err, ErrHostingAPI):
		return ErrorKindHostingAPI
	case errors.Is(err, ErrExternalTool):
		return ErrorKindExternalTool
	default:
		return ErrorKindUnknown
	}
}

// IsRetryable reports whether the operation may succeed if repeated by the caller. Transport
// failures, 5xx and 429 from the hosting API and external tool failures are retryable.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case ErrorKindHostingAPI:
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr.StatusCode >= 500 || apiErr.StatusCode == http.StatusTooManyRequests
		}
		// no response at all, e.g. timeout or connection reset
		return true
	case ErrorKindExternalTool:
		return true
	default:
		return false
	}
}

// APIError is a hosting API response outside of the accepted statuses.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (x *APIError) Error() string {
	return fmt.Sprintf("%s %s failed with %d: %s", x.Method, x.Path, x.StatusCode, x.Body)
}

func (x *APIError) Unwrap() []error {
	if x.StatusCode == http.StatusNotFound {
		return []error{ErrNotFound, ErrHostingAPI}
	}
	return []error{ErrHostingAPI}
}

// ToolError is a non-zero exit of an external command. Command must be already sanitized.
type ToolError struct {
	Command  string
	Stderr   string
	ExitCode int
}

func (x *ToolError) Error() string {
	return fmt.Sprintf("command failed (%s) with exit code %d: %s", x.Command, x.ExitCode, x.Stderr)
}

func (x *ToolError) Unwrap() error {
	return ErrExternalTool
}
