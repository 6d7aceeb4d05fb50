package sevdesk

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIToken is returned when the client is created without an API token.
	ErrMissingAPIToken = errors.New("missing sevDesk API token: set SEVDESK_API_KEY or pass --api-token")

	// ErrUnexpectedResponse is returned when a response body cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected sevDesk API response")
)

// APIError describes a failed call to the sevDesk API.
type APIError struct {
	// Op is the operation that failed (e.g., "FetchVouchers", "DownloadInvoicePDF").
	Op string

	// StatusCode is the HTTP status, zero for transport failures.
	StatusCode int

	// Message is the error message sent by sevDesk, if any.
	Message string

	// Err is the underlying transport or decoding error.
	Err error
}

// Error implements the error interface. It leads with the upstream message
// so it can be shown to the user as is.
func (e *APIError) Error() string {
	switch {
	case e.Message != "" && e.StatusCode != 0:
		return fmt.Sprintf("sevdesk: %s failed (HTTP %d): %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("sevdesk: %s failed: HTTP %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("sevdesk: %s failed: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("sevdesk: %s failed", e.Op)
	}
}

// Unwrap returns the underlying error for error unwrapping.
func (e *APIError) Unwrap() error {
	return e.Err
}

// errorEnvelope is the error body of the sevDesk API:
// {"objects": null, "error": {"message": "...", "code": null}}
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func (e *errorEnvelope) message() string {
	if e == nil {
		return ""
	}
	if e.Error.Message != "" {
		return e.Error.Message
	}
	return e.Message
}
