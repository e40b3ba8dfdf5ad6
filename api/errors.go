package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors marking the broad failure classes the services return.
// Callers branch on these with the Is* helpers rather than on status codes.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
)

// Error is a non-2xx response from one of the services.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// errorBody matches the services' error payload. Detail is either a plain
// string or a list of objects carrying a "msg" field.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

func normalizeError(status int, body []byte) error {
	apiErr := &Error{
		StatusCode: status,
		Message:    extractMessage(status, body),
	}
	switch status {
	case 401:
		return errors.Mark(apiErr, ErrUnauthorized)
	case 404:
		return errors.Mark(apiErr, ErrNotFound)
	case 409:
		return errors.Mark(apiErr, ErrConflict)
	case 400, 422:
		return errors.Mark(apiErr, ErrValidation)
	}
	return apiErr
}

func extractMessage(status int, body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if msg := detailMessage(parsed.Detail); msg != "" {
			return msg
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	if len(body) > 0 {
		return strings.TrimSpace(string(body))
	}
	return fmt.Sprintf("request failed with status %d", status)
}

func detailMessage(detail json.RawMessage) string {
	if len(detail) == 0 {
		return ""
	}
	var plain string
	if err := json.Unmarshal(detail, &plain); err == nil {
		return plain
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg == "" {
				continue
			}
			msgs = append(msgs, strings.TrimPrefix(item.Msg, "Value error, "))
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

// IsAuth reports whether err means the session is invalid or expired.
func IsAuth(err error) bool { return errors.Is(err, ErrUnauthorized) }

// IsNotFound reports whether err means the resource does not exist.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err means the request lost to a competing
// write, such as a slot that was booked between selection and submission.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsValidation reports whether err means the service rejected the input.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsTransport reports whether err never produced a service response:
// connection failures, timeouts, or unreadable bodies.
func IsTransport(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	return !errors.As(err, &apiErr)
}
