package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Kind classifies a request failure for callers that need to react to it
// (the TUI forces a re-login on Unauthorized); everything else just renders
// the message.
type Kind int

const (
	KindServer Kind = iota // 5xx or a malformed payload
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindBadRequest
	KindInvalidResponse // transport succeeded but the body was unusable
	KindTransport       // request never produced an HTTP response
)

// Error is the single error type that leaves this package for HTTP-level
// failures. Message is always something a view can show a user as-is.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindUnauthorized
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

type fieldError struct {
	DefaultMessage string `json:"defaultMessage"`
	Message        string `json:"message"`
}

type errorBody struct {
	FieldErrors []fieldError `json:"fieldErrors"`
	Errors      []fieldError `json:"errors"`
	Message     string       `json:"message"`
	ErrorText   string       `json:"error"`
	Detail      string       `json:"detail"`
}

// errorMessage mines a human-readable message out of an error response body.
// Spring-style backends are inconsistent about where they put it, so we try
// validation field errors first, then the usual top-level keys, then a bare
// string body, then fall back to a status-derived message.
func errorMessage(status int, body []byte) string {
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		for _, fe := range append(eb.FieldErrors, eb.Errors...) {
			if fe.DefaultMessage != "" {
				return fe.DefaultMessage
			}
			if fe.Message != "" {
				return fe.Message
			}
		}
		if eb.Message != "" {
			return eb.Message
		}
		if eb.ErrorText != "" {
			return eb.ErrorText
		}
		if eb.Detail != "" {
			return eb.Detail
		}
	}

	var plain string
	if json.Unmarshal(body, &plain) == nil && plain != "" {
		return plain
	}

	switch status {
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Not found"
	}
	return "Request failed"
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindBadRequest
	}
}

func statusError(status int, body []byte) *Error {
	return &Error{
		Kind:    kindForStatus(status),
		Status:  status,
		Message: errorMessage(status, body),
	}
}
