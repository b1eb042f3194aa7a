package ons

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies a failed call against the ONS API.
type ErrorKind int

const (
	KindHTTP ErrorKind = iota
	KindNotFound
	KindBadRequest
	KindRateLimited
	KindServerError
	KindNetwork
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindBadRequest:
		return "bad request"
	case KindRateLimited:
		return "rate limited"
	case KindServerError:
		return "server error"
	case KindNetwork:
		return "network error"
	default:
		return "http error"
	}
}

// Error is returned for every non-2xx response and for transport failures.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("resource not found: %s", e.Message)
	case KindBadRequest:
		return fmt.Sprintf("bad request: %s", e.Message)
	case KindRateLimited:
		return "rate limit exceeded, please try again later"
	case KindServerError:
		return fmt.Sprintf("ONS API server error: %s", e.Message)
	case KindNetwork:
		return fmt.Sprintf("network error: unable to reach ONS API: %s", e.Message)
	default:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindHTTP, false
}

// IsNotFound reports whether err is a 404 from the ONS API.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

// classify maps a non-2xx status and its body to an *Error.
func classify(statusCode int, body []byte) *Error {
	e := &Error{StatusCode: statusCode, Message: upstreamMessage(statusCode, body)}
	switch statusCode {
	case http.StatusNotFound:
		e.Kind = KindNotFound
	case http.StatusBadRequest:
		e.Kind = KindBadRequest
	case http.StatusTooManyRequests:
		e.Kind = KindRateLimited
	case http.StatusInternalServerError:
		e.Kind = KindServerError
	default:
		e.Kind = KindHTTP
	}
	return e
}

func upstreamMessage(statusCode int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Errors  []struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			return payload.Message
		case payload.Error != "":
			return payload.Error
		case len(payload.Errors) > 0 && payload.Errors[0].Message != "":
			return payload.Errors[0].Message
		case len(payload.Errors) > 0 && payload.Errors[0].Description != "":
			return payload.Errors[0].Description
		}
	}
	if msg := strings.TrimSpace(string(body)); msg != "" && !strings.HasPrefix(msg, "{") {
		return msg
	}
	return http.StatusText(statusCode)
}
