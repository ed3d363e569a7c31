package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed call for the presentation layer. Validation
// failures additionally carry per-field messages so forms can annotate the
// offending inputs instead of showing a generic banner.
type Kind string

const (
	KindNetwork       Kind = "network"
	KindCredentials   Kind = "invalid"
	KindAuthorization Kind = "forbidden"
	KindValidation    Kind = "validation"
	KindRateLimited   Kind = "rate-limited"
	KindServer        Kind = "server"
	KindUnknown       Kind = "unknown"
)

type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Fields  map[string][]string

	cause error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf reports the classification of err, or KindUnknown for errors that
// did not come out of this package.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}

// FieldErrors returns the per-field validation messages, or nil.
func FieldErrors(err error) map[string][]string {
	var re *Error
	if errors.As(err, &re) {
		return re.Fields
	}
	return nil
}

// errorBody is the shape the backend uses for failures: one of error, message
// or detail carries the headline, code is optional, and any remaining keys
// are field name to message-list pairs.
type errorBody struct {
	ErrorMsg string `json:"error"`
	Message  string `json:"message"`
	Detail   string `json:"detail"`
	Code     string `json:"code"`
}

func parseError(status int, raw []byte) *Error {
	e := &Error{Status: status, Kind: kindFor(status)}

	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		switch {
		case body.ErrorMsg != "":
			e.Message = body.ErrorMsg
		case body.Message != "":
			e.Message = body.Message
		case body.Detail != "":
			e.Message = body.Detail
		}
		e.Code = body.Code
	}

	e.Fields = fieldErrors(raw)
	if len(e.Fields) > 0 && (status == http.StatusBadRequest || status == http.StatusUnprocessableEntity) {
		e.Kind = KindValidation
	}

	if e.Message == "" {
		e.Message = fmt.Sprintf("request failed with status %d", status)
	}
	return e
}

func kindFor(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindCredentials
	case status == http.StatusForbidden:
		return KindAuthorization
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// reserved keys of the error body that are never field names
var headlineKeys = map[string]bool{
	"error":   true,
	"message": true,
	"detail":  true,
	"code":    true,
}

func fieldErrors(raw []byte) map[string][]string {
	var all map[string]json.RawMessage
	if json.Unmarshal(raw, &all) != nil {
		return nil
	}

	var fields map[string][]string
	for key, val := range all {
		if headlineKeys[key] {
			continue
		}
		var msgs []string
		if json.Unmarshal(val, &msgs) != nil || len(msgs) == 0 {
			continue
		}
		if fields == nil {
			fields = make(map[string][]string)
		}
		fields[key] = msgs
	}
	return fields
}
