package llm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies API failures so callers can react without matching
// on error message substrings.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindAuth
	KindRateLimit
	KindServer
	KindContextLength
)

// APIError is returned for non-2xx responses from a completion API.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("llm api error: status=%d code=%q: %s", e.StatusCode, e.Code, e.Message)
}

// Hint returns a user-facing suggestion for the error, or "" when there is none.
func (e *APIError) Hint() string {
	switch e.Kind {
	case KindAuth:
		return "Invalid API key. Check the OPENAI_API_KEY environment variable."
	case KindRateLimit:
		return "Rate limit exceeded. Please wait a moment and try again."
	case KindServer:
		return "The API is having trouble. Please try again later."
	case KindContextLength:
		return "The request was too long. Try a simpler recipe or a shorter list."
	}
	return ""
}

// classify maps an HTTP status and API error code to an ErrorKind.
func classify(status int, code string) ErrorKind {
	if code == "context_length_exceeded" {
		return KindContextLength
	}
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 429:
		return KindRateLimit
	case status >= 500:
		return KindServer
	}
	return KindOther
}

// AsAPIError unwraps err into an *APIError if there is one in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
