package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the transport-level failure classes. They are
// normalized once at the client boundary and never re-wrapped further up.
var (
	// ErrNetwork means no response reached the client.
	ErrNetwork = errors.New("network error")

	// ErrSessionExpired means the refresh token was missing or the refresh
	// call was rejected. Raising it performs local logout-cleanup as a side
	// effect; callers only have to surface it.
	ErrSessionExpired = errors.New("session expired")

	// ErrServer covers 5xx responses without a structured error body.
	ErrServer = errors.New("server error")

	// ErrUnknown covers failures that fit no other class.
	ErrUnknown = errors.New("unknown error")
)

// APIError carries the backend's structured error payload unchanged so
// callers can branch on server-defined codes and messages.
type APIError struct {
	StatusCode int      `json:"statusCode"`
	Messages   []string `json:"-"`
	Code       string   `json:"error"`
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// UnmarshalJSON accepts the backend's error envelope, where "message" is
// either a single string or a list of strings.
func (e *APIError) UnmarshalJSON(data []byte) error {
	var raw struct {
		StatusCode int             `json:"statusCode"`
		Message    json.RawMessage `json:"message"`
		Code       string          `json:"error"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.StatusCode = raw.StatusCode
	e.Code = raw.Code
	e.Messages = nil
	if len(raw.Message) == 0 {
		return nil
	}
	var single string
	if err := json.Unmarshal(raw.Message, &single); err == nil {
		if single != "" {
			e.Messages = []string{single}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(raw.Message, &many); err == nil {
		e.Messages = many
		return nil
	}
	return nil
}

// AsAPIError unwraps err into an *APIError when the server returned a
// structured body.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
