package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Result is the uniform envelope every backend call resolves to. The gateway
// never reports failure any other way: transport errors, bad statuses and
// malformed responses all collapse into Success=false plus a message.
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`

	// Status is the HTTP status code of the response, when one was received.
	// Zero means the request never completed. It lets callers react to
	// well-known statuses (e.g. 409 for a duplicate) without parsing the
	// error message.
	Status int `json:"-"`
}

// Failure builds a failed Result with the given message.
func Failure(msg string) Result {
	return Result{Success: false, Error: msg}
}

// Err converts a failed Result back into a Go error for layers that speak
// errors rather than envelopes. Returns nil for a successful Result.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	if r.Error == "" {
		return errors.New("request failed")
	}
	return errors.New(r.Error)
}

// Decode unmarshals the Data of a successful Result into T. A failed Result
// or a payload that does not fit T yields an error.
func Decode[T any](r Result) (T, error) {
	var v T
	if err := r.Err(); err != nil {
		return v, err
	}
	if len(r.Data) == 0 {
		return v, errors.New("empty response data")
	}
	if err := json.Unmarshal(r.Data, &v); err != nil {
		return v, fmt.Errorf("failed to decode response data: %w", err)
	}
	return v, nil
}
