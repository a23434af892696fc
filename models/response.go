// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Response is the decoded JSON value returned by ajax.php, exactly as the
// server sent it. Gazelle usually wraps its answers as
// {"status": "success"|"failure", "response": ..., "error": ...}, but any
// JSON value is accepted and no schema is enforced here. Numbers are kept
// as [json.Number].
type Response struct {
	value any
}

// NewResponse wraps an already decoded JSON value.
func NewResponse(v any) Response {
	return Response{value: v}
}

// Value returns the decoded JSON value: map[string]any, []any, string,
// json.Number, bool or nil.
func (r Response) Value() any {
	return r.value
}

// Object returns the value as a JSON object, if it is one.
func (r Response) Object() (map[string]any, bool) {
	m, ok := r.value.(map[string]any)
	return m, ok
}

// Status returns the top-level "status" string, or "" when absent or when
// the value is not an object.
func (r Response) Status() string {
	m, _ := r.Object()
	s, _ := m["status"].(string)
	return s
}

// Payload returns the top-level "response" value, or nil when absent or
// when the value is not an object.
func (r Response) Payload() any {
	m, _ := r.Object()
	return m["response"]
}

// Error returns the top-level "error" string that Gazelle sets on failure
// responses, or "".
func (r Response) Error() string {
	m, _ := r.Object()
	s, _ := m["error"].(string)
	return s
}

// MarshalJSON encodes the wrapped value.
func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value)
}

// UnmarshalJSON decodes any JSON value, keeping numbers as [json.Number].
func (r *Response) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	r.value = v
	return nil
}
