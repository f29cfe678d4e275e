// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// User-facing fallback messages.
const (
	msgGeneric     = "Something went wrong. Please try again."
	msgUnreachable = "The content server could not be reached."
	msgBadResponse = "The content server sent a response that could not be read."
	msgCancelled   = "The request was cancelled."
)

// Error is the single failure type returned by the client. Message is
// always safe to show to an admin; Status is 0 for transport failures.
type Error struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message extracts the human-readable text of err. Non-API errors get
// the generic fallback.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return msgGeneric
}

// newStatusError builds an Error from a non-2xx response, preferring the
// server's own "error" or "message" text.
func newStatusError(op string, status int, body []byte) *Error {
	msg := msgGeneric
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case strings.TrimSpace(payload.Error) != "":
			msg = payload.Error
		case strings.TrimSpace(payload.Message) != "":
			msg = payload.Message
		}
	}
	return &Error{Op: op, Status: status, Message: msg}
}
