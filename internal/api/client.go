// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package api is the HTTP client for the content backend. Every content
// read and write on the site goes through it; nothing is cached here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	// DefaultTimeout bounds a single backend call.
	DefaultTimeout = 15 * time.Second

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 8 << 20

	// RequestIDHeader is forwarded to the backend for log correlation.
	RequestIDHeader = "X-Request-ID"
)

// Observer receives the outcome of every backend call. Status is 0 when
// the request never got a response.
type Observer func(method, resource string, status int, elapsed time.Duration)

// Client talks to the backend REST API rooted at a base URL such as
// http://localhost:5000. Resource endpoints live under /api and uploaded
// images under /uploads.
type Client struct {
	baseURL  string
	http     *http.Client
	observer Observer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithObserver registers a callback for call metrics.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// New creates a Client for baseURL. The URL must be absolute.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be an absolute http(s) URL", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UploadURL resolves an image reference stored on a record. Absolute
// http(s) references are returned untouched, bare filenames are resolved
// against /uploads/{folder}/, and a blank reference yields "".
func (c *Client) UploadURL(folder, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	segments := strings.Split(strings.TrimLeft(ref, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return c.baseURL + "/uploads/" + url.PathEscape(folder) + "/" + strings.Join(segments, "/")
}

// LoginResult is the backend's answer to a credential check.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Login checks admin credentials against the backend. A rejected login is
// reported through LoginResult, not as an error; errors mean the backend
// could not be asked.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	p := NewJSONPayload().Set("username", username).Set("password", password)

	status, body, err := c.send(ctx, http.MethodPost, "login", "/api/login", p)
	if err != nil {
		return LoginResult{}, err
	}

	// A server fault is not a rejected login, even with a JSON body.
	if status >= 500 {
		return LoginResult{}, newStatusError("login", status, body)
	}

	var res struct {
		LoginResult
		Error string `json:"error"`
	}
	if jerr := json.Unmarshal(body, &res); jerr != nil {
		if status < 200 || status >= 300 {
			return LoginResult{}, newStatusError("login", status, body)
		}
		return LoginResult{}, &Error{Op: "login", Status: status, Message: msgBadResponse, Err: jerr}
	}
	if status < 200 || status >= 300 {
		res.Success = false
		if res.Message == "" {
			res.Message = strings.TrimSpace(res.Error)
		}
	}
	if !res.Success && res.Message == "" {
		res.Message = "Invalid admin credentials."
	}
	return res.LoginResult, nil
}

// do performs a call and decodes a 2xx body into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, resource, path string, p *Payload, out any) error {
	op := opName(method, resource)

	status, body, err := c.send(ctx, method, resource, path, p)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return newStatusError(op, status, body)
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Op: op, Status: status, Message: msgBadResponse, Err: err}
	}
	return nil
}

// send executes one request and returns the raw status and body. Only
// transport failures are returned as errors.
func (c *Client) send(ctx context.Context, method, resource, path string, p *Payload) (int, []byte, error) {
	op := opName(method, resource)

	var (
		body        io.Reader
		contentType string
	)
	if p != nil {
		var err error
		body, contentType, err = p.encode()
		if err != nil {
			return 0, nil, &Error{Op: op, Message: msgGeneric, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, &Error{Op: op, Message: msgGeneric, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	reqID := chimw.GetReqID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.observe(method, resource, 0, elapsed)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, nil, &Error{Op: op, Message: msgCancelled, Err: ctxErr}
		}
		slog.Warn("api request failed", "op", op, "error", err, "duration", elapsed.String())
		return 0, nil, &Error{Op: op, Message: msgUnreachable, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.observe(method, resource, resp.StatusCode, elapsed)
	if err != nil {
		return 0, nil, &Error{Op: op, Status: resp.StatusCode, Message: msgBadResponse, Err: err}
	}

	slog.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", elapsed.String(),
		"request_id", reqID,
	)
	return resp.StatusCode, data, nil
}

func (c *Client) observe(method, resource string, status int, elapsed time.Duration) {
	if c.observer != nil {
		c.observer(method, resource, status, elapsed)
	}
}

func opName(method, resource string) string {
	return strings.ToLower(method) + " " + resource
}

func itemPath(resource string, id int64) string {
	return "/api/" + resource + "/" + strconv.FormatInt(id, 10)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
