// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the platform adapters:
// JSON request plumbing and the mapping from transport failures onto the
// fixed, human-readable error strings the response surface exposes.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
)

// StatusError is returned when a platform API responds with a non-2xx code.
// Adapters surface it unwrapped so the orchestrator can classify it.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}

// GetJSON issues a GET request with the given headers and decodes the JSON
// response body into v. Non-2xx responses become a *StatusError.
func GetJSON(ctx context.Context, client *http.Client, reqURL string, header http.Header, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return doJSON(client, req, header, v)
}

// PostFormJSON issues a form-encoded POST and decodes the JSON response body
// into v. Used by adapters that need a token exchange before searching.
func PostFormJSON(ctx context.Context, client *http.Client, reqURL string, header http.Header, form url.Values, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doJSON(client, req, header, v)
}

func doJSON(client *http.Client, req *http.Request, header http.Header, v any) error {
	for k, vals := range header {
		for _, val := range vals {
			req.Header.Add(k, val)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode}
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// Fixed messages the aggregate response exposes for platform failures.
const (
	MsgUnreachable  = "Unable to connect to service"
	MsgAuthRequired = "Authentication required"
	MsgAccessDenied = "Access denied"
	MsgRateLimited  = "Rate limit exceeded"
	MsgServerError  = "Service temporarily unavailable"
	MsgTimeout      = "Request timeout"
	MsgGeneric      = "Connection failed"
)

// Readable classifies a platform call failure into one of the fixed
// messages above. The raw error is never surfaced to callers.
func Readable(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return MsgTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return MsgTimeout
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.Code == http.StatusUnauthorized:
			return MsgAuthRequired
		case statusErr.Code == http.StatusForbidden:
			return MsgAccessDenied
		case statusErr.Code == http.StatusTooManyRequests:
			return MsgRateLimited
		case statusErr.Code >= 500:
			return MsgServerError
		}
		return MsgGeneric
	}

	var dnsErr *net.DNSError
	if errors.Is(err, syscall.ECONNREFUSED) || errors.As(err, &dnsErr) {
		return MsgUnreachable
	}

	return MsgGeneric
}
