// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// timeoutError satisfies net.Error with Timeout() true.
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

// --- Readable ---

func TestReadable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"deadline exceeded", context.DeadlineExceeded, MsgTimeout},
		{"wrapped deadline", fmt.Errorf("spotify token: %w", context.DeadlineExceeded), MsgTimeout},
		{"net timeout", timeoutError{}, MsgTimeout},
		{"unauthorized", &StatusError{Code: http.StatusUnauthorized}, MsgAuthRequired},
		{"forbidden", &StatusError{Code: http.StatusForbidden}, MsgAccessDenied},
		{"rate limited", &StatusError{Code: http.StatusTooManyRequests}, MsgRateLimited},
		{"internal server error", &StatusError{Code: http.StatusInternalServerError}, MsgServerError},
		{"bad gateway", &StatusError{Code: http.StatusBadGateway}, MsgServerError},
		{"not found", &StatusError{Code: http.StatusNotFound}, MsgGeneric},
		{"wrapped status", fmt.Errorf("searching: %w", &StatusError{Code: 429}), MsgRateLimited},
		{"connection refused", fmt.Errorf("dial tcp: %w", syscall.ECONNREFUSED), MsgUnreachable},
		{"dns failure", &net.DNSError{Err: "no such host", Name: "api.example.com"}, MsgUnreachable},
		{"anything else", errors.New("boom"), MsgGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Readable(tt.err))
		})
	}
}

// --- StatusError ---

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Code: 503}
	assert.Equal(t, "HTTP 503", err.Error())
}

// --- GetJSON ---

func TestGetJSON(t *testing.T) {
	var gotAccept, gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"title":"Toxic","artist":"Britney Spears"}`)
	}))
	defer ts.Close()

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("User-Agent", "orisong-test/0.1")

	var out struct {
		Title  string `json:"title"`
		Artist string `json:"artist"`
	}
	err := GetJSON(context.Background(), ts.Client(), ts.URL, header, &out)
	require.NoError(t, err)
	assert.Equal(t, "Toxic", out.Title)
	assert.Equal(t, "Britney Spears", out.Artist)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "orisong-test/0.1", gotUA)
}

func TestGetJSONNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	err := GetJSON(context.Background(), ts.Client(), ts.URL, nil, nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
}

func TestGetJSONMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{not json`)
	}))
	defer ts.Close()

	var out map[string]any
	err := GetJSON(context.Background(), ts.Client(), ts.URL, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestGetJSONNilTarget(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `irrelevant body`)
	}))
	defer ts.Close()

	// nil target means the body is not decoded at all.
	assert.NoError(t, GetJSON(context.Background(), ts.Client(), ts.URL, nil, nil))
}

// --- PostFormJSON ---

func TestPostFormJSON(t *testing.T) {
	var gotContentType, gotGrant string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotGrant = r.PostFormValue("grant_type")
		fmt.Fprint(w, `{"access_token":"tok_123"}`)
	}))
	defer ts.Close()

	form := url.Values{"grant_type": {"client_credentials"}}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := PostFormJSON(context.Background(), ts.Client(), ts.URL, nil, form, &out)
	require.NoError(t, err)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "client_credentials", gotGrant)
	assert.Equal(t, "tok_123", out.AccessToken)
}

func TestPostFormJSONNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	err := PostFormJSON(context.Background(), ts.Client(), ts.URL, nil, url.Values{}, nil)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
}

func TestGetJSONContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := GetJSON(ctx, ts.Client(), ts.URL, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
