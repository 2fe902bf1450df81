package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_AttachesBearerWhenTokenPresent(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0, WithTokenSource(func(context.Context) string { return "abc123" }))
	require.NoError(t, c.callData(context.Background(), http.MethodGet, "/dashboard", nil, nil))

	assert.Equal(t, "Bearer abc123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDo_NoTokenMeansNoHeader(t *testing.T) {
	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0, WithTokenSource(func(context.Context) string { return "" }))
	require.NoError(t, c.callData(context.Background(), http.MethodGet, "/dashboard", nil, nil))
	assert.False(t, sawHeader, "unauthenticated request must carry no Authorization header")
}

func TestDo_401FiresAuthFailureHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid token"}`))
	}))
	defer srv.Close()

	var hookCalls int
	c := New(srv.URL, 0, WithAuthFailureHook(func(context.Context) { hookCalls++ }))

	err := c.callData(context.Background(), http.MethodGet, "/money/transactions", nil, nil)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, hookCalls)

	var ce *CallError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, http.StatusUnauthorized, ce.Status)
	assert.Equal(t, "Invalid token", ce.Message)
}

func TestDo_StatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"validation failure", http.StatusBadRequest, `{"success":false,"message":"bad email"}`, ErrRejected},
		{"conflict", http.StatusConflict, `{"success":false,"message":"duplicate"}`, ErrRejected},
		{"server failure", http.StatusInternalServerError, `{"success":false}`, ErrServer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := New(srv.URL, 0).callData(context.Background(), http.MethodGet, "/x", nil, nil)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, 20*time.Millisecond)
	err := c.callData(context.Background(), http.MethodGet, "/slow", nil, nil)
	require.ErrorIs(t, err, ErrTimeout)
}

func TestDo_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening any more

	err := New(srv.URL, 0).callData(context.Background(), http.MethodGet, "/x", nil, nil)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCallData_SuccessFalseIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"nope"}`))
	}))
	defer srv.Close()

	err := New(srv.URL, 0).callData(context.Background(), http.MethodPost, "/x", nil, nil)
	require.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "nope", UserMessage(err))
}

func TestUserMessage_GenericFallbacks(t *testing.T) {
	assert.Contains(t, UserMessage(&CallError{Err: ErrTimeout}), "too long")
	assert.Contains(t, UserMessage(&CallError{Err: ErrUnavailable}), "reach the server")
	assert.Contains(t, UserMessage(&CallError{Err: ErrUnauthorized}), "log in")
	// Server message wins over the generic text.
	assert.Equal(t, "Invalid credentials", UserMessage(&CallError{Status: 401, Message: "Invalid credentials", Err: ErrUnauthorized}))
}
