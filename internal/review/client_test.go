package review

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientReviewSuccess(t *testing.T) {
	var requests atomic.Int32
	var gotBody Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/review", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"score":92,"issues":[],"improved_code":"print('hi')","explanation":"Looks fine."}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	resp, err := c.Review(context.Background(), "print('hi')", "python")
	require.NoError(t, err)

	// Exactly one outbound request, carrying the code verbatim.
	assert.Equal(t, int32(1), requests.Load())
	assert.Equal(t, "print('hi')", gotBody.Code)
	assert.Equal(t, "python", gotBody.Language)

	assert.True(t, resp.Score.Valid())
	assert.Equal(t, 92, resp.Score.Clamped())
	assert.Empty(t, resp.Issues)
	assert.Equal(t, "print('hi')", resp.ImprovedCode)
	assert.Equal(t, "Looks fine.", resp.Explanation)
}

func TestClientReviewErrorFieldWinsOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Rate limited","retry_after":5}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	_, err := c.Review(context.Background(), "x", "go")
	require.Error(t, err)

	f := AsFailure(err)
	assert.Equal(t, KindServer, f.Kind)
	assert.Equal(t, "Rate limited", f.Message)
	assert.Equal(t, 5, f.RetryAfter)
}

func TestClientReviewNonSuccessStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantRetry   int
	}{
		{
			name:        "400 with message",
			status:      http.StatusBadRequest,
			body:        `{"error":"Code is too long."}`,
			wantMessage: "Code is too long.",
		},
		{
			name:        "500 without error field falls back to generic",
			status:      http.StatusInternalServerError,
			body:        `{}`,
			wantMessage: genericServerMessage,
		},
		{
			name:        "429 with retry_after",
			status:      http.StatusTooManyRequests,
			body:        `{"error":"All models are rate-limited.","retry_after":30}`,
			wantMessage: "All models are rate-limited.",
			wantRetry:   30,
		},
		{
			name:        "non-JSON body",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantMessage: genericServerMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, 5*time.Second, nil)
			_, err := c.Review(context.Background(), "x", "go")
			require.Error(t, err)

			f := AsFailure(err)
			assert.Equal(t, KindServer, f.Kind)
			assert.Equal(t, tt.wantMessage, f.Message)
			assert.Equal(t, tt.wantRetry, f.RetryAfter)
		})
	}
}

func TestClientReviewTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, time.Second, nil)
	_, err := c.Review(context.Background(), "x", "go")
	require.Error(t, err)

	f := AsFailure(err)
	assert.Equal(t, KindTransport, f.Kind)
	assert.Equal(t, transportFailureMessage, f.Message)
	assert.Zero(t, f.RetryAfter)
}

func TestAsFailureWrapsUnknownErrors(t *testing.T) {
	f := AsFailure(context.DeadlineExceeded)
	require.NotNil(t, f)
	assert.Equal(t, KindTransport, f.Kind)
}
