package review

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// FailureKind identifies why a review attempt failed.
type FailureKind string

const (
	// KindEmptyInput and KindTooLong are client-side validation failures.
	KindEmptyInput FailureKind = "empty_input"
	KindTooLong    FailureKind = "too_long"
	// KindTransport means the request never produced a usable response.
	KindTransport FailureKind = "transport"
	// KindServer means the service answered but reported an error, either via
	// a non-2xx status or an error field in the payload.
	KindServer FailureKind = "server"
)

// Failure is the terminal error for one review attempt. Nothing is retried
// automatically; RetryAfter only gates when the user may trigger again.
type Failure struct {
	Kind       FailureKind
	Message    string
	RetryAfter int // seconds, zero when the server gave no delay
}

func (f *Failure) Error() string { return f.Message }

// AsFailure extracts the Failure from an error returned by this package.
// Unexpected errors are wrapped as transport failures so callers always have
// a displayable kind and message.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	if f, ok := err.(*Failure); ok {
		return f
	}
	return &Failure{Kind: KindTransport, Message: err.Error()}
}

const (
	transportFailureMessage = "Could not reach the review service. Check your connection and try again."
	genericServerMessage    = "The review service returned an error. Please try again."
)

// ValidationFailure converts a ValidateCode error into a Failure, or nil.
func ValidationFailure(err error) *Failure {
	switch e := err.(type) {
	case nil:
		return nil
	case *TooLongError:
		return &Failure{Kind: KindTooLong, Message: e.Error()}
	default:
		return &Failure{Kind: KindEmptyInput, Message: "Please paste some code to review."}
	}
}

// Client talks to the review service. It owns no retry or caching behavior;
// one call maps to exactly one POST /review.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a review client for the service at baseURL. A zero
// timeout leaves the transport's own limits in charge.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Review submits code for review and returns the parsed payload. The caller
// is expected to have trimmed and validated the code; Review sends it as-is.
// All returned errors are *Failure values.
func (c *Client) Review(ctx context.Context, code, language string) (*Response, error) {
	body, err := json.Marshal(Request{Code: code, Language: language})
	if err != nil {
		return nil, &Failure{Kind: KindTransport, Message: fmt.Sprintf("failed to encode request: %v", err)}
	}

	url := c.baseURL + "/review"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &Failure{Kind: KindTransport, Message: transportFailureMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("review request failed", "url", url, "error", err)
		return nil, &Failure{Kind: KindTransport, Message: transportFailureMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("failed to read review response", "error", err)
		return nil, &Failure{Kind: KindTransport, Message: transportFailureMessage}
	}

	var payload Response
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.logger.Warn("review response is not valid JSON", "status", resp.StatusCode, "error", err)
		return nil, &Failure{Kind: KindServer, Message: genericServerMessage}
	}

	// An error field wins even on a 200, and a failure status wins even
	// without one.
	if payload.Error != "" || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := payload.Error
		if msg == "" {
			msg = genericServerMessage
		}
		retryAfter := 0
		if payload.RetryAfter > 0 {
			retryAfter = payload.RetryAfter
		}
		c.logger.Info("review rejected by server",
			"status", resp.StatusCode,
			"retry_after", retryAfter,
			"elapsed", time.Since(start).Round(time.Millisecond))
		return nil, &Failure{Kind: KindServer, Message: msg, RetryAfter: retryAfter}
	}

	c.logger.Debug("review completed",
		"language", language,
		"issues", len(payload.Issues),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return &payload, nil
}
