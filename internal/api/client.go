// Package api is the HTTP gateway to the sites service. It owns the bearer
// token header, the status-code contract (401 forces logout, 404 is a
// recoverable miss, anything else surfaces the body's message), and the
// response envelope quirks; callers see typed errors and reconciled
// records.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"sitedesk/internal/session"
)

// ErrUnauthorized reports a missing, invalid, or expired token. The caller
// is expected to clear the stored session and send the operator back to
// login.
var ErrUnauthorized = errors.New("session expired or invalid")

// NotFoundError carries the server's message for a 404. Not fatal: the
// operator retries with a different query.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// Error is any other non-2xx response, with the body's message field when
// the server provided one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Client talks to one sites service with one session's credentials. A nil
// session is only valid for Login.
type Client struct {
	baseURL string
	sess    *session.Session
	http    *http.Client
	log     *zap.Logger
}

// New builds a client for the service at baseURL. logger may be nil.
func New(baseURL string, sess *session.Session, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		sess:    sess,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// do sends one request and decodes the JSON body into out (when out is
// non-nil). Every call site handles its own failure; nothing is retried.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case *multipartBody:
		reader = b.buf
		contentType = b.contentType
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.sess != nil && c.sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.sess.Token)
	}

	c.log.Debug("request", zap.String("method", method), zap.String("url", u))
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("transport failure", zap.String("url", u), zap.Error(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn("unauthorized", zap.String("url", u))
		return ErrUnauthorized
	}
	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{Message: errMessage(data, "not found")}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("api error", zap.String("url", u), zap.Int("status", resp.StatusCode))
		return &Error{
			Status:  resp.StatusCode,
			Message: errMessage(data, fmt.Sprintf("request failed with status %d", resp.StatusCode)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// errMessage pulls the message field from an error body, falling back when
// the body is not the expected shape.
func errMessage(data []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return fallback
}
