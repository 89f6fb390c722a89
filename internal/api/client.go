// Package api wraps outbound HTTP calls to the task backend.
//
// Every call issues exactly one request against a fixed base URL, attaches
// Content-Type: application/json and, when a token is present, an
// Authorization header carrying the raw token string. The backend expects
// the token directly, without a "Bearer " prefix; that framing must not
// change or the paired backend rejects the request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestTimeout bounds each API call.
const RequestTimeout = 5 * time.Second

// TokenSource supplies the current credential token. An empty string means
// anonymous; no Authorization header is sent.
type TokenSource interface {
	Token() string
}

// Client issues requests against the task backend. It does not cache,
// retry, or deduplicate.
type Client struct {
	base   string
	tokens TokenSource
	http   *http.Client
	log    *logrus.Entry
}

// New creates a client for the given base URL. A trailing slash on the
// base URL is tolerated.
func New(baseURL string, tokens TokenSource, log *logrus.Entry) *Client {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		tokens: tokens,
		http:   &http.Client{},
		log:    log,
	}
}

// errorBody is the shape of the backend's error responses. Some endpoints
// use "message", some use "error".
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Err
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, "failed to fetch")
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, "failed to create")
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out, "failed to update")
}

// Delete issues a DELETE and decodes the acknowledgement into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, "failed to delete")
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindServer, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return &Error{Kind: KindServer, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		// Raw token, no scheme prefix. The backend reads the header
		// value as the credential itself.
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).Debugf("request failed: %v", err)
		return networkError(err)
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	}).Debug("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		// A body that is not JSON still yields the fallback message.
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		msg := eb.text()
		if msg == "" {
			msg = fallback
		}
		return &Error{
			Kind:    kindFromStatus(resp.StatusCode),
			Message: msg,
			Status:  resp.StatusCode,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindServer, Message: "invalid response body", Status: resp.StatusCode}
	}
	return nil
}
