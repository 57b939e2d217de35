// Package api is the gateway to the course-portal backend. It normalizes
// every call into a uniform Result envelope, serializes payloads according to
// the verb (query string for reads, JSON body for writes), and attaches the
// current session's email as a bearer credential on every outgoing request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alpstech/portal/internal/client/models"
	"github.com/alpstech/portal/internal/logging"
)

// SessionReader supplies the current identity, if any, for credential
// injection. A nil user (with nil error) means no session exists.
type SessionReader interface {
	Load(ctx context.Context) (*models.User, error)
}

// Client performs request/response calls against a configured base endpoint.
// It holds no per-call state beyond reading the session record, so a single
// instance is safe to share across concurrent callers.
type Client struct {
	baseURL string
	http    *http.Client
	session SessionReader
	log     logging.Logger
}

// New returns a Client for the given base endpoint. session may be nil, in
// which case no bearer credential is ever attached.
func New(baseURL string, timeout time.Duration, session SessionReader, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: session,
		log:     log,
	}
}

// errorBody is the shape backend error responses carry alongside a non-2xx
// status.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Call performs a single attempt against path (relative to the base
// endpoint) and resolves to a Result. It never returns a Go error: all
// failure modes are communicated through the envelope.
//
// Payload handling depends on the verb: POST/PUT/PATCH serialize payload as
// a JSON body; any other verb serializes it into the query string.
func (c *Client) Call(ctx context.Context, method, path string, payload any) Result {
	reqURL := c.baseURL + "/" + path

	var body io.Reader
	hasBody := payload != nil &&
		(method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch)

	if hasBody {
		raw, err := json.Marshal(payload)
		if err != nil {
			return c.fail(ctx, method, path, fmt.Sprintf("failed to encode request: %v", err))
		}
		body = bytes.NewReader(raw)
	} else if payload != nil {
		qs, err := queryString(payload)
		if err != nil {
			return c.fail(ctx, method, path, fmt.Sprintf("failed to encode query: %v", err))
		}
		reqURL += "?" + qs
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return c.fail(ctx, method, path, err.Error())
	}
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	c.injectCredential(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(ctx, method, path, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(ctx, method, path, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		msg := fmt.Sprintf("request failed with status %d", resp.StatusCode)
		if err := json.Unmarshal(raw, &eb); err == nil {
			if eb.Message != "" {
				msg = eb.Message
			} else if eb.Error != "" {
				msg = eb.Error
			}
		}
		res := c.fail(ctx, method, path, msg)
		res.Status = resp.StatusCode
		return res
	}

	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return c.fail(ctx, method, path, fmt.Sprintf("malformed response: %v", err))
	}
	res.Status = resp.StatusCode

	c.log.Debug(ctx, "api call succeeded", "method", method, "path", path)
	return res
}

// injectCredential attaches the session email as a bearer header when a
// session record exists. Store errors only mean the request goes out
// anonymous.
func (c *Client) injectCredential(ctx context.Context, req *http.Request) {
	if c.session == nil {
		return
	}
	user, err := c.session.Load(ctx)
	if err != nil || user == nil || user.Email == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+user.Email)
}

func (c *Client) fail(ctx context.Context, method, path, msg string) Result {
	c.log.Error(ctx, "api call failed", "method", method, "path", path, "error", msg)
	return Failure(msg)
}

// queryString flattens payload into URL query parameters. The payload is
// round-tripped through JSON so both maps and tagged structs serialize the
// same way they would in a request body.
func queryString(payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", err
	}
	values := url.Values{}
	for k, v := range fields {
		values.Set(k, fmt.Sprint(v))
	}
	return values.Encode(), nil
}
