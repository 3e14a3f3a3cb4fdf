package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"medvirkning/pkg/requestcontext"
)

// CallIDHeader carries the correlation id to every collaborator.
const CallIDHeader = "Nav-Call-Id"

// Request describes one JSON call. Statuses outside 2xx listed in Accept are
// decoded like a success instead of becoming an Error.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   any
	Accept []int
}

// Caller performs JSON calls against one collaborator.
type Caller struct {
	Collaborator string
	HTTP         *http.Client
	Metrics      *Metrics
}

// NewCaller creates a Caller. A nil client falls back to one with the timeout.
func NewCaller(collaborator string, hc *http.Client, timeout time.Duration, m *Metrics) *Caller {
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	return &Caller{Collaborator: collaborator, HTTP: hc, Metrics: m}
}

// Do sends req and decodes the JSON response body into out when out is
// non-nil. It returns the response status code.
func (c *Caller) Do(ctx context.Context, req Request, out any) (status int, err error) {
	start := time.Now()
	defer func() { c.Metrics.Observe(c.Collaborator, err, time.Since(start)) }()

	status, respBody, err := c.send(ctx, req)
	if err != nil || out == nil {
		return status, err
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		e := NewError(c.Collaborator, CategoryBadData, fmt.Sprintf("decode response of %d bytes", len(respBody)), err)
		e.StatusCode = status
		return status, e
	}
	return status, nil
}

// Bytes sends req and returns the undecoded response body.
func (c *Caller) Bytes(ctx context.Context, req Request) (payload []byte, err error) {
	start := time.Now()
	defer func() { c.Metrics.Observe(c.Collaborator, err, time.Since(start)) }()

	_, payload, err = c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, NewError(c.Collaborator, CategoryBadData, "empty response body", nil)
	}
	return payload, nil
}

func (c *Caller) send(ctx context.Context, req Request) (int, []byte, error) {
	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return 0, nil, NewError(c.Collaborator, CategoryInternal, "marshal request", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return 0, nil, NewError(c.Collaborator, CategoryInternal, "build request", err)
	}
	for k, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	callID := requestcontext.CallID(ctx)
	if callID == "" {
		callID = uuid.NewString()
	}
	httpReq.Header.Set(CallIDHeader, callID)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return 0, nil, FromTransport(c.Collaborator, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, FromTransport(c.Collaborator, err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok && !slices.Contains(req.Accept, resp.StatusCode) {
		return resp.StatusCode, nil, FromStatus(c.Collaborator, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return resp.StatusCode, respBody, nil
}
