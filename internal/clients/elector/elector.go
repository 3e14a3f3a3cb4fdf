// Package elector asks the leader-election sidecar whether this pod leads.
package elector

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"medvirkning/internal/clients"
)

const collaborator = "elector"

// Client queries the sidecar at ELECTOR_PATH.
type Client struct {
	caller   *clients.Caller
	url      string
	hostname func() (string, error)
}

// New creates an elector client. path may omit the scheme.
func New(path string, timeout time.Duration) *Client {
	url := path
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return &Client{
		caller:   clients.NewCaller(collaborator, nil, timeout, nil),
		url:      url,
		hostname: os.Hostname,
	}
}

type leader struct {
	Name string `json:"name"`
}

// IsLeader reports whether the sidecar names this host as leader.
func (c *Client) IsLeader(ctx context.Context) (bool, error) {
	var l leader
	if _, err := c.caller.Do(ctx, clients.Request{Method: http.MethodGet, URL: c.url}, &l); err != nil {
		return false, err
	}
	hostname, err := c.hostname()
	if err != nil {
		return false, clients.NewError(collaborator, clients.CategoryInternal, "resolve hostname", err)
	}
	return l.Name == hostname, nil
}

// AlwaysLeader is used when no elector is configured, e.g. locally.
type AlwaysLeader struct{}

func (AlwaysLeader) IsLeader(context.Context) (bool, error) { return true, nil }
