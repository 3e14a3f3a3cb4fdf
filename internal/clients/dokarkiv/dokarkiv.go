// Package dokarkiv files documents in the national archive.
package dokarkiv

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"medvirkning/internal/clients"
)

const collaborator = "dokarkiv"

const journalpostPath = "/rest/journalpostapi/v1/journalpost?forsoekFerdigstill=true"

// Client posts journalposts to dokarkiv.
type Client struct {
	caller *clients.Caller
	url    string
	logger *slog.Logger
}

// New creates a dokarkiv client. hc is expected to carry the system token.
func New(baseURL string, hc *http.Client, timeout time.Duration, m *clients.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		caller: clients.NewCaller(collaborator, hc, timeout, m),
		url:    strings.TrimRight(baseURL, "/") + journalpostPath,
		logger: logger,
	}
}

// Journalfor creates the journalpost. The archive deduplicates on
// eksternReferanseId and answers 409 Conflict with the existing journalpost,
// which is returned as a success.
func (c *Client) Journalfor(ctx context.Context, req JournalpostRequest) (JournalpostResponse, error) {
	var resp JournalpostResponse
	status, err := c.caller.Do(ctx, clients.Request{
		Method: http.MethodPost,
		URL:    c.url,
		Body:   req,
		Accept: []int{http.StatusConflict},
	}, &resp)
	if err != nil {
		return JournalpostResponse{}, err
	}
	if status == http.StatusConflict {
		c.logger.WarnContext(ctx, "journalpost already created",
			"ekstern_referanse_id", req.EksternReferanseID,
			"journalpost_id", resp.JournalpostID,
		)
	}
	if resp.JournalpostID == 0 {
		e := clients.NewError(collaborator, clients.CategoryBadData, "response without journalpostId", nil)
		e.StatusCode = status
		return JournalpostResponse{}, e
	}
	return resp, nil
}
