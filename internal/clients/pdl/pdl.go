// Package pdl looks up display names in the person register (PDL) over its
// GraphQL API.
package pdl

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"medvirkning/internal/clients"
	"medvirkning/internal/vurdering/models"
)

const collaborator = "pdl"

const hentPersonQuery = `query($ident: ID!) {
  hentPerson(ident: $ident) {
    navn(historikk: false) {
      fornavn
      mellomnavn
      etternavn
    }
  }
}`

// ErrNoName is returned when the register has no name for the person.
var ErrNoName = errors.New("person has no name")

// LookupError reports a failed name lookup. It wraps either ErrNoName or the
// collaborator error.
type LookupError struct {
	Err error
}

func (e *LookupError) Error() string { return "pdl lookup: " + e.Err.Error() }

func (e *LookupError) Unwrap() error { return e.Err }

// Client calls the PDL GraphQL endpoint.
type Client struct {
	caller *clients.Caller
	url    string
}

// New creates a PDL client. hc is expected to carry the system token.
func New(baseURL string, hc *http.Client, timeout time.Duration, m *clients.Metrics) *Client {
	return &Client{
		caller: clients.NewCaller(collaborator, hc, timeout, m),
		url:    strings.TrimRight(baseURL, "/") + "/graphql",
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type navn struct {
	Fornavn    string  `json:"fornavn"`
	Mellomnavn *string `json:"mellomnavn"`
	Etternavn  string  `json:"etternavn"`
}

type hentPersonResponse struct {
	Data struct {
		HentPerson *struct {
			Navn []navn `json:"navn"`
		} `json:"hentPerson"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// DisplayName returns the person's full name in title case, or a LookupError.
func (c *Client) DisplayName(ctx context.Context, p models.Personident) (string, error) {
	var resp hentPersonResponse
	_, err := c.caller.Do(ctx, clients.Request{
		Method: http.MethodPost,
		URL:    c.url,
		Header: http.Header{"Behandlingsnummer": []string{"B426"}},
		Body: graphQLRequest{
			Query:     hentPersonQuery,
			Variables: map[string]any{"ident": string(p)},
		},
	}, &resp)
	if err != nil {
		return "", &LookupError{Err: err}
	}
	if len(resp.Errors) > 0 {
		msgs := make([]string, len(resp.Errors))
		for i, e := range resp.Errors {
			msgs[i] = e.Message
		}
		return "", &LookupError{Err: clients.NewError(collaborator, clients.CategoryBadData, strings.Join(msgs, "; "), nil)}
	}
	if resp.Data.HentPerson == nil || len(resp.Data.HentPerson.Navn) == 0 {
		return "", &LookupError{Err: ErrNoName}
	}
	return fullName(resp.Data.HentPerson.Navn[0]), nil
}

// fullName joins the name parts. A Caser is stateful, so each call gets its own.
func fullName(n navn) string {
	parts := []string{n.Fornavn}
	if n.Mellomnavn != nil && *n.Mellomnavn != "" {
		parts = append(parts, *n.Mellomnavn)
	}
	parts = append(parts, n.Etternavn)
	return cases.Title(language.Norwegian).String(strings.Join(parts, " "))
}
