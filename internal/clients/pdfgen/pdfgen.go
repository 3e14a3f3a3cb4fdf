// Package pdfgen renders vurdering letters to PDF/A with ispdfgen.
package pdfgen

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"medvirkning/internal/clients"
	"medvirkning/internal/vurdering/models"
)

const collaborator = "ispdfgen"

const (
	apiBasePath        = "/api/v1/genpdf/ismanglendemedvirkning"
	ForhandsvarselPath = "/forhandsvarsel-om-stans-av-sykepenger"
	VurderingPath      = "/vurdering-av-manglende-medvirkning"
	StansPath          = "/innstilling-om-stans"
)

// PathFor returns the template path of the vurdering type.
func PathFor(t models.VurderingType) (string, error) {
	switch t {
	case models.TypeForhandsvarsel:
		return ForhandsvarselPath, nil
	case models.TypeOppfylt, models.TypeIkkeAktuell, models.TypeUnntak:
		return VurderingPath, nil
	case models.TypeStans:
		return StansPath, nil
	}
	return "", fmt.Errorf("%w: %q", models.ErrUnknownType, t)
}

// Payload is the template input shared by every letter.
type Payload struct {
	MottakerNavn          string                     `json:"mottakerNavn"`
	MottakerFodselsnummer string                     `json:"mottakerFodselsnummer"`
	DatoSendt             string                     `json:"datoSendt"`
	DocumentComponents    []models.DocumentComponent `json:"documentComponents"`
}

// NewPayload sanitizes the document and formats the sent date.
func NewPayload(navn string, p models.Personident, document []models.DocumentComponent, sent time.Time) Payload {
	return Payload{
		MottakerNavn:          navn,
		MottakerFodselsnummer: string(p),
		DatoSendt:             FormatDate(sent),
		DocumentComponents:    models.SanitizeDocument(document),
	}
}

var norwegianMonths = [...]string{
	"januar", "februar", "mars", "april", "mai", "juni",
	"juli", "august", "september", "oktober", "november", "desember",
}

// FormatDate renders t as "dd. <måned> yyyy", e.g. "09. april 2025".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d. %s %d", t.Day(), norwegianMonths[t.Month()-1], t.Year())
}

// Client calls ispdfgen.
type Client struct {
	caller  *clients.Caller
	baseURL string
}

func New(baseURL string, hc *http.Client, timeout time.Duration, m *clients.Metrics) *Client {
	return &Client{
		caller:  clients.NewCaller(collaborator, hc, timeout, m),
		baseURL: strings.TrimRight(baseURL, "/") + apiBasePath,
	}
}

// Generate renders payload with the template at path.
func (c *Client) Generate(ctx context.Context, path string, payload Payload) ([]byte, error) {
	pdf, err := c.caller.Bytes(ctx, clients.Request{
		Method: http.MethodPost,
		URL:    c.baseURL + path,
		Body:   payload,
	})
	if err != nil {
		return nil, fmt.Errorf("generate pdf %s: %w", path, err)
	}
	return pdf, nil
}
