package pdfgen

import (
	"context"
	"fmt"

	"medvirkning/internal/vurdering/models"
	"medvirkning/pkg/requestcontext"
)

// Names resolves the display name printed on the letter.
type Names interface {
	DisplayName(ctx context.Context, p models.Personident) (string, error)
}

// Renderer produces the letter of a vurdering.
type Renderer struct {
	client *Client
	names  Names
}

func NewRenderer(client *Client, names Names) *Renderer {
	return &Renderer{client: client, names: names}
}

// Render looks up the person's name and renders the letter matching the
// vurdering type, dated with the request time.
func (r *Renderer) Render(ctx context.Context, v models.Vurdering) ([]byte, error) {
	path, err := PathFor(v.Type)
	if err != nil {
		return nil, err
	}
	navn, err := r.names.DisplayName(ctx, v.Personident)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", v.Type, err)
	}
	return r.client.Generate(ctx, path, NewPayload(navn, v.Personident, v.Document, requestcontext.Now(ctx)))
}
