package pdfgen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medvirkning/internal/clients"
	"medvirkning/internal/vurdering/models"
	"medvirkning/pkg/requestcontext"
)

type staticNames struct {
	name string
	err  error
}

func (s staticNames) DisplayName(context.Context, models.Personident) (string, error) {
	return s.name, s.err
}

func TestPathFor(t *testing.T) {
	tests := map[models.VurderingType]string{
		models.TypeForhandsvarsel: "/forhandsvarsel-om-stans-av-sykepenger",
		models.TypeOppfylt:        "/vurdering-av-manglende-medvirkning",
		models.TypeIkkeAktuell:    "/vurdering-av-manglende-medvirkning",
		models.TypeUnntak:         "/vurdering-av-manglende-medvirkning",
		models.TypeStans:          "/innstilling-om-stans",
	}
	for typ, want := range tests {
		got, err := PathFor(typ)
		require.NoError(t, err)
		assert.Equal(t, want, got, typ)
	}
	_, err := PathFor("UKJENT")
	assert.ErrorIs(t, err, models.ErrUnknownType)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "09. april 2025", FormatDate(time.Date(2025, 4, 9, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "24. desember 2024", FormatDate(time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "01. mai 2025", FormatDate(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)))
}

func TestRendererRender(t *testing.T) {
	var gotPath string
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte{0x2, 0x3})
	}))
	defer srv.Close()

	stansdato := models.NewDate(2025, time.April, 9)
	v, err := models.New(models.NewVurdering{
		Type:          models.TypeStans,
		Personident:   "12345678910",
		Veilederident: "Z999999",
		Document: []models.DocumentComponent{
			{Type: models.DocumentParagraph, Texts: []string{"Tekst\u0002 med kontrolltegn"}},
		},
		Stansdato: &stansdato,
	}, time.Now())
	require.NoError(t, err)

	r := NewRenderer(New(srv.URL, nil, time.Second, nil), staticNames{name: "Fornavn Mellomnavn Etternavnesen"})
	ctx := requestcontext.WithTime(context.Background(), time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))

	pdf, err := r.Render(ctx, v)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2, 0x3}, pdf)
	assert.Equal(t, "/api/v1/genpdf/ismanglendemedvirkning/innstilling-om-stans", gotPath)
	assert.Equal(t, "Fornavn Mellomnavn Etternavnesen", got.MottakerNavn)
	assert.Equal(t, "12345678910", got.MottakerFodselsnummer)
	assert.Equal(t, "01. mars 2025", got.DatoSendt)
	assert.Equal(t, []string{"Tekst med kontrolltegn"}, got.DocumentComponents[0].Texts)
	assert.Equal(t, "Tekst\u0002 med kontrolltegn", v.Document[0].Texts[0])
}

func TestRendererNameLookupFails(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer srv.Close()

	v := models.Vurdering{Type: models.TypeOppfylt, Personident: "11111111666"}
	lookupErr := errors.New("pdl down")
	_, err := NewRenderer(New(srv.URL, nil, time.Second, nil), staticNames{err: lookupErr}).Render(context.Background(), v)
	assert.ErrorIs(t, err, lookupErr)
	assert.False(t, called)
}

func TestGenerateFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil, time.Second, nil).Generate(context.Background(), VurderingPath, Payload{})
	assert.True(t, clients.IsRetryable(err))
}
