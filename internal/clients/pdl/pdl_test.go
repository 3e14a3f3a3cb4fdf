package pdl

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
	"medvirkning/pkg/platform/sentinel"
)

const (
	personident       = models.Personident("12345678910")
	personidentNoName = models.Personident("11111111222")
	personidentFails  = models.Personident("11111111666")
)

func newPDLServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/graphql", r.URL.Path)
		assert.Equal(t, "B426", r.Header.Get("Behandlingsnummer"))

		var req graphQLRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		assert.Contains(t, req.Query, "hentPerson")

		w.Header().Set("Content-Type", "application/json")
		switch req.Variables["ident"] {
		case string(personidentFails):
			w.WriteHeader(http.StatusInternalServerError)
		case string(personidentNoName):
			_, _ = w.Write([]byte(`{"data":{"hentPerson":{"navn":[]}}}`))
		default:
			_, _ = w.Write([]byte(`{"data":{"hentPerson":{"navn":[{"fornavn":"FORNAVN","mellomnavn":"MELLOMNAVN","etternavn":"ETTERNAVNESEN"}]}}}`))
		}
	}))
}

func TestDisplayName(t *testing.T) {
	srv := newPDLServer(t)
	defer srv.Close()
	c := New(srv.URL, nil, time.Second, nil)

	name, err := c.DisplayName(context.Background(), personident)
	require.NoError(t, err)
	assert.Equal(t, "Fornavn Mellomnavn Etternavnesen", name)
}

func TestDisplayNameWithoutName(t *testing.T) {
	srv := newPDLServer(t)
	defer srv.Close()
	c := New(srv.URL, nil, time.Second, nil)

	_, err := c.DisplayName(context.Background(), personidentNoName)
	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.ErrorIs(t, err, ErrNoName)
}

func TestDisplayNameCollaboratorFailure(t *testing.T) {
	srv := newPDLServer(t)
	defer srv.Close()
	c := New(srv.URL, nil, time.Second, nil)

	_, err := c.DisplayName(context.Background(), personidentFails)
	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, clients.CategoryOutage, clients.CategoryOf(err))
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
}

func TestDisplayNameGraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"Ikke tilgang"}],"data":{"hentPerson":null}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil, time.Second, nil).DisplayName(context.Background(), personident)
	require.Error(t, err)
	assert.Equal(t, clients.CategoryBadData, clients.CategoryOf(err))
	assert.Contains(t, err.Error(), "Ikke tilgang")
}

func TestFullNameTitleCasesCompoundNames(t *testing.T) {
	assert.Equal(t, "Anne-Marie Østby", fullName(navn{Fornavn: "ANNE-MARIE", Etternavn: "ØSTBY"}))
	empty := ""
	assert.Equal(t, "Ola Nordmann", fullName(navn{Fornavn: "ola", Mellomnavn: &empty, Etternavn: "nordmann"}))
}
