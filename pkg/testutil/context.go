package testutil

import (
	"net/http"

	"medvirkning/pkg/requestcontext"
)

// WithNAVIdent marks the request as authenticated by the given caseworker.
// This simulates what the auth middleware would do.
func WithNAVIdent(req *http.Request, ident string) *http.Request {
	return req.WithContext(requestcontext.WithNAVIdent(req.Context(), ident))
}

// WithPersonident sets the header carrying the person the request is about.
func WithPersonident(req *http.Request, personident string) *http.Request {
	req.Header.Set("nav-personident", personident)
	return req
}

// WithBearer sets an Authorization header.
func WithBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
