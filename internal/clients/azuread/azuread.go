// Package azuread issues system tokens with the OAuth2 client-credentials
// grant for calls to PDL and dokarkiv.
package azuread

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"medvirkning/internal/platform/config"
)

// HTTPClient returns a client that attaches a cached bearer token for scope to
// every request. Without a token endpoint (local runs) it returns a plain
// client with the timeout.
func HTTPClient(ctx context.Context, cfg config.AzureAD, scope string, timeout time.Duration) *http.Client {
	base := &http.Client{Timeout: timeout}
	if cfg.TokenEndpoint == "" {
		return base
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenEndpoint,
		Scopes:       []string{scope},
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	hc := cc.Client(context.WithValue(ctx, oauth2.HTTPClient, base))
	hc.Timeout = timeout
	return hc
}
