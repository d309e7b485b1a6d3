package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Authenticator yields a usable OAuth2 token for the current invocation,
// loading, refreshing, or acquiring a credential as needed.
type Authenticator struct {
	// Store persists the cached credential.
	Store Store

	// ClientSecretsPath is the pre-provisioned client-secret configuration
	// file. It is required only when no cached credential is usable.
	ClientSecretsPath string

	// Consent runs the interactive consent flow. Defaults to the loopback
	// redirect flow; tests replace it with a fake.
	Consent func(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error)

	// Now is the clock used for expiry checks. Defaults to time.Now.
	Now func() time.Time

	Logger zerolog.Logger
}

// NewAuthenticator creates an authenticator with the default consent flow.
func NewAuthenticator(store Store, clientSecretsPath string, logger zerolog.Logger) *Authenticator {
	return &Authenticator{
		Store:             store,
		ClientSecretsPath: clientSecretsPath,
		Consent:           runConsentFlow,
		Now:               time.Now,
		Logger:            logger,
	}
}

// Token returns a valid access token, following the credential lifecycle:
//
//  1. A cached credential with an unexpired access token is used as-is,
//     with no network traffic.
//  2. An expired credential with a refresh token is refreshed silently;
//     the updated credential overwrites the cache.
//  3. Otherwise the interactive consent flow runs, which requires the
//     client-secret configuration file.
func (a *Authenticator) Token(ctx context.Context) (*oauth2.Token, error) {
	now := a.now()

	cred, err := a.Store.Load()
	if err != nil {
		return nil, err
	}

	if cred.Valid(now) {
		return a.oauthToken(cred), nil
	}

	if cred != nil && cred.RefreshToken != "" {
		return a.refresh(ctx, cred)
	}

	return a.consent(ctx)
}

// TokenSource returns a static token source for the obtained token.
// Remote calls within one invocation reuse the same token; refresh happens
// at most once, up front, in Token.
func (a *Authenticator) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	tok, err := a.Token(ctx)
	if err != nil {
		return nil, err
	}
	return oauth2.StaticTokenSource(tok), nil
}

// refresh exchanges the refresh token for a new access token and rewrites
// the cache. A rejection from the authorization server is fatal.
func (a *Authenticator) refresh(ctx context.Context, cred *Credential) (*oauth2.Token, error) {
	a.Logger.Info().Msg("refreshing credentials")

	cfg := &oauth2.Config{
		ClientID:     cred.ClientID,
		ClientSecret: cred.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: cred.TokenURI},
		Scopes:       cred.Scopes,
	}

	src := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cred.RefreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, &RefreshError{Err: err}
	}

	cred.AccessToken = tok.AccessToken
	cred.Expiry = tok.Expiry
	if tok.RefreshToken != "" {
		cred.RefreshToken = tok.RefreshToken
	}

	if err := a.Store.Save(cred); err != nil {
		return nil, err
	}
	return tok, nil
}

// consent runs the interactive flow and caches the resulting credential.
func (a *Authenticator) consent(ctx context.Context) (*oauth2.Token, error) {
	data, err := os.ReadFile(a.ClientSecretsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w\n\nExpected client secrets at:\n  %s\n\nDownload an OAuth client configuration from the API console and place it there, then run: ytctl auth",
				ErrNoCredentials, a.ClientSecretsPath)
		}
		return nil, fmt.Errorf("auth: read client secrets: %w", err)
	}

	cfg, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("auth: parse client secrets: %w", err)
	}

	tok, err := a.Consent(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cred := &Credential{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURI:     cfg.Endpoint.TokenURL,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Scopes:       Scopes,
		Expiry:       tok.Expiry,
	}
	if err := a.Store.Save(cred); err != nil {
		return nil, err
	}
	return tok, nil
}

// oauthToken converts a cached credential into an oauth2 token.
func (a *Authenticator) oauthToken(cred *Credential) *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		Expiry:       cred.Expiry,
		TokenType:    "Bearer",
	}
}

func (a *Authenticator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
