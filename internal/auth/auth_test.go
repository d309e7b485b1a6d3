package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	cred  *Credential
	saves int
}

func (m *memStore) Load() (*Credential, error) { return m.cred, nil }

func (m *memStore) Save(cred *Credential) error {
	m.cred = cred
	m.saves++
	return nil
}

// newTokenServer returns a fake authorization server that answers token
// refresh requests, and a counter of requests received.
func newTokenServer(t *testing.T, accessToken string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":%q,"token_type":"Bearer","expires_in":3600}`, accessToken)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func testClock(t *testing.T) func() time.Time {
	t.Helper()
	now := time.Now()
	return func() time.Time { return now }
}

func TestAuthenticator_ValidCachedTokenNoNetwork(t *testing.T) {
	srv, calls := newTokenServer(t, "unused")
	store := &memStore{cred: &Credential{
		AccessToken:  "cached-access",
		RefreshToken: "refresh",
		TokenURI:     srv.URL,
		Expiry:       time.Now().Add(time.Hour),
	}}

	a := &Authenticator{Store: store, Now: testClock(t), Logger: zerolog.Nop()}
	tok, err := a.Token(context.Background())
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok.AccessToken != "cached-access" {
		t.Errorf("Token() access token = %q, want %q", tok.AccessToken, "cached-access")
	}
	if got := calls.Load(); got != 0 {
		t.Errorf("authorization server received %d calls, want 0", got)
	}
	if store.saves != 0 {
		t.Errorf("store saved %d times, want 0", store.saves)
	}
}

func TestAuthenticator_ExpiredTokenRefreshesOnce(t *testing.T) {
	srv, calls := newTokenServer(t, "fresh-access")
	store := &memStore{cred: &Credential{
		ClientID:     "client",
		ClientSecret: "secret",
		TokenURI:     srv.URL,
		AccessToken:  "stale-access",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(-time.Hour),
	}}

	a := &Authenticator{Store: store, Now: testClock(t), Logger: zerolog.Nop()}
	tok, err := a.Token(context.Background())
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok.AccessToken != "fresh-access" {
		t.Errorf("Token() access token = %q, want %q", tok.AccessToken, "fresh-access")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("authorization server received %d calls, want exactly 1", got)
	}
	if store.saves != 1 {
		t.Errorf("store saved %d times, want 1 (cache rewrite)", store.saves)
	}
	if store.cred.AccessToken != "fresh-access" {
		t.Errorf("cached access token = %q, want %q", store.cred.AccessToken, "fresh-access")
	}
	if store.cred.RefreshToken != "refresh" {
		t.Errorf("refresh token = %q, want preserved %q", store.cred.RefreshToken, "refresh")
	}
}

func TestAuthenticator_RefreshRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"invalid_grant"}`)
	}))
	defer srv.Close()

	store := &memStore{cred: &Credential{
		ClientID:     "client",
		ClientSecret: "secret",
		TokenURI:     srv.URL,
		AccessToken:  "stale",
		RefreshToken: "revoked",
		Expiry:       time.Now().Add(-time.Hour),
	}}

	a := &Authenticator{Store: store, Now: testClock(t), Logger: zerolog.Nop()}
	_, err := a.Token(context.Background())

	var refreshErr *RefreshError
	if !errors.As(err, &refreshErr) {
		t.Fatalf("Token() error = %v, want *RefreshError", err)
	}
	if store.saves != 0 {
		t.Errorf("store saved %d times after rejected refresh, want 0", store.saves)
	}
}

func TestAuthenticator_NoCacheNoSecrets(t *testing.T) {
	a := &Authenticator{
		Store:             &memStore{},
		ClientSecretsPath: filepath.Join(t.TempDir(), "client_secrets.json"),
		Now:               testClock(t),
		Logger:            zerolog.Nop(),
	}

	_, err := a.Token(context.Background())
	if !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("Token() error = %v, want ErrNoCredentials", err)
	}
}

func TestAuthenticator_ConsentPersistsCredential(t *testing.T) {
	dir := t.TempDir()
	secretsPath := filepath.Join(dir, "client_secrets.json")
	secrets := `{"installed":{"client_id":"cid","client_secret":"csecret",` +
		`"auth_uri":"https://accounts.example/auth","token_uri":"https://oauth2.example/token",` +
		`"redirect_uris":["http://localhost"]}}`
	if err := os.WriteFile(secretsPath, []byte(secrets), 0600); err != nil {
		t.Fatal(err)
	}

	store := &memStore{}
	expiry := time.Now().Add(time.Hour)
	a := &Authenticator{
		Store:             store,
		ClientSecretsPath: secretsPath,
		Now:               testClock(t),
		Logger:            zerolog.Nop(),
		Consent: func(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
			if cfg.ClientID != "cid" {
				t.Errorf("consent received client id %q, want %q", cfg.ClientID, "cid")
			}
			return &oauth2.Token{
				AccessToken:  "consented-access",
				RefreshToken: "consented-refresh",
				Expiry:       expiry,
			}, nil
		},
	}

	tok, err := a.Token(context.Background())
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok.AccessToken != "consented-access" {
		t.Errorf("Token() access token = %q, want %q", tok.AccessToken, "consented-access")
	}
	if store.cred == nil || store.cred.RefreshToken != "consented-refresh" {
		t.Errorf("cached credential = %+v, want refresh token persisted", store.cred)
	}
	if store.cred.ClientID != "cid" || store.cred.ClientSecret != "csecret" {
		t.Errorf("cached client material = %q/%q, want cid/csecret",
			store.cred.ClientID, store.cred.ClientSecret)
	}
}
