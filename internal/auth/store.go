// Package auth manages OAuth2 credentials for the YouTube Data API.
//
// Credentials are cached in a single JSON file on disk. A cached credential
// is reused while its access token is valid, refreshed silently when it has
// expired and a refresh token is present, and re-acquired through an
// interactive consent flow otherwise.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Scopes requested during consent. The cached credential records the scopes
// it was granted; a scope change requires re-consent.
var Scopes = []string{
	"https://www.googleapis.com/auth/youtube",
	"https://www.googleapis.com/auth/youtube.upload",
	"https://www.googleapis.com/auth/youtube.force-ssl",
	"https://www.googleapis.com/auth/yt-analytics.readonly",
}

// Sentinel errors for credential handling.
var (
	// ErrNoCredentials indicates there is neither a cached credential nor a
	// client-secret configuration file to bootstrap one from.
	ErrNoCredentials = errors.New("auth: no cached credentials and no client secrets file")
	// ErrCredentialCorrupt indicates the cached credential file could not be parsed.
	ErrCredentialCorrupt = errors.New("auth: credential file is corrupt")
)

// RefreshError indicates the authorization server rejected a token refresh.
type RefreshError struct {
	Err error
}

// Error returns a string representation of the refresh error.
func (e *RefreshError) Error() string {
	return fmt.Sprintf("auth: token refresh rejected: %v", e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *RefreshError) Unwrap() error { return e.Err }

// Credential is the token material cached on disk. The layout matches the
// authorized-user JSON written by Google's client libraries, so a credential
// produced by other tooling against the same client can be reused.
type Credential struct {
	ClientID     string    `json:"client_id"`
	ClientSecret string    `json:"client_secret"`
	TokenURI     string    `json:"token_uri"`
	AccessToken  string    `json:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Scopes       []string  `json:"scopes,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
}

// Valid reports whether the access token can be used as-is.
// A small skew margin guards against using a token that expires in flight.
func (c *Credential) Valid(now time.Time) bool {
	if c == nil || c.AccessToken == "" {
		return false
	}
	if c.Expiry.IsZero() {
		return true
	}
	return c.Expiry.Add(-10 * time.Second).After(now)
}

// Store persists the single active credential. Implementations returning
// (nil, nil) from Load signal that no credential has been cached yet.
type Store interface {
	// Load reads the cached credential. A missing cache is not an error:
	// Load returns (nil, nil).
	Load() (*Credential, error)
	// Save persists the credential, replacing any previous one.
	Save(*Credential) error
}

// FileStore is the on-disk Store. The credential file is written with
// owner-only permissions via a temp file + rename so an interrupted write
// cannot corrupt the cache.
type FileStore struct {
	Path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads and parses the credential file.
func (s *FileStore) Load() (*Credential, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("auth: read credential file: %w", err)
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentialCorrupt, err)
	}
	return &cred, nil
}

// Save writes the credential file atomically with mode 0600.
func (s *FileStore) Save(cred *Credential) error {
	w, err := newAtomicWriter(s.Path, 0600)
	if err != nil {
		return fmt.Errorf("auth: write credential file: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cred); err != nil {
		w.abort()
		return fmt.Errorf("auth: encode credential: %w", err)
	}

	if err := w.commit(); err != nil {
		return fmt.Errorf("auth: write credential file: %w", err)
	}
	return nil
}
