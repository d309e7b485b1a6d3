package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// runConsentFlow performs the interactive OAuth2 consent flow using a
// loopback redirect. It starts a listener on an ephemeral localhost port,
// prints the authorization URL for the user to open, waits for the
// authorization server to redirect back with a code, and exchanges the code
// for a token.
func runConsentFlow(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("auth: start redirect listener: %w", err)
	}
	defer ln.Close()

	cfg.RedirectURL = fmt.Sprintf("http://%s/", ln.Addr().String())
	state := uuid.NewString()

	type result struct {
		code string
		err  error
	}
	resultCh := make(chan result, 1)

	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("state") != state {
				http.Error(w, "state mismatch", http.StatusBadRequest)
				resultCh <- result{err: errors.New("auth: consent redirect state mismatch")}
				return
			}
			if errMsg := q.Get("error"); errMsg != "" {
				http.Error(w, "authorization denied", http.StatusForbidden)
				resultCh <- result{err: fmt.Errorf("auth: authorization denied: %s", errMsg)}
				return
			}
			fmt.Fprintln(w, "Authorisation successful. You can close this window.")
			resultCh <- result{code: q.Get("code")}
		}),
	}
	go srv.Serve(ln)
	defer srv.Close()

	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Fprintf(os.Stderr, "Opening browser for YouTube authorisation...\n")
	fmt.Fprintf(os.Stderr, "If no browser opens, visit:\n\n  %s\n\n", authURL)
	openBrowser(authURL)

	var res result
	select {
	case res = <-resultCh:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.err != nil {
		return nil, res.err
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tok, err := cfg.Exchange(exchangeCtx, res.code)
	if err != nil {
		return nil, fmt.Errorf("auth: code exchange: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Authorisation successful.")
	return tok, nil
}
