// Package gcal pushes resolved due dates to Google Calendar. It is an
// optional collaborator; nothing in the scheduling core depends on it.
package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/maxkimambo/gantt/internal/logger"
)

const (
	// clientSecretsFile is the OAuth client downloaded from the Google
	// Cloud console, placed in the config directory.
	clientSecretsFile = "credentials.json"
	// tokenFile caches the user's access and refresh tokens.
	tokenFile = "token.json"
	// authPort is the localhost port that captures the OAuth redirect.
	authPort = "6789"

	xdgAppName = "gantt"
)

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName), nil
}

func oauthConfig(scopes []string) (*oauth2.Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	secretsPath := filepath.Join(dir, clientSecretsFile)
	b, err := os.ReadFile(secretsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file %s: %w", secretsPath, err)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file: %w", err)
	}

	// The redirect must match the port our capture server listens on.
	config.RedirectURL = fmt.Sprintf("http://localhost:%s/oauth2callback", authPort)
	return config, nil
}

// httpClient returns an authenticated client, reusing the cached token
// when present and running the browser flow otherwise.
func httpClient(ctx context.Context, scopes []string) (*http.Client, error) {
	config, err := oauthConfig(scopes)
	if err != nil {
		return nil, err
	}

	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	tokenPath := filepath.Join(dir, tokenFile)

	tok, err := tokenFromFile(tokenPath)
	if err != nil {
		logger.Infof("No cached token at %s, starting authorization flow", tokenPath)
		tok, err = tokenFromWeb(ctx, config)
		if err != nil {
			return nil, fmt.Errorf("failed to authorize: %w", err)
		}
		if err := saveToken(tokenPath, tok); err != nil {
			logger.Warnf("Could not cache token: %v", err)
		}
	}

	return config.Client(ctx, tok), nil
}

// tokenFromWeb runs the OAuth authorization-code flow, capturing the
// redirect on a local listener.
func tokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	codeCh := make(chan string)
	errCh := make(chan error)

	listener, err := net.Listen("tcp", ":"+authPort)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %s: %w", authPort, err)
	}
	defer listener.Close()

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "authorization code not found", http.StatusBadRequest)
				errCh <- fmt.Errorf("authorization code not found in redirect")
				return
			}
			fmt.Fprint(w, "Authentication successful. You can close this window.")
			codeCh <- code
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	defer server.Shutdown(ctx)

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Printf("Open the following URL in your browser to authorize:\n%s\n", authURL)

	select {
	case code := <-codeCh:
		exchangeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		return config.Exchange(exchangeCtx, code)
	case err := <-errCh:
		return nil, err
	case <-time.After(5 * time.Minute):
		return nil, fmt.Errorf("authorization timed out")
	}
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token from %s: %w", path, err)
	}
	return tok, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}
