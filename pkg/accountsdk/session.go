package accountsdk

import (
	"context"
	"net/http"
	"sync"
)

// Session is an authenticated handle on an account. The service keeps one
// live token per account, so a later Login or password change elsewhere
// silently invalidates a Session; its next call then fails with *AuthError.
type Session struct {
	client *Client

	mu    sync.RWMutex
	token string
}

func newSession(client *Client, token string) *Session {
	return &Session{client: client, token: token}
}

// NewSessionFromToken wraps an already-issued token, e.g. one persisted from
// a previous run.
func (c *Client) NewSessionFromToken(token string) *Session {
	return newSession(c, token)
}

// Token returns the current opaque token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) setToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// doAuthRequest performs an HTTP request carrying the session token.
func (s *Session) doAuthRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	return s.client.doRequest(ctx, method, path, body, s.Token())
}
