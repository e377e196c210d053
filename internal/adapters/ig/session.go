package ig

import (
	"net/http"
	"strings"
	"sync"
)

// Session holds the cookie set captured at login. Client and every module
// built from it share one *Session.
type Session struct {
	mu      sync.RWMutex
	cookies []string
}

// NewSession returns a session seeded with previously captured cookies.
// Pass nil for an empty session that a later Login fills in.
func NewSession(cookies []string) *Session {
	s := &Session{}
	s.set(cookies)
	return s
}

// Cookies returns a copy of the stored name=value pairs.
func (s *Session) Cookies() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.cookies...)
}

// Active reports whether a login (or restore) has populated the session.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cookies) > 0
}

// Header is the Cookie header value: all cookies joined with "; ".
func (s *Session) Header() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.Join(s.cookies, "; ")
}

// set replaces the cookie set; it never merges with the previous one.
func (s *Session) set(cookies []string) {
	s.mu.Lock()
	s.cookies = append([]string(nil), cookies...)
	s.mu.Unlock()
}

// cookiesFromResponse keeps the name=value part of every Set-Cookie header
// as sent. Values are not validated: upstream cookies such as rur carry
// quotes and backslash escapes that http.Response.Cookies would drop.
func cookiesFromResponse(resp *http.Response) []string {
	raw := resp.Header.Values("Set-Cookie")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		pair, _, _ := strings.Cut(line, ";")
		if pair = strings.TrimSpace(pair); pair != "" {
			out = append(out, pair)
		}
	}
	return out
}
