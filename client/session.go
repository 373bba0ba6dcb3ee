package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/resolvetax/transcript-service/dto"
)

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Session is a replayed portal login: the cookie set captured from an
// authenticated browser plus the user agent it presented. The portal ties
// sessions to the user agent, so both must travel together.
type Session struct {
	Cookies   []dto.SessionCookie `json:"cookies"`
	UserAgent string              `json:"user_agent"`
	StoredAt  time.Time           `json:"stored_at"`
}

// CookieHeader renders the session as a Cookie header value.
func (s *Session) CookieHeader() string {
	pairs := make([]string, 0, len(s.Cookies))
	for _, c := range s.Cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	return strings.Join(pairs, "; ")
}

// SessionStore keeps the current session in memory and mirrors it to disk so
// a restart does not force staff to re-capture their login.
type SessionStore struct {
	mu      sync.RWMutex
	path    string
	current *Session
}

// NewSessionStore creates a store backed by the given file. An existing file
// is loaded; a missing or unreadable one just means no session yet.
func NewSessionStore(path string) *SessionStore {
	st := &SessionStore{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return st
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err == nil && len(sess.Cookies) > 0 {
		st.current = &sess
	}
	return st
}

// Put replaces the stored session and persists it.
func (st *SessionStore) Put(cookies []dto.SessionCookie, userAgent string) error {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	sess := &Session{
		Cookies:   cookies,
		UserAgent: userAgent,
		StoredAt:  time.Now().UTC(),
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.current = sess

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0750); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0600); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Get returns the current session, or ErrNoCookies when none is stored.
func (st *SessionStore) Get() (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.current == nil {
		return nil, dto.ErrNoCookies
	}
	return st.current, nil
}
