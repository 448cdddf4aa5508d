package session

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store owns the process-wide session. Flows read and replace it through
// here rather than touching ambient state.
type Store struct {
	mutex   sync.Mutex
	current *Session

	path   string
	logger logrus.FieldLogger
}

type persistedSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// NewStore creates a store, restoring a previously cached session from path
// when one is configured. Persistence is best effort: a broken cache file is
// logged and ignored.
func NewStore(path string, logger logrus.FieldLogger) *Store {
	store := &Store{path: path, logger: logger}
	if path == "" {
		return store
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return store
	}
	var cached persistedSession
	if err := json.Unmarshal(data, &cached); err != nil {
		store.warn(err, "discarding unreadable session cache")
		return store
	}
	restored, err := FromTokens(cached.AccessToken, cached.RefreshToken)
	if err != nil {
		store.warn(err, "discarding invalid cached session")
		return store
	}
	store.current = restored
	return store
}

func (s *Store) Get() (*Session, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.current == nil {
		return nil, false
	}
	return s.current.clone(), true
}

func (s *Store) Set(session *Session) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if session == nil {
		s.current = nil
		s.removeCache()
		return
	}
	copied := session.clone()
	s.current = copied
	s.writeCache(copied)
}

func (s *Store) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.current = nil
	s.removeCache()
}

func (s *Store) writeCache(session *Session) {
	if s.path == "" {
		return
	}
	data, err := json.Marshal(persistedSession{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	})
	if err != nil {
		s.warn(err, "encode session cache")
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.warn(err, "write session cache")
	}
}

func (s *Store) removeCache() {
	if s.path == "" {
		return
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.warn(err, "remove session cache")
	}
}

func (s *Store) warn(err error, message string) {
	if s.logger != nil {
		s.logger.WithError(err).Warn(message)
	}
}
