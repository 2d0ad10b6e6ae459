package services

import (
	"sync"

	"gorm.io/gorm"

	"github.com/nate-han123/Mind-Scroll/models"
)

// ChangeEvent describes a mutation of a session's stored state. Events are
// the server-side equivalent of the browser storage event: other
// connections of the same session may react, delivery is best-effort.
type ChangeEvent struct {
	SessionID string `json:"session_id"`
	Key       string `json:"key,omitempty"`
	Action    string `json:"action"` // "set" | "removed" | "cleared"
}

type ChangeListener func(ChangeEvent)

// SessionStore is the per-session key/value store. Values are raw JSON with
// no schema validation on write; readers treat undecodable values as
// absent. No expiry, no size limits.
type SessionStore interface {
	Get(sessionID, key string) ([]byte, bool)
	Set(sessionID, key string, value []byte) error
	Remove(sessionID, key string) error
	Keys(sessionID string) []string
	Clear(sessionID string) error
	Subscribe(fn ChangeListener)
}

// notifier fans change events out to subscribers.
type notifier struct {
	mu        sync.RWMutex
	listeners []ChangeListener
}

func (n *notifier) Subscribe(fn ChangeListener) {
	n.mu.Lock()
	n.listeners = append(n.listeners, fn)
	n.mu.Unlock()
}

func (n *notifier) publish(ev ChangeEvent) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, fn := range n.listeners {
		fn(ev)
	}
}

// GormSessionStore persists session entries in Postgres.
type GormSessionStore struct {
	db *gorm.DB
	notifier
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{db: db}
}

func (s *GormSessionStore) Get(sessionID, key string) ([]byte, bool) {
	var entry models.SessionEntry
	err := s.db.
		Where("session_id = ? AND key = ?", sessionID, key).
		First(&entry).Error
	if err != nil {
		return nil, false
	}
	return entry.Value, true
}

func (s *GormSessionStore) Set(sessionID, key string, value []byte) error {
	entry := models.SessionEntry{SessionID: sessionID, Key: key}
	err := s.db.
		Where("session_id = ? AND key = ?", sessionID, key).
		Assign(models.SessionEntry{SessionID: sessionID, Key: key, Value: value}).
		FirstOrCreate(&entry).Error
	if err != nil {
		return err
	}
	s.publish(ChangeEvent{SessionID: sessionID, Key: key, Action: "set"})
	return nil
}

func (s *GormSessionStore) Remove(sessionID, key string) error {
	// Hard delete: soft-deleted rows would collide with the unique
	// (session_id, key) index on the next Set.
	err := s.db.Unscoped().
		Where("session_id = ? AND key = ?", sessionID, key).
		Delete(&models.SessionEntry{}).Error
	if err != nil {
		return err
	}
	s.publish(ChangeEvent{SessionID: sessionID, Key: key, Action: "removed"})
	return nil
}

func (s *GormSessionStore) Keys(sessionID string) []string {
	var keys []string
	s.db.Model(&models.SessionEntry{}).
		Where("session_id = ?", sessionID).
		Pluck("key", &keys)
	return keys
}

func (s *GormSessionStore) Clear(sessionID string) error {
	err := s.db.Unscoped().
		Where("session_id = ?", sessionID).
		Delete(&models.SessionEntry{}).Error
	if err != nil {
		return err
	}
	s.publish(ChangeEvent{SessionID: sessionID, Action: "cleared"})
	return nil
}

// MemorySessionStore keeps everything in a mutex-guarded map. Used in tests
// and when no database is configured.
type MemorySessionStore struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
	notifier
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{data: make(map[string]map[string][]byte)}
}

func (s *MemorySessionStore) Get(sessionID, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[sessionID][key]
	return v, ok
}

func (s *MemorySessionStore) Set(sessionID, key string, value []byte) error {
	s.mu.Lock()
	if s.data[sessionID] == nil {
		s.data[sessionID] = make(map[string][]byte)
	}
	s.data[sessionID][key] = value
	s.mu.Unlock()
	s.publish(ChangeEvent{SessionID: sessionID, Key: key, Action: "set"})
	return nil
}

func (s *MemorySessionStore) Remove(sessionID, key string) error {
	s.mu.Lock()
	delete(s.data[sessionID], key)
	s.mu.Unlock()
	s.publish(ChangeEvent{SessionID: sessionID, Key: key, Action: "removed"})
	return nil
}

func (s *MemorySessionStore) Keys(sessionID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data[sessionID]))
	for k := range s.data[sessionID] {
		keys = append(keys, k)
	}
	return keys
}

func (s *MemorySessionStore) Clear(sessionID string) error {
	s.mu.Lock()
	delete(s.data, sessionID)
	s.mu.Unlock()
	s.publish(ChangeEvent{SessionID: sessionID, Action: "cleared"})
	return nil
}
