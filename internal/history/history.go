// Package history keeps a per-user list of recent searches behind a small
// key-value store interface, so the backing storage stays swappable: the
// web server plugs in a SQLite-backed store, tests use the in-memory one.
package history

import (
	"encoding/json"
	"sync"
)

// Store is the persistence contract for history entries.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// History records the most recent searches of each user, newest first,
// capped at maxEntries. Re-running a search moves it to the front instead
// of duplicating it.
type History struct {
	store      Store
	maxEntries int
}

func New(store Store, maxEntries int) *History {
	return &History{
		store:      store,
		maxEntries: maxEntries,
	}
}

// Add records query as the most recent search of user. Empty queries are
// ignored.
func (h *History) Add(user, query string) error {
	if query == "" {
		return nil
	}

	entries := h.Entries(user)
	updated := make([]string, 0, len(entries)+1)
	updated = append(updated, query)
	for _, entry := range entries {
		if entry == query {
			continue
		}
		updated = append(updated, entry)
	}
	if len(updated) > h.maxEntries {
		updated = updated[:h.maxEntries]
	}

	encoded, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	return h.store.Set(key(user), string(encoded))
}

// Entries returns the recent searches of user, newest first. A missing or
// unreadable record counts as no history.
func (h *History) Entries(user string) []string {
	raw, ok := h.store.Get(key(user))
	if !ok {
		return nil
	}
	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}
	return entries
}

// Clear forgets every recent search of user.
func (h *History) Clear(user string) error {
	return h.store.Remove(key(user))
}

func key(user string) string {
	return "search-history/" + user
}

// MemoryStore is a Store over a plain map, safe for concurrent use.
type MemoryStore struct {
	mutex   sync.RWMutex
	entries map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]string{}}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	value, ok := m.entries[key]
	return value, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.entries, key)
	return nil
}
