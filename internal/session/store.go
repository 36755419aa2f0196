// Package session holds the per-session loaded table. The original design
// kept the current table in ambient process-wide state; here every browser
// session owns its table explicitly, keyed by a UUID cookie. The desktop
// front-end does not need this package since its window struct is the session.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/CosmicViraj/go-data-analyzer/domain/table"
)

// Entry is what a session holds: the loaded table and the name of the file
// it came from.
type Entry struct {
	Table    *table.Table
	Filename string
}

// Store maps session IDs to their currently loaded table. Safe for use from
// concurrent requests belonging to different sessions.
type Store struct {
	mu     sync.RWMutex
	tables map[string]Entry
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{tables: make(map[string]Entry)}
}

// NewSession mints a fresh session ID with no table attached.
func NewSession() string {
	return uuid.NewString()
}

// Valid reports whether id is a well-formed session ID.
func Valid(id string) bool {
	return uuid.Validate(id) == nil
}

// Get returns the session's current entry, if any.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.tables[id]
	return e, ok
}

// Put replaces the session's table wholesale.
func (s *Store) Put(id string, t *table.Table, filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[id] = Entry{Table: t, Filename: filename}
}

// Clear drops the session's table.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tables, id)
}

// Len returns the number of sessions holding a table.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables)
}
