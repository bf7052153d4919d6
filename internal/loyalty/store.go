package loyalty

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps loyalty accounts in memory, keyed by card id. Balances are not
// persisted across restarts.
type Store struct {
	mu    sync.Mutex
	cards map[string]*Account
}

// NewStore returns an empty card store.
func NewStore() *Store {
	return &Store{cards: make(map[string]*Account)}
}

// Create registers a new empty account and returns its card id.
func (s *Store) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.cards[id] = NewAccount()
	s.mu.Unlock()
	return id
}

// Get returns the account for a card id.
func (s *Store) Get(id string) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.cards[id]
	return account, ok
}
