package memory

import (
	"sync"

	"citybuilder/internal/domain/city"
)

type cityEntry struct {
	mu   sync.Mutex
	city *city.City
}

type Store struct {
	mu     sync.RWMutex
	cities map[string]*cityEntry
	events map[string][]city.DomainEvent
}

func NewStore() *Store {
	return &Store{
		cities: make(map[string]*cityEntry),
		events: make(map[string][]city.DomainEvent),
	}
}

func (s *Store) entry(cityID string) (*cityEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.cities[cityID]
	return e, ok
}
