package memory

import (
	"context"

	"citybuilder/internal/app/ports"
	"citybuilder/internal/domain/city"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, cityID string, events []city.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[cityID] = append(r.store.events[cityID], events...)
	return nil
}

// ListByCityID returns events newest first.
func (r EventRepo) ListByCityID(_ context.Context, cityID string, limit int) ([]city.DomainEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	events := r.store.events[cityID]
	if len(events) == 0 {
		return nil, ports.ErrNotFound
	}
	n := len(events)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]city.DomainEvent, 0, n)
	for i := len(events) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, events[i])
	}
	return out, nil
}
