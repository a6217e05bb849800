package memory

import (
	"context"

	"citybuilder/internal/app/ports"
	"citybuilder/internal/domain/city"
)

type CityRepo struct {
	store *Store
}

func NewCityRepo(store *Store) CityRepo {
	return CityRepo{store: store}
}

func (r CityRepo) Create(_ context.Context, cityID string, c *city.City) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.cities[cityID]; ok {
		return ports.ErrConflict
	}
	r.store.cities[cityID] = &cityEntry{city: c}
	return nil
}

func (r CityRepo) WithCity(_ context.Context, cityID string, fn func(c *city.City) error) error {
	e, ok := r.store.entry(cityID)
	if !ok {
		return ports.ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.city)
}

func (r CityRepo) Delete(_ context.Context, cityID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.cities[cityID]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.cities, cityID)
	return nil
}
