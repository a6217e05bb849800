package ports

import (
	"context"
	"errors"

	"citybuilder/internal/domain/city"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// CityRepository keeps live cities for the lifetime of a session. WithCity
// runs fn with exclusive access to one city; the city itself is not
// synchronised.
type CityRepository interface {
	Create(ctx context.Context, cityID string, c *city.City) error
	WithCity(ctx context.Context, cityID string, fn func(c *city.City) error) error
	Delete(ctx context.Context, cityID string) error
}

type EventRepository interface {
	Append(ctx context.Context, cityID string, events []city.DomainEvent) error
	ListByCityID(ctx context.Context, cityID string, limit int) ([]city.DomainEvent, error)
}
