package session

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"citybuilder/internal/app/cityview"
	"citybuilder/internal/app/journal"
	"citybuilder/internal/app/ports"
	"citybuilder/internal/domain/city"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid session request")

const (
	DefaultSize = 16
	MaxSize     = 128
)

type CreateUseCase struct {
	Cities      ports.CityRepository
	Events      ports.EventRepository
	View        city.View
	Tuning      city.Tuning
	DefaultSize int
	DefaultName string
	// Seed, when non-zero, is used for requests that do not carry one.
	Seed  int64
	NewID func() string
	Now   func() time.Time
}

func (u CreateUseCase) Execute(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	size := req.Size
	if size == 0 {
		size = u.DefaultSize
	}
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 || size > MaxSize {
		return CreateResponse{}, ErrInvalidRequest
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = u.DefaultName
	}

	now := journal.Now(u.Now)
	seed := req.Seed
	if seed == 0 {
		seed = u.Seed
	}
	if seed == 0 {
		seed = now.UnixNano()
	}

	c, err := city.NewCity(city.Config{
		Size:   size,
		Name:   name,
		Tuning: u.Tuning,
		View:   u.View,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return CreateResponse{}, err
	}

	cityID := u.newID()
	if err := u.Cities.Create(ctx, cityID, c); err != nil {
		return CreateResponse{}, err
	}
	journal.Record(ctx, u.Events, cityID, city.EventCityCreated, now, map[string]any{
		"name": c.Name(),
		"size": c.Size(),
		"seed": seed,
	})

	return CreateResponse{CityID: cityID, Seed: seed, Summary: cityview.Summarize(c)}, nil
}

func (u CreateUseCase) newID() string {
	if u.NewID != nil {
		return u.NewID()
	}
	return uuid.NewString()
}

type EndUseCase struct {
	Cities ports.CityRepository
}

func (u EndUseCase) Execute(ctx context.Context, req EndRequest) error {
	if strings.TrimSpace(req.CityID) == "" {
		return ErrInvalidRequest
	}
	return u.Cities.Delete(ctx, req.CityID)
}
