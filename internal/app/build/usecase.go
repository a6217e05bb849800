package build

import (
	"context"
	"errors"
	"strings"
	"time"

	"citybuilder/internal/app/cityview"
	"citybuilder/internal/app/journal"
	"citybuilder/internal/app/ports"
	"citybuilder/internal/domain/city"
)

var ErrInvalidRequest = errors.New("invalid build request")

type PlaceUseCase struct {
	Cities  ports.CityRepository
	Events  ports.EventRepository
	Metrics ports.CityMetrics
	Now     func() time.Time
}

func (u PlaceUseCase) Execute(ctx context.Context, req PlaceRequest) (Response, error) {
	if strings.TrimSpace(req.CityID) == "" {
		return Response{}, ErrInvalidRequest
	}

	var resp Response
	err := u.Cities.WithCity(ctx, req.CityID, func(c *city.City) error {
		if _, err := c.PlaceBuilding(req.X, req.Y, req.Type); err != nil {
			return err
		}
		resp = Response{
			Tile:    cityview.Tile(c, c.Tile(req.X, req.Y)),
			Summary: cityview.Summarize(c),
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil && isRejection(err) {
			u.Metrics.RecordRejected()
		}
		return Response{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordPlaced(req.Type)
	}
	journal.Record(ctx, u.Events, req.CityID, city.EventBuildingPlaced, journal.Now(u.Now), map[string]any{
		"x":    req.X,
		"y":    req.Y,
		"type": string(req.Type),
	})
	return resp, nil
}

type BulldozeUseCase struct {
	Cities  ports.CityRepository
	Events  ports.EventRepository
	Metrics ports.CityMetrics
	Now     func() time.Time
}

func (u BulldozeUseCase) Execute(ctx context.Context, req BulldozeRequest) (Response, error) {
	if strings.TrimSpace(req.CityID) == "" {
		return Response{}, ErrInvalidRequest
	}

	var (
		resp    Response
		removed city.BuildingType
	)
	err := u.Cities.WithCity(ctx, req.CityID, func(c *city.City) error {
		b, err := c.Bulldoze(req.X, req.Y)
		if err != nil {
			return err
		}
		removed = b.Type()
		resp = Response{
			Tile:    cityview.Tile(c, c.Tile(req.X, req.Y)),
			Summary: cityview.Summarize(c),
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil && isRejection(err) {
			u.Metrics.RecordRejected()
		}
		return Response{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordBulldozed(removed)
	}
	journal.Record(ctx, u.Events, req.CityID, city.EventBuildingBulldozed, journal.Now(u.Now), map[string]any{
		"x":    req.X,
		"y":    req.Y,
		"type": string(removed),
	})
	return resp, nil
}

func isRejection(err error) bool {
	return errors.Is(err, city.ErrOutOfBounds) ||
		errors.Is(err, city.ErrTileOccupied) ||
		errors.Is(err, city.ErrTileEmpty) ||
		errors.Is(err, city.ErrUnknownBuildingType)
}
