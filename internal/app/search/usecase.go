package search

import (
	"context"
	"errors"
	"strings"

	"citybuilder/internal/app/cityview"
	"citybuilder/internal/app/ports"
	"citybuilder/internal/domain/city"
)

var ErrInvalidRequest = errors.New("invalid search request")

type UseCase struct {
	Cities ports.CityRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CityID) == "" || req.MaxDistance < 0 {
		return Response{}, ErrInvalidRequest
	}
	filter, err := filterFor(req)
	if err != nil {
		return Response{}, err
	}

	var resp Response
	err = u.Cities.WithCity(ctx, req.CityID, func(c *city.City) error {
		start := c.Tile(req.X, req.Y)
		if start == nil {
			return city.ErrOutOfBounds
		}
		found := c.FindTile(start.Point(), filter, req.MaxDistance)
		if found == nil {
			return nil
		}
		view := cityview.Tile(c, found)
		resp = Response{Found: true, Tile: &view, Distance: start.DistanceTo(found)}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return resp, nil
}

func filterFor(req Request) (city.TileFilter, error) {
	switch req.Match {
	case MatchEmpty, "":
		return city.EmptyTile, nil
	case MatchOccupied:
		return city.OccupiedTile, nil
	case MatchType:
		if !req.Type.Valid() {
			return nil, ErrInvalidRequest
		}
		return city.TileWithType(req.Type), nil
	default:
		return nil, ErrInvalidRequest
	}
}
