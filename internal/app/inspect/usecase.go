package inspect

import (
	"context"
	"errors"
	"strings"

	"citybuilder/internal/app/cityview"
	"citybuilder/internal/app/ports"
	"citybuilder/internal/domain/city"
)

var ErrInvalidRequest = errors.New("invalid inspect request")

// UseCase reads one tile together with its west, east, north and south
// neighbours.
type UseCase struct {
	Cities ports.CityRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CityID) == "" {
		return Response{}, ErrInvalidRequest
	}
	var resp Response
	err := u.Cities.WithCity(ctx, req.CityID, func(c *city.City) error {
		tile := c.Tile(req.X, req.Y)
		if tile == nil {
			return city.ErrOutOfBounds
		}
		resp.Tile = cityview.Tile(c, tile)
		resp.Neighbors = cityview.Tiles(c, c.TileNeighbors(req.X, req.Y))
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return resp, nil
}
