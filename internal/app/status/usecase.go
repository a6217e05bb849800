package status

import (
	"context"
	"errors"
	"strings"

	"citybuilder/internal/app/cityview"
	"citybuilder/internal/app/ports"
	"citybuilder/internal/domain/city"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	Cities ports.CityRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CityID) == "" {
		return Response{}, ErrInvalidRequest
	}
	resp := Response{CityID: req.CityID}
	err := u.Cities.WithCity(ctx, req.CityID, func(c *city.City) error {
		resp.Summary = cityview.Summarize(c)
		resp.OccupiedKeys = c.OccupiedKeys()
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return resp, nil
}
