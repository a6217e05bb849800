package simulate

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"citybuilder/internal/app/cityview"
	"citybuilder/internal/app/journal"
	"citybuilder/internal/app/ports"
	"citybuilder/internal/domain/city"
)

var ErrInvalidRequest = errors.New("invalid simulate request")

const MaxSteps = 1000

type UseCase struct {
	Cities  ports.CityRepository
	Events  ports.EventRepository
	Metrics ports.CityMetrics
	Now     func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CityID) == "" {
		return Response{}, ErrInvalidRequest
	}
	mode := req.Mode
	if mode == "" {
		mode = ModeTick
	}
	steps := req.Steps
	if steps == 0 {
		steps = 1
	}
	if steps < 0 || steps > MaxSteps {
		return Response{}, ErrInvalidRequest
	}
	switch mode {
	case ModeTick, ModeTraverse, ModeManual:
	default:
		return Response{}, ErrInvalidRequest
	}

	resp := Response{Mode: mode, Steps: steps, Grown: []city.Point{}}
	err := u.Cities.WithCity(ctx, req.CityID, func(c *city.City) error {
		switch mode {
		case ModeTraverse:
			c.Simulate(steps)
		default:
			for i := 0; i < steps; i++ {
				var report city.StepReport
				if mode == ModeTick {
					report = c.Tick()
				} else {
					report = c.ManualSimulate()
				}
				if report.Grown != nil {
					resp.Grown = append(resp.Grown, *report.Grown)
				}
			}
		}
		resp.Summary = cityview.Summarize(c)
		return nil
	})
	if err != nil {
		return Response{}, err
	}

	slog.Info("city simulated",
		"city_id", req.CityID,
		"mode", string(mode),
		"steps", steps,
		"grown", len(resp.Grown),
		"sim_time", resp.Summary.SimTime,
		"population", resp.Summary.Economy.Population,
		"money", resp.Summary.Economy.Money,
	)
	if mode == ModeTick && u.Metrics != nil {
		u.Metrics.RecordTicks(steps)
	}
	if mode != ModeTraverse {
		journal.Record(ctx, u.Events, req.CityID, city.EventCityTicked, journal.Now(u.Now), map[string]any{
			"mode":     string(mode),
			"steps":    steps,
			"grown":    len(resp.Grown),
			"sim_time": resp.Summary.SimTime,
			"economy":  resp.Summary.Economy,
		})
	}
	return resp, nil
}
