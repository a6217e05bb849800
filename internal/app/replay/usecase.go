package replay

import (
	"context"
	"errors"
	"strings"

	"citybuilder/internal/app/ports"
	"citybuilder/internal/domain/city"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const DefaultLimit = 50

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CityID) == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	filtered := strings.TrimSpace(req.Type) != "" || req.OccurredFrom > 0 || req.OccurredTo > 0
	fetch := limit
	if filtered {
		// Filters run in memory, so the cap applies after them.
		fetch = 0
	}
	events, err := u.Events.ListByCityID(ctx, req.CityID, fetch)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	events = filterByType(events, req.Type)
	if len(events) > limit {
		events = events[:limit]
	}
	return Response{Events: events, Latest: latestEconomy(events)}, nil
}

func filterByTimeWindow(events []city.DomainEvent, from, to int64) []city.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]city.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func filterByType(events []city.DomainEvent, eventType string) []city.DomainEvent {
	eventType = strings.TrimSpace(eventType)
	if eventType == "" {
		return events
	}
	out := make([]city.DomainEvent, 0, len(events))
	for _, evt := range events {
		if evt.Type == eventType {
			out = append(out, evt)
		}
	}
	return out
}

// latestEconomy reads the first tick event; events arrive newest first.
// Payloads may come back from JSON storage, so economy is decoded loosely.
func latestEconomy(events []city.DomainEvent) LatestEconomy {
	for _, evt := range events {
		if evt.Type != city.EventCityTicked {
			continue
		}
		out := LatestEconomy{Found: true, SimTime: uint64(num(evt.Payload["sim_time"]))}
		switch e := evt.Payload["economy"].(type) {
		case city.Economy:
			out.Economy = e
		case map[string]any:
			out.Economy = city.Economy{
				Population: num(e["population"]),
				Money:      num(e["money"]),
				Energy:     num(e["energy"]),
				Food:       num(e["food"]),
				GHG:        num(e["ghg"]),
			}
		}
		return out
	}
	return LatestEconomy{}
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return 0
	}
}
