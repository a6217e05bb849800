package simulate

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"citybuilder/internal/adapter/repo/memory"
	"citybuilder/internal/app/ports"
	"citybuilder/internal/domain/city"
)

func newRepos(t *testing.T, size int) (memory.CityRepo, memory.EventRepo) {
	t.Helper()
	store := memory.NewStore()
	cities := memory.NewCityRepo(store)
	c, err := city.NewCity(city.Config{Size: size, Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatalf("NewCity error: %v", err)
	}
	if err := cities.Create(context.Background(), "c1", c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	return cities, memory.NewEventRepo(store)
}

func TestUseCase_TickAdvancesClockAndGrows(t *testing.T) {
	cities, events := newRepos(t, 16)
	ticks := &tickCounter{}
	uc := UseCase{Cities: cities, Events: events, Metrics: ticks}

	resp, err := uc.Execute(context.Background(), Request{CityID: "c1", Steps: 3})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Mode != ModeTick || resp.Steps != 3 {
		t.Fatalf("unexpected mode/steps: %+v", resp)
	}
	if len(resp.Grown) != 3 {
		t.Fatalf("expected 3 grown buildings, got %v", resp.Grown)
	}
	if resp.Summary.SimTime != 3 || resp.Summary.Occupied != 4 {
		t.Fatalf("unexpected summary: %+v", resp.Summary)
	}
	if resp.Summary.Economy.Population != 40 {
		t.Fatalf("expected population 40, got %v", resp.Summary.Economy.Population)
	}
	if ticks.n != 3 {
		t.Fatalf("expected 3 ticks recorded, got %d", ticks.n)
	}

	got, err := events.ListByCityID(context.Background(), "c1", 1)
	if err != nil {
		t.Fatalf("ListByCityID error: %v", err)
	}
	if got[0].Type != city.EventCityTicked || got[0].Payload["steps"] != 3 {
		t.Fatalf("unexpected event: %+v", got[0])
	}
}

func TestUseCase_TraverseLeavesEconomyAlone(t *testing.T) {
	cities, events := newRepos(t, 8)
	uc := UseCase{Cities: cities, Events: events}

	resp, err := uc.Execute(context.Background(), Request{CityID: "c1", Steps: 5, Mode: ModeTraverse})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(resp.Grown) != 0 || resp.Summary.SimTime != 0 || resp.Summary.Occupied != 1 {
		t.Fatalf("traverse must not grow or advance time: %+v", resp)
	}
	if resp.Summary.Economy != city.DefaultTuning().Initial {
		t.Fatalf("traverse must not settle economy: %+v", resp.Summary.Economy)
	}
	if _, err := events.ListByCityID(context.Background(), "c1", 1); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("traverse should not journal, got %v", err)
	}
}

func TestUseCase_ManualDoesNotAdvanceClock(t *testing.T) {
	cities, _ := newRepos(t, 8)
	uc := UseCase{Cities: cities}

	resp, err := uc.Execute(context.Background(), Request{CityID: "c1", Mode: ModeManual})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Steps != 1 || len(resp.Grown) != 1 || resp.Summary.SimTime != 0 {
		t.Fatalf("unexpected manual response: %+v", resp)
	}
}

func TestUseCase_RejectsInvalidRequests(t *testing.T) {
	cities, _ := newRepos(t, 4)
	uc := UseCase{Cities: cities}
	cases := []Request{
		{},
		{CityID: "c1", Steps: -1},
		{CityID: "c1", Steps: MaxSteps + 1},
		{CityID: "c1", Mode: "rewind"},
	}
	for _, req := range cases {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("request %+v: expected ErrInvalidRequest, got %v", req, err)
		}
	}
	if _, err := uc.Execute(context.Background(), Request{CityID: "missing"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type tickCounter struct {
	n int
}

func (c *tickCounter) RecordPlaced(city.BuildingType)    {}
func (c *tickCounter) RecordBulldozed(city.BuildingType) {}
func (c *tickCounter) RecordRejected()                   {}
func (c *tickCounter) RecordTicks(n int)                 { c.n += n }

var _ ports.CityMetrics = (*tickCounter)(nil)
