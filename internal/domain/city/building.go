package city

import (
	"fmt"
	"strings"
)

type BuildingType string

const (
	BuildingResidential BuildingType = "residential"
	BuildingCommercial  BuildingType = "commercial"
	BuildingIndustrial  BuildingType = "industrial"
	BuildingRoad        BuildingType = "road"
)

func (t BuildingType) Valid() bool {
	switch t {
	case BuildingResidential, BuildingCommercial, BuildingIndustrial, BuildingRoad:
		return true
	default:
		return false
	}
}

// IsZone reports whether the type is a development zone rather than infrastructure.
func (t BuildingType) IsZone() bool {
	switch t {
	case BuildingResidential, BuildingCommercial, BuildingIndustrial:
		return true
	default:
		return false
	}
}

// Building is the occupant of a single tile. Variants are selected by the
// factory from the type tag; the type never changes after construction.
type Building interface {
	Type() BuildingType
	Position() Point
	Status() Status
	SetStatus(s Status)
	HideTerrain() bool
	Simulate(c *City)
	Dispose()
	Disposed() bool
	Describe() string
}

type structure struct {
	name        string
	typ         BuildingType
	pos         Point
	status      Status
	hideTerrain bool
	disposed    bool
}

func newStructure(name string, typ BuildingType, x, y int) structure {
	return structure{
		name:   name,
		typ:    typ,
		pos:    Point{X: x, Y: y},
		status: StatusOK,
	}
}

func (s *structure) Type() BuildingType { return s.typ }
func (s *structure) Position() Point    { return s.pos }
func (s *structure) Status() Status     { return s.status }
func (s *structure) HideTerrain() bool  { return s.hideTerrain }
func (s *structure) Disposed() bool     { return s.disposed }

func (s *structure) SetStatus(status Status) {
	if !status.Valid() {
		return
	}
	s.status = status
}

func (s *structure) Simulate(_ *City) {}

// Dispose may be called any number of times.
func (s *structure) Dispose() {
	s.disposed = true
}

func (s *structure) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Building\n")
	fmt.Fprintf(&b, "Name: %s\n", s.name)
	fmt.Fprintf(&b, "Type: %s\n", s.typ)
	fmt.Fprintf(&b, "Status: %s\n", s.status)
	return b.String()
}

// Zone is a residential, commercial or industrial development.
type Zone struct {
	structure
	Style    string
	Rotation int
}

func (z *Zone) Simulate(c *City) {
	if z.disposed {
		return
	}
	z.structure.Simulate(c)
}

func (z *Zone) Describe() string {
	return z.structure.Describe() + fmt.Sprintf("Style: %s\nRotation: %d\n", z.Style, z.Rotation)
}

// Road is infrastructure; its rendering depends on which neighbours are roads,
// which is why placement and removal refresh the 4-neighbourhood.
type Road struct {
	structure
}

type RoadConnections struct {
	West  bool `json:"west"`
	East  bool `json:"east"`
	North bool `json:"north"`
	South bool `json:"south"`
}

func (r *Road) Connections(c *City) RoadConnections {
	isRoad := func(x, y int) bool {
		t := c.Tile(x, y)
		if t == nil || t.Building() == nil {
			return false
		}
		return t.Building().Type() == BuildingRoad
	}
	return RoadConnections{
		West:  isRoad(r.pos.X-1, r.pos.Y),
		East:  isRoad(r.pos.X+1, r.pos.Y),
		North: isRoad(r.pos.X, r.pos.Y-1),
		South: isRoad(r.pos.X, r.pos.Y+1),
	}
}
