package city

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrUnknownBuildingType = errors.New("unknown building type")

var zoneStyles = [3]string{"A", "B", "C"}

// Factory builds the occupant for a tile. It must return a building whose
// position is (x, y).
type Factory func(x, y int, t BuildingType) (Building, error)

// NewFactory returns the default factory. Style and rotation of zones are
// drawn from rng; a nil rng uses a fixed seed so placement stays reproducible.
func NewFactory(rng *rand.Rand) Factory {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return func(x, y int, t BuildingType) (Building, error) {
		switch {
		case t == BuildingRoad:
			r := &Road{structure: newStructure("Road", t, x, y)}
			r.hideTerrain = true
			return r, nil
		case t.IsZone():
			return &Zone{
				structure: newStructure("Zone", t, x, y),
				Style:     zoneStyles[rng.Intn(len(zoneStyles))],
				Rotation:  90 * rng.Intn(4),
			}, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownBuildingType, string(t))
		}
	}
}
