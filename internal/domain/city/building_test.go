package city

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestFactory_SelectsVariantByType(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(5)))

	road, err := f(1, 2, BuildingRoad)
	if err != nil {
		t.Fatalf("factory road error: %v", err)
	}
	if _, ok := road.(*Road); !ok {
		t.Fatalf("expected *Road, got %T", road)
	}
	if !road.HideTerrain() {
		t.Fatalf("expected road to hide terrain")
	}

	for _, bt := range []BuildingType{BuildingResidential, BuildingCommercial, BuildingIndustrial} {
		b, err := f(3, 4, bt)
		if err != nil {
			t.Fatalf("factory %s error: %v", bt, err)
		}
		z, ok := b.(*Zone)
		if !ok {
			t.Fatalf("expected *Zone for %s, got %T", bt, b)
		}
		if z.Style != "A" && z.Style != "B" && z.Style != "C" {
			t.Fatalf("unexpected style %q", z.Style)
		}
		if z.Rotation%90 != 0 || z.Rotation < 0 || z.Rotation > 270 {
			t.Fatalf("unexpected rotation %d", z.Rotation)
		}
		if z.Type() != bt || z.Position() != (Point{X: 3, Y: 4}) || z.Status() != StatusOK {
			t.Fatalf("unexpected zone fields: %+v", z)
		}
	}

	if _, err := f(0, 0, "castle"); !errors.Is(err, ErrUnknownBuildingType) {
		t.Fatalf("expected ErrUnknownBuildingType, got %v", err)
	}
}

func TestFactory_SameSeedSameStyle(t *testing.T) {
	a := NewFactory(rand.New(rand.NewSource(11)))
	b := NewFactory(rand.New(rand.NewSource(11)))
	for i := 0; i < 10; i++ {
		za, _ := a(0, 0, BuildingCommercial)
		zb, _ := b(0, 0, BuildingCommercial)
		if za.(*Zone).Style != zb.(*Zone).Style || za.(*Zone).Rotation != zb.(*Zone).Rotation {
			t.Fatalf("seeded factories diverged at %d", i)
		}
	}
}

func TestBuilding_DisposeIsIdempotent(t *testing.T) {
	b, _ := NewFactory(nil)(0, 0, BuildingIndustrial)
	b.Dispose()
	b.Dispose()
	if !b.Disposed() {
		t.Fatalf("expected disposed")
	}
}

func TestBuilding_StatusIsClosedSet(t *testing.T) {
	b, _ := NewFactory(nil)(0, 0, BuildingResidential)
	b.SetStatus(StatusNoPower)
	if b.Status() != StatusNoPower {
		t.Fatalf("expected no_power, got %s", b.Status())
	}
	b.SetStatus("on_fire")
	if b.Status() != StatusNoPower {
		t.Fatalf("unknown status must be ignored, got %s", b.Status())
	}
}

func TestBuilding_Describe(t *testing.T) {
	b, _ := NewFactory(nil)(2, 3, BuildingCommercial)
	text := b.Describe()
	for _, want := range []string{"Name: Zone", "Type: commercial", "Status: ok", "Style: "} {
		if !strings.Contains(text, want) {
			t.Fatalf("describe missing %q in %q", want, text)
		}
	}
}

func TestRoad_Connections(t *testing.T) {
	c := newTestCity(t, 6)
	mustPlace(t, c, 1, 1, BuildingRoad)
	mustPlace(t, c, 2, 1, BuildingRoad)
	mustPlace(t, c, 1, 2, BuildingRoad)
	mustPlace(t, c, 0, 1, BuildingResidential)

	road := c.Tile(1, 1).Building().(*Road)
	got := road.Connections(c)
	want := RoadConnections{East: true, South: true}
	if got != want {
		t.Fatalf("connections mismatch: got=%+v want=%+v", got, want)
	}

	edge := c.Tile(2, 1).Building().(*Road).Connections(c)
	if !edge.West || edge.East || edge.North || edge.South {
		t.Fatalf("unexpected connections for 2,1: %+v", edge)
	}
}
